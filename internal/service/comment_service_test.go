package service

import (
	"context"
	"testing"

	"plume/internal/models"

	"github.com/stretchr/testify/assert"
)

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint, int, int) ([]*models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(context.Context, *models.Comment) error { return nil },
		getByIDFn:    func(context.Context, uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn: func(context.Context, uint, int, int) ([]*models.Comment, error) { return nil, nil },
		updateFn:     func(context.Context, *models.Comment) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
	}
}

func TestCommentServiceCreateUnknownPost(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("post", id)
	}

	svc := NewCommentService(noopCommentRepo(), posts)
	_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, PostID: 404, Text: "hi"})
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestCommentServiceCreateServerAssignedFields(t *testing.T) {
	comments := noopCommentRepo()
	var created *models.Comment
	comments.createFn = func(_ context.Context, c *models.Comment) error {
		created = c
		c.ID = 9
		return nil
	}
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Text: "hi", UserID: 3, PostID: 42}, nil
	}

	svc := NewCommentService(comments, noopPostRepo())
	out, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 3, PostID: 42, Text: "hi"})
	assert.NoError(t, err)
	assert.Equal(t, uint(3), created.UserID)
	assert.Equal(t, uint(42), created.PostID)
	assert.Equal(t, uint(9), out.ID)
}

func TestCommentServiceCreateRequiresText(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopPostRepo())

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, PostID: 1})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestCommentServiceGetScopedToPost(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Text: "hi", UserID: 1, PostID: 7}, nil
	}

	svc := NewCommentService(comments, noopPostRepo())

	// Right post resolves.
	out, err := svc.GetComment(context.Background(), 7, 3)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), out.ID)

	// Wrong post does not, even though the comment id exists.
	_, err = svc.GetComment(context.Background(), 8, 3)
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestCommentServiceUpdateNotOwner(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Text: "bob's", UserID: 2, PostID: 7}, nil
	}
	comments.updateFn = func(context.Context, *models.Comment) error {
		t.Fatal("update must not run for a non-owner")
		return nil
	}

	svc := NewCommentService(comments, noopPostRepo())
	_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
		UserID: 1, PostID: 7, CommentID: 3, Text: "mine now",
	})
	assertAppErrorCode(t, err, "UNAUTHORIZED")
}

func TestCommentServiceDeleteOwner(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Text: "mine", UserID: 1, PostID: 7}, nil
	}
	var deleted uint
	comments.deleteFn = func(_ context.Context, id uint) error {
		deleted = id
		return nil
	}

	svc := NewCommentService(comments, noopPostRepo())
	err := svc.DeleteComment(context.Background(), DeleteCommentInput{UserID: 1, PostID: 7, CommentID: 3})
	assert.NoError(t, err)
	assert.Equal(t, uint(3), deleted)
}

func TestCommentServiceDeleteWrongPostScope(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Text: "mine", UserID: 1, PostID: 7}, nil
	}
	comments.deleteFn = func(context.Context, uint) error {
		t.Fatal("delete must not run when the post scope does not match")
		return nil
	}

	svc := NewCommentService(comments, noopPostRepo())
	err := svc.DeleteComment(context.Background(), DeleteCommentInput{UserID: 1, PostID: 8, CommentID: 3})
	assertAppErrorCode(t, err, "NOT_FOUND")
}

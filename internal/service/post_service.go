package service

import (
	"context"

	"plume/internal/cache"
	"plume/internal/models"
	"plume/internal/repository"
)

type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

type CreatePostInput struct {
	UserID  uint
	Text    string
	GroupID *uint
}

type ListPostsInput struct {
	Limit   int
	Offset  int
	GroupID *uint
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Text    string
	GroupID *uint
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
	}
}

const (
	maxPostTextLen      = 50000
	defaultPostPageSize = 20
)

// CreatePost creates a post authored by the requesting user. The author is
// always the authenticated principal, never client-supplied.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Text == "" {
		return nil, models.NewValidationError("text is required")
	}
	if len(in.Text) > maxPostTextLen {
		return nil, models.NewValidationError("text too long (max 50000 characters)")
	}

	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, err
		}
	}

	post := &models.Post{
		Text:    in.Text,
		UserID:  in.UserID,
		GroupID: in.GroupID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Reload with author and group preloaded for the response
	return s.postRepo.GetByID(ctx, post.ID)
}

// ListPosts returns posts newest first. When a group filter is supplied the
// group must resolve; a missing group is a not-found error, not an empty list.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, err
		}
		return s.postRepo.ListByGroup(ctx, *in.GroupID, in.Limit, in.Offset)
	}

	// Cache exactly the default first page; any other limit or offset goes
	// straight through so a smaller page never poisons the shared entry.
	if in.Offset == 0 && in.Limit == defaultPostPageSize {
		var posts []*models.Post
		err := cache.Aside(ctx, cache.PostsListKey, &posts, cache.ListTTL, func() error {
			var fetchErr error
			posts, fetchErr = s.postRepo.List(ctx, in.Limit, in.Offset)
			return fetchErr
		})
		return posts, err
	}

	return s.postRepo.List(ctx, in.Limit, in.Offset)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.ListByUser(ctx, userID, limit, offset)
}

// UpdatePost applies text and group changes to a post. Only the recorded
// author may update; any other principal is rejected before the write path.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own posts")
	}

	if in.Text != "" {
		if len(in.Text) > maxPostTextLen {
			return nil, models.NewValidationError("text too long (max 50000 characters)")
		}
		post.Text = in.Text
	}
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, err
		}
		post.GroupID = in.GroupID
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// DeletePost deletes a post. Only the recorded author may delete.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	if post.UserID != in.UserID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}

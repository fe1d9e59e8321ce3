package service

import (
	"context"

	"plume/internal/models"
	"plume/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

type UpdateCommentInput struct {
	UserID    uint
	PostID    uint
	CommentID uint
	Text      string
}

type DeleteCommentInput struct {
	UserID    uint
	PostID    uint
	CommentID uint
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

const maxCommentTextLen = 10000

// CreateComment attaches a comment to the resolved post with the requesting
// user as author. Client-supplied author or post fields are never honored.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	if in.Text == "" {
		return nil, models.NewValidationError("text is required")
	}
	if len(in.Text) > maxCommentTextLen {
		return nil, models.NewValidationError("text too long (max 10000 characters)")
	}

	comment := &models.Comment{
		Text:   in.Text,
		UserID: in.UserID,
		PostID: in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns the comments of a post, newest first. The post must
// resolve.
func (s *CommentService) ListComments(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID, limit, offset)
}

// GetComment returns a single comment scoped to its post; a comment id that
// belongs to a different post does not resolve.
func (s *CommentService) GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, models.NewNotFoundError("comment", commentID)
	}
	return comment, nil
}

// UpdateComment changes a comment's text. Only the recorded author may
// update; the post attachment is immutable.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.GetComment(ctx, in.PostID, in.CommentID)
	if err != nil {
		return nil, err
	}

	if comment.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own comments")
	}
	if in.Text == "" {
		return nil, models.NewValidationError("text is required")
	}
	if len(in.Text) > maxCommentTextLen {
		return nil, models.NewValidationError("text too long (max 10000 characters)")
	}

	comment.Text = in.Text
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// DeleteComment deletes a comment. Only the recorded author may delete.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.GetComment(ctx, in.PostID, in.CommentID)
	if err != nil {
		return err
	}

	if comment.UserID != in.UserID {
		return models.NewUnauthorizedError("You can only delete your own comments")
	}

	return s.commentRepo.Delete(ctx, in.CommentID)
}

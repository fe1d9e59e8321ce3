package repository

import (
	"context"
	"errors"

	"plume/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow edge data operations
type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	Exists(ctx context.Context, userID, followingID uint) (bool, error)
	List(ctx context.Context) ([]*models.Follow, error)
	Search(ctx context.Context, username string) ([]*models.Follow, error)
}

// followRepository implements FollowRepository
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create persists a follow edge. The composite unique index on
// (user_id, following_id) is the authoritative guard: a duplicate insert
// that races past the service-level existence check still fails here and
// is reported as a conflict.
func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	err := r.db.WithContext(ctx).Create(follow).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.NewConflictError("this user-following pair already exists")
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Following").
		First(follow, follow.ID).Error
}

func (r *followRepository) Exists(ctx context.Context, userID, followingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_id = ? AND following_id = ?", userID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) List(ctx context.Context) ([]*models.Follow, error) {
	var follows []*models.Follow
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Following").
		Order("created_at DESC").
		Find(&follows).Error
	return follows, err
}

// Search returns edges whose follower or followee exactly matches username.
func (r *followRepository) Search(ctx context.Context, username string) ([]*models.Follow, error) {
	sub := r.db.Model(&models.User{}).Select("id").Where("username = ?", username)

	var follows []*models.Follow
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Following").
		Where(r.db.Where("user_id IN (?)", sub).Or("following_id IN (?)", sub)).
		Order("created_at DESC").
		Find(&follows).Error
	return follows, err
}

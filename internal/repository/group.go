package repository

import (
	"context"
	"errors"

	"plume/internal/cache"
	"plume/internal/models"

	"gorm.io/gorm"
)

// GroupRepository defines the interface for group data operations
type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id uint) (*models.Group, error)
	GetByTitle(ctx context.Context, title string) (*models.Group, error)
	List(ctx context.Context) ([]*models.Group, error)
	Delete(ctx context.Context, id uint) error
}

// groupRepository implements GroupRepository
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *models.Group) error {
	err := r.db.WithContext(ctx).Create(group).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.NewConflictError("a group with this title already exists")
	}
	if err == nil {
		cache.InvalidateGroupsList(ctx)
	}
	return err
}

func (r *groupRepository) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	err := r.db.WithContext(ctx).First(&group, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("group", id)
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetByTitle returns (nil, nil) when no group has the given title.
func (r *groupRepository) GetByTitle(ctx context.Context, title string) (*models.Group, error) {
	var group models.Group
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) List(ctx context.Context) ([]*models.Group, error) {
	var groups []*models.Group
	err := r.db.WithContext(ctx).Order("title ASC").Find(&groups).Error
	return groups, err
}

// Delete removes a group. Posts in the group are detached, not deleted,
// per the schema-level SET NULL rule.
func (r *groupRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&models.Group{}, id).Error
	if err == nil {
		cache.InvalidateGroupsList(ctx)
		cache.InvalidatePostsList(ctx)
	}
	return err
}

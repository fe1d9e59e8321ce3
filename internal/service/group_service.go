// Package service implements the business rules of the application on top of
// the repository layer: ownership policy, follow edge validation, and list
// scoping.
package service

import (
	"context"
	"strings"

	"plume/internal/cache"
	"plume/internal/models"
	"plume/internal/repository"
)

type GroupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

const maxGroupTitleLen = 200

// CreateGroup creates a topic group. Any authenticated user may create one;
// no ownership is recorded. Titles are unique.
func (s *GroupService) CreateGroup(ctx context.Context, title string) (*models.Group, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, models.NewValidationError("title is required")
	}
	if len(title) > maxGroupTitleLen {
		return nil, models.NewValidationError("title too long (max 200 characters)")
	}

	existing, err := s.groupRepo.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("a group with this title already exists")
	}

	group := &models.Group{Title: title}
	// The unique index backstops the check above against concurrent creates.
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) GetGroup(ctx context.Context, id uint) (*models.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*models.Group, error) {
	var groups []*models.Group
	err := cache.Aside(ctx, cache.GroupsListKey, &groups, cache.GroupTTL, func() error {
		var fetchErr error
		groups, fetchErr = s.groupRepo.List(ctx)
		return fetchErr
	})
	return groups, err
}

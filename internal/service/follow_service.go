package service

import (
	"context"

	"plume/internal/models"
	"plume/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// CreateFollow creates a directed follow edge from the authenticated user to
// the named user. The follower side is always the requester; the client only
// supplies the target username. Validation order: the field must be present,
// the target must exist, the pair must be new, and self-follows are rejected.
func (s *FollowService) CreateFollow(ctx context.Context, followerID uint, followingUsername string) (*models.FollowResponse, error) {
	if followingUsername == "" {
		return nil, models.NewValidationError("following is required")
	}

	follower, err := s.userRepo.GetByID(ctx, followerID)
	if err != nil {
		return nil, err
	}

	target, err := s.userRepo.GetByUsername(ctx, followingUsername)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, models.NewValidationError("there is no user with this username")
	}

	exists, err := s.followRepo.Exists(ctx, follower.ID, target.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("this user-following pair already exists")
	}

	if follower.ID == target.ID {
		return nil, models.NewValidationError("user and following shall be different")
	}

	follow := &models.Follow{
		UserID:      follower.ID,
		FollowingID: target.ID,
	}
	// The repository reports a storage-level duplicate as the same conflict,
	// closing the race between the existence check and the insert.
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}

	resp := follow.Response()
	return &resp, nil
}

// ListFollows returns follow edges as username pairs. A non-empty search
// term restricts results to edges whose follower or followee exactly matches.
func (s *FollowService) ListFollows(ctx context.Context, search string) ([]models.FollowResponse, error) {
	var follows []*models.Follow
	var err error

	if search != "" {
		follows, err = s.followRepo.Search(ctx, search)
	} else {
		follows, err = s.followRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]models.FollowResponse, 0, len(follows))
	for _, f := range follows {
		responses = append(responses, f.Response())
	}
	return responses, nil
}

package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cinehive/cinehive/internal/app/models"
	"github.com/cinehive/cinehive/internal/app/repositories"
)

// CommunityService defines the interface for community operations
type CommunityService interface {
	GetAllCommunities(ctx context.Context) []models.Community
	GetCommunityByID(ctx context.Context, id string) (*models.Community, error)
	JoinCommunity(ctx context.Context, communityID, userID string) error
}

// communityServiceImpl implements CommunityService
type communityServiceImpl struct {
	communityRepo *repositories.CommunityRepository
	userRepo      *repositories.UserRepository
	logger        zerolog.Logger
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(communityRepo *repositories.CommunityRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) CommunityService {
	return &communityServiceImpl{
		communityRepo: communityRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// GetAllCommunities returns all communities in insertion order
func (s *communityServiceImpl) GetAllCommunities(ctx context.Context) []models.Community {
	return s.communityRepo.List()
}

// GetCommunityByID returns one community
func (s *communityServiceImpl) GetCommunityByID(ctx context.Context, id string) (*models.Community, error) {
	return s.communityRepo.FindByID(id)
}

// JoinCommunity adds the community to the user's joined set and increments
// the member count. The operation is idempotent: a repeat join changes
// nothing and reports no error. The joined-set append is the atomic guard,
// so the count goes up exactly once per user.
func (s *communityServiceImpl) JoinCommunity(ctx context.Context, communityID, userID string) error {
	if _, err := s.communityRepo.FindByID(communityID); err != nil {
		return err
	}

	added, err := s.userRepo.AddJoinedCommunity(userID, communityID)
	if err != nil {
		return err
	}
	if !added {
		s.logger.Debug().Str("userID", userID).Str("communityID", communityID).Msg("User already joined community")
		return nil
	}

	if err := s.communityRepo.IncrementMemberCount(communityID); err != nil {
		return err
	}

	s.logger.Info().Str("userID", userID).Str("communityID", communityID).Msg("User joined community")
	return nil
}

package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cinehive/cinehive/internal/app/models"
	"github.com/cinehive/cinehive/internal/app/models/dto"
	"github.com/cinehive/cinehive/internal/app/repositories"
)

// Status filter values for listing watch parties
const (
	WatchPartyStatusUpcoming = "upcoming"
	WatchPartyStatusPast     = "past"
)

// WatchPartyService defines the interface for watch party operations
type WatchPartyService interface {
	GetAllWatchParties(ctx context.Context, status string) []models.WatchParty
	CreateWatchParty(ctx context.Context, hostID string, req *dto.CreateWatchPartyRequest) (*models.WatchParty, error)
	JoinWatchParty(ctx context.Context, partyID, userID string) error
}

// watchPartyServiceImpl implements WatchPartyService
type watchPartyServiceImpl struct {
	partyRepo *repositories.WatchPartyRepository
	userRepo  *repositories.UserRepository
	logger    zerolog.Logger
	now       func() time.Time
}

// NewWatchPartyService creates a new WatchPartyService
func NewWatchPartyService(partyRepo *repositories.WatchPartyRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) WatchPartyService {
	return &watchPartyServiceImpl{
		partyRepo: partyRepo,
		userRepo:  userRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// GetAllWatchParties returns watch parties in insertion order. An optional
// status filter classifies against the wall clock at read time; the
// classification is never stored. Parties whose schedule cannot be parsed
// fall out of both filtered views.
func (s *watchPartyServiceImpl) GetAllWatchParties(ctx context.Context, status string) []models.WatchParty {
	parties := s.partyRepo.List()
	if status != WatchPartyStatusUpcoming && status != WatchPartyStatusPast {
		return parties
	}

	now := s.now()
	filtered := make([]models.WatchParty, 0, len(parties))
	for _, party := range parties {
		if _, ok := party.ScheduledTime(); !ok {
			continue
		}
		if (status == WatchPartyStatusUpcoming) == party.IsUpcomingAt(now) {
			filtered = append(filtered, party)
		}
	}
	return filtered
}

// CreateWatchParty schedules a party with the creator auto-joined as the
// first participant. Host fields are snapshotted; everything else is taken
// verbatim from the request without validation.
func (s *watchPartyServiceImpl) CreateWatchParty(ctx context.Context, hostID string, req *dto.CreateWatchPartyRequest) (*models.WatchParty, error) {
	host, err := s.userRepo.FindByID(hostID)
	if err != nil {
		return nil, err
	}

	party := &models.WatchParty{
		ID:              uuid.New().String(),
		Title:           req.Title,
		MovieID:         req.MovieID,
		HostID:          host.ID,
		HostUsername:    host.Username,
		ScheduledFor:    req.ScheduledFor,
		Platform:        req.Platform,
		Participants:    []string{host.ID},
		MaxParticipants: req.MaxParticipants,
		Description:     req.Description,
	}

	if err := s.partyRepo.Insert(party); err != nil {
		return nil, err
	}

	s.logger.Info().Str("partyID", party.ID).Str("hostID", hostID).Msg("Watch party created")
	return party, nil
}

// JoinWatchParty adds the user to the party's participant list, subject to
// the capacity cap. Joining twice is a silent no-op.
func (s *watchPartyServiceImpl) JoinWatchParty(ctx context.Context, partyID, userID string) error {
	if err := s.partyRepo.AddParticipant(partyID, userID); err != nil {
		return err
	}
	s.logger.Info().Str("partyID", partyID).Str("userID", userID).Msg("User joined watch party")
	return nil
}

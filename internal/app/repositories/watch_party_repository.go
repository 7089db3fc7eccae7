package repositories

import (
	"sync"

	"github.com/cinehive/cinehive/internal/app/models"
	"github.com/cinehive/cinehive/internal/pkg/apperrors"
)

// WatchPartyRepository holds all watch parties in insertion order
type WatchPartyRepository struct {
	mu      sync.RWMutex
	parties []*models.WatchParty
	byID    map[string]*models.WatchParty
}

// NewWatchPartyRepository creates an empty WatchPartyRepository
func NewWatchPartyRepository() *WatchPartyRepository {
	return &WatchPartyRepository{
		byID: make(map[string]*models.WatchParty),
	}
}

// Insert appends a new watch party
func (r *WatchPartyRepository) Insert(party *models.WatchParty) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[party.ID]; ok {
		return apperrors.NewConflictError("duplicate watch party id")
	}
	stored := cloneWatchParty(party)
	r.parties = append(r.parties, stored)
	r.byID[stored.ID] = stored
	return nil
}

// List returns all watch parties in insertion order
func (r *WatchPartyRepository) List() []models.WatchParty {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.WatchParty, 0, len(r.parties))
	for _, p := range r.parties {
		out = append(out, *cloneWatchParty(p))
	}
	return out
}

// FindByID returns the watch party with the given id
func (r *WatchPartyRepository) FindByID(id string) (*models.WatchParty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	party, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrWatchPartyNotFound
	}
	return cloneWatchParty(party), nil
}

// AddParticipant joins a user to the party. The capacity check runs before
// the duplicate check, so a full party rejects even users who already
// joined; a duplicate join below capacity is a silent no-op. The whole
// sequence runs under one lock, so the participant list can never exceed
// maxParticipants or hold duplicates.
func (r *WatchPartyRepository) AddParticipant(partyID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	party, ok := r.byID[partyID]
	if !ok {
		return apperrors.ErrWatchPartyNotFound
	}
	if party.IsFull() {
		return apperrors.ErrWatchPartyFull
	}
	if party.HasParticipant(userID) {
		return nil
	}
	party.Participants = append(party.Participants, userID)
	return nil
}

func cloneWatchParty(p *models.WatchParty) *models.WatchParty {
	clone := *p
	clone.Participants = append([]string(nil), p.Participants...)
	return &clone
}

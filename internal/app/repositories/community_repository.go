package repositories

import (
	"sync"

	"github.com/cinehive/cinehive/internal/app/models"
	"github.com/cinehive/cinehive/internal/pkg/apperrors"
)

// CommunityRepository holds all communities in insertion order
type CommunityRepository struct {
	mu          sync.RWMutex
	communities []*models.Community
	byID        map[string]*models.Community
}

// NewCommunityRepository creates an empty CommunityRepository
func NewCommunityRepository() *CommunityRepository {
	return &CommunityRepository{
		byID: make(map[string]*models.Community),
	}
}

// Insert appends a community. Communities only come from seed data.
func (r *CommunityRepository) Insert(community *models.Community) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[community.ID]; ok {
		return apperrors.NewConflictError("duplicate community id")
	}
	stored := cloneCommunity(community)
	r.communities = append(r.communities, stored)
	r.byID[stored.ID] = stored
	return nil
}

// List returns all communities in insertion order
func (r *CommunityRepository) List() []models.Community {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Community, 0, len(r.communities))
	for _, c := range r.communities {
		out = append(out, *cloneCommunity(c))
	}
	return out
}

// FindByID returns the community with the given id
func (r *CommunityRepository) FindByID(id string) (*models.Community, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	community, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrCommunityNotFound
	}
	return cloneCommunity(community), nil
}

// IncrementMemberCount adds one to the community's member count. The count
// only ever increases; the once-per-user guard lives in the user's joined
// set, checked before this is called.
func (r *CommunityRepository) IncrementMemberCount(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	community, ok := r.byID[id]
	if !ok {
		return apperrors.ErrCommunityNotFound
	}
	community.MemberCount++
	return nil
}

func cloneCommunity(c *models.Community) *models.Community {
	clone := *c
	clone.RelatedMovies = append([]string(nil), c.RelatedMovies...)
	return &clone
}

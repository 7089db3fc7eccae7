package repositories

import (
	"sync"

	"github.com/cinehive/cinehive/internal/app/models"
	"github.com/cinehive/cinehive/internal/pkg/apperrors"
)

// UserRepository holds all registered users
type UserRepository struct {
	mu    sync.RWMutex
	users []*models.User
	byID  map[string]*models.User
}

// NewUserRepository creates an empty UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID: make(map[string]*models.User),
	}
}

// Insert adds a new user. Username and email uniqueness is enforced here,
// at registration time only, with case-sensitive exact matching.
func (r *UserRepository) Insert(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return apperrors.ErrUserExists
		}
	}
	if _, ok := r.byID[user.ID]; ok {
		return apperrors.ErrUserExists
	}

	stored := cloneUser(user)
	r.users = append(r.users, stored)
	r.byID[stored.ID] = stored
	return nil
}

// FindByID returns a copy of the user with the given id
func (r *UserRepository) FindByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return cloneUser(user), nil
}

// FindByEmail returns a copy of the user with the given email
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// AddJoinedCommunity appends the community id to the user's joined set.
// It reports whether the id was actually added; the check and the append
// run under one lock so the same user can never be added twice.
func (r *UserRepository) AddJoinedCommunity(userID, communityID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return false, apperrors.ErrUserNotFound
	}
	if user.HasJoinedCommunity(communityID) {
		return false, nil
	}
	user.JoinedCommunities = append(user.JoinedCommunities, communityID)
	return true, nil
}

// Count returns the number of registered users
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func cloneUser(u *models.User) *models.User {
	clone := *u
	clone.FavoriteGenres = append([]string(nil), u.FavoriteGenres...)
	clone.JoinedCommunities = append([]string(nil), u.JoinedCommunities...)
	return &clone
}

package repositories

import (
	"sync"

	"github.com/cinehive/cinehive/internal/app/models"
	"github.com/cinehive/cinehive/internal/pkg/apperrors"
)

// MovieRepository holds the read-only movie catalog in insertion order
type MovieRepository struct {
	mu     sync.RWMutex
	movies []*models.Movie
	byID   map[string]*models.Movie
}

// NewMovieRepository creates an empty MovieRepository
func NewMovieRepository() *MovieRepository {
	return &MovieRepository{
		byID: make(map[string]*models.Movie),
	}
}

// Insert appends a movie to the catalog. Only the seeder calls this; the
// catalog has no mutation endpoints.
func (r *MovieRepository) Insert(movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[movie.ID]; ok {
		return apperrors.NewConflictError("duplicate movie id")
	}
	stored := cloneMovie(movie)
	r.movies = append(r.movies, stored)
	r.byID[stored.ID] = stored
	return nil
}

// List returns the full catalog in insertion order
func (r *MovieRepository) List() []models.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		out = append(out, *cloneMovie(m))
	}
	return out
}

// FindByID returns the movie with the given id
func (r *MovieRepository) FindByID(id string) (*models.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrMovieNotFound
	}
	return cloneMovie(movie), nil
}

func cloneMovie(m *models.Movie) *models.Movie {
	clone := *m
	clone.Genre = append([]string(nil), m.Genre...)
	clone.StreamingPlatforms = append([]string(nil), m.StreamingPlatforms...)
	return &clone
}

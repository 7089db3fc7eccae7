package services

import (
	"context"

	"github.com/cinehive/cinehive/internal/app/models"
	"github.com/cinehive/cinehive/internal/app/repositories"
)

// MovieService defines the interface for catalog operations
type MovieService interface {
	GetAllMovies(ctx context.Context) []models.Movie
	GetMovieByID(ctx context.Context, id string) (*models.Movie, error)
}

// movieServiceImpl implements MovieService
type movieServiceImpl struct {
	movieRepo *repositories.MovieRepository
}

// NewMovieService creates a new MovieService
func NewMovieService(movieRepo *repositories.MovieRepository) MovieService {
	return &movieServiceImpl{movieRepo: movieRepo}
}

// GetAllMovies returns the full catalog in insertion order
func (s *movieServiceImpl) GetAllMovies(ctx context.Context) []models.Movie {
	return s.movieRepo.List()
}

// GetMovieByID returns one catalog entry
func (s *movieServiceImpl) GetMovieByID(ctx context.Context, id string) (*models.Movie, error) {
	return s.movieRepo.FindByID(id)
}

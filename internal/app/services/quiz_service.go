package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cinehive/cinehive/internal/app/models"
	"github.com/cinehive/cinehive/internal/app/models/dto"
	"github.com/cinehive/cinehive/internal/app/repositories"
)

// maxRecommendations caps the recommendation result size
const maxRecommendations = 3

// genreMap translates quiz option values to catalog genre names. An answer
// value outside this table applies no filter at all.
var genreMap = map[string][]string{
	"action":  {"Action"},
	"comedy":  {"Comedy"},
	"drama":   {"Drama"},
	"horror":  {"Horror"},
	"scifi":   {"Sci-Fi"},
	"romance": {"Romance"},
}

// QuizService defines the interface for the recommendation quiz
type QuizService interface {
	GetQuestions(ctx context.Context) []models.QuizQuestion
	Recommend(ctx context.Context, answers dto.QuizAnswers) []models.Movie
}

// quizServiceImpl implements QuizService
type quizServiceImpl struct {
	quizRepo  *repositories.QuizRepository
	movieRepo *repositories.MovieRepository
	logger    zerolog.Logger
}

// NewQuizService creates a new QuizService
func NewQuizService(quizRepo *repositories.QuizRepository, movieRepo *repositories.MovieRepository, logger zerolog.Logger) QuizService {
	return &quizServiceImpl{
		quizRepo:  quizRepo,
		movieRepo: movieRepo,
		logger:    logger,
	}
}

// GetQuestions returns the static ordered question list
func (s *quizServiceImpl) GetQuestions(ctx context.Context) []models.QuizQuestion {
	return s.quizRepo.List()
}

// Recommend filters the catalog by the mapped genre answer and returns the
// first entries in catalog order. The result is deterministic: no ranking,
// no shuffling. Mood and time answers do not influence the outcome in this
// design. An empty filter result falls back to the entire catalog.
func (s *quizServiceImpl) Recommend(ctx context.Context, answers dto.QuizAnswers) []models.Movie {
	catalog := s.movieRepo.List()
	recommended := catalog

	if genres, ok := genreMap[answers.Genre]; ok {
		filtered := make([]models.Movie, 0)
		for _, movie := range catalog {
			if movie.HasAnyGenre(genres) {
				filtered = append(filtered, movie)
			}
		}
		if len(filtered) > 0 {
			recommended = filtered
		}
	}

	if len(recommended) > maxRecommendations {
		recommended = recommended[:maxRecommendations]
	}

	s.logger.Debug().Str("genre", answers.Genre).Int("count", len(recommended)).Msg("Quiz recommendations computed")
	return recommended
}

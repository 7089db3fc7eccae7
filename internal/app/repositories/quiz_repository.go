package repositories

import (
	"sync"

	"github.com/cinehive/cinehive/internal/app/models"
)

// QuizRepository holds the static ordered quiz question list
type QuizRepository struct {
	mu        sync.RWMutex
	questions []models.QuizQuestion
}

// NewQuizRepository creates an empty QuizRepository
func NewQuizRepository() *QuizRepository {
	return &QuizRepository{}
}

// SetQuestions replaces the question list. Only the seeder calls this.
func (r *QuizRepository) SetQuestions(questions []models.QuizQuestion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questions = append([]models.QuizQuestion(nil), questions...)
}

// List returns the questions in their fixed order
func (r *QuizRepository) List() []models.QuizQuestion {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.QuizQuestion(nil), r.questions...)
}

package repositories

import (
	"sync"

	"github.com/cinehive/cinehive/internal/app/models"
	"github.com/cinehive/cinehive/internal/pkg/apperrors"
)

// CommentRepository holds all comments across posts in insertion order
type CommentRepository struct {
	mu       sync.RWMutex
	comments []*models.Comment
	byID     map[string]*models.Comment
}

// NewCommentRepository creates an empty CommentRepository
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		byID: make(map[string]*models.Comment),
	}
}

// Insert appends a new comment
func (r *CommentRepository) Insert(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[comment.ID]; ok {
		return apperrors.NewConflictError("duplicate comment id")
	}
	stored := *comment
	r.comments = append(r.comments, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

// ListByPost returns the comments of one post in insertion order
func (r *CommentRepository) ListByPost(postID string) []models.Comment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Comment, 0)
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out
}

package repositories

import (
	"sync"

	"github.com/cinehive/cinehive/internal/app/models"
	"github.com/cinehive/cinehive/internal/pkg/apperrors"
)

// PostRepository holds all posts across communities in insertion order
type PostRepository struct {
	mu    sync.RWMutex
	posts []*models.Post
	byID  map[string]*models.Post
}

// NewPostRepository creates an empty PostRepository
func NewPostRepository() *PostRepository {
	return &PostRepository{
		byID: make(map[string]*models.Post),
	}
}

// Insert appends a new post
func (r *PostRepository) Insert(post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[post.ID]; ok {
		return apperrors.NewConflictError("duplicate post id")
	}
	stored := *post
	r.posts = append(r.posts, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

// ListByCommunity returns the posts of one community in insertion order
func (r *PostRepository) ListByCommunity(communityID string) []models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Post, 0)
	for _, p := range r.posts {
		if p.CommunityID == communityID {
			out = append(out, *p)
		}
	}
	return out
}

// FindByID returns the post with the given id
func (r *PostRepository) FindByID(id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	clone := *post
	return &clone, nil
}

// IncrementCommentCount adds one to the post's comment counter. It reports
// whether a matching post existed; an unknown id is a silent no-op so the
// caller can still keep the comment.
func (r *PostRepository) IncrementCommentCount(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.byID[id]
	if !ok {
		return false
	}
	post.CommentCount++
	return true
}

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

// PostService defines the interface for post and comment operations
type PostService interface {
	GetPostsByCommunity(ctx context.Context, communityID string) []models.Post
	CreatePost(ctx context.Context, communityID, userID string, req *dto.CreatePostRequest) (*models.Post, error)
	GetCommentsByPost(ctx context.Context, postID string) []models.Comment
	CreateComment(ctx context.Context, postID, userID string, req *dto.CreateCommentRequest) (*models.Comment, error)
}

// postServiceImpl implements PostService
type postServiceImpl struct {
	postRepo    *repositories.PostRepository
	commentRepo *repositories.CommentRepository
	userRepo    *repositories.UserRepository
	logger      zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(postRepo *repositories.PostRepository, commentRepo *repositories.CommentRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) PostService {
	return &postServiceImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetPostsByCommunity returns the posts of one community in insertion order
func (s *postServiceImpl) GetPostsByCommunity(ctx context.Context, communityID string) []models.Post {
	return s.postRepo.ListByCommunity(communityID)
}

// CreatePost creates a post with zeroed counters and author fields
// snapshotted from the acting user. Community membership is not required
// for posting; the community id is taken as given.
func (s *postServiceImpl) CreatePost(ctx context.Context, communityID, userID string, req *dto.CreatePostRequest) (*models.Post, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:             uuid.New().String(),
		Title:          req.Title,
		Content:        req.Content,
		Author:         user.ID,
		AuthorUsername: user.Username,
		CommunityID:    communityID,
		CreatedAt:      time.Now().UTC(),
		Upvotes:        0,
		Downvotes:      0,
		CommentCount:   0,
	}

	if err := s.postRepo.Insert(post); err != nil {
		return nil, err
	}

	s.logger.Info().Str("postID", post.ID).Str("communityID", communityID).Str("userID", userID).Msg("Post created")
	return post, nil
}

// GetCommentsByPost returns the comments of one post in insertion order
func (s *postServiceImpl) GetCommentsByPost(ctx context.Context, postID string) []models.Comment {
	return s.commentRepo.ListByPost(postID)
}

// CreateComment creates a comment and bumps the matching post's comment
// counter. A comment referencing an unknown post id is still created; only
// the counter update becomes a no-op.
func (s *postServiceImpl) CreateComment(ctx context.Context, postID, userID string, req *dto.CreateCommentRequest) (*models.Comment, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:             uuid.New().String(),
		PostID:         postID,
		Content:        req.Content,
		Author:         user.ID,
		AuthorUsername: user.Username,
		CreatedAt:      time.Now().UTC(),
		Upvotes:        0,
		Downvotes:      0,
	}

	if err := s.commentRepo.Insert(comment); err != nil {
		return nil, err
	}

	if !s.postRepo.IncrementCommentCount(postID) {
		s.logger.Warn().Str("postID", postID).Str("commentID", comment.ID).Msg("Comment created for unknown post, count not updated")
	}

	return comment, nil
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cinehive/cinehive/internal/app/models/dto"
	"github.com/cinehive/cinehive/internal/app/services"
	"github.com/cinehive/cinehive/internal/middleware"
	"github.com/cinehive/cinehive/internal/pkg/apperrors"
)

// PostController handles community posts and their comments
type PostController struct {
	postService services.PostService
	logger      zerolog.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService, logger zerolog.Logger) *PostController {
	return &PostController{
		postService: postService,
		logger:      logger,
	}
}

// GetCommunityPosts lists the posts of one community
// @Summary List community posts
// @Tags posts
// @Produce json
// @Param id path string true "Community ID"
// @Success 200 {array} models.Post
// @Router /communities/{id}/posts [get]
func (c *PostController) GetCommunityPosts(ctx *gin.Context) {
	posts := c.postService.GetPostsByCommunity(ctx.Request.Context(), ctx.Param("id"))
	ctx.JSON(http.StatusOK, posts)
}

// CreatePost creates a post in a community
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Community ID"
// @Param request body dto.CreatePostRequest true "Post content"
// @Success 201 {object} models.Post
// @Failure 401 {object} dto.ErrorResponse "Missing token"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Security BearerAuth
// @Router /communities/{id}/posts [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid post payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	post, err := c.postService.CreatePost(ctx.Request.Context(), ctx.Param("id"), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// GetPostComments lists the comments of one post
// @Summary List post comments
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {array} models.Comment
// @Router /posts/{id}/comments [get]
func (c *PostController) GetPostComments(ctx *gin.Context) {
	comments := c.postService.GetCommentsByPost(ctx.Request.Context(), ctx.Param("id"))
	ctx.JSON(http.StatusOK, comments)
}

// CreateComment adds a comment to a post
// @Summary Create a comment
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} models.Comment
// @Failure 401 {object} dto.ErrorResponse "Missing token"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Security BearerAuth
// @Router /posts/{id}/comments [post]
func (c *PostController) CreateComment(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid comment payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	comment, err := c.postService.CreateComment(ctx.Request.Context(), ctx.Param("id"), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

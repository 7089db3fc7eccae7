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

// CommunityController handles community listing and membership
type CommunityController struct {
	communityService services.CommunityService
	logger           zerolog.Logger
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService services.CommunityService, logger zerolog.Logger) *CommunityController {
	return &CommunityController{
		communityService: communityService,
		logger:           logger,
	}
}

// GetAllCommunities lists all communities
// @Summary List communities
// @Tags communities
// @Produce json
// @Success 200 {array} models.Community
// @Router /communities [get]
func (c *CommunityController) GetAllCommunities(ctx *gin.Context) {
	communities := c.communityService.GetAllCommunities(ctx.Request.Context())
	ctx.JSON(http.StatusOK, communities)
}

// GetCommunityByID returns one community
// @Summary Get a community
// @Tags communities
// @Produce json
// @Param id path string true "Community ID"
// @Success 200 {object} models.Community
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Router /communities/{id} [get]
func (c *CommunityController) GetCommunityByID(ctx *gin.Context) {
	community, err := c.communityService.GetCommunityByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, community)
}

// JoinCommunity adds the authenticated user to a community
// @Summary Join a community
// @Tags communities
// @Produce json
// @Param id path string true "Community ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse "Missing token"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Security BearerAuth
// @Router /communities/{id}/join [post]
func (c *CommunityController) JoinCommunity(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	if err := c.communityService.JoinCommunity(ctx.Request.Context(), ctx.Param("id"), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Joined community successfully"})
}

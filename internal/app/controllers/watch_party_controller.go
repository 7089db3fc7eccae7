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

// WatchPartyController handles scheduled group viewing events
type WatchPartyController struct {
	watchPartyService services.WatchPartyService
	logger            zerolog.Logger
}

// NewWatchPartyController creates a new WatchPartyController
func NewWatchPartyController(watchPartyService services.WatchPartyService, logger zerolog.Logger) *WatchPartyController {
	return &WatchPartyController{
		watchPartyService: watchPartyService,
		logger:            logger,
	}
}

// GetAllWatchParties lists watch parties, optionally filtered by status
// @Summary List watch parties
// @Tags watch-parties
// @Produce json
// @Param status query string false "Filter by derived status" Enums(upcoming, past)
// @Success 200 {array} models.WatchParty
// @Router /watch-parties [get]
func (c *WatchPartyController) GetAllWatchParties(ctx *gin.Context) {
	parties := c.watchPartyService.GetAllWatchParties(ctx.Request.Context(), ctx.Query("status"))
	ctx.JSON(http.StatusOK, parties)
}

// CreateWatchParty schedules a new watch party; the creator auto-joins
// @Summary Create a watch party
// @Tags watch-parties
// @Accept json
// @Produce json
// @Param request body dto.CreateWatchPartyRequest true "Watch party fields"
// @Success 201 {object} models.WatchParty
// @Failure 401 {object} dto.ErrorResponse "Missing token"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Security BearerAuth
// @Router /watch-parties [post]
func (c *WatchPartyController) CreateWatchParty(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	var req dto.CreateWatchPartyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid watch party payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	party, err := c.watchPartyService.CreateWatchParty(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, party)
}

// JoinWatchParty adds the authenticated user to a watch party
// @Summary Join a watch party
// @Tags watch-parties
// @Produce json
// @Param id path string true "Watch party ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Watch party is full"
// @Failure 401 {object} dto.ErrorResponse "Missing token"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Failure 404 {object} dto.ErrorResponse "Watch party not found"
// @Security BearerAuth
// @Router /watch-parties/{id}/join [post]
func (c *WatchPartyController) JoinWatchParty(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return
	}

	if err := c.watchPartyService.JoinWatchParty(ctx.Request.Context(), ctx.Param("id"), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Joined watch party successfully"})
}

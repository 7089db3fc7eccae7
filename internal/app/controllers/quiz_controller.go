package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cinehive/cinehive/internal/app/models/dto"
	"github.com/cinehive/cinehive/internal/app/services"
)

// QuizController handles the recommendation quiz
type QuizController struct {
	quizService services.QuizService
	logger      zerolog.Logger
}

// NewQuizController creates a new QuizController
func NewQuizController(quizService services.QuizService, logger zerolog.Logger) *QuizController {
	return &QuizController{
		quizService: quizService,
		logger:      logger,
	}
}

// GetQuestions lists the static quiz questions
// @Summary List quiz questions
// @Tags quiz
// @Produce json
// @Success 200 {array} models.QuizQuestion
// @Router /quiz/questions [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	questions := c.quizService.GetQuestions(ctx.Request.Context())
	ctx.JSON(http.StatusOK, questions)
}

// GetRecommendations maps quiz answers to at most 3 catalog movies
// @Summary Get movie recommendations
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.RecommendationRequest true "Quiz answers"
// @Success 200 {array} models.Movie "At most 3 movies in catalog order"
// @Failure 400 {object} dto.ErrorResponse "Malformed payload"
// @Router /quiz/recommendations [post]
func (c *QuizController) GetRecommendations(ctx *gin.Context) {
	var req dto.RecommendationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid recommendation request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	movies := c.quizService.Recommend(ctx.Request.Context(), req.Answers)
	ctx.JSON(http.StatusOK, movies)
}

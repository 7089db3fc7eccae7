package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinehive/cinehive/internal/app/services"
	"github.com/cinehive/cinehive/internal/middleware"
)

// MovieController handles catalog lookups. The catalog is read-only.
type MovieController struct {
	movieService services.MovieService
}

// NewMovieController creates a new MovieController
func NewMovieController(movieService services.MovieService) *MovieController {
	return &MovieController{movieService: movieService}
}

// GetAllMovies lists the full catalog
// @Summary List movies
// @Tags movies
// @Produce json
// @Success 200 {array} models.Movie
// @Router /movies [get]
func (c *MovieController) GetAllMovies(ctx *gin.Context) {
	movies := c.movieService.GetAllMovies(ctx.Request.Context())
	ctx.JSON(http.StatusOK, movies)
}

// GetMovieByID returns one catalog entry
// @Summary Get a movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 404 {object} dto.ErrorResponse "Movie not found"
// @Router /movies/{id} [get]
func (c *MovieController) GetMovieByID(ctx *gin.Context) {
	movie, err := c.movieService.GetMovieByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movie)
}

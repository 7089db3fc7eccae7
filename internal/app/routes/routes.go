package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cinehive/cinehive/internal/app/controllers"
	"github.com/cinehive/cinehive/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	movieController *controllers.MovieController,
	quizController *controllers.QuizController,
	communityController *controllers.CommunityController,
	postController *controllers.PostController,
	watchPartyController *controllers.WatchPartyController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API group
	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public Movie catalog routes ---
	movies := api.Group("/movies")
	{
		movies.GET("", movieController.GetAllMovies)
		movies.GET("/:id", movieController.GetMovieByID)
	}

	// --- Public Quiz routes ---
	quiz := api.Group("/quiz")
	{
		quiz.GET("/questions", quizController.GetQuestions)
		quiz.POST("/recommendations", quizController.GetRecommendations)
	}

	// --- Community routes ---
	communities := api.Group("/communities")
	{
		communities.GET("", communityController.GetAllCommunities)
		communities.GET("/:id", communityController.GetCommunityByID)
		communities.GET("/:id/posts", postController.GetCommunityPosts)

		// Routes that require a valid session token
		communitiesProtected := communities.Group("")
		communitiesProtected.Use(authMiddleware.RequireAuth())
		{
			communitiesProtected.POST("/:id/join", communityController.JoinCommunity)
			communitiesProtected.POST("/:id/posts", postController.CreatePost)
		}
	}

	// --- Post comment routes ---
	posts := api.Group("/posts")
	{
		posts.GET("/:id/comments", postController.GetPostComments)

		postsProtected := posts.Group("")
		postsProtected.Use(authMiddleware.RequireAuth())
		{
			postsProtected.POST("/:id/comments", postController.CreateComment)
		}
	}

	// --- Watch party routes ---
	watchParties := api.Group("/watch-parties")
	{
		watchParties.GET("", watchPartyController.GetAllWatchParties)

		watchPartiesProtected := watchParties.Group("")
		watchPartiesProtected.Use(authMiddleware.RequireAuth())
		{
			watchPartiesProtected.POST("", watchPartyController.CreateWatchParty)
			watchPartiesProtected.POST("/:id/join", watchPartyController.JoinWatchParty)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

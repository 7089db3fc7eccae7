// Package bootstrap wires the application together: configuration, logging,
// the in-memory store with its seed data, dependency construction, and the
// Gin engine with its middleware chain.
package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	appControllers "github.com/cinehive/cinehive/internal/app/controllers"
	appRepos "github.com/cinehive/cinehive/internal/app/repositories"
	appRoutes "github.com/cinehive/cinehive/internal/app/routes"
	appServices "github.com/cinehive/cinehive/internal/app/services"
	"github.com/cinehive/cinehive/internal/config"
	appMiddleware "github.com/cinehive/cinehive/internal/middleware"
	pkgAuth "github.com/cinehive/cinehive/internal/pkg/auth"
	"github.com/cinehive/cinehive/internal/pkg/logger"
	"github.com/cinehive/cinehive/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	MovieService         appServices.MovieService
	QuizService          appServices.QuizService
	CommunityService     appServices.CommunityService
	PostService          appServices.PostService
	WatchPartyService    appServices.WatchPartyService
	AuthController       *appControllers.AuthController
	MovieController      *appControllers.MovieController
	QuizController       *appControllers.QuizController
	CommunityController  *appControllers.CommunityController
	PostController       *appControllers.PostController
	WatchPartyController *appControllers.WatchPartyController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore creates the in-memory repositories and loads the seed dataset.
func SetupStore(lgr zerolog.Logger) (*appRepos.Repositories, error) {
	repos := appRepos.NewRepositories()

	if err := seed.Load(repos, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to load seed data")
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}

	return repos, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(repos.UserRepository, deps.JWTService, lgr)
	deps.MovieService = appServices.NewMovieService(repos.MovieRepository)
	deps.QuizService = appServices.NewQuizService(repos.QuizRepository, repos.MovieRepository, lgr)
	deps.CommunityService = appServices.NewCommunityService(repos.CommunityRepository, repos.UserRepository, lgr)
	deps.PostService = appServices.NewPostService(repos.PostRepository, repos.CommentRepository, repos.UserRepository, lgr)
	deps.WatchPartyService = appServices.NewWatchPartyService(repos.WatchPartyRepository, repos.UserRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.MovieController = appControllers.NewMovieController(deps.MovieService)
	deps.QuizController = appControllers.NewQuizController(deps.QuizService, lgr)
	deps.CommunityController = appControllers.NewCommunityController(deps.CommunityService, lgr)
	deps.PostController = appControllers.NewPostController(deps.PostService, lgr)
	deps.WatchPartyController = appControllers.NewWatchPartyController(deps.WatchPartyService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.Use(appMiddleware.SecurityHeaders())
	router.Use(appMiddleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(appMiddleware.RateLimit(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.MovieController,
		deps.QuizController,
		deps.CommunityController,
		deps.PostController,
		deps.WatchPartyController,
		deps.AuthMiddleware,
	)

	return router
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cinehive/cinehive/internal/app/models"
	"github.com/cinehive/cinehive/internal/app/models/dto"
	"github.com/cinehive/cinehive/internal/app/repositories"
	"github.com/cinehive/cinehive/internal/pkg/apperrors"
	"github.com/cinehive/cinehive/internal/pkg/auth"
)

// avatarURLTemplate derives a deterministic avatar from the username
const avatarURLTemplate = "https://api.dicebear.com/7.x/avataaars/svg?seed=%s"

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new user account and issues a session token. Username
// and email must be unused; matching is case-sensitive exact, as the
// uniqueness contract only holds at registration time.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:                uuid.New().String(),
		Username:          req.Username,
		Email:             req.Email,
		Password:          hashed,
		Avatar:            fmt.Sprintf(avatarURLTemplate, req.Username),
		FavoriteGenres:    []string{},
		JoinedCommunities: []string{},
	}

	if err := s.userRepo.Insert(user); err != nil {
		s.logger.Warn().Err(err).Str("username", req.Username).Msg("Registration rejected")
		return nil, apperrors.NewCustomError(err, "Username or email already in use")
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info().Str("userID", user.ID).Str("username", user.Username).Msg("User registered")

	return &dto.AuthResponse{
		Token: token,
		User:  publicProjection(user),
	}, nil
}

// Login authenticates by email and password and issues a session token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid email or password")
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid email or password")
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info().Str("userID", user.ID).Msg("User logged in")

	return &dto.AuthResponse{
		Token: token,
		User:  publicProjection(user),
	}, nil
}

// publicProjection strips the user down to its public fields. The password
// hash never leaves the service layer.
func publicProjection(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Avatar:   user.Avatar,
	}
}

package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinehive/cinehive/internal/app/models/dto"
	"github.com/cinehive/cinehive/internal/app/repositories"
	"github.com/cinehive/cinehive/internal/pkg/apperrors"
	"github.com/cinehive/cinehive/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (AuthService, *repositories.UserRepository, *auth.JWTService) {
	t.Helper()
	userRepo := repositories.NewUserRepository()
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenIssuer: "cinehive.test"})
	return NewAuthService(userRepo, jwtService, zerolog.Nop()), userRepo, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, jwtService := newTestAuthService(t)

	resp, err := service.Register(context.Background(), &dto.RegisterRequest{
		Username: "newuser",
		Email:    "new@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "newuser", resp.User.Username)
	assert.Equal(t, "new@example.com", resp.User.Email)
	assert.Contains(t, resp.User.Avatar, "seed=newuser")

	// The issued token must resolve back to the new account
	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	// The stored password is a hash, not the plaintext
	stored, err := userRepo.FindByID(resp.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "secret123"))
	assert.Empty(t, stored.FavoriteGenres)
	assert.Empty(t, stored.JoinedCommunities)
}

func TestRegisterDuplicate(t *testing.T) {
	service, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &dto.RegisterRequest{
		Username: "newuser", Email: "new@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Register(ctx, &dto.RegisterRequest{
		Username: "newuser", Email: "other@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserExists)
	assert.EqualError(t, err, "Username or email already in use")

	_, err = service.Register(ctx, &dto.RegisterRequest{
		Username: "otheruser", Email: "new@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserExists)
}

func TestLogin(t *testing.T) {
	service, _, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, &dto.RegisterRequest{
		Username: "newuser", Email: "new@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	resp, err := service.Login(ctx, &dto.LoginRequest{
		Email: "new@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, registered.User.ID, resp.User.ID)
}

func TestLoginBadCredentials(t *testing.T) {
	service, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &dto.RegisterRequest{
		Username: "newuser", Email: "new@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	// Wrong password and unknown email collapse into the same error
	_, err = service.Login(ctx, &dto.LoginRequest{Email: "new@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.EqualError(t, err, "Invalid email or password")

	_, err = service.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.EqualError(t, err, "Invalid email or password")
}

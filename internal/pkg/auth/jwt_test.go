package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinehive/cinehive/internal/app/models"
)

func newTestJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenIssuer: "cinehive.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestJWTService()
	user := &models.User{ID: "42", Username: "moviebuff123"}

	token, err := service.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "moviebuff123", claims.Username)
	assert.Equal(t, "cinehive.test", claims.Issuer)
	// Sessions never expire, the claim must stay unset
	assert.Nil(t, claims.ExpiresAt)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	service := newTestJWTService()
	user := &models.User{ID: "42", Username: "moviebuff123"}

	token, err := service.GenerateToken(user)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret"})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	service := newTestJWTService()

	_, err := service.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// Anything but the Bearer scheme is rejected
	for _, header := range []string{"", "abc.def.ghi", "Basic abc", "Bearer ", "bearer abc"} {
		_, err = ExtractBearerToken(header)
		assert.ErrorIs(t, err, ErrInvalidFormat, "header %q", header)
	}
}

package server

import (
	"testing"

	"github.com/jonathan/brand-auditor/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET", secret)
	cfg, err := config.NewJWTConfig()
	require.NoError(t, err)
	return NewJWTService(cfg)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestJWTService(t, "test-secret-for-jwt-service")

	token, err := service.GenerateToken("audit-pipeline")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "audit-pipeline", claims.ClientID)
	assert.Equal(t, "audit-pipeline", claims.GetClientID())
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	service := newTestJWTService(t, "first-secret")
	token, err := service.GenerateToken("audit-pipeline")
	require.NoError(t, err)

	other := newTestJWTService(t, "second-secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	service := newTestJWTService(t, "test-secret-for-jwt-service")

	_, err := service.ValidateToken("not.a.jwt")
	assert.Error(t, err)

	_, err = service.ValidateToken("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := newTestJWTService(t, "test-secret-for-jwt-service")
	token, err := service.GenerateToken("design-review-bot")
	require.NoError(t, err)

	validator := service.AsTokenValidator()
	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "design-review-bot", claims.GetClientID())
}

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonathan/brand-auditor/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientSecret = "correct-horse-battery-staple"

// setupAuthHandler configures credential and JWT services from test env vars
func setupAuthHandler(t *testing.T) (*AuthHandler, *JWTService) {
	t.Helper()

	passwordConfig, err := config.NewPasswordConfig()
	require.NoError(t, err)

	hash, err := passwordConfig.HashPassword(testClientSecret)
	require.NoError(t, err)

	t.Setenv("AUDIT_CLIENT_ID", "audit-pipeline")
	t.Setenv("AUDIT_CLIENT_SECRET_HASH", hash)
	t.Setenv("JWT_SECRET", "test-jwt-secret-with-enough-entropy")

	credentials, err := NewCredentialService(passwordConfig)
	require.NoError(t, err)

	jwtConfig, err := config.NewJWTConfig()
	require.NoError(t, err)
	jwtService := NewJWTService(jwtConfig)

	return NewAuthHandler(credentials, jwtService), jwtService
}

func TestIssueToken_ValidCredentials(t *testing.T) {
	handler, jwtService := setupAuthHandler(t)

	body := `{"client_id": "audit-pipeline", "client_secret": "` + testClientSecret + `"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.IssueToken(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp TokenResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	require.NotEmpty(t, resp.Token)

	// Issued token round-trips through validation
	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "audit-pipeline", claims.ClientID)
}

func TestIssueToken_WrongSecret(t *testing.T) {
	handler, _ := setupAuthHandler(t)

	body := `{"client_id": "audit-pipeline", "client_secret": "wrong-secret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	handler.IssueToken(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid client id or secret")
}

func TestIssueToken_WrongClientID(t *testing.T) {
	handler, _ := setupAuthHandler(t)

	body := `{"client_id": "someone-else", "client_secret": "` + testClientSecret + `"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	handler.IssueToken(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIssueToken_MissingFields(t *testing.T) {
	handler, _ := setupAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewBufferString(`{"client_id": "audit-pipeline"}`))
	w := httptest.NewRecorder()

	handler.IssueToken(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation error")
}

func TestIssueToken_InvalidJSON(t *testing.T) {
	handler, _ := setupAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewBufferString("{invalid json}"))
	w := httptest.NewRecorder()

	handler.IssueToken(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewCredentialService_MissingEnv(t *testing.T) {
	passwordConfig, err := config.NewPasswordConfig()
	require.NoError(t, err)

	t.Setenv("AUDIT_CLIENT_ID", "")
	t.Setenv("AUDIT_CLIENT_SECRET_HASH", "")

	_, err = NewCredentialService(passwordConfig)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUDIT_CLIENT_ID")

	t.Setenv("AUDIT_CLIENT_ID", "audit-pipeline")
	_, err = NewCredentialService(passwordConfig)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUDIT_CLIENT_SECRET_HASH")
}

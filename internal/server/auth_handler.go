// Package server provides the HTTP REST API for the brand auditor.
package server

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/brand-auditor/internal/config"
)

// CredentialService verifies service client credentials against the
// bcrypt-hashed secret configured in the environment.
type CredentialService struct {
	clientID       string
	secretHash     string
	passwordConfig *config.PasswordConfig
}

// NewCredentialService creates a CredentialService from environment configuration.
// It reads AUDIT_CLIENT_ID and AUDIT_CLIENT_SECRET_HASH (a bcrypt hash of the
// client secret, produced with the same BCRYPT_COST / PASSWORD_PEPPER settings).
func NewCredentialService(passwordConfig *config.PasswordConfig) (*CredentialService, error) {
	clientID := os.Getenv("AUDIT_CLIENT_ID")
	if clientID == "" {
		return nil, fmt.Errorf("AUDIT_CLIENT_ID is required but not set")
	}

	secretHash := os.Getenv("AUDIT_CLIENT_SECRET_HASH")
	if secretHash == "" {
		return nil, fmt.Errorf("AUDIT_CLIENT_SECRET_HASH is required but not set")
	}

	return &CredentialService{
		clientID:       clientID,
		secretHash:     secretHash,
		passwordConfig: passwordConfig,
	}, nil
}

// Verify checks the presented client credentials.
// Both checks always run so a wrong client ID costs the same as a wrong secret.
func (s *CredentialService) Verify(clientID, clientSecret string) error {
	idMatch := subtle.ConstantTimeCompare([]byte(clientID), []byte(s.clientID)) == 1
	secretMatch := s.passwordConfig.VerifyPassword(clientSecret, s.secretHash)

	if !idMatch || !secretMatch {
		return &ErrInvalidCredentials{}
	}
	return nil
}

// TokenRequest is the payload for POST /auth/token.
type TokenRequest struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	credentials *CredentialService
	jwtService  *JWTService
	validator   *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(credentials *CredentialService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		jwtService:  jwtService,
		validator:   validator.New(),
	}
}

// IssueToken handles token issuance requests.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		validationErrors := extractValidationErrors(err)
		http.Error(w, validationErrors, http.StatusBadRequest)
		return
	}

	if err := h.credentials.Verify(req.ClientID, req.ClientSecret); err != nil {
		status := HTTPStatus(err)
		http.Error(w, err.Error(), status)
		return
	}

	token, err := h.jwtService.GenerateToken(req.ClientID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	response := TokenResponse{
		Token:     token,
		TokenType: "Bearer",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log error but response already sent
		return
	}
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}

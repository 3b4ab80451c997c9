package config

import (
	"os"
	"testing"
)

func setJWTEnv(t *testing.T, secret, expiration string) {
	t.Helper()
	if secret != "" {
		os.Setenv("JWT_SECRET", secret)
	} else {
		os.Unsetenv("JWT_SECRET")
	}
	if expiration != "" {
		os.Setenv("JWT_EXPIRATION_HOURS", expiration)
	} else {
		os.Unsetenv("JWT_EXPIRATION_HOURS")
	}
	t.Cleanup(func() {
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("JWT_EXPIRATION_HOURS")
	})
}

func TestNewJWTConfig_Defaults(t *testing.T) {
	setJWTEnv(t, "audit-signing-secret", "")

	cfg, err := NewJWTConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Secret != "audit-signing-secret" {
		t.Errorf("Secret = %q, want %q", cfg.Secret, "audit-signing-secret")
	}
	if cfg.ExpirationHours != 24 {
		t.Errorf("ExpirationHours = %d, want 24", cfg.ExpirationHours)
	}
}

func TestNewJWTConfig_CustomExpiration(t *testing.T) {
	tests := []struct {
		name       string
		expiration string
		wantHours  int
		wantErr    bool
	}{
		{name: "one hour", expiration: "1", wantHours: 1},
		{name: "one week", expiration: "168", wantHours: 168},
		{name: "zero hours", expiration: "0", wantErr: true},
		{name: "negative hours", expiration: "-5", wantErr: true},
		{name: "non-numeric", expiration: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setJWTEnv(t, "audit-signing-secret", tt.expiration)

			cfg, err := NewJWTConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.ExpirationHours != tt.wantHours {
				t.Errorf("ExpirationHours = %d, want %d", cfg.ExpirationHours, tt.wantHours)
			}
		})
	}
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	setJWTEnv(t, "", "24")

	if _, err := NewJWTConfig(); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset")
	}
}

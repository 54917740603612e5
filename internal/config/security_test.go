package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
)

func TestLoadSecurityConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "security.yaml")
	content := `
security:
  auth:
    min_password_length: 10
    weak_passwords:
      - password123
  jwt:
    secret_env: JWT_SECRET
    expiry_hours: 12
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSecurityConfig(path)
	if err != nil {
		t.Fatalf("LoadSecurityConfig err=%v", err)
	}
	if cfg.Security.Auth.MinPasswordLength != 10 {
		t.Errorf("MinPasswordLength=%d", cfg.Security.Auth.MinPasswordLength)
	}
	if cfg.GetJWTExpiryHours() != 12 {
		t.Errorf("ExpiryHours=%d", cfg.GetJWTExpiryHours())
	}
	if cfg.GetJWTSecretEnv() != "JWT_SECRET" {
		t.Errorf("SecretEnv=%q", cfg.GetJWTSecretEnv())
	}
}

func TestLoadSecurityConfig_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			name: "password length too small",
			content: `
security:
  auth:
    min_password_length: 4
  jwt:
    secret_env: JWT_SECRET
    expiry_hours: 12
`,
		},
		{
			name: "missing secret env",
			content: `
security:
  auth:
    min_password_length: 8
  jwt:
    expiry_hours: 12
`,
		},
		{
			name:    "malformed yaml",
			content: "security: [",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadSecurityConfig(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSecurityConfig_ValidatePassword(t *testing.T) {
	cfg := DefaultSecurityConfig()

	tests := []struct {
		name     string
		password string
		username string
		wantErr  bool
	}{
		{"valid", "correct horse battery", "alice", false},
		{"too short", "short", "alice", true},
		{"contains username", "alice-rules-99", "alice", true},
		{"common password", "12345678", "alice", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.ValidatePassword(tt.password, tt.username)
			if tt.wantErr {
				var ve *entity.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("err=%v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidatePassword err=%v", err)
			}
		})
	}
}

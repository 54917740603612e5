// Package config loads application configuration files.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Davidxap/ai-powered-blog-platform/internal/domain/entity"
)

// SecurityConfig represents security configuration.
type SecurityConfig struct {
	Security struct {
		Auth struct {
			MinPasswordLength int      `yaml:"min_password_length"`
			WeakPasswords     []string `yaml:"weak_passwords"`
		} `yaml:"auth"`
		JWT struct {
			SecretEnv   string `yaml:"secret_env"`
			ExpiryHours int    `yaml:"expiry_hours"`
		} `yaml:"jwt"`
	} `yaml:"security"`
}

// DefaultSecurityConfig returns the configuration used when no file is given.
func DefaultSecurityConfig() *SecurityConfig {
	var cfg SecurityConfig
	cfg.Security.Auth.MinPasswordLength = 8
	cfg.Security.Auth.WeakPasswords = []string{
		"password", "12345678", "qwertyui", "letmein1",
	}
	cfg.Security.JWT.SecretEnv = "JWT_SECRET"
	cfg.Security.JWT.ExpiryHours = 24
	return &cfg
}

// LoadSecurityConfig loads security configuration from a YAML file.
// The path parameter is expected to come from a trusted source (command-line argument or hardcoded default).
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// validateSecurityConfig validates the loaded configuration.
func validateSecurityConfig(config *SecurityConfig) error {
	if config.Security.Auth.MinPasswordLength < 8 {
		return fmt.Errorf("min_password_length must be at least 8")
	}
	if config.Security.JWT.SecretEnv == "" {
		return fmt.Errorf("jwt secret_env is required")
	}
	if config.Security.JWT.ExpiryHours <= 0 {
		return fmt.Errorf("jwt expiry_hours must be positive")
	}
	return nil
}

// GetJWTSecretEnv returns the environment variable name for the JWT secret.
func (c *SecurityConfig) GetJWTSecretEnv() string {
	return c.Security.JWT.SecretEnv
}

// GetJWTExpiryHours returns the JWT expiry time in hours.
func (c *SecurityConfig) GetJWTExpiryHours() int {
	return c.Security.JWT.ExpiryHours
}

// ValidatePassword checks a candidate password against the configured policy.
// Implements the user service's PasswordPolicy interface.
func (c *SecurityConfig) ValidatePassword(password, username string) error {
	if len(password) < c.Security.Auth.MinPasswordLength {
		return &entity.ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", c.Security.Auth.MinPasswordLength),
		}
	}
	lower := strings.ToLower(password)
	if username != "" && strings.Contains(lower, strings.ToLower(username)) {
		return &entity.ValidationError{Field: "password", Message: "cannot contain the username"}
	}
	for _, weak := range c.Security.Auth.WeakPasswords {
		if lower == weak {
			return &entity.ValidationError{Field: "password", Message: "is too common"}
		}
	}
	return nil
}

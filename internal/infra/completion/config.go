package completion

import (
	"fmt"
	"time"

	"github.com/Davidxap/ai-powered-blog-platform/pkg/config"
)

// Config holds configuration parameters for article completion clients.
// Configuration is loaded from environment variables with fallback to defaults.
type Config struct {
	// APIKey authenticates against the completion provider.
	APIKey string

	// Model is the provider model identifier used for article generation.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Temperature controls sampling randomness for generation.
	Temperature float32

	// Timeout is the maximum duration for a single completion API call.
	// Long-form article generation needs a generous ceiling.
	Timeout time.Duration

	// BaseURL overrides the provider endpoint. Empty uses the provider
	// default; set in tests to point at a local server.
	BaseURL string
}

// Validate checks the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api key cannot be empty")
	}
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature out of range [0, 2], got %g", c.Temperature)
	}
	if err := config.ValidateDurationRange(c.Timeout, time.Second, 10*time.Minute); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}

// LoadConfig loads completion configuration from environment variables.
//
// Environment variables:
//   - OPENAI_API_KEY: provider API key (required)
//   - COMPLETION_MODEL: model identifier (default: gpt-4o-mini)
//   - COMPLETION_MAX_TOKENS: response token ceiling (default: 3000)
//   - COMPLETION_TEMPERATURE: sampling temperature (default: 0.7)
//   - COMPLETION_TIMEOUT: per-call timeout (default: 120s)
//   - COMPLETION_BASE_URL: endpoint override (default: provider default)
func LoadConfig(apiKeyEnv string) (*Config, error) {
	cfg := &Config{
		APIKey:      config.GetEnvString(apiKeyEnv, ""),
		Model:       config.GetEnvString("COMPLETION_MODEL", "gpt-4o-mini"),
		MaxTokens:   config.GetEnvInt("COMPLETION_MAX_TOKENS", 3000),
		Temperature: float32(config.GetEnvFloat("COMPLETION_TEMPERATURE", 0.7)),
		Timeout:     config.GetEnvDuration("COMPLETION_TIMEOUT", 120*time.Second),
		BaseURL:     config.GetEnvString("COMPLETION_BASE_URL", ""),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid completion configuration: %w", err)
	}
	return cfg, nil
}

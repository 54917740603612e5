package search

import (
	"fmt"
	"time"

	"github.com/Davidxap/ai-powered-blog-platform/pkg/config"
)

// Config holds configuration parameters for the ValueSerp search client.
// Configuration is loaded from environment variables with fallback to defaults.
type Config struct {
	// APIKey authenticates requests against the ValueSerp API.
	// Loaded from VALUESERP_API_KEY. An empty key disables enrichment.
	APIKey string

	// Endpoint is the search API base URL. Overridable for testing.
	Endpoint string

	// Timeout is the maximum duration for a single search API call.
	Timeout time.Duration

	// ResultLimit is the number of organic results requested per search.
	ResultLimit int
}

// Validate checks the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}
	if err := config.ValidatePositiveDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if c.ResultLimit <= 0 {
		return fmt.Errorf("result limit must be positive, got %d", c.ResultLimit)
	}
	return nil
}

// LoadConfig loads search configuration from environment variables.
//
// Environment variables:
//   - VALUESERP_API_KEY: API key (empty disables enrichment)
//   - VALUESERP_ENDPOINT: API base URL (default: https://api.valueserp.com/search)
//   - SEARCH_TIMEOUT: per-call timeout (default: 10s)
//   - SEARCH_RESULT_LIMIT: organic results per query (default: 5)
func LoadConfig() (*Config, error) {
	cfg := &Config{
		APIKey:      config.GetEnvString("VALUESERP_API_KEY", ""),
		Endpoint:    config.GetEnvString("VALUESERP_ENDPOINT", "https://api.valueserp.com/search"),
		Timeout:     config.GetEnvDuration("SEARCH_TIMEOUT", 10*time.Second),
		ResultLimit: config.GetEnvInt("SEARCH_RESULT_LIMIT", 5),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search configuration: %w", err)
	}
	return cfg, nil
}

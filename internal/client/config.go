package client

import (
	"net/http"
	"time"

	"github.com/yildizm/AirdropSim/internal/config"
)

// AnalyzePath is appended to the base URL for every analysis request
const AnalyzePath = "/api/analyze"

// Config holds client settings
type Config struct {
	// BaseURL is the root address of the analysis service
	BaseURL string

	// Timeout for HTTP requests; zero means no timeout
	Timeout time.Duration

	// Language is sent with the request when non-empty
	Language string

	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// FromAppConfig builds a client config from the application configuration
func FromAppConfig(cfg *config.Config) *Config {
	return &Config{
		BaseURL:  cfg.API.BaseURL,
		Timeout:  cfg.API.Timeout,
		Language: cfg.API.Language,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return newError(ErrTypeConfiguration, "base URL is required (set api.base_url or AIRDROPSIM_API_URL)", nil)
	}
	if c.Timeout < 0 {
		return newError(ErrTypeConfiguration, "timeout must be non-negative", nil)
	}
	return nil
}

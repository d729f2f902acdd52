// Package config provides environment-based configuration for the CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dmfonseca/itjobs-cli/internal/fetch"
	"github.com/dmfonseca/itjobs-cli/internal/itjobs"
	"github.com/dmfonseca/itjobs-cli/internal/teamlyzer"
)

// Environment variable names. A .env file in the working directory is
// loaded by main before config is read.
const (
	EnvAPIKey         = "ITJOBS_API_KEY"
	EnvAPIBaseURL     = "ITJOBS_API_URL"
	EnvTeamlyzerURL   = "TEAMLYZER_URL"
	EnvTimeoutSeconds = "HTTP_TIMEOUT_SECONDS"
)

// Config holds everything the commands need to reach the outside world.
type Config struct {
	APIKey         string `validate:"required"`
	APIBaseURL     string `validate:"required,url"`
	TeamlyzerURL   string `validate:"required,url"`
	TimeoutSeconds int    `validate:"gte=1,lte=120"`
}

// Load reads configuration from the environment, applies defaults and
// validates the result. A missing API key is the one unrecoverable case:
// every command needs it before any network activity.
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:         os.Getenv(EnvAPIKey),
		APIBaseURL:     envOrDefault(EnvAPIBaseURL, itjobs.DefaultBaseURL),
		TeamlyzerURL:   envOrDefault(EnvTeamlyzerURL, teamlyzer.DefaultBaseURL),
		TimeoutSeconds: int(fetch.DefaultTimeout / time.Second),
	}

	if raw := os.Getenv(EnvTimeoutSeconds); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvTimeoutSeconds, raw, err)
		}
		cfg.TimeoutSeconds = seconds
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// FetchOptions builds the fetch options every client shares.
func (c *Config) FetchOptions() *fetch.Options {
	opts := fetch.DefaultOptions()
	opts.Timeout = c.Timeout()
	return opts
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL = "http://localhost:8080/api"
	defaultTimeout = 12 * time.Second
)

type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
}

// Load reads configuration from the environment, with an optional .env
// file filling in what the environment does not set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:     defaultBaseURL,
		HTTPTimeout: defaultTimeout,
	}

	if url := os.Getenv("CINEMA_API_URL"); url != "" {
		cfg.BaseURL = url
	}

	if raw := os.Getenv("CINEMA_HTTP_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: invalid CINEMA_HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = timeout
	}

	return cfg, nil
}

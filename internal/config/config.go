package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// GeniusConfig represents configuration for the Genius API client
type GeniusConfig struct {
	APIKey  string        `json:"-"`
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout"`

	// Requests per second; zero disables limiting
	RateLimit float64 `json:"rate_limit"`
	RateBurst int     `json:"rate_burst"`
}

// Config holds all configuration for the application
type Config struct {
	// Application settings
	Port            string        `envconfig:"PORT" default:"8080"`
	GinMode         string        `envconfig:"GIN_MODE" default:"debug"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`

	// Genius credentials and client tuning
	GeniusAPIKey    string        `envconfig:"GENIUS_API_KEY" required:"true"`
	GeniusBaseURL   string        `envconfig:"GENIUS_BASE_URL" default:"https://api.genius.com"`
	GeniusTimeout   time.Duration `envconfig:"GENIUS_TIMEOUT" default:"10s"`
	GeniusRateLimit float64       `envconfig:"GENIUS_RATE_LIMIT" default:"5"`
	GeniusRateBurst int           `envconfig:"GENIUS_RATE_BURST" default:"5"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks values envconfig cannot express through tags
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GeniusAPIKey) == "" {
		return fmt.Errorf("GENIUS_API_KEY cannot be empty")
	}
	if c.GeniusBaseURL == "" {
		return fmt.Errorf("GENIUS_BASE_URL is required")
	}
	if c.GeniusTimeout <= 0 {
		return fmt.Errorf("GENIUS_TIMEOUT must be positive, got %s", c.GeniusTimeout)
	}
	if c.GeniusRateLimit < 0 {
		return fmt.Errorf("GENIUS_RATE_LIMIT cannot be negative")
	}
	if c.GeniusRateLimit > 0 && c.GeniusRateBurst < 1 {
		return fmt.Errorf("GENIUS_RATE_BURST must be >= 1 when rate limiting is enabled")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// Genius returns the client configuration for the Genius API
func (c *Config) Genius() GeniusConfig {
	return GeniusConfig{
		APIKey:    c.GeniusAPIKey,
		BaseURL:   strings.TrimRight(c.GeniusBaseURL, "/"),
		Timeout:   c.GeniusTimeout,
		RateLimit: c.GeniusRateLimit,
		RateBurst: c.GeniusRateBurst,
	}
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

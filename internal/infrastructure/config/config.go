package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Guest     GuestConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Shell     ShellConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8090"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// GuestConfig holds guest backend configuration.
type GuestConfig struct {
	Address string `envconfig:"GUEST_ADDR" default:"http://localhost:5000"`
	Enabled bool   `envconfig:"GUEST_ENABLED" default:"true"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// ShellConfig holds desktop shell configuration. The window fields are the
// default geometry for open requests that carry none.
type ShellConfig struct {
	SeedPath     string `envconfig:"SHELL_SEED_PATH" default:""`
	LocalePath   string `envconfig:"SHELL_LOCALE_PATH" default:""`
	Locale       string `envconfig:"SHELL_LOCALE" default:"en"`
	WindowX      int    `envconfig:"SHELL_WINDOW_X" default:"120"`
	WindowY      int    `envconfig:"SHELL_WINDOW_Y" default:"80"`
	WindowWidth  int    `envconfig:"SHELL_WINDOW_WIDTH" default:"720"`
	WindowHeight int    `envconfig:"SHELL_WINDOW_HEIGHT" default:"480"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8090",
			Host: "0.0.0.0",
		},
		Guest: GuestConfig{
			Address: "http://localhost:5000",
			Enabled: true,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Shell: ShellConfig{
			Locale:       "en",
			WindowX:      120,
			WindowY:      80,
			WindowWidth:  720,
			WindowHeight: 480,
		},
	}
}

// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/trip-planner/travel-planner/internal/infrastructure/logger"
	"github.com/trip-planner/travel-planner/internal/usecase"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Search  SearchConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"35s"`
}

// SearchConfig holds settings for the external search API.
type SearchConfig struct {
	TavilyAPIKey   string        `env:"TAVILY_API_KEY"`
	TavilyBaseURL  string        `env:"TAVILY_BASE_URL" envDefault:"https://api.tavily.com"`
	Timeout        time.Duration `env:"SEARCH_TIMEOUT" envDefault:"30s"`
	MaxAttractions int           `env:"SEARCH_MAX_ATTRACTIONS" envDefault:"10"`
	MaxHotels      int           `env:"SEARCH_MAX_HOTELS" envDefault:"5"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"travel-planner"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Search.TavilyAPIKey = strings.TrimSpace(cfg.Search.TavilyAPIKey)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Search.TavilyAPIKey == "" {
		return fmt.Errorf("TAVILY_API_KEY is required")
	}
	if cfg.Search.TavilyBaseURL == "" {
		return fmt.Errorf("TAVILY_BASE_URL must not be empty")
	}
	if cfg.Search.Timeout <= 0 {
		return fmt.Errorf("SEARCH_TIMEOUT must be positive")
	}
	if cfg.Search.MaxAttractions < 1 || cfg.Search.MaxAttractions > usecase.MaxResultsLimit {
		return fmt.Errorf("SEARCH_MAX_ATTRACTIONS must be between 1 and %d, got %d", usecase.MaxResultsLimit, cfg.Search.MaxAttractions)
	}
	if cfg.Search.MaxHotels < 1 || cfg.Search.MaxHotels > usecase.MaxResultsLimit {
		return fmt.Errorf("SEARCH_MAX_HOTELS must be between 1 and %d, got %d", usecase.MaxResultsLimit, cfg.Search.MaxHotels)
	}

	// A server that stops writing before the search gives up would drop every slow response.
	if cfg.Server.WriteTimeout <= cfg.Search.Timeout {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT (%s) should be greater than SEARCH_TIMEOUT (%s)",
			cfg.Server.WriteTimeout, cfg.Search.Timeout)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// LoggerConfig returns the logger configuration derived from the logging and app settings.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:        c.Logging.Level,
		Format:       c.Logging.Format,
		EnableCaller: c.Logging.Caller,
		ServiceName:  c.App.ServiceName,
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

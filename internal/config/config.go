// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on
	Env  string // development, staging, production

	// Festivals
	FestivalsFile string // Optional YAML or TOML file with extra festivals
	FestivalHook  string // default, none

	// Limits
	MaxRangeDays int // Longest range a single request may resolve

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Festival hook choices
const (
	HookDefault = "default"
	HookNone    = "none"
)

// MaxRangeLimit caps MAX_RANGE_DAYS.
const MaxRangeLimit = 366

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}

	// Server settings
	cfg.Port = getEnvInt("PORT", 8080)
	cfg.Env = getEnv("ENV", EnvDevelopment)

	// Festivals
	cfg.FestivalsFile = getEnv("FESTIVALS_FILE", "")
	cfg.FestivalHook = strings.ToLower(getEnv("FESTIVAL_HOOK", HookDefault))

	// Limits
	cfg.MaxRangeDays = getEnvInt("MAX_RANGE_DAYS", 90)

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	switch c.FestivalHook {
	case HookDefault, HookNone:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("FESTIVAL_HOOK must be one of: default, none; got %q", c.FestivalHook))
	}

	if c.FestivalsFile != "" {
		switch strings.ToLower(filepath.Ext(c.FestivalsFile)) {
		case ".yaml", ".yml", ".toml":
			// Valid
		default:
			errs = append(errs, fmt.Errorf("FESTIVALS_FILE must be a .yaml, .yml or .toml file; got %q", c.FestivalsFile))
		}
	}

	if c.MaxRangeDays < 1 || c.MaxRangeDays > MaxRangeLimit {
		errs = append(errs, fmt.Errorf("MAX_RANGE_DAYS must be between 1 and %d, got %d", MaxRangeLimit, c.MaxRangeDays))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

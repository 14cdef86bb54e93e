// Package config loads and validates process configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names read at startup.
const (
	EnvServiceURL = "OPEN_AI_SERVICE_URL"
	EnvServiceKey = "OPEN_AI_SERVICE_KEY"
	EnvDeployment = "OPEN_AI_DEPLOYMENT"
	EnvAPIVersion = "OPEN_AI_API_VERSION"
)

// Defaults applied by Normalize.
const (
	DefaultDeployment  = "gpt-4"
	DefaultAPIVersion  = "2023-03-15-preview"
	DefaultTimeout     = 5 * time.Minute
	DefaultTypingDelay = 20 * time.Millisecond
)

// Config holds all runtime configuration.
type Config struct {
	// Remote endpoint, from the environment.
	Endpoint   string
	APIKey     string
	Deployment string
	APIVersion string

	// Command-line flags.
	PIIFile     string
	MQFile      string
	SourcesFile string
	Timeout     time.Duration
	TypingDelay time.Duration
	NoColor     bool
	Verbose     bool
}

// Error is a fatal startup configuration failure.
type Error struct {
	Missing string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s is not set", e.Missing)
}

// FromEnv loads a .env file if present and reads the environment into a
// Config. Flags and defaults are merged by the caller.
func FromEnv() Config {
	_ = godotenv.Load()
	return Config{
		Endpoint:   strings.TrimSpace(os.Getenv(EnvServiceURL)),
		APIKey:     strings.TrimSpace(os.Getenv(EnvServiceKey)),
		Deployment: strings.TrimSpace(os.Getenv(EnvDeployment)),
		APIVersion: strings.TrimSpace(os.Getenv(EnvAPIVersion)),
	}
}

// Normalize trims values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.Deployment = strings.TrimSpace(cfg.Deployment)
	cfg.APIVersion = strings.TrimSpace(cfg.APIVersion)

	if cfg.Deployment == "" {
		cfg.Deployment = DefaultDeployment
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.Timeout < 0 {
		cfg.Timeout = 0
	}
	if cfg.TypingDelay < 0 {
		cfg.TypingDelay = 0
	}
	return cfg
}

// Validate reports the first missing required value as a *Error.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return &Error{Missing: EnvServiceURL}
	}
	if c.APIKey == "" {
		return &Error{Missing: EnvServiceKey}
	}
	return nil
}

// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// TransportType represents the MCP transport type.
type TransportType string

const (
	// TransportStdio uses stdin/stdout for communication.
	TransportStdio TransportType = "stdio"
	// TransportHTTP uses the streamable HTTP transport.
	TransportHTTP TransportType = "streamable-http"
)

// Defaults.
const (
	DefaultPort         = 8080
	DefaultPollInterval = 200 * time.Millisecond
	DefaultWaitTimeout  = 5 * time.Second
)

// Config holds the configuration for the server and CLI.
type Config struct {
	Transport      TransportType
	Port           int
	LogLevel       string
	PollInterval   time.Duration
	DefaultTimeout time.Duration
}

// Load reads an optional .env file from the working directory, then the
// UIA_MCP_* environment variables. Variables already set in the process
// environment take precedence over .env entries.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from UIA_MCP_* environment variables only.
func FromEnv() (*Config, error) {
	port, err := getEnvAsInt("UIA_MCP_PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	interval, err := getEnvAsDuration("UIA_MCP_POLL_INTERVAL", DefaultPollInterval)
	if err != nil {
		return nil, err
	}
	timeout, err := getEnvAsDuration("UIA_MCP_DEFAULT_TIMEOUT", DefaultWaitTimeout)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Transport:      TransportType(getEnv("UIA_MCP_TRANSPORT", string(TransportStdio))),
		Port:           port,
		LogLevel:       getEnv("UIA_MCP_LOG_LEVEL", "info"),
		PollInterval:   interval,
		DefaultTimeout: timeout,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Transport != TransportStdio && c.Transport != TransportHTTP {
		return fmt.Errorf("invalid transport type: %s (must be 'stdio' or 'streamable-http')", c.Transport)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	if c.DefaultTimeout < 0 {
		return fmt.Errorf("default timeout must not be negative, got %s", c.DefaultTimeout)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q (expected integer)", key, value)
	}
	return result, nil
}

// getEnvAsDuration accepts Go durations ("250ms") or bare milliseconds ("250").
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q (expected duration)", key, value)
	}
	return d, nil
}

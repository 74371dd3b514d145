// Package config provides configuration loading and validation for the
// server and CLI, sourced from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the process-wide settings. DatabaseURL is required for any
// command that touches persistence; everything else has a usable default.
type Config struct {
	Port        int
	DatabaseURL string
	RedisURL    string
	CORSOrigin  string
}

// Load builds a Config from environment variables. It reads PORT (default
// 8080), DATABASE_URL, REDIS_URL (optional), and CORS_ORIGIN (default "*").
func Load() (*Config, error) {
	cfg := &Config{
		Port:        8080,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		CORSOrigin:  "*",
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		cfg.CORSOrigin = origin
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	return nil
}

// RequireDatabase returns an error when no database URL is configured.
// Commands that can run without persistence skip this check.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	return nil
}

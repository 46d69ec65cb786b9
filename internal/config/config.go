// Package config provides environment-driven configuration for the
// careers API server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ServerConfig holds the server and store configuration.
//
// Backing selection: DATABASE_URL picks PostgreSQL, otherwise
// CAREERS_DB_PATH picks SQLite, otherwise the store lives in process
// memory. SIMULATED_LATENCY_MS enables the artificial per-operation delay
// and should stay at its zero default outside demos and tests.
type ServerConfig struct {
	Port        int
	DatabaseURL string
	SQLitePath  string
	SeedFile    string
	LatencyUnit time.Duration
}

// NewServerConfig builds a ServerConfig from the environment.
func NewServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Port:        8080,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  os.Getenv("CAREERS_DB_PATH"),
		SeedFile:    os.Getenv("SEED_FILE"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if msStr := os.Getenv("SIMULATED_LATENCY_MS"); msStr != "" {
		ms, err := strconv.Atoi(msStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SIMULATED_LATENCY_MS: %v", err)
		}
		cfg.LatencyUnit = time.Duration(ms) * time.Millisecond
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.LatencyUnit < 0 {
		return fmt.Errorf("SIMULATED_LATENCY_MS must be non-negative")
	}
	return nil
}

// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/tabularium/internal/validation"
)

// Config is the full application configuration, assembled from defaults, an
// optional YAML file, and environment variables (highest priority).
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	// Host is the bind address. Default 0.0.0.0.
	Host string `koanf:"host" validate:"required"`

	// Port is the TCP port to listen on. Default 8080.
	Port int `koanf:"port" validate:"min=1,max=65535"`

	// ReadTimeout bounds how long reading a request may take.
	ReadTimeout time.Duration `koanf:"read_timeout" validate:"min=1s"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=1s"`
}

// APIConfig controls pagination and the synthetic data set.
type APIConfig struct {
	// DefaultPageSize applies when the archive list request omits ?size.
	DefaultPageSize int `koanf:"default_page_size" validate:"min=1"`

	// ArchiveCount is the size of the full synthetic archive population.
	// The list endpoint always reports this as the total.
	ArchiveCount int `koanf:"archive_count" validate:"min=1"`
}

// SecurityConfig controls CORS and rate limiting. There is no credential
// material here: accounts are fixed development mocks owned by the auth
// package.
type SecurityConfig struct {
	// CORSOrigins lists allowed origins. The mock serves arbitrary local
	// frontends, so the default is the wildcard.
	CORSOrigins []string `koanf:"cors_origins" validate:"min=1"`

	// RateLimitRequests and RateLimitWindow bound requests per client IP on
	// the auth endpoints. Generous by default; a dev dashboard polls hard.
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"min=1s"`

	// RateLimitDisabled turns rate limiting off entirely.
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`
}

// LoggingConfig controls the zerolog setup.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the assembled configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

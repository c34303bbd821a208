// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

// Package config loads and validates the application configuration via Koanf
// v2 with layered sources: built-in defaults, an optional YAML file, and
// TABULARIUM_-prefixed environment variables (highest priority).
package config

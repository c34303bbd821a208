// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package api

import (
	"github.com/tomtom215/tabularium/internal/auth"
	"github.com/tomtom215/tabularium/internal/config"
)

// apiVersion is reported by the root and test endpoints.
const apiVersion = "1.0.0"

// Handler carries the shared state behind every endpoint: configuration, the
// static user directory, and the mutable session store. The synthetic archive
// population is regenerated per request from mockdata, so it is not held here.
type Handler struct {
	cfg       *config.Config
	directory *auth.Directory
	sessions  *auth.SessionStore
}

// NewHandler creates a Handler with the given configuration and auth state.
func NewHandler(cfg *config.Config, directory *auth.Directory, sessions *auth.SessionStore) *Handler {
	return &Handler{
		cfg:       cfg,
		directory: directory,
		sessions:  sessions,
	}
}

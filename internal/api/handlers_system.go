// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package api

import (
	"net/http"

	"github.com/tomtom215/tabularium/internal/models"
)

// The root, health, test and status endpoints predate the envelope and keep
// their original bare shapes; the frontend health checks parse them literally.

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.RootStatus{
		Message:   "Archive Management System Backend is running successfully!",
		Timestamp: timestamp(),
		Version:   apiVersion,
	})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.HealthStatus{
		Status:    "UP",
		Service:   "archive-management",
		Timestamp: timestamp(),
	})
}

// APITest handles GET /api/test, a connectivity probe for the frontend dev
// proxy.
func (h *Handler) APITest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.TestStatus{
		Message:   "Backend API connection successful!",
		Timestamp: timestamp(),
		Version:   apiVersion,
	})
}

// APIStatus handles GET /api/status.
func (h *Handler) APIStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.BackendStatus{
		Backend:  "running",
		Database: "mock-memory",
		Port:     h.cfg.Server.Port,
		Language: "go",
	})
}

// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/tabularium/internal/models"
)

// Fallback handles every request without a dedicated route, wired into both
// the router's NotFound and MethodNotAllowed hooks. The method decides the
// shape: POST bodies are acknowledged and echoed, naked OPTIONS get a bare
// 200 with the CORS grant, and everything else gets the not-found envelope -
// at HTTP 200, like any other logical failure.
func (h *Handler) Fallback(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.Echo(w, r)
	case http.MethodOptions:
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.WriteHeader(http.StatusOK)
	default:
		writeJSON(w, r, http.StatusOK, models.Envelope{
			Success:   false,
			Error:     "Not Found",
			Message:   fmt.Sprintf("Endpoint %s not found", r.URL.Path),
			Timestamp: timestamp(),
		})
	}
}

// Echo acknowledges a POST to an unrouted path, returning the parsed body.
// The body is decoded before anything else so malformed JSON still yields the
// 400 it would get on a real endpoint; an absent body echoes an empty object.
func (h *Handler) Echo(w http.ResponseWriter, r *http.Request) {
	var data any = map[string]any{}
	if err := decodeBody(r, &data); err != nil {
		respondFailure(w, r, http.StatusBadRequest, "Invalid JSON")
		return
	}

	writeJSON(w, r, http.StatusOK, models.EchoResponse{
		Success:      true,
		Message:      "data received",
		ReceivedData: data,
		Timestamp:    timestamp(),
	})
}

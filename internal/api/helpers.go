// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package api

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tabularium/internal/logging"
	"github.com/tomtom215/tabularium/internal/models"
)

// timestamp returns the wall clock in RFC 3339, the format every response
// body uses.
func timestamp() string {
	return time.Now().Format(time.RFC3339)
}

// writeJSON serializes payload with the given status code. Marshal failures
// are logged and swallowed; by the time they could occur the status line has
// not been written, but there is nothing useful to tell the client.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal response")
		http.Error(w, `{"success":false}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write response")
	}
}

// respondData writes a success envelope with a data payload.
func respondData(w http.ResponseWriter, r *http.Request, message string, data any) {
	writeJSON(w, r, http.StatusOK, models.Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: timestamp(),
	})
}

// respondFailure writes a success=false envelope. Logical failures keep
// status 200; only malformed JSON (400) and failed login (401) pass a
// different code.
func respondFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, models.Envelope{
		Success:   false,
		Message:   message,
		Timestamp: timestamp(),
	})
}

// decodeBody reads the full request body and unmarshals it into dst. An empty
// or whitespace-only body leaves dst at its zero value and is not an error;
// the auth stubs accept bodyless POSTs. A non-empty body that is not valid
// JSON returns ErrMalformedBody, the only condition mapped to HTTP 400.
func decodeBody(r *http.Request, dst any) error {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return ErrMalformedBody
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return ErrMalformedBody
	}
	return nil
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Missing header, wrong scheme, and empty token all return
// ErrNoBearerToken.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", ErrNoBearerToken
	}
	return token, nil
}

// queryInt parses a query parameter as an integer, falling back to def when
// absent or unparseable.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

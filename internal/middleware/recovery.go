// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tabularium/internal/logging"
	"github.com/tomtom215/tabularium/internal/models"
)

// RecoverEnvelope converts a handler panic into an HTTP 200 envelope with
// success=false and the panic message in the body. One bad request must never
// take down the listener, and the frontend consumes failures from the
// envelope rather than the status code, so the recovery response follows the
// same contract as every other logical failure.
func RecoverEnvelope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// The transport layer aborted on purpose; re-raise.
				panic(rec)
			}

			logging.Ctx(r.Context()).Error().
				Str("path", r.URL.Path).
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("Handler panic recovered")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			body, err := json.Marshal(models.Envelope{
				Success:   false,
				Message:   fmt.Sprint(rec),
				Timestamp: time.Now().Format(time.RFC3339),
			})
			if err != nil {
				return
			}
			if _, err := w.Write(body); err != nil {
				logging.Error().Err(err).Msg("Failed to write recovery response")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

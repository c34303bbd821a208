// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

// Package middleware provides the HTTP middleware stack shared by every
// route: request-ID tracking, Prometheus instrumentation, and panic recovery
// that degrades to the API's success=false envelope instead of a 500.
//
// CORS and rate limiting are not here; they come from the go-chi ecosystem
// (go-chi/cors, go-chi/httprate) and are wired directly in the router.
package middleware

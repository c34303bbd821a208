// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

// Package api implements the HTTP surface of the mock backend: the Chi
// router, the endpoint handlers, and the echo/not-found fallback.
//
// The surface follows the frontend's existing contract rather than REST
// convention. Logical failures are HTTP 200 with success=false in the
// envelope; only malformed JSON (400) and failed login (401) use the status
// code. A handful of early endpoints (root, health, test, status, captcha)
// keep their pre-envelope bare shapes.
package api

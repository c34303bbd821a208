// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package api

import "errors"

var (
	// ErrNoBearerToken indicates a missing or malformed Authorization header.
	ErrNoBearerToken = errors.New("missing bearer token")

	// ErrMalformedBody indicates a non-empty request body that is not JSON.
	ErrMalformedBody = errors.New("invalid JSON body")
)

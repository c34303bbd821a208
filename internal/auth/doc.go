// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

// Package auth owns the two stores behind the mock login flow: the static
// user Directory seeded at startup, and the mutex-guarded SessionStore that
// maps opaque UUID tokens to live logins.
//
// Token lifecycle per token: absent -> active (login) -> absent (logout).
// There is no expiry and no refresh; sessions live until logout or process
// exit. Both stores are handed to the API handler at construction time - no
// package-level globals.
package auth

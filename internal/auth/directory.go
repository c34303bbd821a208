// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package auth

import (
	"errors"

	"github.com/tomtom215/tabularium/internal/models"
)

// Directory errors.
var (
	// ErrInvalidCredentials indicates an unknown username or a password mismatch.
	// Both cases collapse into one error so the response cannot be used to
	// probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserNotFound indicates a username with no directory entry.
	ErrUserNotFound = errors.New("user not found")
)

// Directory is the static username -> user map. It is seeded once at
// construction and read-only afterwards, so it needs no locking.
type Directory struct {
	users map[string]models.UserRecord
}

// NewDirectory creates a directory seeded with the fixed development accounts:
// admin/admin123 (full permissions) and user/user123 (read/write).
//
// Credentials are plaintext on purpose; the directory exists so the frontend
// login flow has something to authenticate against during development.
func NewDirectory() *Directory {
	return &Directory{
		users: map[string]models.UserRecord{
			"admin": {
				ID:          "1",
				Username:    "admin",
				Password:    "admin123",
				Name:        "System Administrator",
				Email:       "admin@example.com",
				Role:        "admin",
				Avatar:      "",
				Permissions: []string{"*"},
				Status:      "active",
				CreatedAt:   "2024-01-01T00:00:00",
				UpdatedAt:   "2024-01-01T00:00:00",
			},
			"user": {
				ID:          "2",
				Username:    "user",
				Password:    "user123",
				Name:        "Regular User",
				Email:       "user@example.com",
				Role:        "user",
				Avatar:      "",
				Permissions: []string{"read", "write"},
				Status:      "active",
				CreatedAt:   "2024-01-01T00:00:00",
				UpdatedAt:   "2024-01-01T00:00:00",
			},
		},
	}
}

// Lookup returns the directory entry for username.
func (d *Directory) Lookup(username string) (models.UserRecord, error) {
	user, ok := d.users[username]
	if !ok {
		return models.UserRecord{}, ErrUserNotFound
	}
	return user, nil
}

// Authenticate verifies a username/password pair with a plain string compare
// and returns the matching record. Unknown usernames and wrong passwords both
// return ErrInvalidCredentials.
func (d *Directory) Authenticate(username, password string) (models.UserRecord, error) {
	user, ok := d.users[username]
	if !ok || user.Password != password {
		return models.UserRecord{}, ErrInvalidCredentials
	}
	return user, nil
}

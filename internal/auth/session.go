// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/tabularium/internal/models"
)

// ErrSessionNotFound indicates a token with no live session.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore is the in-memory token -> session map. It is the only mutable
// state in the process: login inserts, logout deletes, and the current-user
// lookup reads. All three can race across connections, so every access holds
// the mutex.
//
// Sessions have no expiry. A token stays valid until it is logged out or the
// process exits; that lifetime is part of the mock's contract.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]models.Session),
	}
}

// Create mints a fresh UUIDv4 token, records a session for username, and
// returns it. Tokens are opaque; nothing about the user is derivable from one.
func (s *SessionStore) Create(username string) models.Session {
	session := models.Session{
		Token:     uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}

// Resolve returns the session for token, or ErrSessionNotFound.
func (s *SessionStore) Resolve(token string) (models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return session, nil
}

// Delete removes the session for token. Deleting an unknown token is a
// silent no-op; logout must succeed whether or not a session existed.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

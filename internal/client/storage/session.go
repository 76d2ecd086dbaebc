// Package storage определяет клиентское хранилище сессии.
// После sign-in клиент держит токен и публичный профиль локально;
// сервер выданные токены не хранит.
package storage

import (
	"context"
	"errors"
)

// ErrSessionNotFound indicates that no session is stored (not signed in)
var ErrSessionNotFound = errors.New("session not found")

// SessionData represents a signed-in session: the bearer token and
// the public profile kept next to it for display purposes
type SessionData struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// SessionStorage defines interface for persisting the client session
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if not signed in
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (sign-out)
	// Returns ErrSessionNotFound if no session exists
	DeleteSession(ctx context.Context) error
}

package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrEntryNotFound indicates that journal entry was not found
	// or is not owned by the requesting user
	ErrEntryNotFound = errors.New("entry not found")
)

package storage

import (
	"context"

	"github.com/iudanet/photojournal/internal/models"
)

// EntryStorage defines interface for journal entry persistence.
// Every lookup and mutation is scoped by the owning user ID, so a
// request authenticated as one user can never touch another user's
// entries.
type EntryStorage interface {
	// CreateEntry inserts a new entry owned by userID
	// and returns it with the assigned ID and timestamps
	CreateEntry(ctx context.Context, userID int64, title, notes, photoURL string) (*models.Entry, error)

	// ListEntries retrieves all entries owned by userID
	// Returns empty slice if there are none
	ListEntries(ctx context.Context, userID int64) ([]*models.Entry, error)

	// GetEntry retrieves a single entry by ID scoped to its owner
	// Returns ErrEntryNotFound if entry doesn't exist or belongs to another user
	GetEntry(ctx context.Context, userID, entryID int64) (*models.Entry, error)

	// UpdateEntry replaces all mutable fields of an entry scoped to its owner
	// Returns the updated entry, or ErrEntryNotFound if entry doesn't exist
	// or belongs to another user
	UpdateEntry(ctx context.Context, userID, entryID int64, title, notes, photoURL string) (*models.Entry, error)

	// DeleteEntry removes an entry scoped to its owner
	// Returns ErrEntryNotFound if entry doesn't exist or belongs to another user
	DeleteEntry(ctx context.Context, userID, entryID int64) error
}

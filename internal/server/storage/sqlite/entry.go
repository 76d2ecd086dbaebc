package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/photojournal/internal/models"
	"github.com/iudanet/photojournal/internal/server/storage"
)

// CreateEntry inserts a new entry owned by userID
func (s *Storage) CreateEntry(ctx context.Context, userID int64, title, notes, photoURL string) (*models.Entry, error) {
	query := `
		INSERT INTO entries (user_id, title, notes, photo_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()

	result, err := s.db.ExecContext(ctx, query, userID, title, notes, photoURL, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}

	entryID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted entry id: %w", err)
	}

	return &models.Entry{
		EntryID:   entryID,
		UserID:    userID,
		Title:     title,
		Notes:     notes,
		PhotoURL:  photoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ListEntries retrieves all entries owned by userID
func (s *Storage) ListEntries(ctx context.Context, userID int64) ([]*models.Entry, error) {
	query := `
		SELECT entry_id, user_id, title, notes, photo_url, created_at, updated_at
		FROM entries
		WHERE user_id = ?
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanEntries(rows)
}

// GetEntry retrieves a single entry scoped by owner and entry ID.
// Обе части WHERE обязательны: запись другого пользователя
// неотличима от несуществующей.
func (s *Storage) GetEntry(ctx context.Context, userID, entryID int64) (*models.Entry, error) {
	query := `
		SELECT entry_id, user_id, title, notes, photo_url, created_at, updated_at
		FROM entries
		WHERE user_id = ? AND entry_id = ?
	`

	entry := &models.Entry{}

	err := s.db.QueryRowContext(ctx, query, userID, entryID).Scan(
		&entry.EntryID,
		&entry.UserID,
		&entry.Title,
		&entry.Notes,
		&entry.PhotoURL,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return entry, nil
}

// UpdateEntry replaces all mutable fields of an entry scoped to its owner
func (s *Storage) UpdateEntry(ctx context.Context, userID, entryID int64, title, notes, photoURL string) (*models.Entry, error) {
	query := `
		UPDATE entries
		SET title = ?, notes = ?, photo_url = ?, updated_at = ?
		WHERE user_id = ? AND entry_id = ?
	`

	result, err := s.db.ExecContext(ctx, query, title, notes, photoURL, time.Now().UTC(), userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return nil, storage.ErrEntryNotFound
	}

	// Перечитываем обновленную строку, чтобы вернуть актуальные timestamps
	return s.GetEntry(ctx, userID, entryID)
}

// DeleteEntry removes an entry scoped to its owner
func (s *Storage) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	query := `DELETE FROM entries WHERE user_id = ? AND entry_id = ?`

	result, err := s.db.ExecContext(ctx, query, userID, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrEntryNotFound
	}

	return nil
}

// scanEntries is a helper function to scan multiple entries from rows
func scanEntries(rows *sql.Rows) ([]*models.Entry, error) {
	entries := []*models.Entry{}

	for rows.Next() {
		entry := &models.Entry{}

		err := rows.Scan(
			&entry.EntryID,
			&entry.UserID,
			&entry.Title,
			&entry.Notes,
			&entry.PhotoURL,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

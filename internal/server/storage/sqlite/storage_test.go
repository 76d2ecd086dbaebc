package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestStorage creates a fresh storage backed by a temporary
// database file with migrations applied
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestNew_RunsMigrations(t *testing.T) {
	s := setupTestStorage(t)

	// После миграций обе таблицы существуют
	for _, table := range []string{"users", "entries"} {
		var name string
		err := s.DB().QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err)
		require.Equal(t, table, name)
	}
}

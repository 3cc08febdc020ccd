package library

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/marquee/internal/database"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(context.Background(), database.Config{
		Dialect: database.DialectSQLite,
		Path:    filepath.Join(t.TempDir(), "library.db"),
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewStore(db.DB, db.Dialect)

	// Each call advances one second so ordering by creation time is stable.
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return store
}

// seedOwner inserts a user row and returns its id.
func seedOwner(t *testing.T, store *Store) string {
	t.Helper()
	id := uuid.NewString()
	_, err := store.db.Exec(
		"INSERT INTO users (id, email, name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
		id, id+"@example.com", "Test", "x", time.Now().UTC(),
	)
	require.NoError(t, err)
	return id
}

func addTestEntry(t *testing.T, store *Store, e *Entry) *Entry {
	t.Helper()
	require.NoError(t, store.AddEntry(context.Background(), e))
	return e
}

// ptr is a helper to create pointer to value
func ptr[T any](v T) *T {
	return &v
}

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duiker-sh/duiker/internal/migrate"
)

// createTestStore opens a migrated store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "duiker.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	r, err := migrate.NewRunner(s.DB())
	require.NoError(t, err)
	_, err = migrate.Up(context.Background(), r, Migrations())
	require.NoError(t, err)
	return s
}

func TestOpen_CreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duiker.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_InvalidPath(t *testing.T) {
	_, err := Open("/nonexistent/dir/duiker.db")
	assert.Error(t, err)
}

func TestMigrations_CreateSchema(t *testing.T) {
	s := createTestStore(t)

	tables := []string{"history", "fts_history", "fts_history_terms", "migrations"}
	for _, table := range tables {
		var name string
		err := s.db.Get(&name,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		assert.NoError(t, err, "table %q missing", table)
	}
}

func TestMigrations_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duiker.db")
	ctx := context.Background()

	up := func() {
		s, err := Open(path)
		require.NoError(t, err)
		defer s.Close()
		r, err := migrate.NewRunner(s.DB())
		require.NoError(t, err)
		_, err = migrate.Up(ctx, r, Migrations())
		require.NoError(t, err)
	}

	// Bringing the schema up repeatedly must not reapply anything.
	up()
	up()

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var version int
	require.NoError(t, s.db.Get(&version, `PRAGMA user_version`))
	assert.Equal(t, 1, version)
}

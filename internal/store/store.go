package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Command is one indexed history record.
//
// Timestamp is Unix seconds: history lines carry second resolution at
// best, and integer timestamps keep the UNIQUE(timestamp, command)
// duplicate check exact.
type Command struct {
	ID        int64  `db:"id"`
	Timestamp int64  `db:"timestamp"`
	Command   string `db:"command"`
}

// Store wraps the history database connection.
type Store struct {
	db *sqlx.DB
}

// Open creates or opens the history database at the given path and applies
// the required pragmas. It does not run migrations; callers must bring the
// schema up to date via migrate.Up before using any history operation.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY between our own statements.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying connection for the migration runner and tests.
// Prefer Store methods for history access.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	return nil
}

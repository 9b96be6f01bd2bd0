package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Insert stores one history record and its full-text index entry.
//
// Both writes happen in one transaction: either the content row and its
// index row both land, or neither does. The schema replaces an exact
// (timestamp, command) duplicate with the new row; the stale index entry
// for the replaced row is removed in the same transaction so every content
// row keeps exactly one index row.
//
// Returns the stored record with its assigned id.
func (s *Store) Insert(ctx context.Context, timestamp time.Time, command string) (Command, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Command{}, fmt.Errorf("begin insert tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	epoch := timestamp.Unix()

	// UNIQUE ... ON CONFLICT REPLACE deletes the duplicate content row but
	// knows nothing about the index table; drop its entry by hand.
	var staleID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM history WHERE timestamp = ? AND command = ?`,
		epoch, command,
	).Scan(&staleID)
	switch {
	case err == nil:
		if _, err := tx.ExecContext(ctx, `DELETE FROM fts_history WHERE history_id = ?`, staleID); err != nil {
			return Command{}, fmt.Errorf("drop stale index entry: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		// First insert of this pair.
	default:
		return Command{}, fmt.Errorf("check duplicate: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO history (timestamp, command) VALUES (?, ?)`,
		epoch, command,
	)
	if err != nil {
		return Command{}, fmt.Errorf("insert history row: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return Command{}, fmt.Errorf("history row id: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO fts_history (history_id, command) VALUES (?, ?)`,
		id, command,
	); err != nil {
		return Command{}, fmt.Errorf("insert index entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Command{}, fmt.Errorf("commit insert tx: %w", err)
	}

	return Command{ID: id, Timestamp: epoch, Command: command}, nil
}

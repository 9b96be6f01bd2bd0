package store

import (
	"context"
	"fmt"
)

// Log returns all history records ordered by timestamp ascending.
func (s *Store) Log(ctx context.Context) ([]Command, error) {
	return s.selectCommands(ctx, `
		SELECT id, timestamp, command
		FROM history
		ORDER BY timestamp ASC, id ASC
	`)
}

// Head returns the first n records by timestamp.
func (s *Store) Head(ctx context.Context, n int) ([]Command, error) {
	return s.selectCommands(ctx, `
		SELECT id, timestamp, command
		FROM history
		ORDER BY timestamp ASC, id ASC
		LIMIT ?
	`, n)
}

// Tail returns the most recent n records, newest first.
func (s *Store) Tail(ctx context.Context, n int) ([]Command, error) {
	return s.selectCommands(ctx, `
		SELECT id, timestamp, command
		FROM history
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, n)
}

// Search returns the records whose command text matches the given SQLite
// full-text search expression, joining the index back to the content table
// by identity.
func (s *Store) Search(ctx context.Context, expr string) ([]Command, error) {
	return s.selectCommands(ctx, `
		SELECT history.id, history.timestamp, history.command
		FROM fts_history
		JOIN history ON fts_history.history_id = history.id
		WHERE fts_history MATCH ?
		ORDER BY history.timestamp ASC, history.id ASC
	`, expr)
}

func (s *Store) selectCommands(ctx context.Context, query string, args ...any) ([]Command, error) {
	var commands []Command
	if err := s.db.SelectContext(ctx, &commands, query, args...); err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return commands, nil
}

// Count returns the number of stored history records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM history`); err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return n, nil
}

// CommandCount is one entry of the frequent-commands ranking.
type CommandCount struct {
	Count   int64  `db:"frequency"`
	Command string `db:"command"`
}

// Stats holds aggregate counts over the history database. Read-only.
type Stats struct {
	Commands           int64
	UniqueCommands     int64
	IndexedTerms       int64
	UniqueIndexedTerms int64
	FrequentCommands   []CommandCount
}

// Stats reports aggregate counts, including term counts from the fts4aux
// term-inspection view.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats

	counts := []struct {
		dst   *int64
		query string
	}{
		{&stats.Commands, `SELECT COUNT(command) FROM history`},
		{&stats.UniqueCommands, `SELECT COUNT(DISTINCT command) FROM history`},
		{&stats.IndexedTerms, `SELECT COUNT(term) FROM fts_history_terms`},
		{&stats.UniqueIndexedTerms, `SELECT COUNT(DISTINCT term) FROM fts_history_terms`},
	}
	for _, c := range counts {
		if err := s.db.GetContext(ctx, c.dst, c.query); err != nil {
			return Stats{}, fmt.Errorf("stats count: %w", err)
		}
	}

	if err := s.db.SelectContext(ctx, &stats.FrequentCommands, `
		SELECT COUNT(*) AS frequency, command
		FROM history
		GROUP BY command
		ORDER BY frequency DESC, command ASC
		LIMIT 100
	`); err != nil {
		return Stats{}, fmt.Errorf("stats frequent commands: %w", err)
	}

	return stats, nil
}

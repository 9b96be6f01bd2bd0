package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_AssignsIDs(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	ts := time.Date(2001, 1, 1, 0, 0, 0, 0, time.Local)

	first, err := s.Insert(ctx, ts, "ls -la")
	require.NoError(t, err)
	second, err := s.Insert(ctx, ts, "git status")
	require.NoError(t, err)

	assert.Equal(t, ts.Unix(), first.Timestamp)
	assert.Equal(t, "ls -la", first.Command)
	assert.Greater(t, second.ID, first.ID)
}

func TestInsert_ContentIndexPairing(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, n := range []int{0, 1, 5, 25} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			s := createTestStore(t)
			for i := 0; i < n; i++ {
				_, err := s.Insert(ctx, base.Add(time.Duration(i)*time.Second), fmt.Sprintf("cmd-%d", i))
				require.NoError(t, err)
			}

			var contentRows, indexRows, joined int
			require.NoError(t, s.db.Get(&contentRows, `SELECT COUNT(*) FROM history`))
			require.NoError(t, s.db.Get(&indexRows, `SELECT COUNT(*) FROM fts_history`))
			require.NoError(t, s.db.Get(&joined, `
				SELECT COUNT(*)
				FROM fts_history
				JOIN history ON fts_history.history_id = history.id
			`))

			assert.Equal(t, n, contentRows)
			assert.Equal(t, n, indexRows)
			assert.Equal(t, n, joined)
		})
	}
}

func TestInsert_DuplicateReplaces(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	ts := time.Date(2001, 1, 1, 0, 0, 0, 0, time.Local)

	first, err := s.Insert(ctx, ts, "make test")
	require.NoError(t, err)
	second, err := s.Insert(ctx, ts, "make test")
	require.NoError(t, err)

	// Last write wins; ids are never reused.
	assert.Greater(t, second.ID, first.ID)

	var contentRows, indexRows int
	require.NoError(t, s.db.Get(&contentRows,
		`SELECT COUNT(*) FROM history WHERE timestamp = ? AND command = ?`, ts.Unix(), "make test"))
	require.NoError(t, s.db.Get(&indexRows, `SELECT COUNT(*) FROM fts_history`))
	assert.Equal(t, 1, contentRows)
	assert.Equal(t, 1, indexRows)

	// The surviving index row points at the surviving content row.
	var historyID int64
	require.NoError(t, s.db.Get(&historyID, `SELECT history_id FROM fts_history`))
	assert.Equal(t, second.ID, historyID)
}

func TestInsert_SameCommandDifferentTimestamps(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	ts := time.Date(2001, 1, 1, 0, 0, 0, 0, time.Local)

	_, err := s.Insert(ctx, ts, "make test")
	require.NoError(t, err)
	_, err = s.Insert(ctx, ts.Add(time.Minute), "make test")
	require.NoError(t, err)

	var contentRows int
	require.NoError(t, s.db.Get(&contentRows, `SELECT COUNT(*) FROM history`))
	assert.Equal(t, 2, contentRows)
}

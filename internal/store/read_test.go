package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedHistory inserts three commands a minute apart and returns them in
// timestamp order.
func seedHistory(t *testing.T, s *Store) []Command {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2001, 1, 1, 9, 0, 0, 0, time.UTC)

	lines := []string{"git status", "make test", "git push origin main"}
	out := make([]Command, 0, len(lines))
	for i, line := range lines {
		cmd, err := s.Insert(ctx, base.Add(time.Duration(i)*time.Minute), line)
		require.NoError(t, err)
		out = append(out, cmd)
	}
	return out
}

func TestLog_AscendingByTimestamp(t *testing.T) {
	s := createTestStore(t)
	seeded := seedHistory(t, s)

	got, err := s.Log(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seeded, got)
}

func TestHeadAndTail(t *testing.T) {
	s := createTestStore(t)
	seeded := seedHistory(t, s)

	head, err := s.Head(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, seeded[:2], head)

	tail, err := s.Tail(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []Command{seeded[2], seeded[1]}, tail)
}

func TestSearch_MatchesJoinBackToContent(t *testing.T) {
	s := createTestStore(t)
	seeded := seedHistory(t, s)

	got, err := s.Search(context.Background(), "git")
	require.NoError(t, err)
	assert.Equal(t, []Command{seeded[0], seeded[2]}, got)

	none, err := s.Search(context.Background(), "docker")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStats_Counts(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	base := time.Date(2001, 1, 1, 9, 0, 0, 0, time.UTC)

	// Two distinct commands, one of them issued twice.
	for i, line := range []string{"ls", "ls", "make test"} {
		_, err := s.Insert(ctx, base.Add(time.Duration(i)*time.Minute), line)
		require.NoError(t, err)
	}

	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Commands)
	assert.Equal(t, int64(2), stats.UniqueCommands)
	assert.NotZero(t, stats.IndexedTerms)

	require.NotEmpty(t, stats.FrequentCommands)
	assert.Equal(t, CommandCount{Count: 2, Command: "ls"}, stats.FrequentCommands[0])
}

func TestStats_EmptyDatabase(t *testing.T) {
	s := createTestStore(t)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Commands)
	assert.Empty(t, stats.FrequentCommands)
}

package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duiker-sh/duiker/internal/config"
	"github.com/duiker-sh/duiker/internal/store"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestMagicOutput_Golden(t *testing.T) {
	setupDataDir(t)

	out, err := execute(t, "", "magic")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "magic", []byte(out))
}

func TestWriteStats_Golden(t *testing.T) {
	stats := store.Stats{
		Commands:           1234,
		UniqueCommands:     567,
		IndexedTerms:       8901,
		UniqueIndexedTerms: 2345,
		FrequentCommands: []store.CommandCount{
			{Count: 120, Command: "ls"},
			{Count: 37, Command: "git status"},
			{Count: 4, Command: "make test"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeStats(&buf, stats, 16384, true))

	newGoldie(t).Assert(t, "stats", buf.Bytes())
}

func TestWriteTSV_RendersEpochWithoutFormat(t *testing.T) {
	cfg := &config.Config{}
	var buf bytes.Buffer

	err := writeTSV(&buf, cfg, []store.Command{
		{ID: 1, Timestamp: 978307200, Command: "ls -la"},
	})
	require.NoError(t, err)
	assert.Equal(t, "978307200\tls -la\n", buf.String())
}

// Package importer drives the per-line import of history output into the
// store: parse each line, substitute the current time when the line
// carries no timestamp, and insert content and index rows atomically.
package importer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/duiker-sh/duiker/internal/histline"
	"github.com/duiker-sh/duiker/internal/metrics"
	"github.com/duiker-sh/duiker/internal/store"
)

// maxLineSize bounds a single history line. Interactive commands can get
// long (heredocs, inline scripts) but not megabytes long.
const maxLineSize = 1 << 20

// Params configures an Importer. Store is required; everything else has a
// usable zero value.
type Params struct {
	Store *store.Store

	// TimeFormat is the strftime format of leading timestamps
	// (HISTTIMEFORMAT). Empty means lines carry no timestamp and the
	// current time is recorded instead.
	TimeFormat string

	// Strict aborts the batch on the first malformed line instead of
	// counting and continuing.
	Strict bool

	Logger  *slog.Logger
	Metrics metrics.Collector

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Importer imports history lines into one store.
type Importer struct {
	store      *store.Store
	timeFormat string
	strict     bool
	logger     *slog.Logger
	metrics    metrics.Collector
	now        func() time.Time
}

// New creates an importer.
func New(p Params) *Importer {
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	if p.Metrics == nil {
		p.Metrics = metrics.NewNoopCollector()
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	return &Importer{
		store:      p.Store,
		timeFormat: p.TimeFormat,
		strict:     p.Strict,
		logger:     p.Logger,
		metrics:    p.Metrics,
		now:        p.Now,
	}
}

// Result summarizes one import batch.
type Result struct {
	// BatchID tags every log line and metric of this run.
	BatchID string

	Imported  int
	Malformed int
}

// ImportReader imports one history line per line of r.
//
// Malformed lines never reach the store: in the default mode they are
// counted, logged, and skipped; in strict mode the first one aborts the
// batch. Storage faults always abort and propagate.
func (im *Importer) ImportReader(ctx context.Context, r io.Reader) (Result, error) {
	result := Result{BatchID: uuid.New().String()}
	log := im.logger.With("batch", result.BatchID)
	start := time.Now()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()

		entry, err := histline.Parse(line, im.timeFormat)
		if err != nil {
			result.Malformed++
			im.metrics.RecordLine(metrics.StatusMalformed)
			if im.strict {
				return result, err
			}
			log.Warn("skipping malformed line", "error", err)
			continue
		}

		// The parser never invents a timestamp; undated lines are
		// recorded as of now.
		issued := im.now()
		if entry.Timestamp != nil {
			issued = *entry.Timestamp
		}

		cmd, err := im.store.Insert(ctx, issued, entry.Command)
		if err != nil {
			im.metrics.RecordLine(metrics.StatusFailed)
			return result, err
		}

		result.Imported++
		im.metrics.RecordLine(metrics.StatusImported)
		log.Info("imported command", "command", cmd.Command, "issued", cmd.Timestamp)
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("read history input: %w", err)
	}

	im.metrics.ObserveBatch(time.Since(start))
	if count, err := im.store.Count(ctx); err == nil {
		im.metrics.SetCommandCount(count)
	}

	return result, nil
}

package metrics

import "time"

// NoopCollector discards all instrumentation. It is the default collector
// for CLI runs where nothing scrapes the process.
type NoopCollector struct{}

// NewNoopCollector creates a no-op collector.
func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

// RecordLine does nothing.
func (n *NoopCollector) RecordLine(status string) {}

// ObserveBatch does nothing.
func (n *NoopCollector) ObserveBatch(d time.Duration) {}

// SetCommandCount does nothing.
func (n *NoopCollector) SetCommandCount(count int64) {}

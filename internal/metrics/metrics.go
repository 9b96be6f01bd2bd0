// Package metrics instruments the import pipeline.
//
// The Prometheus-backed collector owns its own registry so that callers
// (tests, a future push gateway) can gather from it directly; the no-op
// collector keeps the importer free of conditionals when metrics are off.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Line statuses recorded by the importer.
const (
	StatusImported  = "imported"
	StatusMalformed = "malformed"
	StatusFailed    = "failed"
)

// Collector receives import instrumentation events.
type Collector interface {
	// RecordLine counts one processed history line by outcome.
	RecordLine(status string)

	// ObserveBatch records the duration of one import batch.
	ObserveBatch(d time.Duration)

	// SetCommandCount publishes the current number of stored commands.
	SetCommandCount(n int64)
}

// PrometheusCollector is the Prometheus-backed Collector.
type PrometheusCollector struct {
	lines         *prometheus.CounterVec
	batchDuration prometheus.Histogram
	commandCount  prometheus.Gauge
	registry      *prometheus.Registry
}

// NewCollector creates a Prometheus collector with a private registry.
func NewCollector() *PrometheusCollector {
	registry := prometheus.NewRegistry()

	lines := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duiker_import_lines_total",
			Help: "Total number of processed history lines by outcome",
		},
		[]string{"status"},
	)

	batchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "duiker_import_batch_duration_seconds",
			Help:    "Duration of import batches",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
	)

	commandCount := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "duiker_history_commands",
			Help: "Current number of stored history commands",
		},
	)

	registry.MustRegister(lines)
	registry.MustRegister(batchDuration)
	registry.MustRegister(commandCount)

	return &PrometheusCollector{
		lines:         lines,
		batchDuration: batchDuration,
		commandCount:  commandCount,
		registry:      registry,
	}
}

// RecordLine counts one processed history line by outcome.
func (c *PrometheusCollector) RecordLine(status string) {
	c.lines.WithLabelValues(status).Inc()
}

// ObserveBatch records the duration of one import batch.
func (c *PrometheusCollector) ObserveBatch(d time.Duration) {
	c.batchDuration.Observe(d.Seconds())
}

// SetCommandCount publishes the current number of stored commands.
func (c *PrometheusCollector) SetCommandCount(n int64) {
	c.commandCount.Set(float64(n))
}

// Registry exposes the private registry for gathering.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

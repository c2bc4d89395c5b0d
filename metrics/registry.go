// SPDX-License-Identifier: MIT
// Package: qubogrid/metrics
//
// registry.go — private Prometheus registry and metric definitions.

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "qubogrid"

// Registry holds every collector on its own prometheus.Registry, so tests
// and multiple CLI runs never collide on the global default.
type Registry struct {
	// Generation
	GenerationsTotal   *prometheus.CounterVec
	GenerationAttempts prometheus.Histogram
	GenerationDuration *prometheus.HistogramVec
	LogicalNodes       prometheus.Gauge
	LogicalEdges       prometheus.Gauge

	// Embedding
	EmbeddingAttemptsTotal   *prometheus.CounterVec
	EmbeddingAttemptDuration *prometheus.HistogramVec
	HardwareNodes            prometheus.Gauge
	EmbeddingQubits          prometheus.Gauge
	EmbeddingMaxChain        prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initGenerationMetrics()
	r.initEmbeddingMetrics()

	return r
}

// Gatherer exposes the underlying registry for scraping or export.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics in the text exposition format, for the
// node-exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}

func (r *Registry) initGenerationMetrics() {
	r.GenerationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Logical graph generations by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	r.GenerationAttempts = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_attempts",
			Help:      "Degree-sequence proposals drawn per probabilistic generation",
			Buckets:   []float64{1, 2, 5, 10, 50, 100, 500, 2000},
		},
	)

	r.GenerationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Wall time of one generation",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"mode"},
	)

	r.LogicalNodes = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "logical_nodes",
		Help:      "Vertices in the last generated logical graph",
	})

	r.LogicalEdges = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "logical_edges",
		Help:      "Edges in the last generated logical graph",
	})
}

func (r *Registry) initEmbeddingMetrics() {
	r.EmbeddingAttemptsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "embedding_attempts_total",
			Help:      "Hardware sizes tried by the embedding driver",
		},
		[]string{"shape", "outcome"},
	)

	r.EmbeddingAttemptDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "embedding_attempt_duration_seconds",
			Help:      "Wall time of one embedding attempt, hardware build included",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		},
		[]string{"shape"},
	)

	r.HardwareNodes = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hardware_nodes",
		Help:      "Nodes in the most recently built hardware graph",
	})

	r.EmbeddingQubits = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "embedding_qubits",
		Help:      "Hardware nodes used by the last embedding",
	})

	r.EmbeddingMaxChain = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "embedding_max_chain",
		Help:      "Longest chain in the last embedding",
	})
}

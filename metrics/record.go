// SPDX-License-Identifier: MIT
// Package: qubogrid/metrics
//
// record.go — recording helpers fed by qubo results and embed hooks.

package metrics

import (
	"errors"
	"time"

	"github.com/katalvlaran/qubogrid/embed"
	"github.com/katalvlaran/qubogrid/qubo"
)

// Outcome labels.
const (
	OutcomeSuccess   = "success"
	OutcomeInvalid   = "invalid_configuration"
	OutcomeExhausted = "exhausted"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
)

// Outcome maps an error from qubo or embed to a label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, qubo.ErrInvalidConfiguration):
		return OutcomeInvalid
	case errors.Is(err, qubo.ErrGenerationExhausted):
		return OutcomeExhausted
	case errors.Is(err, embed.ErrEmbeddingNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}

// RecordGeneration counts one qubo.Run call. res may be nil.
func (r *Registry) RecordGeneration(mode qubo.Mode, res *qubo.Result, err error, d time.Duration) {
	r.GenerationsTotal.WithLabelValues(string(mode), Outcome(err)).Inc()
	r.GenerationDuration.WithLabelValues(string(mode)).Observe(d.Seconds())
	if res == nil {
		return
	}
	if mode == qubo.ModeProbabilistic && res.Attempts > 0 {
		r.GenerationAttempts.Observe(float64(res.Attempts))
	}
	if res.Graph != nil {
		r.LogicalNodes.Set(float64(res.Graph.VertexCount()))
		r.LogicalEdges.Set(float64(res.Graph.EdgeCount()))
	}
}

// ObserveAttempt records one driver attempt; pass it to embed.WithOnAttempt.
func (r *Registry) ObserveAttempt(a embed.Attempt) {
	outcome := OutcomeNotFound
	if a.Found {
		outcome = OutcomeSuccess
	}
	shape := string(a.Shape)
	r.EmbeddingAttemptsTotal.WithLabelValues(shape, outcome).Inc()
	r.EmbeddingAttemptDuration.WithLabelValues(shape).Observe(a.Duration.Seconds())
	r.HardwareNodes.Set(float64(a.Nodes))
}

// RecordEmbedding stores the size of a successful embedding.
func (r *Registry) RecordEmbedding(emb embed.Embedding) {
	r.EmbeddingQubits.Set(float64(emb.Qubits()))
	r.EmbeddingMaxChain.Set(float64(emb.MaxChain()))
}

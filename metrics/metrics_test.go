package metrics_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubogrid/core"
	"github.com/katalvlaran/qubogrid/embed"
	"github.com/katalvlaran/qubogrid/hardware"
	"github.com/katalvlaran/qubogrid/metrics"
	"github.com/katalvlaran/qubogrid/qubo"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, metrics.OutcomeSuccess, metrics.Outcome(nil))
	assert.Equal(t, metrics.OutcomeInvalid, metrics.Outcome(fmt.Errorf("x: %w", qubo.ErrInvalidConfiguration)))
	assert.Equal(t, metrics.OutcomeExhausted, metrics.Outcome(fmt.Errorf("x: %w", qubo.ErrGenerationExhausted)))
	assert.Equal(t, metrics.OutcomeNotFound, metrics.Outcome(&embed.NotFoundError{Tried: []int{1}}))
	assert.Equal(t, metrics.OutcomeError, metrics.Outcome(errors.New("other")))
}

func TestRecordGeneration(t *testing.T) {
	r := metrics.NewRegistry()
	p := qubo.DefaultParams()
	p.Mode = qubo.ModeProbabilistic
	res, err := qubo.Run(p)
	require.NoError(t, err)

	r.RecordGeneration(p.Mode, res, nil, 3*time.Millisecond)
	r.RecordGeneration(qubo.ModeDeterministic, nil, qubo.ErrInvalidConfiguration, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.GenerationsTotal.WithLabelValues("probabilistic", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.GenerationsTotal.WithLabelValues("deterministic", "invalid_configuration")))
	assert.Equal(t, 20.0, testutil.ToFloat64(r.LogicalNodes))
	assert.Equal(t, float64(res.Graph.EdgeCount()), testutil.ToFloat64(r.LogicalEdges))
	assert.Equal(t, 1, testutil.CollectAndCount(r.GenerationAttempts))
}

func TestObserveAttemptViaDriver(t *testing.T) {
	r := metrics.NewRegistry()
	g := core.NewGraph()
	_, err := g.AddEdge("0", "1", 0)
	require.NoError(t, err)

	calls := 0
	solver := embed.SolverFunc(func(_, _ []embed.Pair) (embed.Embedding, error) {
		calls++
		if calls == 1 {
			return nil, nil
		}
		return embed.Embedding{"0": {"g:0:0:0"}, "1": {"g:0:0:1"}}, nil
	})
	res, err := embed.NewDriver(solver, embed.WithOnAttempt(r.ObserveAttempt)).Search(g, 2)
	require.NoError(t, err)
	r.RecordEmbedding(res.Embedding)

	grid := string(hardware.ShapeGrid)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.EmbeddingAttemptsTotal.WithLabelValues(grid, "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.EmbeddingAttemptsTotal.WithLabelValues(grid, "success")))
	assert.Equal(t, 27.0, testutil.ToFloat64(r.HardwareNodes))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.EmbeddingQubits))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.EmbeddingMaxChain))
}

func TestWriteTextfile(t *testing.T) {
	r := metrics.NewRegistry()
	r.GenerationsTotal.WithLabelValues("deterministic", "success").Inc()

	path := filepath.Join(t.TempDir(), "qubogrid.prom")
	require.NoError(t, r.WriteTextfile(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `qubogrid_generations_total{mode="deterministic",outcome="success"} 1`)

	err = r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	assert.Error(t, err)
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := metrics.NewRegistry(), metrics.NewRegistry()
	a.HardwareNodes.Set(5)
	assert.Zero(t, testutil.ToFloat64(b.HardwareNodes))
	n, err := testutil.GatherAndCount(a.Gatherer(), "qubogrid_hardware_nodes")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

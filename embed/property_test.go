package embed_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/qubogrid/core"
	"github.com/katalvlaran/qubogrid/embed"
	"github.com/katalvlaran/qubogrid/qubo"
)

func TestDriverProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("a reported embedding is valid against the returned hardware", prop.ForAll(
		func(n int, d float64, seed int64, n0 int) bool {
			p := qubo.DefaultParams()
			p.N, p.Density, p.Mode, p.Seed = n, d, qubo.ModeProbabilistic, seed
			logical, err := qubo.Generate(p)
			if err != nil {
				return errors.Is(err, qubo.ErrGenerationExhausted)
			}
			drv := embed.NewDriver(embed.NewGreedy(embed.GreedyOptions{Seed: seed}), embed.WithMaxSize(8))
			res, err := drv.Search(logical, n0)
			if err != nil {
				return errors.Is(err, embed.ErrEmbeddingNotFound)
			}
			return embed.Validate(logical, res.Hardware.Graph, res.Embedding) == nil
		},
		gen.IntRange(1, 10),
		gen.Float64Range(0, 0.6),
		gen.Int64Range(0, 1<<20),
		gen.IntRange(1, 4),
	))

	properties.Property("tried sizes are non-decreasing and capped", prop.ForAll(
		func(n0, maxSize int) bool {
			never := embed.SolverFunc(func(_, _ []embed.Pair) (embed.Embedding, error) { return nil, nil })
			_, err := embed.NewDriver(never, embed.WithMaxSize(maxSize), embed.WithGroupSize(1)).Search(singleEdgeGraph(), n0)
			var nf *embed.NotFoundError
			if !errors.As(err, &nf) || len(nf.Tried) != len(embed.DefaultSchedule()) {
				return false
			}
			for i, s := range nf.Tried {
				if s > maxSize || (i > 0 && s < nf.Tried[i-1]) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}

func singleEdgeGraph() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge("0", "1", 0)

	return g
}

package qubo_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/qubogrid/degseq"
	"github.com/katalvlaran/qubogrid/qubo"
)

func TestGeneratorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("deterministic mode yields N vertices of degree k or InvalidConfiguration", prop.ForAll(
		func(n int, d float64, seed int64) bool {
			p := qubo.DefaultParams()
			p.N, p.Density, p.Seed = n, d, seed
			k := degseq.TargetDegree(n, d)

			g, err := qubo.Generate(p)
			if (n*k)%2 == 1 || k >= n {
				return errors.Is(err, qubo.ErrInvalidConfiguration)
			}
			if err != nil || g.VertexCount() != n {
				return false
			}
			for _, deg := range g.Degrees() {
				if deg != k {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.Float64Range(0, 1),
		gen.Int64(),
	))

	properties.Property("same params, same edge set", prop.ForAll(
		func(n int, seed int64) bool {
			p := qubo.DefaultParams()
			p.N, p.Mode, p.Seed = n, qubo.ModeProbabilistic, seed
			a, errA := qubo.Generate(p)
			b, errB := qubo.Generate(p)
			if errA != nil || errB != nil {
				return false
			}
			ea, eb := edgeList(a), edgeList(b)
			if len(ea) != len(eb) {
				return false
			}
			for i := range ea {
				if ea[i] != eb[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 25),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

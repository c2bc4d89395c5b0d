package builder_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/qubogrid/builder"
	"github.com/katalvlaran/qubogrid/degseq"
)

func TestRealizerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("Havel–Hakimi realizes every graphical sequence exactly", prop.ForAll(
		func(raw []int) bool {
			n := len(raw)
			seq := make([]int, n)
			for i, k := range raw {
				seq[i] = k % n
			}
			seq = degseq.MakeEvenSum(seq, n)
			g, err := builder.BuildGraph(nil, nil, builder.HavelHakimi(seq))
			if !degseq.IsGraphical(seq) {
				return err != nil
			}
			if err != nil || g.VertexCount() != n {
				return false
			}
			for i, want := range seq {
				d, derr := g.Degree(builder.DefaultIDFn(i))
				if derr != nil || d != want {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(12, gen.IntRange(0, 11)).SuchThat(func(xs []int) bool { return len(xs) > 0 }),
	))

	properties.Property("random regular graphs are exactly d-regular", prop.ForAll(
		func(n, d int, seed int64) bool {
			if d >= n || (n*d)%2 != 0 {
				return true
			}
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{withSeed(seed)}, builder.RandomRegular(n, d))
			if err != nil || g.VertexCount() != n {
				return false
			}
			for _, deg := range g.Degrees() {
				if deg != d {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.IntRange(0, 29),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

package degseq_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/qubogrid/degseq"
)

func TestSequenceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("parity repair yields an even sum touching at most one entry by 1", prop.ForAll(
		func(raw []int) bool {
			const n = 10
			in := degseq.Sequence(raw)
			out := degseq.MakeEvenSum(in, n)
			if len(out) != len(in) || out.Sum()%2 != 0 {
				return false
			}
			changed := 0
			for i := range in {
				diff := out[i] - in[i]
				if diff < -1 || diff > 1 {
					return false
				}
				if diff != 0 {
					changed++
				}
			}
			return changed <= 1
		},
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	properties.Property("regular policy either fails or yields a valid uniform sequence", prop.ForAll(
		func(n int, d float64) bool {
			k, seq, err := degseq.Regular(n, d)
			if err != nil {
				return (n*k)%2 == 1 || k >= n
			}
			if len(seq) != n || !degseq.IsGraphical(seq) {
				return false
			}
			for _, v := range seq {
				if v != k {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 40),
		gen.Float64Range(-0.2, 1.2),
	))

	properties.Property("accepted probabilistic sequences are graphical", prop.ForAll(
		func(n int, d float64, seed int64) bool {
			seq, _, err := degseq.Probabilistic(rand.New(rand.NewSource(seed)), degseq.Proposal{
				N: n, Density: d, Sigma: 0.1, Dist: degseq.DistUniform,
			})
			if err != nil {
				return false
			}
			return len(seq) == n && degseq.IsGraphical(seq)
		},
		gen.IntRange(1, 25),
		gen.Float64Range(0, 1),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

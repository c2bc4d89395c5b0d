package degseq_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qubogrid/degseq"
)

// cycleSource replays a fixed Int63 stream; it makes proposal draws exact.
type cycleSource struct {
	vals []int64
	i    int
}

func (c *cycleSource) Int63() int64 {
	v := c.vals[c.i%len(c.vals)]
	c.i++

	return v
}

func (c *cycleSource) Seed(int64) {}

func TestTargetDegree(t *testing.T) {
	cases := []struct {
		name string
		n    int
		d    float64
		want int
	}{
		{"half rounds to even", 4, 0.5, 2},
		{"full density", 3, 1.0, 2},
		{"clipped above", 5, 7.0, 4},
		{"clipped below", 5, -1.0, 0},
		{"half down to even", 6, 0.5, 2}, // 2.5 → 2
		{"single vertex", 1, 0.9, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, degseq.TargetDegree(tc.n, tc.d))
		})
	}
}

func TestRegular(t *testing.T) {
	k, seq, err := degseq.Regular(4, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Equal(t, degseq.Sequence{2, 2, 2, 2}, seq)

	k, seq, err = degseq.Regular(3, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 2, k)
	assert.Len(t, seq, 3)

	// N=5, d=0.25 → k=1, N·k odd
	_, _, err = degseq.Regular(5, 0.25)
	assert.ErrorIs(t, err, degseq.ErrInvalidConfiguration)

	_, _, err = degseq.Regular(0, 0.5)
	assert.ErrorIs(t, err, degseq.ErrInvalidConfiguration)

	_, _, err = degseq.Regular(4, math.NaN())
	assert.ErrorIs(t, err, degseq.ErrInvalidConfiguration)
}

func TestIsGraphical(t *testing.T) {
	cases := []struct {
		seq  degseq.Sequence
		want bool
	}{
		{degseq.Sequence{}, true},
		{degseq.Sequence{0}, true},
		{degseq.Sequence{2, 2, 2}, true},
		{degseq.Sequence{3, 3, 3, 3}, true},
		{degseq.Sequence{3, 3, 2, 1, 1}, true},
		{degseq.Sequence{2, 0, 0, 0}, false},
		{degseq.Sequence{3, 3, 0, 0}, false},
		{degseq.Sequence{1, 1, 1}, false}, // odd sum
		{degseq.Sequence{4, 1, 1, 1}, false},
		{degseq.Sequence{3, 3, 3, 1}, false},
		{degseq.Sequence{-1, 1}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, degseq.IsGraphical(tc.seq), "%v", tc.seq)
	}
}

func TestMakeEvenSum(t *testing.T) {
	in := degseq.Sequence{1, 3, 3, 0}
	out := degseq.MakeEvenSum(in, 4)
	assert.Equal(t, degseq.Sequence{1, 2, 3, 0}, out, "first maximum is decremented")
	assert.Equal(t, degseq.Sequence{1, 3, 3, 0}, in, "input is not mutated")

	even := degseq.Sequence{1, 1}
	assert.Equal(t, even, degseq.MakeEvenSum(even, 2))
	assert.Empty(t, degseq.MakeEvenSum(nil, 0))
}

func TestParseDist(t *testing.T) {
	d, err := degseq.ParseDist(" Normal ")
	require.NoError(t, err)
	assert.Equal(t, degseq.DistNormal, d)

	_, err = degseq.ParseDist("poisson")
	assert.ErrorIs(t, err, degseq.ErrInvalidConfiguration)
}

func TestClampDegrees(t *testing.T) {
	got := degseq.ClampDegrees([]float64{0, 0.5, 0.84, 1}, 4)
	assert.Equal(t, degseq.Sequence{0, 2, 3, 3}, got)
}

func TestDrawProbabilities_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ps, err := degseq.DrawProbabilities(rng, 200, 0.3, 0.1, degseq.DistUniform)
	require.NoError(t, err)
	for _, p := range ps {
		assert.GreaterOrEqual(t, p, 0.2-1e-12)
		assert.LessOrEqual(t, p, 0.4+1e-12)
	}

	ps, err = degseq.DrawProbabilities(rng, 200, 0.9, 0.5, degseq.DistNormal)
	require.NoError(t, err)
	for _, p := range ps {
		assert.True(t, p >= 0 && p <= 1, "p=%v", p)
	}

	_, err = degseq.DrawProbabilities(rng, 3, 0.5, 0.1, "beta")
	assert.ErrorIs(t, err, degseq.ErrInvalidConfiguration)
}

func TestProbabilistic_Success(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	seq, attempts, err := degseq.Probabilistic(rng, degseq.Proposal{
		N: 20, Density: 0.4, Sigma: 0.1, Dist: degseq.DistUniform,
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, attempts, 1)
	assert.Len(t, seq, 20)
	assert.True(t, degseq.IsGraphical(seq))
}

func TestProbabilistic_Reproducible(t *testing.T) {
	p := degseq.Proposal{N: 15, Density: 0.35, Sigma: 0.12, Dist: degseq.DistNormal}
	a, _, errA := degseq.Probabilistic(rand.New(rand.NewSource(42)), p)
	b, _, errB := degseq.Probabilistic(rand.New(rand.NewSource(42)), p)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestProbabilistic_Exhausted(t *testing.T) {
	// Every attempt proposes p = [0.875, 0, 0, 0] → [3,0,0,0] → [2,0,0,0].
	src := &cycleSource{vals: []int64{7 << 60, 0, 0, 0}}
	_, attempts, err := degseq.Probabilistic(rand.New(src), degseq.Proposal{
		N: 4, Density: 0.5, Sigma: 0.5, Dist: degseq.DistUniform, MaxTries: 5,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, degseq.ErrGenerationExhausted))
	assert.False(t, errors.Is(err, degseq.ErrInvalidConfiguration))

	var ex *degseq.ExhaustedError
	require.ErrorAs(t, err, &ex)
	assert.Equal(t, 5, ex.Attempts)
	assert.Equal(t, 5, attempts)
}

func TestProbabilistic_InvalidConfiguration(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bad := []degseq.Proposal{
		{N: 0, Density: 0.5, Dist: degseq.DistUniform},
		{N: 5, Density: 0.5, Dist: "triangular"},
		{N: 5, Density: 0.5, Sigma: -0.1, Dist: degseq.DistUniform},
		{N: 5, Density: math.NaN(), Dist: degseq.DistUniform},
		{N: 5, Density: 0.5, Dist: degseq.DistNormal, MaxTries: -1},
	}
	for _, p := range bad {
		_, _, err := degseq.Probabilistic(rng, p)
		assert.ErrorIs(t, err, degseq.ErrInvalidConfiguration, "%+v", p)
	}
}

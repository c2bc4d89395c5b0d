// Package builder provides edge-weight policies for graph constructors.
// Weights model QUBO coupling coefficients and are only observed on graphs
// created with core.WithWeighted().
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always returns w and never consumes randomness.
func ConstantWeightFn(w int64) WeightFn {
	return func(*rand.Rand) int64 { return w }
}

// SignWeightFn returns +1 or −1 with equal probability, the ±1 couplings of
// an Ising-style QUBO. Without an RNG it degrades to +1.
func SignWeightFn(rng *rand.Rand) int64 {
	if rng == nil || rng.Intn(2) == 0 {
		return 1
	}

	return -1
}

// UniformIntWeightFn draws uniformly from [lo, hi] inclusive.
// Panics if lo > hi. Without an RNG it returns lo.
func UniformIntWeightFn(lo, hi int64) WeightFn {
	if lo > hi {
		panic(fmt.Sprintf("UniformIntWeightFn: lo=%d > hi=%d", lo, hi))
	}
	span := hi - lo + 1

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return lo
		}
		return lo + rng.Int63n(span)
	}
}

// SPDX-License-Identifier: MIT
// Package: qubogrid/degseq
//
// probabilistic.go — randomized per-vertex degree proposals with parity repair
// and Erdős–Gallai acceptance.
//
// Pipeline per attempt:
//  1. DrawProbabilities: pᵢ ∈ [0,1] from Uniform(clip(d−σ), clip(d+σ)) or clip(Normal(d, σ)).
//  2. ClampDegrees:      kᵢ = round(pᵢ·(N−1)) clamped to [0, N−1].
//  3. MakeEvenSum:       repair an odd sum by touching one entry by 1.
//  4. IsGraphical:       accept or redraw.
//
// Determinism:
//   - All draws come from the caller's *rand.Rand, in vertex order.

package degseq

import (
	"math"
	"math/rand"
	"strings"
)

// Dist selects the per-vertex probability distribution.
type Dist string

// Supported distributions.
const (
	DistUniform Dist = "uniform"
	DistNormal  Dist = "normal"
)

// DefaultMaxTries is the proposal budget when Proposal.MaxTries is 0.
const DefaultMaxTries = 2000

// ParseDist accepts "uniform" or "normal" (case-insensitive, trimmed).
func ParseDist(s string) (Dist, error) {
	switch Dist(strings.ToLower(strings.TrimSpace(s))) {
	case DistUniform:
		return DistUniform, nil
	case DistNormal:
		return DistNormal, nil
	}

	return "", invalidf("ParseDist", "dist must be %q or %q (got %q)", DistUniform, DistNormal, s)
}

// DrawProbabilities draws n target probabilities around density d.
// Errors: ErrInvalidConfiguration for an unknown dist.
func DrawProbabilities(rng *rand.Rand, n int, d, sigma float64, dist Dist) ([]float64, error) {
	ps := make([]float64, n)
	switch dist {
	case DistUniform:
		lo, hi := Clip01(d-sigma), Clip01(d+sigma)
		for i := range ps {
			ps[i] = lo + (hi-lo)*rng.Float64()
		}
	case DistNormal:
		for i := range ps {
			ps[i] = Clip01(d + sigma*rng.NormFloat64())
		}
	default:
		return nil, invalidf("DrawProbabilities", "unknown dist %q", dist)
	}

	return ps, nil
}

// ClampDegrees converts probabilities to integer degrees for n vertices.
func ClampDegrees(ps []float64, n int) Sequence {
	out := make(Sequence, len(ps))
	for i, p := range ps {
		out[i] = clampDegree(int(math.RoundToEven(p*float64(n-1))), n)
	}

	return out
}

// MakeEvenSum returns a copy of s with an even sum. When the sum is odd the
// first maximal entry is decremented; if that entry is 0 the first minimal
// entry is incremented instead, unless it would exceed n−1. At most one entry
// changes, by exactly 1.
func MakeEvenSum(s Sequence, n int) Sequence {
	out := s.Clone()
	if out.Sum()%2 == 0 || len(out) == 0 {
		return out
	}
	hi, lo := 0, 0
	for i, k := range out {
		if k > out[hi] {
			hi = i
		}
		if k < out[lo] {
			lo = i
		}
	}
	if out[hi] > 0 {
		out[hi]--
	} else if out[lo] < n-1 {
		out[lo]++
	}

	return out
}

// Proposal parameterizes one probabilistic search.
type Proposal struct {
	N        int
	Density  float64
	Sigma    float64
	Dist     Dist
	MaxTries int // 0 means DefaultMaxTries
}

// Probabilistic draws candidate sequences until one is graphical.
// Returns the sequence and the number of attempts used.
//
// Errors:
//   - ErrInvalidConfiguration: N < 1, MaxTries < 0, Sigma < 0, NaN inputs, unknown Dist.
//   - *ExhaustedError (ErrGenerationExhausted): budget spent without success.
//
// Complexity: O(MaxTries · N²) worst case.
func Probabilistic(rng *rand.Rand, p Proposal) (Sequence, int, error) {
	const method = "Probabilistic"
	switch {
	case p.N < 1:
		return nil, 0, invalidf(method, "N must be ≥ 1 (got %d)", p.N)
	case p.MaxTries < 0:
		return nil, 0, invalidf(method, "max_tries must be ≥ 0 (got %d)", p.MaxTries)
	case math.IsNaN(p.Density) || math.IsNaN(p.Sigma):
		return nil, 0, invalidf(method, "density and sigma must be numbers")
	case p.Sigma < 0:
		return nil, 0, invalidf(method, "sigma must be ≥ 0 (got %g)", p.Sigma)
	case p.Dist != DistUniform && p.Dist != DistNormal:
		return nil, 0, invalidf(method, "dist must be %q or %q (got %q)", DistUniform, DistNormal, p.Dist)
	}
	tries := p.MaxTries
	if tries == 0 {
		tries = DefaultMaxTries
	}

	for attempt := 1; attempt <= tries; attempt++ {
		ps, err := DrawProbabilities(rng, p.N, p.Density, p.Sigma, p.Dist)
		if err != nil {
			return nil, attempt, err
		}
		seq := MakeEvenSum(ClampDegrees(ps, p.N), p.N)
		if IsGraphical(seq) {
			return seq, attempt, nil
		}
	}

	return nil, tries, &ExhaustedError{Attempts: tries}
}

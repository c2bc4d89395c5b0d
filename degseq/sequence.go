// SPDX-License-Identifier: MIT
// Package: qubogrid/degseq
//
// sequence.go — the Sequence value type and the deterministic (regular) policy.
//
// Contract:
//   - TargetDegree rounds half-to-even, so N=4, d=0.5 gives k=round(1.5)=2.
//   - Regular rejects N·k odd and k ≥ N with ErrInvalidConfiguration.

package degseq

import (
	"math"
)

// Sequence is an ordered per-vertex degree list; index i is logical vertex i.
type Sequence []int

// Sum returns Σ s[i].
func (s Sequence) Sum() int {
	total := 0
	for _, k := range s {
		total += k
	}

	return total
}

// Max returns the largest entry, or 0 for an empty sequence.
func (s Sequence) Max() int {
	m := 0
	for _, k := range s {
		if k > m {
			m = k
		}
	}

	return m
}

// Clone returns an independent copy.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// Valid reports whether every entry lies in [0, n-1] and the sum is even.
// It does not test graphicality; see IsGraphical.
func (s Sequence) Valid(n int) bool {
	for _, k := range s {
		if k < 0 || k > n-1 {
			return false
		}
	}

	return s.Sum()%2 == 0
}

// Clip01 clamps x into [0,1]. NaN maps to 0.
func Clip01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}

// clampDegree clamps k into [0, n-1].
func clampDegree(k, n int) int {
	if k < 0 {
		return 0
	}
	if k > n-1 {
		return n - 1
	}

	return k
}

// TargetDegree returns round(Clip01(d)·(n-1)) clamped to [0, n-1].
func TargetDegree(n int, d float64) int {
	if n < 1 {
		return 0
	}
	k := int(math.RoundToEven(Clip01(d) * float64(n-1)))

	return clampDegree(k, n)
}

// Regular computes the deterministic-mode target k for n vertices at density d
// and returns the uniform sequence [k, …, k].
//
// Errors: ErrInvalidConfiguration when n < 1, d is NaN, n·k is odd, or k ≥ n.
// Complexity: O(n).
func Regular(n int, d float64) (int, Sequence, error) {
	const method = "Regular"
	if n < 1 {
		return 0, nil, invalidf(method, "N must be ≥ 1 (got %d)", n)
	}
	if math.IsNaN(d) {
		return 0, nil, invalidf(method, "density is NaN")
	}
	k := TargetDegree(n, d)
	if (n*k)%2 == 1 || k >= n {
		return k, nil, invalidf(method, "k-regular graph impossible for N=%d, k=%d; need 0≤k≤N-1 and N·k even", n, k)
	}
	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = k
	}

	return k, seq, nil
}

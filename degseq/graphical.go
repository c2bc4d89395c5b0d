// SPDX-License-Identifier: MIT
// Package: qubogrid/degseq
//
// graphical.go — Erdős–Gallai graphicality test.
//
// A non-increasing sequence d₁ ≥ … ≥ dₙ with even sum is graphical iff for
// every k in 1..n:
//
//	Σ_{i≤k} dᵢ ≤ k(k−1) + Σ_{i>k} min(dᵢ, k)
//
// Complexity: O(n log n) for the sort plus O(n²) for the inequalities, which
// is fine for the logical sizes this module targets.

package degseq

import "sort"

// IsGraphical reports whether some simple graph realizes s exactly.
// The empty sequence is graphical. Input is not mutated.
func IsGraphical(s Sequence) bool {
	n := len(s)
	if !s.Valid(n) {
		return false
	}
	d := s.Clone()
	sort.Sort(sort.Reverse(sort.IntSlice(d)))

	lhs := 0
	for k := 1; k <= n; k++ {
		lhs += d[k-1]
		rhs := k * (k - 1)
		for i := k; i < n; i++ {
			if d[i] < k {
				rhs += d[i]
			} else {
				rhs += k
			}
		}
		if lhs > rhs {
			return false
		}
	}

	return true
}

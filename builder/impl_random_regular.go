// SPDX-License-Identifier: MIT
// Package: qubogrid/builder
//
// impl_random_regular.go — implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   • Stub pairing with "suitable pair" repair: shuffle all n·d stubs, pair
//     them consecutively, keep every pair that is neither a loop nor a
//     repeat, and re-pair only the leftover stubs. If the leftovers can no
//     longer form any new edge, restart from scratch.
//   • Restarts are bounded by maxRegularRestarts.
//   • When 2d > n-1 the (n-1-d)-regular complement is paired instead and
//     inverted, which keeps dense targets cheap.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil when d > 0 (else ErrNeedRandSource).
//   • Vertices are added via cfg.idFn in ascending index order (0..n-1).
//   • Edges are emitted sorted by (min index, max index).
//
// Complexity:
//   • ~O(n·d) per pass; passes per restart are few in practice.
//
// Determinism:
//   • The outcome depends only on the RNG stream; identical seeds give
//     identical edge sets and insertion order.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qubogrid/core"
)

const (
	methodRandomRegular = "RandomRegular"
	minRRVertices       = 1
	maxRegularRestarts  = 1000
)

type indexPair [2]int

func orderedPair(u, v int) indexPair {
	if u > v {
		u, v = v, u
	}

	return indexPair{u, v}
}

// RandomRegular returns a Constructor that builds a random d-regular simple
// graph on n vertices.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if d > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		ids := indexedIDs(cfg, n)
		if err := addVertices(g, methodRandomRegular, ids); err != nil {
			return err
		}
		if d == 0 {
			return nil
		}

		// Dense targets are drawn as the complement of a sparse regular graph.
		dense := 2*d > n-1
		target := d
		if dense {
			target = n - 1 - d
		}
		for restart := 0; restart < maxRegularRestarts; restart++ {
			edges, ok := []indexPair(nil), true
			if target > 0 {
				edges, ok = tryRegularPairing(cfg, n, target)
			}
			if !ok {
				continue
			}
			if dense {
				edges = complementPairs(n, edges)
			}
			pairs := make([][2]string, len(edges))
			for i, e := range edges {
				pairs[i] = [2]string{ids[e[0]], ids[e[1]]}
			}

			return emitEdges(g, cfg, methodRandomRegular, pairs, core.KindNone)
		}

		return fmt.Errorf("%s: no simple pairing after %d restarts: %w",
			methodRandomRegular, maxRegularRestarts, ErrConstructFailed)
	}
}

// tryRegularPairing runs one restart. It returns the sorted edge list, or
// false when the leftover stubs cannot be completed.
func tryRegularPairing(cfg builderConfig, n, d int) ([]indexPair, bool) {
	stubs := make([]int, 0, n*d)
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, i)
		}
	}
	edges := make(map[indexPair]struct{}, n*d/2)

	for len(stubs) > 0 {
		cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		leftover := make(map[int]int)
		for i := 0; i+1 < len(stubs); i += 2 {
			u, v := stubs[i], stubs[i+1]
			key := orderedPair(u, v)
			if _, dup := edges[key]; u != v && !dup {
				edges[key] = struct{}{}
				continue
			}
			leftover[u]++
			leftover[v]++
		}
		if !suitable(edges, leftover) {
			return nil, false
		}

		stubs = stubs[:0]
		for _, v := range sortedKeys(leftover) {
			for k := 0; k < leftover[v]; k++ {
				stubs = append(stubs, v)
			}
		}
	}

	out := make([]indexPair, 0, len(edges))
	for e := range edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out, true
}

// suitable reports whether some pair of leftover vertices is still free to
// connect; with no leftovers the pairing is complete.
func suitable(edges map[indexPair]struct{}, leftover map[int]int) bool {
	if len(leftover) == 0 {
		return true
	}
	vs := sortedKeys(leftover)
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if _, used := edges[indexPair{vs[i], vs[j]}]; !used {
				return true
			}
		}
	}

	return false
}

// complementPairs lists every pair of 0..n-1 absent from edges, sorted.
func complementPairs(n int, edges []indexPair) []indexPair {
	taken := make(map[indexPair]struct{}, len(edges))
	for _, e := range edges {
		taken[e] = struct{}{}
	}
	out := make([]indexPair, 0, n*(n-1)/2-len(edges))
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if _, skip := taken[indexPair{u, v}]; !skip {
				out = append(out, indexPair{u, v})
			}
		}
	}

	return out
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

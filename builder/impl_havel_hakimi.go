// SPDX-License-Identifier: MIT
// Package: qubogrid/builder
//
// impl_havel_hakimi.go — implementation of HavelHakimi(seq) constructor.
//
// Canonical model:
//   • Keep every vertex with remaining degree > 0 in a max-priority queue
//     ordered by (remaining degree desc, index asc).
//   • Pop the head u with remaining r; pop the next r vertices, connect u to
//     each, decrement them and push back those still unsatisfied.
//   • Running out of partners, or an entry outside [0, n-1], means the
//     sequence is not graphical.
//
// Contract:
//   • Vertices cfg.idFn(0..n-1) are always added, isolated ones included.
//   • Deterministic for a fixed sequence; cfg.rng is consulted only by the
//     weight policy. The input slice is never mutated.
//
// Complexity:
//   • O(E log n) queue operations, E = Σseq/2.

package builder

import (
	"fmt"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/qubogrid/core"
)

const methodHavelHakimi = "HavelHakimi"

type residual struct {
	idx int
	rem int
}

// byResidual orders the queue head as the highest remaining degree, lowest
// index on ties.
func byResidual(a, b interface{}) int {
	x, y := a.(residual), b.(residual)
	switch {
	case x.rem != y.rem:
		return y.rem - x.rem
	default:
		return x.idx - y.idx
	}
}

// HavelHakimi returns a Constructor realizing seq exactly: vertex i ends
// with degree seq[i].
func HavelHakimi(seq []int) Constructor {
	degrees := append([]int(nil), seq...)

	return func(g *core.Graph, cfg builderConfig) error {
		n := len(degrees)
		pq := priorityqueue.NewWith(byResidual)
		sum := 0
		for i, k := range degrees {
			if k < 0 || k > n-1 {
				return fmt.Errorf("%s: degree %d at index %d outside [0,%d]: %w",
					methodHavelHakimi, k, i, n-1, ErrNotGraphical)
			}
			sum += k
			if k > 0 {
				pq.Enqueue(residual{idx: i, rem: k})
			}
		}
		if sum%2 != 0 {
			return fmt.Errorf("%s: odd degree sum %d: %w", methodHavelHakimi, sum, ErrNotGraphical)
		}

		pairs := make([]indexPair, 0, sum/2)
		for !pq.Empty() {
			head, _ := pq.Dequeue()
			u := head.(residual)

			partners := make([]residual, 0, u.rem)
			for len(partners) < u.rem {
				next, ok := pq.Dequeue()
				if !ok {
					return fmt.Errorf("%s: vertex %d needs %d more partners: %w",
						methodHavelHakimi, u.idx, u.rem-len(partners), ErrNotGraphical)
				}
				partners = append(partners, next.(residual))
			}
			for _, v := range partners {
				pairs = append(pairs, orderedPair(u.idx, v.idx))
				if v.rem > 1 {
					pq.Enqueue(residual{idx: v.idx, rem: v.rem - 1})
				}
			}
		}

		ids := indexedIDs(cfg, n)
		if err := addVertices(g, methodHavelHakimi, ids); err != nil {
			return err
		}
		edges := make([][2]string, len(pairs))
		for i, p := range pairs {
			edges[i] = [2]string{ids[p[0]], ids[p[1]]}
		}

		return emitEdges(g, cfg, methodHavelHakimi, edges, core.KindNone)
	}
}

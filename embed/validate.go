// SPDX-License-Identifier: MIT
// Package: qubogrid/embed
//
// validate.go — structural check of an embedding against both graphs.
//
// Checks, in order:
//   1. every logical vertex has a non-empty chain; no chain for an unknown vertex
//   2. chain nodes exist in hw
//   3. chains are pairwise disjoint
//   4. each chain induces a connected subgraph of hw
//   5. every logical edge has a hw edge between the two chains
//
// Complexity: O(Σ|chain| + Σ deg(chain nodes) + E_logical · |c_u|·|c_v|).

package embed

import (
	"fmt"

	"github.com/katalvlaran/qubogrid/bfs"
	"github.com/katalvlaran/qubogrid/core"
)

// Validate returns nil if emb is a minor embedding of logical into hw, or
// an error matching ErrInvalidEmbedding and the specific cause.
func Validate(logical, hw *core.Graph, emb Embedding) error {
	if logical == nil || hw == nil {
		return fmt.Errorf("Validate: %w", ErrGraphNil)
	}
	for _, v := range logical.Vertices() {
		if len(emb[v]) == 0 {
			return invalid(ErrMissingChain, "logical vertex %q", v)
		}
	}

	owner := make(map[string]string, emb.Qubits())
	for _, v := range emb.Keys() {
		if !logical.HasVertex(v) {
			return invalid(ErrUnknownNode, "logical vertex %q", v)
		}
		for _, q := range emb[v] {
			if !hw.HasVertex(q) {
				return invalid(ErrUnknownNode, "hardware node %q in chain of %q", q, v)
			}
			if prev, taken := owner[q]; taken {
				return invalid(ErrChainOverlap, "node %q in chains of %q and %q", q, prev, v)
			}
			owner[q] = v
		}
	}

	for _, v := range emb.Keys() {
		chain := emb[v]
		res, err := bfs.BFS(hw, chain[0], bfs.WithFilterNeighbor(func(_, nbr string) bool {
			return owner[nbr] == v
		}))
		if err != nil {
			return fmt.Errorf("Validate: chain of %q: %w", v, err)
		}
		if len(res.Order) != len(chain) {
			return invalid(ErrChainDisconnected, "chain of %q reaches %d of %d nodes", v, len(res.Order), len(chain))
		}
	}

	for _, e := range logical.Edges() {
		if !covered(hw, emb[e.From], emb[e.To]) {
			return invalid(ErrEdgeNotCovered, "%s-%s", e.From, e.To)
		}
	}

	return nil
}

func covered(hw *core.Graph, a, b Chain) bool {
	for _, x := range a {
		for _, y := range b {
			if hw.HasEdge(x, y) {
				return true
			}
		}
	}

	return false
}

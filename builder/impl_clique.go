// SPDX-License-Identifier: MIT
// Package: qubogrid/builder
//
// impl_clique.go — Clique and Biclique constructors over explicit vertex IDs.
//
// These are the building blocks of clique-tiled hardware: one Clique per
// group (KindIntra) and one Biclique per adjacent group pair (KindInter).
//
// Contract:
//   • IDs must be non-empty and unique within the call (ErrDuplicateID);
//     IDs already present in g are reused.
//   • Clique emits pairs (ids[i], ids[j]) for i<j in row-major order.
//   • Biclique emits (left[i], right[j]) in row-major order; the two sides
//     must be disjoint (ErrDuplicateID).
//
// Complexity:
//   • Clique: O(k²) edges; Biclique: O(|L|·|R|) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qubogrid/core"
)

const (
	methodClique   = "Clique"
	methodBiclique = "Biclique"
)

// Clique returns a Constructor adding the complete graph on ids, each edge
// tagged with kind.
func Clique(ids []string, kind core.EdgeKind) Constructor {
	members := append([]string(nil), ids...)

	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkUnique(methodClique, members); err != nil {
			return err
		}
		if err := addVertices(g, methodClique, members); err != nil {
			return err
		}
		pairs := make([][2]string, 0, len(members)*(len(members)-1)/2)
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				pairs = append(pairs, [2]string{members[i], members[j]})
			}
		}

		return emitEdges(g, cfg, methodClique, pairs, kind)
	}
}

// Biclique returns a Constructor adding every edge between left and right,
// each tagged with kind.
func Biclique(left, right []string, kind core.EdgeKind) Constructor {
	l := append([]string(nil), left...)
	r := append([]string(nil), right...)

	return func(g *core.Graph, cfg builderConfig) error {
		all := append(append([]string(nil), l...), r...)
		if err := checkUnique(methodBiclique, all); err != nil {
			return err
		}
		if err := addVertices(g, methodBiclique, all); err != nil {
			return err
		}
		pairs := make([][2]string, 0, len(l)*len(r))
		for _, u := range l {
			for _, v := range r {
				pairs = append(pairs, [2]string{u, v})
			}
		}

		return emitEdges(g, cfg, methodBiclique, pairs, kind)
	}
}

func checkUnique(method string, ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s: %q: %w", method, id, ErrDuplicateID)
		}
		seen[id] = struct{}{}
	}

	return nil
}

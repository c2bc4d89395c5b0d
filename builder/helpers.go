// SPDX-License-Identifier: MIT
// Package: qubogrid/builder
//
// helpers.go — shared emission of a fixed edge list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qubogrid/core"
)

// emitEdges adds every pair in order. Weights are drawn here, after the
// topology is fixed, so a weighted and an unweighted build from the same
// seed share one edge set.
func emitEdges(g *core.Graph, cfg builderConfig, method string, pairs [][2]string, kind core.EdgeKind) error {
	weighted := g.Weighted()
	for _, p := range pairs {
		w := cfg.edgeWeight(weighted)
		if _, err := g.AddEdge(p[0], p[1], w, core.WithEdgeKind(kind)); err != nil {
			return fmt.Errorf("%s: AddEdge(%s, %s, w=%d): %w", method, p[0], p[1], w, err)
		}
	}

	return nil
}

// addVertices registers ids in order.
func addVertices(g *core.Graph, method string, ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%q): %w", method, id, err)
		}
	}

	return nil
}

// indexedIDs renders 0..n-1 through cfg.idFn.
func indexedIDs(cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
	}

	return ids
}

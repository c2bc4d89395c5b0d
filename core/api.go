// SPDX-License-Identifier: MIT
// Package: qubogrid/core
//
// api.go — read-only configuration getters and a structural snapshot (Stats).

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Weighted    bool
	VertexCount int
	EdgeCount   int
	// KindCount counts edges per EdgeKind; KindNone is included when present.
	KindCount map[EdgeKind]int
	// MaxDegree and MinDegree are 0 on an empty graph.
	MaxDegree int
	MinDegree int
}

// Weighted reports whether the graph accepts non-zero edge weights.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	return g.weighted
}

// Stats returns a snapshot of counts and degree extremes.
//
// Determinism: deterministic for a fixed graph state.
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats := GraphStats{
		Weighted:    g.weighted,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		KindCount:   make(map[EdgeKind]int),
	}
	for _, e := range g.edges {
		stats.KindCount[e.Kind]++
	}
	first := true
	for id := range g.vertices {
		d := len(g.adjacency[id])
		if first {
			stats.MaxDegree, stats.MinDegree = d, d
			first = false
			continue
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		if d < stats.MinDegree {
			stats.MinDegree = d
		}
	}

	return &stats
}

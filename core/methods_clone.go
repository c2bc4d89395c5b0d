// File: methods_clone.go
// Role: Clone/CloneEmpty/InducedSubgraph — non-mutating copies of a Graph.
// Determinism:
//   - Edge IDs and insertion order are preserved; the edge counter is carried over
//     so later AddEdge calls on the copy never collide with copied IDs.
// Concurrency:
//   - Read locks on the source only; the result is a fresh, unshared instance.

package core

import "sync/atomic"

// CloneEmpty returns a graph with the same flags and vertices but no edges.
// Vertex Metadata maps are shared with the source.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	out := NewGraph()
	out.weighted = g.weighted

	g.muVert.RLock()
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.adjacency[id] = make(map[string]string)
	}
	g.muVert.RUnlock()

	return out
}

// Clone returns a copy with identical vertices and edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns the subgraph induced by keep: vertices with
// keep[v]==true and every edge with both endpoints kept. A nil keep map
// keeps everything. The input graph is not mutated.
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	kept := func(id string) bool { return keep == nil || keep[id] }

	out := NewGraph()
	out.weighted = g.weighted

	g.muVert.RLock()
	for id, v := range g.vertices {
		if kept(id) {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacency[id] = make(map[string]string)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	next := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		if !kept(e.From) || !kept(e.To) {
			continue
		}
		ne := *e
		out.edges[eid] = &ne
		out.adjacency[ne.From][ne.To] = eid
		out.adjacency[ne.To][ne.From] = eid
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, next)

	return out
}

// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links and visit order.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from one start vertex.
//   - MultiSource seeds the queue with a whole vertex set at depth 0; the
//     embedding heuristic uses it to measure the distance from an existing
//     chain to every free hardware node in one pass.
//   - Result carries Order, Depth, Parent and Root (the start vertex each
//     reached vertex descends from); PathTo rebuilds a path back to that root.
//   - WithFilterNeighbor prunes individual edges, which is how callers
//     restrict a search to unoccupied hardware nodes.
//
// Determinism
//
//	core.NeighborIDs returns IDs in natural order, so the visit sequence and
//	the BFS forest are fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.MultiSource(hw.Graph, chain,
//	    bfs.WithFilterNeighbor(func(_, nbr string) bool { return !used[nbr] }),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrNoStart, ErrStartVertexNotFound, ErrOptionViolation
//	}
//	path, _ := res.PathTo(target)
package bfs

// Package core provides the thread-safe, in-memory simple undirected Graph used
// by every other qubogrid package: logical QUBO interaction graphs and the
// clique-tiled hardware graphs they are embedded into.
//
// The Graph G = (V,E) guarantees:
//
//   - No self-loops (ErrLoopNotAllowed) and no parallel edges (ErrMultiEdgeNotAllowed).
//   - Every edge endpoint is a registered vertex (AddEdge auto-registers endpoints).
//   - Optional integer weights (WithWeighted); unweighted graphs reject weight≠0.
//   - A per-edge Kind tag (WithEdgeKind) distinguishing intra-group from
//     inter-group hardware couplers.
//   - Deterministic iteration: Vertices()/NeighborIDs() in natural ID order
//     ("2" before "10"), Edges() in insertion order.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Core Methods:
//
//	AddVertex(id string) error                                   // O(1)
//	AddEdge(from, to string, w int64, opts ...EdgeOption) (string, error) // O(1)
//	HasEdge(u, v string) bool                                    // O(1)
//	NeighborIDs(id string) ([]string, error)                     // O(d log d)
//	Degree(id string) (int, error)                               // O(1)
//	DegreeSequence() []int                                       // O(V log V)
//	Clone() / CloneEmpty() / InducedSubgraph(g, keep)            // O(V+E)
//
// Quick ASCII example:
//
//	0───1
//	│   │
//	3───2
//
// is the 2-regular graph on four vertices produced for N=4, d=0.5.
package core

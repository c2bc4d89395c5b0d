// SPDX-License-Identifier: MIT
// Package: qubogrid/embed
//
// types.go — embeddings, edge lists and the solver capability.

package embed

import (
	"time"

	"github.com/katalvlaran/qubogrid/core"
	"github.com/katalvlaran/qubogrid/hardware"
)

// Chain is the set of hardware nodes representing one logical vertex,
// kept sorted.
type Chain []string

// Embedding maps a logical vertex ID to its chain.
type Embedding map[string]Chain

// Pair is one undirected edge as handed to a Solver.
type Pair struct {
	U, V string
}

// Solver finds a minor embedding of logical into target. An empty result
// with a nil error means "not found"; a non-nil error aborts the search.
type Solver interface {
	FindEmbedding(logical, target []Pair) (Embedding, error)
}

// SolverFunc adapts a plain function to Solver.
type SolverFunc func(logical, target []Pair) (Embedding, error)

// FindEmbedding calls f.
func (f SolverFunc) FindEmbedding(logical, target []Pair) (Embedding, error) {
	return f(logical, target)
}

// Attempt describes one hardware size tried by the driver.
type Attempt struct {
	Index    int
	Size     int
	Shape    hardware.Shape
	Nodes    int // hardware node count
	Found    bool
	Duration time.Duration
}

// Result is a successful search.
type Result struct {
	Embedding Embedding
	Hardware  *hardware.Topology
	Size      int
	Tried     []int
}

// EdgePairs lists g's edges in edge-ID order.
func EdgePairs(g *core.Graph) []Pair {
	edges := g.Edges()
	out := make([]Pair, len(edges))
	for i, e := range edges {
		out[i] = Pair{U: e.From, V: e.To}
	}

	return out
}

// Clone deep-copies the embedding.
func (e Embedding) Clone() Embedding {
	out := make(Embedding, len(e))
	for k, c := range e {
		out[k] = append(Chain(nil), c...)
	}

	return out
}

// Keys lists the logical vertices in natural ID order.
func (e Embedding) Keys() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	core.SortIDs(out)

	return out
}

// Qubits is the total number of hardware nodes used.
func (e Embedding) Qubits() int {
	n := 0
	for _, c := range e {
		n += len(c)
	}

	return n
}

// MaxChain is the length of the longest chain, 0 when empty.
func (e Embedding) MaxChain() int {
	top := 0
	for _, c := range e {
		if len(c) > top {
			top = len(c)
		}
	}

	return top
}

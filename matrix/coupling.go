// SPDX-License-Identifier: MIT
// Package: qubogrid/matrix
//
// coupling.go — upper-triangular QUBO matrix of a logical graph.
//
// Contract:
//   - Index lists the vertices in core.SortIDs order; row i is Index[i].
//   - For every edge {u, v} with i = pos(u) < j = pos(v), Q[i][j] holds the
//     edge weight, or 1 on unweighted graphs. Q[j][i] and the diagonal stay 0.
//
// Complexity:
//   - Time O(V² + E), Space O(V²).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/qubogrid/core"
)

// Coupling is the QUBO matrix Q of a logical graph, E(x) = Σ_{i≤j} Q_ij x_i x_j.
type Coupling struct {
	Index []string
	Q     *Dense
	pos   map[string]int
}

// NewCoupling builds the coupling matrix of g.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrInvalidDimensions if g has no vertices.
func NewCoupling(g *core.Graph) (*Coupling, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	q, err := NewDense(len(ids), len(ids))
	if err != nil {
		return nil, fmt.Errorf("NewCoupling: %w", err)
	}
	c := &Coupling{Index: ids, Q: q, pos: make(map[string]int, len(ids))}
	for i, id := range ids {
		c.pos[id] = i
	}

	weighted := g.Weighted()
	for _, e := range g.Edges() {
		i, j := c.pos[e.From], c.pos[e.To]
		if i > j {
			i, j = j, i
		}
		w := 1.0
		if weighted {
			w = float64(e.Weight)
		}
		if err = q.Add(i, j, w); err != nil {
			return nil, fmt.Errorf("NewCoupling: %w", err)
		}
	}

	return c, nil
}

// IndexOf returns the row of vertex id.
func (c *Coupling) IndexOf(id string) (int, error) {
	i, ok := c.pos[id]
	if !ok {
		return 0, fmt.Errorf("IndexOf(%q): %w", id, ErrUnknownVertex)
	}

	return i, nil
}

// Between returns the coupling of u and v regardless of argument order.
func (c *Coupling) Between(u, v string) (float64, error) {
	i, err := c.IndexOf(u)
	if err != nil {
		return 0, err
	}
	j, err := c.IndexOf(v)
	if err != nil {
		return 0, err
	}
	if i > j {
		i, j = j, i
	}

	return c.Q.At(i, j)
}

// Energy evaluates Σ_{i≤j} Q_ij x_i x_j for a binary assignment in Index order.
//
// Errors:
//   - ErrDimensionMismatch if len(x) differs from the number of variables.
//   - ErrNotBinary if some x_i is neither 0 nor 1.
func (c *Coupling) Energy(x []int) (float64, error) {
	n := len(c.Index)
	if len(x) != n {
		return 0, fmt.Errorf("Energy: len %d, want %d: %w", len(x), n, ErrDimensionMismatch)
	}
	for i, v := range x {
		if v != 0 && v != 1 {
			return 0, fmt.Errorf("Energy: x[%d]=%d: %w", i, v, ErrNotBinary)
		}
	}
	var e float64
	for i := 0; i < n; i++ {
		if x[i] == 0 {
			continue
		}
		row := c.Q.data[i*n : (i+1)*n]
		for j := i; j < n; j++ {
			if x[j] == 1 {
				e += row[j]
			}
		}
	}

	return e, nil
}

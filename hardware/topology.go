// SPDX-License-Identifier: MIT
// Package: qubogrid/hardware
//
// topology.go — grid and line of k-cliques.
//
// Contract:
//   • Every group is a clique on GroupSize nodes (KindIntra edges).
//   • Adjacent groups are joined by all GroupSize² pairs (KindInter edges).
//   • No edge crosses non-adjacent groups; grid adjacency has no wraparound
//     and no diagonals.
//
// Emission order:
//   • Cliques for every group in (X asc, Y asc) order, then for each group
//     in the same order its right (X+1) and down (Y+1) bicliques. Each
//     adjacent pair is therefore emitted exactly once.
//
// Complexity:
//   • Grid: n²·k nodes, n²·k(k−1)/2 + 2n(n−1)·k² edges.
//   • Line: n·k nodes, n·k(k−1)/2 + (n−1)·k² edges.

package hardware

import (
	"fmt"

	"github.com/katalvlaran/qubogrid/builder"
	"github.com/katalvlaran/qubogrid/core"
)

// Topology is an immutable hardware graph plus the geometry that produced it.
type Topology struct {
	Shape     Shape
	Size      int
	GroupSize int
	Graph     *core.Graph

	offsets [][2]int
}

// GridOfCliques builds an n×n grid of groupSize-cliques.
func GridOfCliques(n, groupSize int) (*Topology, error) {
	return Build(ShapeGrid, n, groupSize)
}

// LineOfCliques builds numGroups groupSize-cliques in a row.
func LineOfCliques(numGroups, groupSize int) (*Topology, error) {
	return Build(ShapeLine, numGroups, groupSize)
}

// Build constructs the topology of the given shape.
// Errors: ErrUnknownShape, ErrInvalidSize; builder errors wrapped.
func Build(shape Shape, size, groupSize int) (*Topology, error) {
	const method = "Build"
	t := &Topology{Shape: shape, Size: size, GroupSize: groupSize}
	switch shape {
	case ShapeGrid:
		t.offsets = [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	case ShapeLine:
		t.offsets = [][2]int{{1, 0}, {-1, 0}}
	default:
		return nil, fmt.Errorf("%s: %q: %w", method, shape, ErrUnknownShape)
	}
	if size < 1 || groupSize < 1 {
		return nil, fmt.Errorf("%s: size=%d group_size=%d: %w", method, size, groupSize, ErrInvalidSize)
	}

	groups := t.Groups()
	cons := make([]builder.Constructor, 0, 3*len(groups))
	for _, c := range groups {
		cons = append(cons, builder.Clique(t.GroupNodes(c), core.KindIntra))
	}
	for _, c := range groups {
		// only the forward half of the offsets, so each pair appears once
		for _, d := range t.offsets[:len(t.offsets)/2] {
			nb := Coord{X: c.X + d[0], Y: c.Y + d[1]}
			if t.InBounds(nb) {
				cons = append(cons, builder.Biclique(t.GroupNodes(c), t.GroupNodes(nb), core.KindInter))
			}
		}
	}

	g, err := builder.BuildGraph(nil, nil, cons...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	t.Graph = g

	return t, nil
}

// InBounds reports whether c is a group of this topology.
func (t *Topology) InBounds(c Coord) bool {
	if t.Shape == ShapeLine {
		return c.Y == 0 && c.X >= 0 && c.X < t.Size
	}

	return c.X >= 0 && c.X < t.Size && c.Y >= 0 && c.Y < t.Size
}

// Groups lists group coordinates in (X asc, Y asc) order.
func (t *Topology) Groups() []Coord {
	if t.Shape == ShapeLine {
		out := make([]Coord, t.Size)
		for x := range out {
			out[x] = Coord{X: x}
		}
		return out
	}
	out := make([]Coord, 0, t.Size*t.Size)
	for x := 0; x < t.Size; x++ {
		for y := 0; y < t.Size; y++ {
			out = append(out, Coord{X: x, Y: y})
		}
	}

	return out
}

// Neighbors lists the groups adjacent to c, in offset order.
func (t *Topology) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(t.offsets))
	for _, d := range t.offsets {
		nb := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if t.InBounds(nb) {
			out = append(out, nb)
		}
	}

	return out
}

// Adjacent reports whether two distinct groups share inter-group couplers.
func (t *Topology) Adjacent(a, b Coord) bool {
	if !t.InBounds(a) || !t.InBounds(b) {
		return false
	}
	dx, dy := a.X-b.X, a.Y-b.Y

	return dx*dx+dy*dy == 1
}

// NodeID renders n in this topology's ID scheme.
func (t *Topology) NodeID(n Node) string {
	if t.Shape == ShapeLine {
		return lineID(n.Group, n.Slot)
	}

	return gridID(n.Group, n.Slot)
}

// ParseNode is the inverse of NodeID. It also rejects nodes outside the
// topology.
func (t *Topology) ParseNode(id string) (Node, error) {
	var n Node
	if t.Shape == ShapeLine {
		f, err := parseFields(id, 2)
		if err != nil {
			return Node{}, err
		}
		n = Node{Group: Coord{X: f[0]}, Slot: f[1]}
	} else {
		f, err := parseFields(id, 3)
		if err != nil {
			return Node{}, err
		}
		n = Node{Group: Coord{X: f[0], Y: f[1]}, Slot: f[2]}
	}
	if !t.InBounds(n.Group) || n.Slot >= t.GroupSize {
		return Node{}, fmt.Errorf("%q outside %s size=%d group_size=%d: %w", id, t.Shape, t.Size, t.GroupSize, ErrBadNodeID)
	}

	return n, nil
}

// GroupNodes lists the vertex IDs of group c in slot order.
func (t *Topology) GroupNodes(c Coord) []string {
	out := make([]string, t.GroupSize)
	for s := range out {
		out[s] = t.NodeID(Node{Group: c, Slot: s})
	}

	return out
}

// Nodes lists every vertex ID, group by group in Groups() order.
func (t *Topology) Nodes() []string {
	out := make([]string, 0, t.NodeCount())
	for _, c := range t.Groups() {
		out = append(out, t.GroupNodes(c)...)
	}

	return out
}

// NodeCount is the number of hardware nodes.
func (t *Topology) NodeCount() int {
	if t.Shape == ShapeLine {
		return t.Size * t.GroupSize
	}

	return t.Size * t.Size * t.GroupSize
}

// SPDX-License-Identifier: MIT
// Package: qubogrid/dfs
//
// dfs.go — iterative depth-first walk and connected components.
//
// Contract:
//   - Neighbours are expanded in core.SortIDs order, so Order is deterministic.
//   - The walk uses an explicit stack; deep graphs do not grow the goroutine stack.
//
// Complexity:
//   - Time O(V + E log d), Space O(V).

package dfs

import (
	"fmt"

	"github.com/katalvlaran/qubogrid/core"
)

// frame is one stack entry: a vertex and the index of its next neighbour.
type frame struct {
	id    string
	nbrs  []string
	next  int
	depth int
}

// DFS walks g from start in pre-order.
func DFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("DFS: %q: %w", start, ErrStartVertexNotFound)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{
		Depth:  make(map[string]int),
		Parent: make(map[string]string),
	}
	if err := walk(g, start, &o, res); err != nil {
		return nil, err
	}

	return res, nil
}

// walk runs one tree of the forest into res, skipping vertices already in res.Depth.
func walk(g *core.Graph, start string, o *Options, res *Result) error {
	visit := func(id string, depth int) ([]string, error) {
		res.Order = append(res.Order, id)
		res.Depth[id] = depth
		if o.OnVisit != nil {
			if err := o.OnVisit(id, depth); err != nil {
				return nil, err
			}
		}
		if o.MaxDepth >= 0 && depth >= o.MaxDepth {
			return nil, nil
		}
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("DFS: %w", err)
		}

		return nbrs, nil
	}

	nbrs, err := visit(start, 0)
	if err != nil {
		return err
	}
	stack := []*frame{{id: start, nbrs: nbrs}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			stack = stack[:len(stack)-1]
			continue
		}
		nb := top.nbrs[top.next]
		top.next++
		if _, seen := res.Depth[nb]; seen {
			continue
		}
		if o.FilterNeighbor != nil && !o.FilterNeighbor(nb) {
			continue
		}
		res.Parent[nb] = top.id
		if nbrs, err = visit(nb, top.depth+1); err != nil {
			return err
		}
		stack = append(stack, &frame{id: nb, nbrs: nbrs, depth: top.depth + 1})
	}

	return nil
}

// Components returns the connected components of g. Components are ordered
// by their smallest vertex ID and list their members in pre-order from it.
// An empty graph has no components.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	res := &Result{
		Depth:  make(map[string]int),
		Parent: make(map[string]string),
	}
	o := DefaultOptions()
	var out [][]string
	for _, v := range g.Vertices() {
		if res.Visited(v) {
			continue
		}
		from := len(res.Order)
		if err := walk(g, v, &o, res); err != nil {
			return nil, err
		}
		out = append(out, append([]string(nil), res.Order[from:]...))
	}

	return out, nil
}

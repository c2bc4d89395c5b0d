// SPDX-License-Identifier: MIT
// Package: qubogrid/bfs
//
// bfs.go — single- and multi-source breadth-first traversal.
//
// Determinism:
//   - Start vertices are enqueued in the order given (duplicates ignored).
//   - Neighbors are expanded in core's natural ID order.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/qubogrid/core"
)

type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable traversal state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from startID.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation or a
// wrapped OnVisit error.
// Complexity: O(V + E).
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	return MultiSource(g, []string{startID}, opts...)
}

// MultiSource runs one breadth-first search seeded with every vertex in
// starts at depth 0. Depth then holds the distance to the nearest start and
// Root names which start claimed each vertex (earlier starts win ties).
// Complexity: O(V + E).
func MultiSource(g *core.Graph, starts []string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(starts) == 0 {
		return nil, ErrNoStart
	}
	for _, s := range starts {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, s)
		}
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			Root:   make(map[string]string, n),
		},
	}
	for _, s := range starts {
		if w.res.Reached(s) {
			continue
		}
		w.enqueue(s, 0, "", s)
	}

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent, root string) {
	w.res.Depth[id] = d
	w.res.Root[id] = root
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it is empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen, unfiltered neighbor within MaxDepth.
func (w *walker) expand(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	root := w.res.Root[item.id]
	for _, nbr := range neighbors {
		if w.res.Reached(nbr) || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.id, root)
	}

	return nil
}

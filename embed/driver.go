// SPDX-License-Identifier: MIT
// Package: qubogrid/embed
//
// driver.go — search loop growing the hardware until the solver succeeds.
//
// Contract:
//   • Attempt i builds hardware of size min(MaxSize, n0+Schedule[i]).
//   • First non-empty, valid embedding wins; no further sizes are tried.
//   • A non-empty but invalid solver result stops the search with
//     ErrInvalidEmbedding.
//   • Isolated logical vertices never reach the solver; they are placed on
//     free hardware nodes afterwards. An edgeless logical graph skips the
//     solver entirely.
//   • Every attempt is reported to OnAttempt; Tried keeps repeated sizes
//     once the cap is hit, so len(Tried) == len(Schedule) on failure.

package embed

import (
	"fmt"
	"time"

	"github.com/katalvlaran/qubogrid/core"
	"github.com/katalvlaran/qubogrid/hardware"
)

// Driver runs embedding searches with a fixed solver and configuration.
// A Driver holds no per-search state and may be reused.
type Driver struct {
	solver Solver
	opts   Options
}

// NewDriver binds solver and options. Option errors are reported by Search.
func NewDriver(solver Solver, opts ...Option) *Driver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Driver{solver: solver, opts: o}
}

// Options returns a copy of the resolved configuration.
func (d *Driver) Options() Options {
	o := d.opts
	o.Schedule = append([]int(nil), d.opts.Schedule...)

	return o
}

// Search tries the schedule starting from size n0.
// Errors: ErrOptionViolation, ErrNilSolver, ErrGraphNil,
// hardware.ErrInvalidSize, ErrInvalidEmbedding, a wrapped solver error, or
// *NotFoundError.
func (d *Driver) Search(logical *core.Graph, n0 int) (*Result, error) {
	return d.run("Search", logical, n0, d.opts.Schedule, true)
}

// SearchFixed tries exactly size n once. MaxSize does not apply.
func (d *Driver) SearchFixed(logical *core.Graph, n int) (*Result, error) {
	return d.run("SearchFixed", logical, n, []int{0}, false)
}

// run walks schedule from n0; capped clamps each size at MaxSize.
func (d *Driver) run(method string, logical *core.Graph, n0 int, schedule []int, capped bool) (*Result, error) {
	if d.opts.err != nil {
		return nil, fmt.Errorf("%s: %w", method, d.opts.err)
	}
	if d.solver == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilSolver)
	}
	if logical == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrGraphNil)
	}
	if n0 < 1 {
		return nil, fmt.Errorf("%s: n0=%d: %w", method, n0, hardware.ErrInvalidSize)
	}

	pairs := EdgePairs(logical)
	tried := make([]int, 0, len(schedule))
	for i, inc := range schedule {
		size := n0 + inc
		if capped && size > d.opts.MaxSize {
			size = d.opts.MaxSize
		}
		tried = append(tried, size)

		start := time.Now()
		hw, emb, err := d.attempt(logical, pairs, size)
		d.opts.OnAttempt(Attempt{
			Index:    i,
			Size:     size,
			Shape:    d.opts.Shape,
			Nodes:    nodeCount(hw),
			Found:    err == nil && emb != nil,
			Duration: time.Since(start),
		})
		if err != nil {
			return nil, fmt.Errorf("%s: size %d: %w", method, size, err)
		}
		if emb != nil {
			return &Result{Embedding: emb, Hardware: hw, Size: size, Tried: tried}, nil
		}
	}

	return nil, fmt.Errorf("%s: %w", method, &NotFoundError{Tried: tried})
}

// attempt returns (hw, nil, nil) when nothing was found at this size.
func (d *Driver) attempt(logical *core.Graph, pairs []Pair, size int) (*hardware.Topology, Embedding, error) {
	hw, err := hardware.Build(d.opts.Shape, size, d.opts.GroupSize)
	if err != nil {
		return nil, nil, err
	}

	emb := Embedding{}
	if len(pairs) > 0 {
		found, err := d.solver.FindEmbedding(pairs, EdgePairs(hw.Graph))
		if err != nil {
			return hw, nil, fmt.Errorf("solver: %w", err)
		}
		if len(found) == 0 {
			return hw, nil, nil
		}
		emb = normalize(found)
	}
	if !placeIsolated(logical, hw, emb) {
		return hw, nil, nil
	}
	if err := Validate(logical, hw.Graph, emb); err != nil {
		return hw, nil, err
	}

	return hw, emb, nil
}

// placeIsolated gives each degree-0 logical vertex without a chain one free node,
// scanning hardware nodes in group order. Reports false when hw runs out.
func placeIsolated(logical *core.Graph, hw *hardware.Topology, emb Embedding) bool {
	used := make(map[string]bool, emb.Qubits())
	for _, c := range emb {
		for _, q := range c {
			used[q] = true
		}
	}
	free := hw.Nodes()
	next := 0
	for _, v := range logical.Vertices() {
		if len(emb[v]) > 0 || logicalDegree(logical, v) > 0 {
			continue
		}
		for next < len(free) && used[free[next]] {
			next++
		}
		if next == len(free) {
			return false
		}
		emb[v] = Chain{free[next]}
		next++
	}

	return true
}

// normalize copies the solver output with sorted chains.
func normalize(e Embedding) Embedding {
	out := e.Clone()
	for _, c := range out {
		core.SortIDs(c)
	}

	return out
}

func nodeCount(hw *hardware.Topology) int {
	if hw == nil {
		return 0
	}

	return hw.NodeCount()
}

func logicalDegree(g *core.Graph, v string) int {
	d, err := g.Degree(v)
	if err != nil {
		return 0
	}

	return d
}

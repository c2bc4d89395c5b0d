// SPDX-License-Identifier: MIT
// Package: qubogrid/dfs
//
// types.go — sentinels, options and the traversal result.

package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures a traversal.
type Option func(*Options)

// Options holds the traversal parameters.
type Options struct {
	// OnVisit is called in pre-order; a non-nil error aborts the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth limits the walk; negative means unlimited, 0 visits the start only.
	MaxDepth int

	// FilterNeighbor returns false for neighbours that must not be entered.
	FilterNeighbor func(id string) bool
}

// DefaultOptions returns unlimited depth with no hooks or filters.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth bounds the walk at limit edges from the start.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbours for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// Result captures one traversal.
type Result struct {
	// Order lists vertices in discovery (pre-order).
	Order []string

	// Depth maps each visited vertex to its tree depth.
	Depth map[string]int

	// Parent maps each visited vertex except the start to its tree parent.
	Parent map[string]string
}

// Visited reports whether id was reached.
func (r *Result) Visited(id string) bool {
	_, ok := r.Depth[id]

	return ok
}

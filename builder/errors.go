// SPDX-License-Identifier: MIT
// Package: qubogrid/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates a size or degree parameter outside its domain
// (n < 1, d ≥ n, n·d odd, ...).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand (set WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its strategies
// (e.g. RandomRegular restarts) or received a nil constructor or graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrNotGraphical indicates that HavelHakimi received a degree sequence no
// simple graph realizes.
var ErrNotGraphical = errors.New("builder: degree sequence is not graphical")

// ErrDuplicateID indicates repeated vertex IDs inside one Clique/Biclique call.
var ErrDuplicateID = errors.New("builder: duplicate vertex id")

// SPDX-License-Identifier: MIT
// Package: qubogrid/embed
//
// errors.go — sentinel errors and the NotFoundError carrier.

package embed

import (
	"errors"
	"fmt"
)

// Sentinel errors for the embedding driver.
var (
	// ErrEmbeddingNotFound is matched by *NotFoundError.
	ErrEmbeddingNotFound = errors.New("embed: embedding not found")

	// ErrInvalidEmbedding wraps every validation failure below.
	ErrInvalidEmbedding = errors.New("embed: invalid embedding")

	// ErrMissingChain: a logical vertex has no chain or an empty one.
	ErrMissingChain = errors.New("embed: missing chain")

	// ErrUnknownNode: a chain names a hardware node that does not exist, or
	// the embedding names a logical vertex that does not exist.
	ErrUnknownNode = errors.New("embed: unknown node")

	// ErrChainOverlap: a hardware node belongs to two chains.
	ErrChainOverlap = errors.New("embed: chains overlap")

	// ErrChainDisconnected: a chain does not induce a connected subgraph.
	ErrChainDisconnected = errors.New("embed: chain not connected")

	// ErrEdgeNotCovered: a logical edge has no hardware edge between its chains.
	ErrEdgeNotCovered = errors.New("embed: logical edge not covered")

	// ErrOptionViolation is returned by Search when an Option was invalid.
	ErrOptionViolation = errors.New("embed: invalid option supplied")

	// ErrNilSolver is returned by Search when the driver has no solver.
	ErrNilSolver = errors.New("embed: solver is nil")

	// ErrGraphNil is returned when a nil logical or hardware graph is passed.
	ErrGraphNil = errors.New("embed: graph is nil")
)

// NotFoundError reports every hardware size tried, in attempt order.
type NotFoundError struct {
	Tried []int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s; tried sizes n=%v", ErrEmbeddingNotFound, e.Tried)
}

// Is matches ErrEmbeddingNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrEmbeddingNotFound
}

// invalid joins ErrInvalidEmbedding with a specific cause.
func invalid(cause error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidEmbedding, cause, fmt.Sprintf(format, args...))
}

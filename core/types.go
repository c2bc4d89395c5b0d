// SPDX-License-Identifier: MIT
// Package: qubogrid/core
//
// types.go — Vertex, Edge, Graph, options, sentinel errors and NewGraph.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop attempted (graphs are always simple).
//	ErrMultiEdgeNotAllowed - second edge between the same pair of vertices.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// EdgeKind tags an edge with its structural role inside a hardware topology.
type EdgeKind string

const (
	// KindNone is the zero kind used by logical (QUBO) graphs.
	KindNone EdgeKind = ""
	// KindIntra marks an edge inside one clique group.
	KindIntra EdgeKind = "intra"
	// KindInter marks an edge between two adjacent groups.
	KindInter EdgeKind = "inter"
)

// Vertex represents a node in the graph.
//
// Metadata stores arbitrary key-value data and is shared on Clone.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents an undirected connection between two vertices.
//
// From/To keep the endpoint order used at insertion time; the edge is
// nevertheless symmetric and HasEdge(From,To) == HasEdge(To,From).
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// Weight is the coupling strength; always 0 on unweighted graphs.
	Weight int64

	// Kind is the structural tag (intra/inter) or KindNone.
	Kind EdgeKind

	seq uint64 // insertion sequence number, drives Edges() ordering
}

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeKind tags the new edge with the given kind.
func WithEdgeKind(kind EdgeKind) EdgeOption {
	return func(e *Edge) { e.Kind = kind }
}

// Graph is a simple undirected graph: no self-loops, no parallel edges,
// every edge endpoint is a registered vertex.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	weighted bool // allow non-zero weights

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edge ID; mirrored for both endpoints.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is unweighted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search on undirected core.Graph values.
//
//   - DFS(g, start, opts...) walks one tree in pre-order, with a visit hook,
//     a depth limit and a neighbour filter.
//   - Components(g) splits g into connected components.
//
// The logical-graph summary uses Components to report how many pieces a
// generated QUBO graph falls into; the embedding heuristic places each piece
// separately.
//
// Errors:
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if start is missing.
//   - any error returned by the OnVisit hook.
package dfs

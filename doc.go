// SPDX-License-Identifier: MIT

// Package qubogrid generates QUBO interaction graphs, builds clique-tiled
// hardware graphs and searches for minor embeddings of the former into the
// latter.
//
// Layout:
//
//	core/     — thread-safe undirected Graph, Vertex, Edge with edge kinds
//	bfs/      — breadth-first and multi-source search with path recovery
//	dfs/      — depth-first walk and connected components
//	builder/  — cliques, bicliques, Havel–Hakimi and random regular graphs
//	degseq/   — degree sequences, Erdős–Gallai test, probabilistic sequences
//	qubo/     — deterministic and probabilistic QUBO graph generation
//	matrix/   — dense matrices and the QUBO coupling matrix
//	hardware/ — grid and line of cliques, node IDs, layouts
//	embed/    — embedding validation, greedy solver, adaptive search driver
//	metrics/  — Prometheus registry for generation and embedding runs
//	config/   — YAML run configuration with validation
//	report/   — JSON, YAML and msgpack run reports
//	cmd/qubogrid — the command-line front end
//
// A grid of 2×2 groups with three nodes each:
//
//	[g:0:1] ─── [g:1:1]
//	   │           │
//	[g:0:0] ─── [g:1:0]
//
// Every group is a K3; every ─── is a complete K3,3 between two groups.
//
//	go install github.com/katalvlaran/qubogrid/cmd/qubogrid@latest
package qubogrid

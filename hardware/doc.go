// SPDX-License-Identifier: MIT

// Package hardware builds the target topologies for minor embedding: a
// square grid of k-cliques and a line of k-cliques.
//
// Nodes carry composite identities (group coordinate, slot) rendered into
// vertex IDs "g:X:Y:S" on a grid and "g:X:S" on a line; Topology.ParseNode
// inverts the rendering. Intra-group edges are tagged core.KindIntra and
// inter-group couplers core.KindInter, so callers can tell them apart
// without re-deriving the geometry.
//
// Construction goes through builder.BuildGraph with one Clique per group and
// one Biclique per adjacent group pair; the resulting *core.Graph is
// unweighted and treated as immutable once returned.
//
// Layout helpers produce plain coordinates for a renderer; nothing in this
// package draws.
package hardware

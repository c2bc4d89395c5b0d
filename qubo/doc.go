// Package qubo generates logical QUBO interaction graphs with a controllable
// degree structure.
//
// Run combines a degree policy from degseq with a realizer from builder:
//
//	deterministic: k = round(clip(d)·(N−1)), random k-regular graph
//	probabilistic: per-vertex degrees drawn around d, repaired, tested with
//	               Erdős–Gallai, realized by Havel–Hakimi
//
// Every call owns one *rand.Rand seeded from Params.Seed, so identical
// Params always reproduce the same graph and concurrent callers never share
// generator state.
//
// Couplings optionally attach ±1 (or +1) weights to the edges; they are drawn
// after the topology and never change it.
package qubo

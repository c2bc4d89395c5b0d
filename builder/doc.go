// Package builder realizes graphs from compact descriptions using the
// functional-options style shared across qubogrid.
//
// Components:
//
//   - Configuration primitives:
//     – BuilderOption:  mutates builderConfig before use.
//     – builderConfig:  RNG, ID scheme and weight policy.
//   - Constructors (func(*core.Graph, builderConfig) error):
//     – RandomRegular(n, d): random d-regular graph by stub pairing.
//     – HavelHakimi(seq):    deterministic realization of a graphical sequence.
//     – Clique(ids, kind):   complete graph over explicit IDs.
//     – Biclique(l, r, kind): complete bipartite edge set.
//   - ID schemes (IDFn): DefaultIDFn, VariableIDFn.
//   - Weight policies (WeightFn): ConstantWeightFn, SignWeightFn, UniformIntWeightFn.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Weights are drawn after the topology is decided, so turning weights
//     on never changes which edges a seed produces.
//   - Option constructors panic on meaningless inputs; constructors return
//     sentinel errors and never panic.
//
// Example:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithWeighted()},
//	    []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(7))), builder.WithWeightFn(builder.SignWeightFn)},
//	    builder.HavelHakimi([]int{3, 3, 2, 1, 1}),
//	)
package builder

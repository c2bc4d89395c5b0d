// SPDX-License-Identifier: MIT

// Package embed searches for a minor embedding of a logical graph into
// clique-tiled hardware, growing the hardware when the solver fails.
//
// What
//
//   - Driver.Search tries hardware sizes min(MaxSize, n0+inc) for each inc in
//     the schedule (default 0,1,2,3,4,6,8) and returns the first success.
//   - Driver.SearchFixed tries one size and no more.
//   - Validate checks the embedding invariants: every logical vertex has a
//     non-empty chain, chains are disjoint and connected, and every logical
//     edge is covered by a hardware edge between the two chains.
//   - Solver is the injected heuristic. Greedy is a small chain-growing
//     solver built on bfs.MultiSource; any other implementation, including
//     test fakes via SolverFunc, plugs in the same way.
//
// Errors
//
//	*NotFoundError (matches ErrEmbeddingNotFound) carries every size tried.
//	Validation failures match ErrInvalidEmbedding and one specific cause.
//	Invalid options surface as ErrOptionViolation when Search runs.
//
// Concurrency
//
//	A Driver is immutable after NewDriver and may be shared. The solver is
//	called synchronously and cannot be interrupted mid-attempt.
//
// Usage
//
//	drv := embed.NewDriver(embed.NewGreedy(embed.GreedyOptions{Seed: 1}),
//	    embed.WithGroupSize(3),
//	    embed.WithOnAttempt(func(a embed.Attempt) { log.Printf("n=%d found=%v", a.Size, a.Found) }),
//	)
//	res, err := drv.Search(logical, 6)
package embed

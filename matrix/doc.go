// SPDX-License-Identifier: MIT

// Package matrix offers a dense matrix and the QUBO coupling matrix of a
// logical graph.
//
//   - Dense: row-major float64 storage with bounds- and NaN-checked access.
//   - NewCoupling(g): upper-triangular Q with one entry per interaction,
//     the form QUBO solvers consume.
//   - (*Coupling).Energy(x): objective value of a binary assignment.
//
// Matrices cost O(V²) memory; they suit the small logical graphs the
// generator produces, not hardware graphs.
package matrix

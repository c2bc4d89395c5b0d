// SPDX-License-Identifier: MIT
// Package: qubogrid/builder
//
// id_fn.go — vertex naming for index-based constructors (RandomRegular,
// HavelHakimi). Clique and Biclique take explicit IDs and ignore the scheme.

package builder

import "strconv"

// IDFn names the vertex with zero-based index idx. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn names QUBO variables by their decimal index: 0→"0", 42→"42".
// core.SortIDs orders these numerically.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// VariableIDFn names variables prefix+index, e.g. "x0", "x1". Negative
// indices keep their sign ("x-1"); constructors never produce them.
func VariableIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithVariablePrefix sets the ID scheme to VariableIDFn(prefix).
func WithVariablePrefix(prefix string) BuilderOption {
	return WithIDScheme(VariableIDFn(prefix))
}

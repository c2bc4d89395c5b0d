// SPDX-License-Identifier: MIT
// Package: qubogrid/qubo
//
// summary.go — degree histogram and structural summary of a logical graph.

package qubo

import (
	"github.com/katalvlaran/qubogrid/core"
	"github.com/katalvlaran/qubogrid/dfs"
)

// Summary describes the degree structure of a generated graph.
type Summary struct {
	Nodes     int     `json:"nodes" yaml:"nodes" msgpack:"nodes"`
	Edges     int     `json:"edges" yaml:"edges" msgpack:"edges"`
	MinDegree int     `json:"min_degree" yaml:"min_degree" msgpack:"min_degree"`
	MaxDegree int     `json:"max_degree" yaml:"max_degree" msgpack:"max_degree"`
	AvgDegree float64 `json:"avg_degree" yaml:"avg_degree" msgpack:"avg_degree"`
	// Density is 2E / (N(N−1)), 0 for N < 2.
	Density float64 `json:"density" yaml:"density" msgpack:"density"`
	// Components counts connected pieces, isolated vertices included.
	Components int `json:"components" yaml:"components" msgpack:"components"`
	// Positive and Negative count ±couplings on weighted graphs.
	Positive int `json:"positive,omitempty" yaml:"positive,omitempty" msgpack:"positive,omitempty"`
	Negative int `json:"negative,omitempty" yaml:"negative,omitempty" msgpack:"negative,omitempty"`
}

// DegreeHistogram returns h with h[k] = number of vertices of degree k,
// for k in 0..max degree. An empty graph yields nil.
func DegreeHistogram(g *core.Graph) []int {
	degrees := g.Degrees()
	if len(degrees) == 0 {
		return nil
	}
	top := 0
	for _, d := range degrees {
		if d > top {
			top = d
		}
	}
	h := make([]int, top+1)
	for _, d := range degrees {
		h[d]++
	}

	return h
}

// Summarize computes counts, degree extremes, average degree and density.
func Summarize(g *core.Graph) Summary {
	st := g.Stats()
	s := Summary{
		Nodes:     st.VertexCount,
		Edges:     st.EdgeCount,
		MinDegree: st.MinDegree,
		MaxDegree: st.MaxDegree,
	}
	if s.Nodes > 0 {
		s.AvgDegree = 2 * float64(s.Edges) / float64(s.Nodes)
	}
	if s.Nodes > 1 {
		s.Density = 2 * float64(s.Edges) / float64(s.Nodes*(s.Nodes-1))
	}
	if comps, err := dfs.Components(g); err == nil {
		s.Components = len(comps)
	}
	if g.Weighted() {
		for _, e := range g.Edges() {
			switch {
			case e.Weight > 0:
				s.Positive++
			case e.Weight < 0:
				s.Negative++
			}
		}
	}

	return s
}

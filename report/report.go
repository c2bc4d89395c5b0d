// SPDX-License-Identifier: MIT
// Package: qubogrid/report
//
// report.go — machine-readable record of one CLI run.

package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/qubogrid/core"
	"github.com/katalvlaran/qubogrid/embed"
	"github.com/katalvlaran/qubogrid/hardware"
	"github.com/katalvlaran/qubogrid/matrix"
	"github.com/katalvlaran/qubogrid/qubo"
)

// Report is what the CLI emits. Sections not produced by a command stay nil.
type Report struct {
	RunID     string    `json:"run_id" yaml:"run_id" msgpack:"run_id"`
	Command   string    `json:"command" yaml:"command" msgpack:"command"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at" msgpack:"created_at"`

	Logical  []*Logical `json:"logical,omitempty" yaml:"logical,omitempty" msgpack:"logical,omitempty"`
	Hardware *Hardware  `json:"hardware,omitempty" yaml:"hardware,omitempty" msgpack:"hardware,omitempty"`
	Embed    *Embedding `json:"embedding,omitempty" yaml:"embedding,omitempty" msgpack:"embedding,omitempty"`
}

// Logical records one generated graph.
type Logical struct {
	Params    qubo.Params  `json:"params" yaml:"params" msgpack:"params"`
	K         int          `json:"k,omitempty" yaml:"k,omitempty" msgpack:"k,omitempty"`
	Attempts  int          `json:"attempts" yaml:"attempts" msgpack:"attempts"`
	Sequence  []int        `json:"sequence" yaml:"sequence" msgpack:"sequence"`
	Summary   qubo.Summary `json:"summary" yaml:"summary" msgpack:"summary"`
	Histogram []int        `json:"degree_histogram" yaml:"degree_histogram" msgpack:"degree_histogram"`
	Edges     []Edge       `json:"edges" yaml:"edges" msgpack:"edges"`
	// Variables and QUBO are the upper-triangular coupling matrix, on request.
	Variables []string    `json:"variables,omitempty" yaml:"variables,omitempty" msgpack:"variables,omitempty"`
	QUBO      [][]float64 `json:"qubo,omitempty" yaml:"qubo,omitempty" msgpack:"qubo,omitempty"`
}

// Edge is one graph edge with its metadata.
type Edge struct {
	From   string `json:"from" yaml:"from" msgpack:"from"`
	To     string `json:"to" yaml:"to" msgpack:"to"`
	Weight int64  `json:"weight,omitempty" yaml:"weight,omitempty" msgpack:"weight,omitempty"`
	Kind   string `json:"kind,omitempty" yaml:"kind,omitempty" msgpack:"kind,omitempty"`
}

// Hardware records a target topology. Edges are only listed on request.
type Hardware struct {
	Shape     string                    `json:"shape" yaml:"shape" msgpack:"shape"`
	Size      int                       `json:"size" yaml:"size" msgpack:"size"`
	GroupSize int                       `json:"group_size" yaml:"group_size" msgpack:"group_size"`
	Nodes     int                       `json:"nodes" yaml:"nodes" msgpack:"nodes"`
	Intra     int                       `json:"intra_edges" yaml:"intra_edges" msgpack:"intra_edges"`
	Inter     int                       `json:"inter_edges" yaml:"inter_edges" msgpack:"inter_edges"`
	Edges     []Edge                    `json:"edges,omitempty" yaml:"edges,omitempty" msgpack:"edges,omitempty"`
	Positions map[string]hardware.Point `json:"positions,omitempty" yaml:"positions,omitempty" msgpack:"positions,omitempty"`
}

// Embedding records a search outcome.
type Embedding struct {
	Found    bool                `json:"found" yaml:"found" msgpack:"found"`
	Size     int                 `json:"size,omitempty" yaml:"size,omitempty" msgpack:"size,omitempty"`
	Tried    []int               `json:"tried" yaml:"tried" msgpack:"tried"`
	Qubits   int                 `json:"qubits,omitempty" yaml:"qubits,omitempty" msgpack:"qubits,omitempty"`
	MaxChain int                 `json:"max_chain,omitempty" yaml:"max_chain,omitempty" msgpack:"max_chain,omitempty"`
	Chains   map[string][]string `json:"chains,omitempty" yaml:"chains,omitempty" msgpack:"chains,omitempty"`
}

// New starts a report with a fresh run ID.
func New(command string) *Report {
	return &Report{
		RunID:     uuid.New().String(),
		Command:   command,
		CreatedAt: time.Now().UTC(),
	}
}

// AddLogical appends a generated graph; withMatrix also records its QUBO
// coupling matrix.
func (r *Report) AddLogical(res *qubo.Result, withMatrix bool) error {
	l := &Logical{
		Params:    res.Params,
		K:         res.K,
		Attempts:  res.Attempts,
		Sequence:  append([]int(nil), res.Sequence...),
		Summary:   qubo.Summarize(res.Graph),
		Histogram: qubo.DegreeHistogram(res.Graph),
		Edges:     edges(res.Graph),
	}
	if withMatrix {
		c, err := matrix.NewCoupling(res.Graph)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		l.Variables, l.QUBO = c.Index, c.Q.ToRows()
	}
	r.Logical = append(r.Logical, l)

	return nil
}

// SetHardware records t; withEdges also lists every coupler and the layout.
func (r *Report) SetHardware(t *hardware.Topology, withEdges bool) {
	stats := t.Graph.Stats()
	h := &Hardware{
		Shape:     string(t.Shape),
		Size:      t.Size,
		GroupSize: t.GroupSize,
		Nodes:     stats.VertexCount,
		Intra:     stats.KindCount[core.KindIntra],
		Inter:     stats.KindCount[core.KindInter],
	}
	if withEdges {
		h.Edges = edges(t.Graph)
		h.Positions = t.Layout()
	}
	r.Hardware = h
}

// SetEmbedding records a successful search together with its hardware.
func (r *Report) SetEmbedding(res *embed.Result, withEdges bool) {
	chains := make(map[string][]string, len(res.Embedding))
	for v, c := range res.Embedding {
		chains[v] = append([]string(nil), c...)
	}
	r.Embed = &Embedding{
		Found:    true,
		Size:     res.Size,
		Tried:    append([]int(nil), res.Tried...),
		Qubits:   res.Embedding.Qubits(),
		MaxChain: res.Embedding.MaxChain(),
		Chains:   chains,
	}
	r.SetHardware(res.Hardware, withEdges)
}

// SetNotFound records a failed search.
func (r *Report) SetNotFound(tried []int) {
	r.Embed = &Embedding{Tried: append([]int(nil), tried...)}
}

func edges(g *core.Graph) []Edge {
	es := g.Edges()
	out := make([]Edge, len(es))
	for i, e := range es {
		out[i] = Edge{From: e.From, To: e.To, Weight: e.Weight, Kind: string(e.Kind)}
	}

	return out
}

// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/qubogrid/config"
	"github.com/katalvlaran/qubogrid/embed"
	"github.com/katalvlaran/qubogrid/hardware"
	"github.com/katalvlaran/qubogrid/metrics"
	"github.com/katalvlaran/qubogrid/qubo"
	"github.com/katalvlaran/qubogrid/report"
)

// command fills rep and reg for one invocation.
type command func(inv *invocation, reg *metrics.Registry, rep *report.Report) error

var commands = map[string]command{
	"generate": runGenerate,
	"compare":  runCompare,
	"hardware": runHardware,
	"embed":    runEmbed,
}

// execute runs cmd, then writes the report and the metrics textfile. A
// failed embedding search still produces a report listing the sizes tried.
func execute(cmd command, inv *invocation, stdout io.Writer) error {
	reg := metrics.NewRegistry()
	rep := report.New(inv.command)
	klog.V(1).Infof("run %s: %s", rep.RunID, inv.command)

	err := cmd(inv, reg, rep)
	if err == nil || errors.Is(err, embed.ErrEmbeddingNotFound) {
		if werr := writeReport(inv, stdout, rep); werr != nil {
			err = errors.Join(err, werr)
		}
	}
	if path := inv.cfg.Output.MetricsFile; path != "" {
		if werr := reg.WriteTextfile(path); werr != nil {
			err = errors.Join(err, werr)
		} else {
			klog.V(1).Infof("metrics written to %s", path)
		}
	}

	return err
}

func writeReport(inv *invocation, stdout io.Writer, rep *report.Report) error {
	out := inv.cfg.Output
	if out.Path == "" {
		return report.Encode(stdout, out.Format, rep)
	}
	f, err := os.Create(out.Path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := report.Encode(f, out.Format, rep); err != nil {
		_ = f.Close()
		return err
	}
	klog.V(1).Infof("report written to %s", out.Path)

	return f.Close()
}

// generate runs one qubo.Run and records it.
func generate(p qubo.Params, reg *metrics.Registry) (*qubo.Result, error) {
	start := time.Now()
	res, err := qubo.Run(p)
	reg.RecordGeneration(p.Mode, res, err, time.Since(start))
	if err != nil {
		if res != nil {
			klog.Warningf("%s generation gave up after %d proposals", p.Mode, res.Attempts)
		}
		return nil, err
	}
	s := qubo.Summarize(res.Graph)
	klog.Infof("%s: N=%d E=%d degree %d..%d avg %.2f density %.3f (attempts %d)",
		p.Mode, s.Nodes, s.Edges, s.MinDegree, s.MaxDegree, s.AvgDegree, s.Density, res.Attempts)

	return res, nil
}

func runGenerate(inv *invocation, reg *metrics.Registry, rep *report.Report) error {
	res, err := generate(inv.cfg.Qubo, reg)
	if err != nil {
		return err
	}

	return rep.AddLogical(res, inv.cfg.Output.Matrix)
}

func runCompare(inv *invocation, reg *metrics.Registry, rep *report.Report) error {
	for _, mode := range []qubo.Mode{qubo.ModeDeterministic, qubo.ModeProbabilistic} {
		p := inv.cfg.Qubo
		p.Mode = mode
		res, err := generate(p, reg)
		if err != nil {
			return fmt.Errorf("compare: %w", err)
		}
		if err = rep.AddLogical(res, inv.cfg.Output.Matrix); err != nil {
			return err
		}
	}

	return nil
}

func runHardware(inv *invocation, reg *metrics.Registry, rep *report.Report) error {
	h := inv.cfg.Hardware
	hw, err := hardware.Build(hardware.Shape(h.Shape), h.N, h.GroupSize)
	if err != nil {
		return err
	}
	reg.HardwareNodes.Set(float64(hw.NodeCount()))
	rep.SetHardware(hw, inv.withEdges)
	if inv.withEdges {
		rep.Hardware.Positions = positions(hw, h)
	}
	klog.Infof("%s of cliques: size %d, k=%d, %d nodes, %d edges",
		hw.Shape, hw.Size, hw.GroupSize, hw.NodeCount(), hw.Graph.EdgeCount())

	return nil
}

func runEmbed(inv *invocation, reg *metrics.Registry, rep *report.Report) error {
	res, err := generate(inv.cfg.Qubo, reg)
	if err != nil {
		return err
	}
	if err = rep.AddLogical(res, inv.cfg.Output.Matrix); err != nil {
		return err
	}

	cfg := inv.cfg
	opts := append(cfg.DriverOptions(), embed.WithOnAttempt(func(a embed.Attempt) {
		reg.ObserveAttempt(a)
		klog.V(1).Infof("attempt %d: n=%d (%d nodes) found=%v in %s", a.Index, a.Size, a.Nodes, a.Found, a.Duration)
	}))
	drv := embed.NewDriver(cfg.Solver(), opts...)

	var found *embed.Result
	if cfg.Embed.AutoExpand {
		found, err = drv.Search(res.Graph, cfg.Hardware.N)
	} else {
		found, err = drv.SearchFixed(res.Graph, cfg.Hardware.N)
	}
	var nf *embed.NotFoundError
	if errors.As(err, &nf) {
		rep.SetNotFound(nf.Tried)
		if !cfg.Embed.AutoExpand {
			return fmt.Errorf("%w; try a larger -n or -auto_expand", err)
		}
		return err
	}
	if err != nil {
		return err
	}

	reg.RecordEmbedding(found.Embedding)
	rep.SetEmbedding(found, inv.withEdges)
	if inv.withEdges {
		rep.Hardware.Positions = positions(found.Hardware, cfg.Hardware)
	}
	klog.Infof("embedded %d variables on n=%d (tried %v): %d qubits, longest chain %d",
		len(found.Embedding), found.Size, found.Tried, found.Embedding.Qubits(), found.Embedding.MaxChain())

	return nil
}

// positions applies the configured layout options.
func positions(hw *hardware.Topology, h config.Hardware) map[string]hardware.Point {
	if hw.Shape == hardware.ShapeLine {
		return hardware.LineLayout(hw, h.LineLayout)
	}
	pos, _ := hardware.GridPolygonLayout(hw, h.Layout)

	return pos
}

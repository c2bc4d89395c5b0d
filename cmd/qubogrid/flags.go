// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/qubogrid/config"
)

// invocation is one parsed command line.
type invocation struct {
	command   string
	cfg       *config.Config
	withEdges bool
	verbosity int
}

// override copies one flag's value from the flag-bound config into the
// effective config.
type override func(dst, src *config.Config)

// parse resolves defaults, then the -config file, then explicitly set flags.
func parse(command string, args []string, stderr io.Writer) (*invocation, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(stderr)

	inv := &invocation{command: command}
	path := fs.String("config", "", "YAML configuration file; flags override its values")
	fs.BoolVar(&inv.withEdges, "edges", command == "hardware", "list hardware edges and layout positions in the report")
	fs.IntVar(&inv.verbosity, "v", 0, "log verbosity")

	flagCfg := config.DefaultFor(command)
	table := bind(fs, flagCfg, command)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}

	cfg := config.DefaultFor(command)
	if *path != "" {
		var err error
		if cfg, err = config.LoadOver(*path, cfg); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if apply, ok := table[f.Name]; ok {
			apply(cfg, flagCfg)
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	inv.cfg = cfg

	return inv, nil
}

// bind registers the flags relevant to command on fs, bound to c.
func bind(fs *flag.FlagSet, c *config.Config, command string) map[string]override {
	t := map[string]override{
		"format": func(d, s *config.Config) { d.Output.Format = s.Output.Format },
		"o":      func(d, s *config.Config) { d.Output.Path = s.Output.Path },
		"metrics": func(d, s *config.Config) {
			d.Output.MetricsFile = s.Output.MetricsFile
		},
	}
	fs.StringVar(&c.Output.Format, "format", c.Output.Format, "report format: json, yaml or msgpack")
	fs.StringVar(&c.Output.Path, "o", c.Output.Path, "report file (default stdout)")
	fs.StringVar(&c.Output.MetricsFile, "metrics", c.Output.MetricsFile, "Prometheus textfile to write on exit")

	if command != "hardware" {
		q := &c.Qubo
		fs.IntVar(&q.N, "N", q.N, "number of logical variables")
		fs.Float64Var(&q.Density, "d", q.Density, "target density in [0,1]")
		fs.StringVar((*string)(&q.Mode), "mode", string(q.Mode), "deterministic or probabilistic")
		fs.StringVar((*string)(&q.Dist), "dist", string(q.Dist), "uniform or normal")
		fs.Float64Var(&q.Sigma, "sigma", q.Sigma, "spread of per-vertex probabilities")
		fs.Int64Var(&q.Seed, "seed", q.Seed, "random seed")
		fs.IntVar(&q.MaxTries, "max_tries", q.MaxTries, "probabilistic proposal budget")
		fs.StringVar((*string)(&q.Couplings), "couplings", string(q.Couplings), "none, unit, sign or int")
		fs.Int64Var(&q.CouplingRange, "coupling_range", q.CouplingRange, "magnitude bound of int couplings")
		fs.StringVar(&q.Prefix, "prefix", q.Prefix, "variable ID prefix (default decimal IDs)")
		t["N"] = func(d, s *config.Config) { d.Qubo.N = s.Qubo.N }
		t["d"] = func(d, s *config.Config) { d.Qubo.Density = s.Qubo.Density }
		t["mode"] = func(d, s *config.Config) { d.Qubo.Mode = s.Qubo.Mode }
		t["dist"] = func(d, s *config.Config) { d.Qubo.Dist = s.Qubo.Dist }
		t["sigma"] = func(d, s *config.Config) { d.Qubo.Sigma = s.Qubo.Sigma }
		t["seed"] = func(d, s *config.Config) { d.Qubo.Seed = s.Qubo.Seed }
		t["max_tries"] = func(d, s *config.Config) { d.Qubo.MaxTries = s.Qubo.MaxTries }
		t["couplings"] = func(d, s *config.Config) { d.Qubo.Couplings = s.Qubo.Couplings }
		t["coupling_range"] = func(d, s *config.Config) { d.Qubo.CouplingRange = s.Qubo.CouplingRange }
		t["prefix"] = func(d, s *config.Config) { d.Qubo.Prefix = s.Qubo.Prefix }
		fs.BoolVar(&c.Output.Matrix, "matrix", c.Output.Matrix, "add the QUBO coupling matrix to the report")
		t["matrix"] = func(d, s *config.Config) { d.Output.Matrix = s.Output.Matrix }
	}

	if command == "hardware" || command == "embed" {
		h := &c.Hardware
		fs.StringVar(&h.Shape, "shape", h.Shape, "grid or line")
		fs.IntVar(&h.N, "n", h.N, "hardware size (grid side or number of groups)")
		fs.IntVar(&h.GroupSize, "group_size", h.GroupSize, "nodes per group")
		t["shape"] = func(d, s *config.Config) { d.Hardware.Shape = s.Hardware.Shape }
		t["n"] = func(d, s *config.Config) { d.Hardware.N = s.Hardware.N }
		t["group_size"] = func(d, s *config.Config) { d.Hardware.GroupSize = s.Hardware.GroupSize }
	}

	if command == "embed" {
		e := &c.Embed
		fs.BoolVar(&e.AutoExpand, "auto_expand", e.AutoExpand, "grow the hardware until an embedding is found")
		fs.IntVar(&e.MaxN, "max_n", e.MaxN, "largest hardware size tried with -auto_expand")
		fs.Int64Var(&e.SolverSeed, "solver_seed", e.SolverSeed, "heuristic solver seed")
		fs.IntVar(&e.SolverTries, "solver_tries", e.SolverTries, "heuristic solver restarts per size")
		t["auto_expand"] = func(d, s *config.Config) { d.Embed.AutoExpand = s.Embed.AutoExpand }
		t["max_n"] = func(d, s *config.Config) { d.Embed.MaxN = s.Embed.MaxN }
		t["solver_seed"] = func(d, s *config.Config) { d.Embed.SolverSeed = s.Embed.SolverSeed }
		t["solver_tries"] = func(d, s *config.Config) { d.Embed.SolverTries = s.Embed.SolverTries }
	}

	return t
}

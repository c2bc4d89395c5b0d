// SPDX-License-Identifier: MIT
// Package: qubogrid/config
//
// config.go — YAML run configuration with stock defaults.
//
// Contract:
//   • Load starts from Default() and overlays the file; keys absent from the
//     file keep their defaults. Unknown keys are rejected.
//   • Validate checks CLI-layer spellings only (shape, solver, output
//     format). Numeric domains and mode/dist spellings are the generator's
//     and driver's concern and surface from there.

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qubogrid/embed"
	"github.com/katalvlaran/qubogrid/hardware"
	"github.com/katalvlaran/qubogrid/qubo"
)

// ErrInvalidConfig wraps decode and validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats understood by report.Encode.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
)

// SolverGreedy names the built-in heuristic.
const SolverGreedy = "greedy"

// Config is one run's configuration.
type Config struct {
	Qubo     qubo.Params `yaml:"qubo"`
	Hardware Hardware    `yaml:"hardware"`
	Embed    Embed       `yaml:"embed"`
	Output   Output      `yaml:"output"`
}

// Hardware selects the target topology and its drawing layout.
type Hardware struct {
	Shape      string                     `yaml:"shape" validate:"oneof=grid line"`
	N          int                        `yaml:"n"`
	GroupSize  int                        `yaml:"group_size"`
	Layout     hardware.LayoutOptions     `yaml:"layout"`
	LineLayout hardware.LineLayoutOptions `yaml:"line_layout"`
}

// Embed configures the search driver and solver.
type Embed struct {
	AutoExpand  bool   `yaml:"auto_expand"`
	Schedule    []int  `yaml:"schedule"`
	MaxN        int    `yaml:"max_n"`
	Solver      string `yaml:"solver" validate:"oneof=greedy"`
	SolverSeed  int64  `yaml:"solver_seed"`
	SolverTries int    `yaml:"solver_tries"`
}

// Output selects where the report and metrics go. Empty paths mean stdout
// for the report and no metrics file.
type Output struct {
	Format      string `yaml:"format" validate:"oneof=json yaml msgpack"`
	Path        string `yaml:"path"`
	MetricsFile string `yaml:"metrics_file"`
	// Matrix adds each logical graph's QUBO coupling matrix to the report.
	Matrix bool `yaml:"matrix"`
}

// Default mirrors the stock command-line defaults.
func Default() *Config {
	return &Config{
		Qubo: qubo.DefaultParams(),
		Hardware: Hardware{
			Shape:      string(hardware.ShapeGrid),
			N:          6,
			GroupSize:  embed.DefaultGroupSize,
			Layout:     hardware.DefaultLayoutOptions(),
			LineLayout: hardware.DefaultLineLayoutOptions(),
		},
		Embed: Embed{
			Schedule: embed.DefaultSchedule(),
			MaxN:     embed.DefaultMaxSize,
			Solver:   SolverGreedy,
		},
		Output: Output{Format: FormatJSON},
	}
}

// DefaultFor returns the defaults of one CLI command. The embed command
// starts from a smaller probabilistic logical graph with ±1 couplings.
func DefaultFor(command string) *Config {
	c := Default()
	if command == "embed" {
		c.Qubo.N = 12
		c.Qubo.Density = 0.35
		c.Qubo.Mode = qubo.ModeProbabilistic
		c.Qubo.Sigma = 0.12
		c.Qubo.Couplings = qubo.CouplingsSign
	}

	return c
}

// Load reads path over Default() and validates the result.
func Load(path string) (*Config, error) {
	return LoadOver(path, Default())
}

// LoadOver reads path over base, which is modified in place.
func LoadOver(path string, base *Config) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return DecodeOver(f, base)
}

// Decode reads YAML from r over Default() and validates the result. An
// empty document yields the defaults.
func Decode(r io.Reader) (*Config, error) {
	return DecodeOver(r, Default())
}

// DecodeOver reads YAML from r over base, which is modified in place.
func DecodeOver(r io.Reader, base *Config) (*Config, error) {
	cfg := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// DriverOptions translates the embed and hardware sections. Invalid values
// surface as embed.ErrOptionViolation when the driver runs.
func (c *Config) DriverOptions() []embed.Option {
	opts := []embed.Option{
		embed.WithShape(hardware.Shape(c.Hardware.Shape)),
		embed.WithGroupSize(c.Hardware.GroupSize),
		embed.WithMaxSize(c.Embed.MaxN),
	}
	if len(c.Embed.Schedule) > 0 {
		opts = append(opts, embed.WithSchedule(c.Embed.Schedule))
	}

	return opts
}

// Solver builds the configured solver.
func (c *Config) Solver() embed.Solver {
	return embed.NewGreedy(embed.GreedyOptions{Seed: c.Embed.SolverSeed, Tries: c.Embed.SolverTries})
}

// SPDX-License-Identifier: MIT
// Package: qubogrid/qubo
//
// params.go — generation parameters, their spellings and defaults.

package qubo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/qubogrid/degseq"
)

// Mode selects the degree policy.
type Mode string

// Supported modes.
const (
	ModeDeterministic Mode = "deterministic"
	ModeProbabilistic Mode = "probabilistic"
)

// Couplings selects how edge weights (QUBO couplings) are assigned.
type Couplings string

// Supported coupling policies.
const (
	// CouplingsNone produces an unweighted interaction graph.
	CouplingsNone Couplings = "none"
	// CouplingsUnit sets every coupling to +1.
	CouplingsUnit Couplings = "unit"
	// CouplingsSign draws each coupling uniformly from {−1, +1}.
	CouplingsSign Couplings = "sign"
	// CouplingsInt draws each coupling uniformly from [−CouplingRange, CouplingRange].
	CouplingsInt Couplings = "int"
)

// DefaultCouplingRange bounds CouplingsInt draws.
const DefaultCouplingRange = 3

// Re-exported failure conditions so callers need only this package.
var (
	ErrInvalidConfiguration = degseq.ErrInvalidConfiguration
	ErrGenerationExhausted  = degseq.ErrGenerationExhausted
)

// Params fully determines one generated graph.
type Params struct {
	N         int         `json:"n" yaml:"n" msgpack:"n"`
	Density   float64     `json:"density" yaml:"density" msgpack:"density"`
	Mode      Mode        `json:"mode" yaml:"mode" msgpack:"mode"`
	Dist      degseq.Dist `json:"dist" yaml:"dist" msgpack:"dist"`
	Sigma     float64     `json:"sigma" yaml:"sigma" msgpack:"sigma"`
	Seed      int64       `json:"seed" yaml:"seed" msgpack:"seed"`
	MaxTries  int         `json:"max_tries" yaml:"max_tries" msgpack:"max_tries"`
	Couplings Couplings   `json:"couplings" yaml:"couplings" msgpack:"couplings"`
	// CouplingRange is the magnitude bound for CouplingsInt; it must be ≥ 1.
	CouplingRange int64 `json:"coupling_range" yaml:"coupling_range" msgpack:"coupling_range"`
	// Prefix names variables Prefix+index ("x0", "x1", ...); empty means "0", "1", ...
	Prefix string `json:"prefix,omitempty" yaml:"prefix" msgpack:"prefix,omitempty"`
}

// DefaultParams returns N=20, d=0.4, deterministic, uniform, σ=0.1, seed 0,
// 2000 tries, no couplings (range 3 when int couplings are chosen).
func DefaultParams() Params {
	return Params{
		N:         20,
		Density:   0.4,
		Mode:      ModeDeterministic,
		Dist:      degseq.DistUniform,
		Sigma:     0.1,
		Seed:      0,
		MaxTries:  degseq.DefaultMaxTries,
		Couplings: CouplingsNone,

		CouplingRange: DefaultCouplingRange,
	}
}

// ParseMode accepts "deterministic" or "probabilistic" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeDeterministic, ModeProbabilistic:
		return m, nil
	}

	return "", fmt.Errorf("ParseMode: %w: mode must be %q or %q (got %q)",
		ErrInvalidConfiguration, ModeDeterministic, ModeProbabilistic, s)
}

// ParseCouplings accepts "none", "unit", "sign" or "int"; the empty string is "none".
func ParseCouplings(s string) (Couplings, error) {
	switch c := Couplings(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CouplingsNone, nil
	case CouplingsNone, CouplingsUnit, CouplingsSign, CouplingsInt:
		return c, nil
	}

	return "", fmt.Errorf("ParseCouplings: %w: couplings must be none, unit, sign or int (got %q)",
		ErrInvalidConfiguration, s)
}

// IsConfigurationError reports whether err is a non-retryable parameter error.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}

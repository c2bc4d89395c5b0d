// SPDX-License-Identifier: MIT
// Package: qubogrid/qubo
//
// generate.go — degree policy + realization, driven by one seeded stream.
//
// Contract:
//   • deterministic: degseq.Regular → builder.RandomRegular(N, k).
//   • probabilistic: degseq.Probabilistic → builder.HavelHakimi(seq).
//   • All randomness of a call (proposal draws, regular shuffles, coupling
//     signs) comes from rand.New(rand.NewSource(p.Seed)), in that order.
//
// Determinism:
//   • Identical Params ⇒ identical graphs, labels included.

package qubo

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qubogrid/builder"
	"github.com/katalvlaran/qubogrid/core"
	"github.com/katalvlaran/qubogrid/degseq"
)

// Result is a generated logical graph plus the sequence it realizes.
type Result struct {
	Params   Params
	Graph    *core.Graph
	Sequence degseq.Sequence
	// K is the regular degree in deterministic mode, 0 otherwise.
	K int
	// Attempts counts proposals drawn in probabilistic mode; 1 otherwise.
	Attempts int
}

// Generate returns only the graph of Run.
func Generate(p Params) (*core.Graph, error) {
	res, err := Run(p)
	if err != nil {
		return nil, err
	}

	return res.Graph, nil
}

// Run generates a logical QUBO interaction graph on vertices "0".."N-1", or
// Prefix+"0".. when Prefix is set.
//
// Errors:
//   - ErrInvalidConfiguration: unknown mode/dist/couplings, impossible regular
//     degree, N < 1, negative sigma or max_tries, int couplings with
//     CouplingRange < 1.
//   - ErrGenerationExhausted (*degseq.ExhaustedError): probabilistic budget spent.
//   - builder sentinels (ErrConstructFailed) from realization, wrapped.
//
// On ErrGenerationExhausted the returned Result is non-nil and carries only
// Params and Attempts.
func Run(p Params) (*Result, error) {
	const method = "Run"
	couplings, err := ParseCouplings(string(p.Couplings))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if couplings == CouplingsInt && p.CouplingRange < 1 {
		return nil, fmt.Errorf("%s: %w: coupling_range must be ≥ 1 (got %d)",
			method, ErrInvalidConfiguration, p.CouplingRange)
	}
	rng := rand.New(rand.NewSource(p.Seed))

	res := &Result{Params: p, Attempts: 1}
	var realize builder.Constructor
	switch p.Mode {
	case ModeDeterministic:
		k, seq, err := degseq.Regular(p.N, p.Density)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		res.K, res.Sequence = k, seq
		realize = builder.RandomRegular(p.N, k)
	case ModeProbabilistic:
		seq, attempts, err := degseq.Probabilistic(rng, degseq.Proposal{
			N:        p.N,
			Density:  p.Density,
			Sigma:    p.Sigma,
			Dist:     p.Dist,
			MaxTries: p.MaxTries,
		})
		if errors.Is(err, ErrGenerationExhausted) {
			res.Attempts = attempts
			return res, fmt.Errorf("%s: %w", method, err)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		res.Attempts = attempts
		res.Sequence = seq
		realize = builder.HavelHakimi(seq)
	default:
		return nil, fmt.Errorf("%s: %w: mode must be %q or %q (got %q)",
			method, ErrInvalidConfiguration, ModeDeterministic, ModeProbabilistic, p.Mode)
	}

	gopts, bopts := couplingOptions(couplings, p.CouplingRange, rng)
	if p.Prefix != "" {
		bopts = append(bopts, builder.WithVariablePrefix(p.Prefix))
	}
	g, err := builder.BuildGraph(gopts, bopts, realize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	res.Graph = g

	return res, nil
}

// Compare generates the deterministic and the probabilistic graph for the
// same N, density and seed.
func Compare(p Params) (det, prob *Result, err error) {
	dp, pp := p, p
	dp.Mode, pp.Mode = ModeDeterministic, ModeProbabilistic
	if det, err = Run(dp); err != nil {
		return nil, nil, fmt.Errorf("Compare: %w", err)
	}
	if prob, err = Run(pp); err != nil {
		return det, nil, fmt.Errorf("Compare: %w", err)
	}

	return det, prob, nil
}

func couplingOptions(c Couplings, span int64, rng *rand.Rand) ([]core.GraphOption, []builder.BuilderOption) {
	bopts := []builder.BuilderOption{builder.WithRand(rng)}
	switch c {
	case CouplingsUnit:
		return []core.GraphOption{core.WithWeighted()}, append(bopts, builder.WithWeightFn(builder.ConstantWeightFn(1)))
	case CouplingsSign:
		return []core.GraphOption{core.WithWeighted()}, append(bopts, builder.WithWeightFn(builder.SignWeightFn))
	case CouplingsInt:
		return []core.GraphOption{core.WithWeighted()}, append(bopts, builder.WithWeightFn(builder.UniformIntWeightFn(-span, span)))
	default:
		return nil, bopts
	}
}

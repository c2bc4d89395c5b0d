// SPDX-License-Identifier: MIT
// Package: qubogrid/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn          ("0","1","2",...)
//   • rng      = nil                  (pure/deterministic unless seeded)
//   • weightFn = ConstantWeightFn(1)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator; consulted only for weighted graphs.
	weightFn WeightFn
}

const defaultConstWeight = int64(1)

// newBuilderConfig constructs a config with defaults and applies all options
// in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edgeWeight draws the weight for one realized edge. Unweighted graphs get 0
// and leave the RNG untouched.
func (cfg builderConfig) edgeWeight(weighted bool) int64 {
	if !weighted {
		return 0
	}

	return cfg.weightFn(cfg.rng)
}

// SPDX-License-Identifier: MIT
// Package: lpclique/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • offset = 1   (first vertex ID)
//   • rng    = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// First vertex ID; index i maps to offset+i.
	offset int
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
}

const defaultOffset = 1

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		offset: defaultOffset,
		rng:    nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a vertex ID.
func (c builderConfig) id(i int) int { return c.offset + i }

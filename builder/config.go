// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • rng      = nil   (pure/deterministic unless seeded)
//   • lo, hi   = 1, 99 (value range for Random and FewUnique)
//   • distinct = 3     (value count for FewUnique)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors and sequences.
// It is passed by value.
type builderConfig struct {
	rng      *rand.Rand
	lo, hi   int
	distinct int
}

const (
	defaultLo       = 1
	defaultHi       = 99
	defaultDistinct = 3
)

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		lo:       defaultLo,
		hi:       defaultHi,
		distinct: defaultDistinct,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// intn draws from [lo, hi] inclusive.
func (c builderConfig) intn() int {
	return c.lo + c.rng.Intn(c.hi-c.lo+1)
}

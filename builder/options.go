// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// options.go: functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; the
// builders themselves return errors.

package builder

import "math/rand"

// Option customizes a builder by mutating its builderConfig.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRange bounds the values drawn by Random and FewUnique to [lo, hi].
// Panics when lo > hi.
func WithRange(lo, hi int) Option {
	if lo > hi {
		panic("builder: WithRange(lo > hi)")
	}
	return func(c *builderConfig) { c.lo, c.hi = lo, hi }
}

// WithDistinct sets how many distinct values FewUnique draws from.
// Panics when k < 1.
func WithDistinct(k int) Option {
	if k < 1 {
		panic("builder: WithDistinct(k < 1)")
	}
	return func(c *builderConfig) { c.distinct = k }
}

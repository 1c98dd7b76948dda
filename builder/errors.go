// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; context is attached with %w at the
// method that detects the problem.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum
// for the requested constructor or sequence.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic builder ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: random source required")

// ErrUnknownName indicates an unregistered shape or sequence name.
var ErrUnknownName = errors.New("builder: unknown name")

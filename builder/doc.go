// SPDX-License-Identifier: MIT
// Package builder generates deterministic input fixtures for the trace
// engine: integer sequences for the sorts, level-order encodings for the
// tree traversals, and undirected edge lists for BFS and DFS.
//
// The package offers:
//
//   - Graph shapes (Constructor): Path, Cycle, Complete, Star, Wheel, Grid,
//     RandomSparse. BuildEdges runs any number of them in order and returns
//     the concatenated edge list; node IDs are 0..n-1.
//   - Sequences (Sequence): Random, Ascending, Descending, FewUnique.
//     BuildInts resolves options and runs one of them.
//   - Trees: CompleteTree(n) returns the level-order encoding of 1..n.
//   - Lookup by name: ShapeByName and SequenceByName back the CLI and HTTP
//     "generate" parameters.
//
// Determinism:
//
//	Equal inputs, options and seed produce identical output. Stochastic
//	builders need a source of randomness (WithSeed or WithRand) and fail
//	with ErrNeedRandSource without one, except where the outcome is
//	already fixed (RandomSparse with p of 0 or 1).
//
// Errors:
//
//	Constructors never panic; they return ErrTooFewVertices,
//	ErrInvalidProbability, ErrNeedRandSource or ErrUnknownName wrapped with
//	the method name. Option constructors panic on meaningless arguments.
package builder

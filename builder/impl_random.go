// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_random.go: stochastic shapes and integer sequences.
//
// Determinism:
//   • Trials run in a fixed order (i asc, then j asc with j > i), so a
//     fixed seed yields a fixed result.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/algoviz/graph"
)

const (
	methodRandomSparse = "RandomSparse"
	methodRandom       = "Random"
	methodAscending    = "Ascending"
	methodDescending   = "Descending"
	methodFewUnique    = "FewUnique"

	minRandomSparseNodes = 1
	minSequenceLen       = 0

	probMin        = 0.0
	probMax        = 1.0
	defaultSparseP = 0.4
)

// RandomSparse keeps each pair i-j (i < j) independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(dst []graph.Edge, cfg builderConfig) ([]graph.Edge, error) {
		if n < minRandomSparseNodes {
			return nil, tooFew(methodRandomSparse, n, minRandomSparseNodes)
		}
		if p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					dst = append(dst, graph.Edge{U: i, V: j})
				}
			}
		}
		return dst, nil
	}
}

// Random draws n values uniformly from the configured range.
func Random(n int) Sequence {
	return func(cfg builderConfig) ([]int, error) {
		if n < minSequenceLen {
			return nil, tooFew(methodRandom, n, minSequenceLen)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		out := make([]int, n)
		for i := range out {
			out[i] = cfg.intn()
		}
		return out, nil
	}
}

// Ascending returns 1..n, the best case for bubble and insertion sort.
func Ascending(n int) Sequence {
	return func(builderConfig) ([]int, error) {
		if n < minSequenceLen {
			return nil, tooFew(methodAscending, n, minSequenceLen)
		}
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out, nil
	}
}

// Descending returns n..1, the worst case for the quadratic sorts and for
// quick sort with a last-element pivot.
func Descending(n int) Sequence {
	return func(builderConfig) ([]int, error) {
		if n < minSequenceLen {
			return nil, tooFew(methodDescending, n, minSequenceLen)
		}
		out := make([]int, n)
		for i := range out {
			out[i] = n - i
		}
		return out, nil
	}
}

// FewUnique draws n values from a small pool of distinct values, which
// exercises stability and duplicate handling.
func FewUnique(n int) Sequence {
	return func(cfg builderConfig) ([]int, error) {
		if n < minSequenceLen {
			return nil, tooFew(methodFewUnique, n, minSequenceLen)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodFewUnique, ErrNeedRandSource)
		}
		pool := make([]int, cfg.distinct)
		for i := range pool {
			pool[i] = cfg.intn()
		}
		sort.Ints(pool)
		out := make([]int, n)
		for i := range out {
			out[i] = pool[cfg.rng.Intn(len(pool))]
		}
		return out, nil
	}
}

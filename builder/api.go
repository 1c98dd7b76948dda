// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// api.go: public entry points and name registries.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/algoviz/graph"
)

// Constructor appends a shape's edges to dst using the resolved config.
// Constructors validate their parameters before emitting anything.
type Constructor func(dst []graph.Edge, cfg builderConfig) ([]graph.Edge, error)

// Sequence produces an integer sequence using the resolved config.
type Sequence func(cfg builderConfig) ([]int, error)

// BuildEdges resolves opts and applies every constructor in order, returning
// the concatenated edge list. The first failure is wrapped and returned.
func BuildEdges(opts []Option, cons ...Constructor) ([]graph.Edge, error) {
	cfg := newBuilderConfig(opts...)
	out := []graph.Edge{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrUnknownName)
		}
		var err error
		if out, err = fn(out, cfg); err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}
	return out, nil
}

// BuildInts resolves opts and runs seq.
func BuildInts(seq Sequence, opts ...Option) ([]int, error) {
	if seq == nil {
		return nil, fmt.Errorf("BuildInts: nil sequence: %w", ErrUnknownName)
	}
	out, err := seq(newBuilderConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("BuildInts: %w", err)
	}
	return out, nil
}

// shapes maps a shape name to its constructor factory, parameterized by
// node count.
var shapes = map[string]func(n int) Constructor{
	"path":     Path,
	"cycle":    Cycle,
	"complete": Complete,
	"star":     Star,
	"wheel":    Wheel,
	"grid":     func(n int) Constructor { return Grid(n, n) },
	"random":   func(n int) Constructor { return RandomSparse(n, defaultSparseP) },
}

var sequences = map[string]func(n int) Sequence{
	"random":     Random,
	"ascending":  Ascending,
	"descending": Descending,
	"few_unique": FewUnique,
}

// ShapeByName returns the constructor registered under name for n nodes.
// For "grid", n is the side length.
func ShapeByName(name string, n int) (Constructor, error) {
	f, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("shape %q: %w", name, ErrUnknownName)
	}
	return f(n), nil
}

// SequenceByName returns the sequence registered under name for length n.
func SequenceByName(name string, n int) (Sequence, error) {
	f, ok := sequences[name]
	if !ok {
		return nil, fmt.Errorf("sequence %q: %w", name, ErrUnknownName)
	}
	return f(n), nil
}

// ShapeNames lists the registered shapes in lexical order.
func ShapeNames() []string { return names(shapes) }

// SequenceNames lists the registered sequences in lexical order.
func SequenceNames() []string { return names(sequences) }

func names[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

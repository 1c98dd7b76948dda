package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/complexity"
	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/graph"
	"github.com/katalvlaran/algoviz/recursion"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/step"
	"github.com/katalvlaran/algoviz/tree"
)

// ErrUnknownAlgorithm is returned for an unrecognized family/variant pair.
var ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

// Family tags an algorithm family.
type Family string

// Families.
const (
	Sorting   Family = complexity.Sorting
	Tree      Family = complexity.Tree
	Recursion Family = complexity.Recursion
	Graph     Family = complexity.Graph
)

// Families lists every family in display order.
func Families() []Family {
	return []Family{Sorting, Tree, Recursion, Graph}
}

// ParseFamily maps a family name to its tag.
func ParseFamily(name string) (Family, bool) {
	for _, f := range Families() {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// Request selects an algorithm and carries its typed input. Only the
// fields of the selected family are read.
type Request struct {
	Family  Family
	Variant string

	Ints  []int        // sorting
	Tree  []*int       // tree, level order
	N     int          // factorial, fibonacci, tower
	Text  string       // reverse
	Edges []graph.Edge // graph
	Start int          // graph
}

// Result is the trace plus its complexity descriptor.
type Result struct {
	Steps      step.Trace            `json:"steps"`
	Complexity complexity.Descriptor `json:"complexity"`
}

// Option configures a Run.
type Option func(*options)

type options struct {
	step []step.Option
}

// WithObserver registers fn to see every step as it is recorded.
func WithObserver(fn func(step.Step)) Option {
	return func(o *options) {
		o.step = append(o.step, step.WithObserver(fn))
	}
}

// WithCapacity preallocates room for n steps.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.step = append(o.step, step.WithCapacity(n))
	}
}

// Run executes the requested algorithm. It fails only with
// ErrUnknownAlgorithm; no partial trace is returned in that case.
func Run(req Request, opts ...Option) (Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	tr, err := run(req, o.step)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Steps:      tr,
		Complexity: complexity.Lookup(string(req.Family), req.Variant),
	}, nil
}

func run(req Request, so []step.Option) (step.Trace, error) {
	unknown := fmt.Errorf("%w: %s/%s", ErrUnknownAlgorithm, req.Family, req.Variant)

	switch req.Family {
	case Sorting:
		fn, ok := sorting.ByName(req.Variant)
		if !ok {
			return nil, unknown
		}
		return fn(req.Ints, so...), nil

	case Tree:
		fn, ok := tree.ByName(req.Variant)
		if !ok {
			return nil, unknown
		}
		return fn(tree.Build(req.Tree), so...), nil

	case Recursion:
		if fn, ok := recursion.ByName(req.Variant); ok {
			return fn(req.N, so...), nil
		}
		if fn, ok := recursion.TextByName(req.Variant); ok {
			return fn(req.Text, so...), nil
		}
		return nil, unknown

	case Graph:
		g := graph.Build(req.Edges)
		switch req.Variant {
		case "bfs":
			return bfs.BFS(g, req.Start, bfs.WithStepOptions(so...))
		case "dfs":
			return dfs.DFS(g, req.Start, dfs.WithStepOptions(so...))
		}
		return nil, unknown
	}
	return nil, unknown
}

// Variants lists the variant names of f in lexical order, or nil for an
// unknown family.
func Variants(f Family) []string {
	switch f {
	case Sorting:
		return sorting.Names()
	case Tree:
		return tree.Names()
	case Recursion:
		return recursion.Names()
	case Graph:
		return []string{"bfs", "dfs"}
	}
	return nil
}

// Known reports whether f/variant names a traceable algorithm.
func Known(f Family, variant string) bool {
	for _, v := range Variants(f) {
		if v == variant {
			return true
		}
	}
	return false
}

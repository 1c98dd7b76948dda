// Package params turns named string parameters into engine requests.
//
// The same keys are read from HTTP query strings and from CLI flags:
//
//	sorting    data=64,34,25,12,22,11,90 | generate=<sequence>&size=10&seed=N
//	           with min=1&max=99&distinct=3 for random and few_unique
//	tree       tree=1,2,3,4,5,6,7        | generate=complete&size=7
//	recursion  n=5 (tower: n=3), text=hello
//	graph      edges=0-1,0-2,1-3,2-3&start=0 | generate=<shape>&nodes=4&seed=N
//
// A missing key takes its default; a present but blank key is parsed as
// given. Sizes are checked against config.LimitsConfig before any fixture
// is generated or any trace is run.
package params

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/config"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/input"
)

// ErrLimitExceeded is returned when a request is larger than the configured
// limits allow. It wraps input.ErrInvalidInput.
var ErrLimitExceeded = fmt.Errorf("%w: limit exceeded", input.ErrInvalidInput)

// Parameter keys.
const (
	KeyData     = "data"
	KeyTree     = "tree"
	KeyN        = "n"
	KeyText     = "text"
	KeyEdges    = "edges"
	KeyStart    = "start"
	KeyGenerate = "generate"
	KeySize     = "size"
	KeyNodes    = "nodes"
	KeySeed     = "seed"
	KeyMin      = "min"
	KeyMax      = "max"
	KeyDistinct = "distinct"
)

// Defaults for absent keys.
const (
	DefaultData  = "64,34,25,12,22,11,90"
	DefaultTree  = "1,2,3,4,5,6,7"
	DefaultN     = 5
	DefaultDisks = 3
	DefaultText  = "hello"
	DefaultEdges = "0-1,0-2,1-3,2-3"
	DefaultStart = 0
	DefaultSize  = 10
	DefaultNodes = 4

	DefaultMin      = 1
	DefaultMax      = 99
	DefaultDistinct = 3
)

// TreeComplete is the only tree generator.
const TreeComplete = "complete"

// Lookup returns the raw value of key and whether it was given.
// gin's (*Context).GetQuery has this shape.
type Lookup func(key string) (string, bool)

// Map adapts a plain map to a Lookup.
func Map(m map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// TreeGenerators lists the generate values accepted for trees.
func TreeGenerators() []string { return []string{TreeComplete} }

// Build validates family/variant and assembles the request from lookup.
// Unknown pairs fail with engine.ErrUnknownAlgorithm before any parameter
// is read; bad values fail with input.ErrInvalidInput; oversize requests
// fail with ErrLimitExceeded.
func Build(family engine.Family, variant string, lookup Lookup, limits config.LimitsConfig) (engine.Request, error) {
	req := engine.Request{Family: family, Variant: variant}
	if !engine.Known(family, variant) {
		return req, fmt.Errorf("%w: %s/%s", engine.ErrUnknownAlgorithm, family, variant)
	}

	b := &reqBuilder{lookup: lookup, limits: limits}
	var err error
	switch family {
	case engine.Sorting:
		req.Ints, err = b.ints()
	case engine.Tree:
		req.Tree, err = b.tree()
	case engine.Recursion:
		err = b.recursion(&req)
	case engine.Graph:
		err = b.graph(&req)
	}
	if err != nil {
		return engine.Request{}, err
	}
	return req, nil
}

type reqBuilder struct {
	lookup Lookup
	limits config.LimitsConfig
}

func (b *reqBuilder) str(key, def string) string {
	if v, ok := b.lookup(key); ok {
		return v
	}
	return def
}

func (b *reqBuilder) integer(key string, def int) (int, error) {
	v, ok := b.lookup(key)
	if !ok {
		return def, nil
	}
	n, err := input.Int(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func (b *reqBuilder) count(key string, def, limit int) (int, error) {
	n, err := b.integer(key, def)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s must be non-negative, got %d", input.ErrInvalidInput, key, n)
	}
	return n, within(key, n, limit)
}

func within(what string, got, limit int) error {
	if got > limit {
		return fmt.Errorf("%w: %s is %d, maximum is %d", ErrLimitExceeded, what, got, limit)
	}
	return nil
}

// builderOptions seeds the fixture generators. Without a seed every call
// draws a fresh fixture.
func (b *reqBuilder) builderOptions() ([]builder.Option, error) {
	if _, ok := b.lookup(KeySeed); !ok {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		return []builder.Option{builder.WithRand(rng)}, nil
	}
	seed, err := b.integer(KeySeed, 0)
	if err != nil {
		return nil, err
	}
	return []builder.Option{builder.WithSeed(int64(seed))}, nil
}

// valueOptions reads the value range and pool size of generated sequences.
// Absent keys leave the builder defaults in place.
func (b *reqBuilder) valueOptions() ([]builder.Option, error) {
	var opts []builder.Option

	_, hasMin := b.lookup(KeyMin)
	_, hasMax := b.lookup(KeyMax)
	if hasMin || hasMax {
		lo, err := b.integer(KeyMin, DefaultMin)
		if err != nil {
			return nil, err
		}
		hi, err := b.integer(KeyMax, DefaultMax)
		if err != nil {
			return nil, err
		}
		if lo > hi {
			return nil, fmt.Errorf("%w: min %d is greater than max %d", input.ErrInvalidInput, lo, hi)
		}
		opts = append(opts, builder.WithRange(lo, hi))
	}

	if _, ok := b.lookup(KeyDistinct); ok {
		k, err := b.integer(KeyDistinct, DefaultDistinct)
		if err != nil {
			return nil, err
		}
		if k < 1 {
			return nil, fmt.Errorf("%w: distinct must be at least 1, got %d", input.ErrInvalidInput, k)
		}
		opts = append(opts, builder.WithDistinct(k))
	}
	return opts, nil
}

func generatorErr(err error) error {
	if errors.Is(err, input.ErrInvalidInput) {
		return err
	}
	return fmt.Errorf("%w: %w", input.ErrInvalidInput, err)
}

func (b *reqBuilder) ints() ([]int, error) {
	if gen, ok := b.lookup(KeyGenerate); ok {
		size, err := b.count(KeySize, DefaultSize, b.limits.MaxElements)
		if err != nil {
			return nil, err
		}
		seq, err := builder.SequenceByName(gen, size)
		if err != nil {
			return nil, generatorErr(err)
		}
		opts, err := b.builderOptions()
		if err != nil {
			return nil, err
		}
		values, err := b.valueOptions()
		if err != nil {
			return nil, err
		}
		vals, err := builder.BuildInts(seq, append(opts, values...)...)
		if err != nil {
			return nil, generatorErr(err)
		}
		return vals, nil
	}

	vals, err := input.Ints(b.str(KeyData, DefaultData))
	if err != nil {
		return nil, err
	}
	return vals, within(KeyData, len(vals), b.limits.MaxElements)
}

func (b *reqBuilder) tree() ([]*int, error) {
	if gen, ok := b.lookup(KeyGenerate); ok {
		if gen != TreeComplete {
			return nil, fmt.Errorf("%w: unknown tree generator %q", input.ErrInvalidInput, gen)
		}
		size, err := b.count(KeySize, DefaultSize, b.limits.MaxElements)
		if err != nil {
			return nil, err
		}
		return builder.CompleteTree(size), nil
	}

	slots, err := input.LevelOrder(b.str(KeyTree, DefaultTree))
	if err != nil {
		return nil, err
	}
	return slots, within(KeyTree, len(slots), b.limits.MaxElements)
}

func (b *reqBuilder) recursion(req *engine.Request) error {
	var err error
	switch req.Variant {
	case "reverse":
		req.Text = b.str(KeyText, DefaultText)
		return within(KeyText, utf8.RuneCountInString(req.Text), b.limits.MaxText)
	case "tower":
		req.N, err = b.count(KeyN, DefaultDisks, b.limits.MaxHanoiDisks)
	default:
		req.N, err = b.count(KeyN, DefaultN, b.limits.MaxN)
	}
	return err
}

func (b *reqBuilder) graph(req *engine.Request) error {
	start, err := b.integer(KeyStart, DefaultStart)
	if err != nil {
		return err
	}
	req.Start = start

	if shape, ok := b.lookup(KeyGenerate); ok {
		nodes, err := b.count(KeyNodes, DefaultNodes, b.limits.MaxElements)
		if err != nil {
			return err
		}
		cons, err := builder.ShapeByName(shape, nodes)
		if err != nil {
			return generatorErr(err)
		}
		opts, err := b.builderOptions()
		if err != nil {
			return err
		}
		edges, err := builder.BuildEdges(opts, cons)
		if err != nil {
			return generatorErr(err)
		}
		req.Edges = edges
		return within(KeyEdges, len(edges), b.limits.MaxEdges)
	}

	edges, err := input.Edges(b.str(KeyEdges, DefaultEdges))
	if err != nil {
		return err
	}
	req.Edges = edges
	return within(KeyEdges, len(edges), b.limits.MaxEdges)
}

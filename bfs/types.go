package bfs

import (
	"errors"

	"github.com/katalvlaran/algoviz/step"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Option configures BFS via functional arguments.
type Option func(*Options)

// Options holds the parameters of one traversal.
type Options struct {
	// OnVisit is called when a node joins the visited set, with its
	// distance in edges from the start.
	OnVisit func(id, depth int)

	// Step configures the recorder behind the trace.
	Step []step.Option
}

// DefaultOptions returns Options with a no-op OnVisit and no recorder options.
func DefaultOptions() Options {
	return Options{OnVisit: func(int, int) {}}
}

// WithOnVisit registers a callback to run on every visit.
func WithOnVisit(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithStepOptions passes recorder options through to the trace.
func WithStepOptions(opts ...step.Option) Option {
	return func(o *Options) {
		o.Step = append(o.Step, opts...)
	}
}

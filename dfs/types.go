package dfs

import (
	"errors"

	"github.com/katalvlaran/algoviz/step"
)

// ErrGraphNil is returned when a nil graph is passed to DFS.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures DFS.
type Option func(*Options)

// Options holds configurable parameters for one traversal.
type Options struct {
	// OnVisit, if non-nil, is invoked when a node is marked visited.
	OnVisit func(id int)

	// Step configures the recorder behind the trace.
	Step []step.Option
}

// DefaultOptions returns an Options with no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit sets a hook run in visitation order.
func WithOnVisit(fn func(id int)) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithStepOptions passes recorder options through to the trace.
func WithStepOptions(opts ...step.Option) Option {
	return func(o *Options) { o.Step = append(o.Step, opts...) }
}

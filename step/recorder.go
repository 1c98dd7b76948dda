package step

// Option configures a Recorder.
type Option func(*Recorder)

// WithCapacity preallocates room for n steps. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(r *Recorder) {
		if n > 0 {
			r.steps = make([]Step, 0, n)
		}
	}
}

// WithObserver registers fn to be called after every appended step.
// The observer receives the stored step by value; it must not retain
// payload slices for mutation.
func WithObserver(fn func(Step)) Option {
	return func(r *Recorder) {
		if fn != nil {
			r.observers = append(r.observers, fn)
		}
	}
}

// Recorder collects the steps of a single algorithm invocation.
type Recorder struct {
	steps     []Step
	observers []func(Step)
	sealed    bool
}

// NewRecorder returns an empty Recorder configured by opts.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{}
	for _, opt := range opts {
		opt(r)
	}
	if r.steps == nil {
		r.steps = make([]Step, 0)
	}
	return r
}

// Emit appends s to the trace. Emitting after Finalize is a programming
// error and panics.
func (r *Recorder) Emit(s Step) {
	if r.sealed {
		panic("step: Emit called after Finalize")
	}
	r.steps = append(r.steps, s)
	for _, fn := range r.observers {
		fn(s)
	}
}

// Len returns the number of steps emitted so far.
func (r *Recorder) Len() int { return len(r.steps) }

// Finalize seals the recorder and returns the completed trace.
func (r *Recorder) Finalize() Trace {
	r.sealed = true
	return Trace(r.steps)
}

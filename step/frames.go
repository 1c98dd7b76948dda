package step

// Frames is an explicit call stack of human-readable frame labels.
// Algorithms push a frame immediately before a simulated recursive call
// body runs and pop it right after, so Depth always equals the recursion
// depth at the current step.
type Frames struct {
	labels []string
	pushes int
	pops   int
}

// Push adds label on top of the stack.
func (f *Frames) Push(label string) {
	f.labels = append(f.labels, label)
	f.pushes++
}

// Pop removes and returns the top label. Popping an empty stack panics:
// it means the instrumentation is unbalanced.
func (f *Frames) Pop() string {
	if len(f.labels) == 0 {
		panic("step: Pop on empty frame stack")
	}
	top := f.labels[len(f.labels)-1]
	f.labels = f.labels[:len(f.labels)-1]
	f.pops++
	return top
}

// Snapshot returns a copy of the stack, bottom frame first.
func (f *Frames) Snapshot() []string { return Strings(f.labels) }

// Depth returns the number of active frames.
func (f *Frames) Depth() int { return len(f.labels) }

// Pushes returns the total number of Push calls.
func (f *Frames) Pushes() int { return f.pushes }

// Pops returns the total number of Pop calls.
func (f *Frames) Pops() int { return f.pops }

// Balanced reports whether every push has been matched by a pop.
func (f *Frames) Balanced() bool { return f.pushes == f.pops && len(f.labels) == 0 }

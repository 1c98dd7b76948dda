package sorting

import (
	"sort"

	"github.com/katalvlaran/algoviz/step"
)

// Func is the signature shared by every instrumented sort.
type Func func(values []int, opts ...step.Option) step.Trace

var registry = map[string]Func{
	"bubble":    Bubble,
	"selection": Selection,
	"insertion": Insertion,
	"merge":     Merge,
	"quick":     Quick,
}

// ByName returns the sort registered under name.
func ByName(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Names lists the registered sorts in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// sorter holds the working array and recorder of one invocation.
type sorter struct {
	arr []int
	rec *step.Recorder
}

func newSorter(values []int, opts []step.Option) *sorter {
	return &sorter{
		arr: step.Ints(values),
		rec: step.NewRecorder(opts...),
	}
}

// emit stamps the current array snapshot onto s and records it.
func (s *sorter) emit(st step.Step) {
	st.Array = step.Ints(s.arr)
	s.rec.Emit(st)
}

func (s *sorter) swap(i, j int) {
	s.arr[i], s.arr[j] = s.arr[j], s.arr[i]
}

// finish emits the terminal complete step and returns the trace.
func (s *sorter) finish(description string) step.Trace {
	s.emit(step.Step{
		Kind:        step.KindComplete,
		Pseudocode:  "return arr",
		Description: description,
	})
	return s.rec.Finalize()
}

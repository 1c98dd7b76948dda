package recursion

import (
	"sort"

	"github.com/katalvlaran/algoviz/step"
)

// Func traces a recursion parameterized by an integer.
type Func func(n int, opts ...step.Option) step.Trace

// TextFunc traces a recursion parameterized by a string.
type TextFunc func(text string, opts ...step.Option) step.Trace

var numeric = map[string]Func{
	"factorial": Factorial,
	"fibonacci": Fibonacci,
	"tower":     Hanoi,
}

var textual = map[string]TextFunc{
	"reverse": Reverse,
}

// ByName returns the integer-parameterized recursion registered under name.
func ByName(name string) (Func, bool) {
	fn, ok := numeric[name]
	return fn, ok
}

// TextByName returns the string-parameterized recursion registered under name.
func TextByName(name string) (TextFunc, bool) {
	fn, ok := textual[name]
	return fn, ok
}

// Names lists every registered recursion in lexical order.
func Names() []string {
	out := make([]string, 0, len(numeric)+len(textual))
	for name := range numeric {
		out = append(out, name)
	}
	for name := range textual {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

package tree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/algoviz/step"
)

// Order names a depth-first traversal order.
type Order string

const (
	OrderIn   Order = "inorder"
	OrderPre  Order = "preorder"
	OrderPost Order = "postorder"
)

// Func is the signature shared by the traced traversals.
type Func func(root *Node, opts ...step.Option) step.Trace

var registry = map[string]Func{
	string(OrderIn):   Inorder,
	string(OrderPre):  Preorder,
	string(OrderPost): Postorder,
}

// ByName returns the traversal registered under name.
func ByName(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Names lists the registered traversals in lexical order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Inorder traces left, node, right.
func Inorder(root *Node, opts ...step.Option) step.Trace {
	return run(OrderIn, root, opts)
}

// Preorder traces node, left, right.
func Preorder(root *Node, opts ...step.Option) step.Trace {
	return run(OrderPre, root, opts)
}

// Postorder traces left, right, node.
func Postorder(root *Node, opts ...step.Option) step.Trace {
	return run(OrderPost, root, opts)
}

// walker carries the mutable state of one traversal.
type walker struct {
	order  Order
	frames step.Frames
	rec    *step.Recorder
}

func run(o Order, root *Node, opts []step.Option) step.Trace {
	w := &walker{order: o, rec: step.NewRecorder(opts...)}
	if root != nil {
		w.walk(root, 0)
	}
	return w.rec.Finalize()
}

func (w *walker) emit(s step.Step, n *Node, depth int) {
	s.Node = step.Int(n.Value)
	s.CallStack = w.frames.Snapshot()
	s.Depth = step.Int(depth)
	w.rec.Emit(s)
}

func (w *walker) walk(n *Node, depth int) {
	w.frames.Push(fmt.Sprintf("%s(%d)", w.order, n.Value))

	if w.order == OrderPre {
		w.process(n, depth)
	} else {
		w.emit(step.Step{
			Kind:        step.KindVisit,
			Pseudocode:  fmt.Sprintf("%s(%d)", w.order, n.Value),
			Description: fmt.Sprintf("Visiting node %d", n.Value),
		}, n, depth)
	}

	if n.Left != nil {
		w.emit(step.Step{
			Kind:        step.KindGoLeft,
			NextNode:    step.Int(n.Left.Value),
			Pseudocode:  fmt.Sprintf("%s(node.left)", w.order),
			Description: fmt.Sprintf("Going to left child of %d", n.Value),
		}, n, depth)
		w.walk(n.Left, depth+1)
	}

	if w.order == OrderIn {
		w.process(n, depth)
	}

	if n.Right != nil {
		w.emit(step.Step{
			Kind:        step.KindGoRight,
			NextNode:    step.Int(n.Right.Value),
			Pseudocode:  fmt.Sprintf("%s(node.right)", w.order),
			Description: fmt.Sprintf("Going to right child of %d", n.Value),
		}, n, depth)
		w.walk(n.Right, depth+1)
	}

	if w.order == OrderPost {
		w.process(n, depth)
	}

	w.frames.Pop()
	w.emit(step.Step{
		Kind:        step.KindReturn,
		Pseudocode:  fmt.Sprintf("return from %d", n.Value),
		Description: fmt.Sprintf("Returning from node %d", n.Value),
	}, n, depth)
}

func (w *walker) process(n *Node, depth int) {
	w.emit(step.Step{
		Kind:        step.KindProcess,
		Pseudocode:  fmt.Sprintf("process(%d)", n.Value),
		Description: fmt.Sprintf("Processing node %d", n.Value),
	}, n, depth)
}

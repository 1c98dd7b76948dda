package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/algoviz/graph"
	"github.com/katalvlaran/algoviz/step"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *graph.Graph
	opts    Options
	stack   []int
	visited map[int]bool
	order   []int
	rec     *step.Recorder
}

// DFS traces depth-first search on g from start.
// It returns ErrGraphNil for a nil graph and never fails otherwise.
func DFS(g *graph.Graph, start int, opts ...Option) (step.Trace, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &dfsWalker{
		graph:   g,
		opts:    o,
		stack:   []int{start},
		visited: make(map[int]bool, g.Order()),
		order:   make([]int, 0, g.Order()),
		rec:     step.NewRecorder(o.Step...),
	}
	w.emit(step.Step{
		Kind:        step.KindInitialize,
		Pseudocode:  fmt.Sprintf("stack = [%d], visited = []", start),
		Description: fmt.Sprintf("Initialize DFS with start node %d", start),
	})

	for len(w.stack) > 0 {
		cur := w.pop()
		if w.visited[cur] {
			continue
		}
		w.visit(cur)
		w.pushNeighbors(cur)
	}

	w.emit(step.Step{
		Kind:        step.KindComplete,
		Pseudocode:  "DFS complete",
		Description: "DFS traversal completed",
	})
	return w.rec.Finalize(), nil
}

func (w *dfsWalker) emit(s step.Step) {
	s.Stack = step.Ints(w.stack)
	s.Visited = step.Ints(w.order)
	w.rec.Emit(s)
}

func (w *dfsWalker) pop() int {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.emit(step.Step{
		Kind:        step.KindPop,
		Current:     step.Int(top),
		Pseudocode:  fmt.Sprintf("current = stack.pop() = %d", top),
		Description: fmt.Sprintf("Pop node %d from stack", top),
	})
	return top
}

func (w *dfsWalker) visit(id int) {
	w.visited[id] = true
	w.order = append(w.order, id)
	w.emit(step.Step{
		Kind:        step.KindVisit,
		Current:     step.Int(id),
		Pseudocode:  fmt.Sprintf("visited.add(%d)", id),
		Description: fmt.Sprintf("Visit node %d", id),
	})
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(id)
	}
}

// pushNeighbors pushes every unvisited neighbor of cur, largest first.
func (w *dfsWalker) pushNeighbors(cur int) {
	nbrs := w.graph.Neighbors(cur)
	sort.Sort(sort.Reverse(sort.IntSlice(nbrs)))
	for _, nbr := range nbrs {
		if w.visited[nbr] {
			continue
		}
		w.stack = append(w.stack, nbr)
		w.emit(step.Step{
			Kind:        step.KindPush,
			Current:     step.Int(cur),
			Neighbor:    step.Int(nbr),
			Pseudocode:  fmt.Sprintf("stack.append(%d)", nbr),
			Description: fmt.Sprintf("Push neighbor %d of %d to stack", nbr, cur),
		})
	}
}

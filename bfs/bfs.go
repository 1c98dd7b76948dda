package bfs

import (
	"fmt"

	"github.com/katalvlaran/algoviz/graph"
	"github.com/katalvlaran/algoviz/step"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *graph.Graph
	opts    Options
	queue   []int
	queued  map[int]bool
	visited map[int]bool
	order   []int
	depth   map[int]int
	rec     *step.Recorder
}

// BFS traces breadth-first search on g from start.
// It returns ErrGraphNil for a nil graph and never fails otherwise.
func BFS(g *graph.Graph, start int, opts ...Option) (step.Trace, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]int, 0, n),
		queued:  make(map[int]bool, n),
		visited: make(map[int]bool, n),
		order:   make([]int, 0, n),
		depth:   map[int]int{start: 0},
		rec:     step.NewRecorder(o.Step...),
	}

	w.enqueue(start)
	w.emit(step.Step{
		Kind:        step.KindInitialize,
		Pseudocode:  fmt.Sprintf("queue = [%d], visited = []", start),
		Description: fmt.Sprintf("Initialize BFS with start node %d", start),
	})
	w.loop()
	w.emit(step.Step{
		Kind:        step.KindComplete,
		Pseudocode:  "BFS complete",
		Description: "BFS traversal completed",
	})
	return w.rec.Finalize(), nil
}

// emit stamps queue and visited snapshots onto s and records it.
func (w *walker) emit(s step.Step) {
	s.Queue = step.Ints(w.queue)
	s.Visited = step.Ints(w.order)
	w.rec.Emit(s)
}

func (w *walker) enqueue(id int) {
	w.queue = append(w.queue, id)
	w.queued[id] = true
}

func (w *walker) dequeue() int {
	id := w.queue[0]
	w.queue = w.queue[1:]
	delete(w.queued, id)
	return id
}

// loop processes the queue until it is empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		cur := w.dequeue()
		w.emit(step.Step{
			Kind:        step.KindDequeue,
			Current:     step.Int(cur),
			Pseudocode:  fmt.Sprintf("current = queue.popleft() = %d", cur),
			Description: fmt.Sprintf("Dequeue node %d", cur),
		})
		if w.visited[cur] {
			continue
		}
		w.visit(cur)
		w.enqueueNeighbors(cur)
	}
}

func (w *walker) visit(id int) {
	w.visited[id] = true
	w.order = append(w.order, id)
	w.emit(step.Step{
		Kind:        step.KindVisit,
		Current:     step.Int(id),
		Pseudocode:  fmt.Sprintf("visited.add(%d)", id),
		Description: fmt.Sprintf("Visit node %d", id),
	})
	w.opts.OnVisit(id, w.depth[id])
}

// enqueueNeighbors queues every neighbor of cur that is neither visited
// nor already waiting, in adjacency order.
func (w *walker) enqueueNeighbors(cur int) {
	for _, nbr := range w.graph.Neighbors(cur) {
		if w.visited[nbr] || w.queued[nbr] {
			continue
		}
		w.enqueue(nbr)
		w.depth[nbr] = w.depth[cur] + 1
		w.emit(step.Step{
			Kind:        step.KindEnqueue,
			Current:     step.Int(cur),
			Neighbor:    step.Int(nbr),
			Pseudocode:  fmt.Sprintf("queue.append(%d)", nbr),
			Description: fmt.Sprintf("Enqueue neighbor %d of %d", nbr, cur),
		})
	}
}

package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/graph"
	"github.com/katalvlaran/algoviz/step"
)

func edges(pairs ...int) []graph.Edge {
	out := make([]graph.Edge, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, graph.Edge{U: pairs[i], V: pairs[i+1]})
	}
	return out
}

func visitOrder(tr step.Trace) []int {
	out := []int{}
	for _, s := range tr.Filter(step.KindVisit) {
		out = append(out, *s.Current)
	}
	return out
}

func TestBFS_NilGraph(t *testing.T) {
	tr, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	assert.Nil(t, tr)
}

func TestBFS_Diamond(t *testing.T) {
	g := graph.Build(edges(0, 1, 0, 2, 1, 3, 2, 3))
	tr, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, visitOrder(tr))
	assert.Equal(t, []step.Kind{
		step.KindInitialize,
		step.KindDequeue, step.KindVisit, step.KindEnqueue, step.KindEnqueue,
		step.KindDequeue, step.KindVisit, step.KindEnqueue,
		step.KindDequeue, step.KindVisit,
		step.KindDequeue, step.KindVisit,
		step.KindComplete,
	}, tr.Kinds())

	assert.Equal(t, []int{0}, tr[0].Queue)
	assert.Empty(t, tr[0].Visited)
	assert.Nil(t, tr[0].Current)

	// Dequeue shows the queue without the removed head.
	assert.Empty(t, tr[1].Queue)
	assert.Equal(t, 0, *tr[1].Current)

	// 3 is queued by 1, so 2 must not enqueue it again.
	assert.Equal(t, 3, *tr[7].Neighbor)
	assert.Equal(t, 1, *tr[7].Current)

	last, _ := tr.Last()
	assert.Equal(t, []int{0, 1, 2, 3}, last.Visited)
	assert.Empty(t, last.Queue)
}

func TestBFS_VisitsEachReachableNodeOnce(t *testing.T) {
	graphs := [][]graph.Edge{
		edges(0, 1, 1, 2, 2, 0, 2, 3, 3, 4, 4, 1),
		edges(0, 1, 0, 1, 1, 1, 1, 2),
		edges(0, 1, 2, 3),
		edges(5, 3, 3, 9, 9, 5, 9, 7, 7, 8),
	}
	for i, es := range graphs {
		g := graph.Build(es)
		for _, start := range g.Nodes() {
			tr, err := bfs.BFS(g, start)
			require.NoError(t, err)

			order := visitOrder(tr)
			seen := map[int]bool{}
			for _, id := range order {
				assert.False(t, seen[id], "graph %d start %d: %d visited twice", i, start, id)
				seen[id] = true
			}
			assert.Equal(t, g.Reachable(start), seen, "graph %d start %d", i, start)

			last, _ := tr.Last()
			assert.Equal(t, step.KindComplete, last.Kind)
			assert.Len(t, last.Visited, len(g.Reachable(start)))
		}
	}
}

func TestBFS_StartOutsideGraph(t *testing.T) {
	g := graph.Build(edges(0, 1))
	tr, err := bfs.BFS(g, 42)
	require.NoError(t, err)
	assert.Equal(t, []int{42}, visitOrder(tr))
	assert.Equal(t, []step.Kind{
		step.KindInitialize, step.KindDequeue, step.KindVisit, step.KindComplete,
	}, tr.Kinds())
}

func TestBFS_OnVisitDepth(t *testing.T) {
	g := graph.Build(edges(0, 1, 1, 2, 0, 3))
	depths := map[int]int{}
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, d int) { depths[id] = d }))
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 3: 1, 2: 2}, depths)
}

func TestBFS_StepOptions(t *testing.T) {
	g := graph.Build(edges(0, 1))
	kinds := []step.Kind{}
	tr, err := bfs.BFS(g, 0, bfs.WithStepOptions(step.WithObserver(func(s step.Step) {
		kinds = append(kinds, s.Kind)
	})))
	require.NoError(t, err)
	assert.Equal(t, tr.Kinds(), kinds)
}

func TestBFS_SnapshotsDoNotAlias(t *testing.T) {
	g := graph.Build(edges(0, 1, 0, 2))
	tr, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	tr[3].Queue[0] = 99
	assert.Equal(t, 1, tr[4].Queue[0])
}

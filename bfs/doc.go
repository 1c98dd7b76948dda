// Package bfs traces breadth-first search over an undirected graph.Graph,
// recording every queue operation as a step.
//
// What
//
//   - initialize: the queue holds only the start node.
//   - dequeue:    the head is removed; the step shows the queue without it.
//   - visit:      an unvisited dequeued node joins the visited set.
//   - enqueue:    each neighbor of the visited node that is neither visited
//     nor already queued, in adjacency (declaration) order.
//   - complete:   the queue is empty.
//
// Every step carries copies of the queue and of the visited set, the latter
// in visitation order, plus the current node and, for enqueue, the neighbor.
//
// A start node that appears in no edge is still traversed: it is visited
// alone and the trace completes.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E) traversal, O(V) extra per step for the snapshots.
//   - Memory: O(V) working state plus the trace.
//
// Usage
//
//	g := graph.Build([]graph.Edge{{U: 0, V: 1}, {U: 0, V: 2}})
//	tr, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // ErrGraphNil
//	}
//
//	// Observe steps as they are recorded:
//	tr, err = bfs.BFS(g, 0, bfs.WithStepOptions(step.WithObserver(fn)))
package bfs

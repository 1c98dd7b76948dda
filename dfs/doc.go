// Package dfs traces iterative depth-first search over an undirected
// graph.Graph with an explicit stack.
//
// What
//
//   - initialize: the stack holds only the start node.
//   - pop:        the top is removed; the step shows the stack without it.
//   - visit:      an unvisited popped node joins the visited set.
//   - push:       each neighbor of the visited node that is not yet visited,
//     taken in descending ID order so that later pops yield ascending
//     order among siblings.
//   - complete:   the stack is empty.
//
// Unlike bfs, a node may sit on the stack more than once; popping an
// already visited node records only the pop.
//
// Complexity: O(V + E) time, O(E) stack in the worst case.
package dfs

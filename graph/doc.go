// Package graph defines the undirected adjacency list traversed by the bfs
// and dfs packages.
//
// A Graph maps an integer node ID to the ordered list of its neighbors.
// Build inserts both directions of every edge in declaration order, so the
// neighbor order is exactly the order the edges were given, duplicates and
// self-loops included. Nothing is sorted or de-duplicated: traversal order
// depends on that declaration order and the tests rely on it.
//
// Complexity:
//
//   - Build:     O(E)
//   - Neighbors: O(1), returns a copy (O(deg))
//   - Nodes:     O(V log V)
//
// Usage:
//
//	g := graph.Build([]graph.Edge{{U: 0, V: 1}, {U: 0, V: 2}})
//	g.Neighbors(0) // [1 2]
//
// A Graph is not safe for concurrent mutation; it is built once and then
// only read.
package graph

package graph

import (
	"fmt"
	"sort"
)

// Edge is an undirected connection between U and V.
type Edge struct {
	U, V int
}

// String renders the edge in the "u-v" form accepted by the input parser.
func (e Edge) String() string { return fmt.Sprintf("%d-%d", e.U, e.V) }

// Graph is an undirected adjacency list keyed by node ID.
type Graph struct {
	adj   map[int][]int
	edges int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[int][]int)}
}

// Build returns the graph holding every edge in edges, in order.
func Build(edges []Edge) *Graph {
	g := New()
	for _, e := range edges {
		g.AddEdge(e.U, e.V)
	}
	return g
}

// AddEdge appends v to u's neighbors and u to v's. A self-loop therefore
// lists the node twice in its own neighbor list.
func (g *Graph) AddEdge(u, v int) {
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges++
}

// Neighbors returns a copy of id's neighbors in declaration order, or an
// empty slice for an unknown node.
func (g *Graph) Neighbors(id int) []int {
	src := g.adj[id]
	out := make([]int, len(src))
	copy(out, src)
	return out
}

// HasNode reports whether id appears in any edge.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.adj[id]
	return ok
}

// Nodes returns every node ID in ascending order.
func (g *Graph) Nodes() []int {
	out := make([]int, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Order is the number of nodes.
func (g *Graph) Order() int { return len(g.adj) }

// Size is the number of edges added, duplicates included.
func (g *Graph) Size() int { return g.edges }

// Reachable returns the set of nodes reachable from start, start included.
// It is the untraced reference the traversal tests compare against.
func (g *Graph) Reachable(start int) map[int]bool {
	seen := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nbr := range g.adj[cur] {
			if !seen[nbr] {
				seen[nbr] = true
				stack = append(stack, nbr)
			}
		}
	}
	return seen
}

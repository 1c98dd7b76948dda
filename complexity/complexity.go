// Package complexity is a static lookup of asymptotic bounds for every
// algorithm algoviz can trace. A Descriptor is returned alongside each
// trace so a client can show the bounds next to the replay.
package complexity

// Family names, shared with the engine.
const (
	Sorting   = "sorting"
	Tree      = "tree"
	Recursion = "recursion"
	Graph     = "graph"
)

// Descriptor maps a bound name (time_best, time_avg, time_worst, time,
// space) to its asymptotic expression.
type Descriptor map[string]string

var sortingTable = map[string]Descriptor{
	"bubble":    {"time_best": "O(n)", "time_avg": "O(n²)", "time_worst": "O(n²)", "space": "O(1)"},
	"selection": {"time_best": "O(n²)", "time_avg": "O(n²)", "time_worst": "O(n²)", "space": "O(1)"},
	"insertion": {"time_best": "O(n)", "time_avg": "O(n²)", "time_worst": "O(n²)", "space": "O(1)"},
	"merge":     {"time_best": "O(n log n)", "time_avg": "O(n log n)", "time_worst": "O(n log n)", "space": "O(n)"},
	"quick":     {"time_best": "O(n log n)", "time_avg": "O(n log n)", "time_worst": "O(n²)", "space": "O(log n)"},
}

var recursionTable = map[string]Descriptor{
	"factorial": {"time": "O(n)", "space": "O(n)"},
	"fibonacci": {"time": "O(2^n)", "space": "O(n)"},
	"tower":     {"time": "O(2^n)", "space": "O(n)"},
	"reverse":   {"time": "O(n)", "space": "O(n)"},
}

var treeTable = map[string]Descriptor{
	"inorder":   {"time": "O(n)", "space": "O(h)"},
	"preorder":  {"time": "O(n)", "space": "O(h)"},
	"postorder": {"time": "O(n)", "space": "O(h)"},
}

var graphTable = map[string]Descriptor{
	"bfs": {"time": "O(V + E)", "space": "O(V)"},
	"dfs": {"time": "O(V + E)", "space": "O(V)"},
}

var tables = map[string]map[string]Descriptor{
	Sorting:   sortingTable,
	Tree:      treeTable,
	Recursion: recursionTable,
	Graph:     graphTable,
}

// Lookup returns a copy of the descriptor for (family, variant), or an
// empty Descriptor when either name is unknown.
func Lookup(family, variant string) Descriptor {
	d, ok := tables[family][variant]
	if !ok {
		return Descriptor{}
	}
	out := make(Descriptor, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Known reports whether a descriptor exists for (family, variant).
func Known(family, variant string) bool {
	_, ok := tables[family][variant]
	return ok
}

package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/algoviz/complexity"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/graph"
	"github.com/katalvlaran/algoviz/input"
	"github.com/katalvlaran/algoviz/recursion"
	"github.com/katalvlaran/algoviz/step"
)

// renderInput echoes the resolved input in flag syntax, so a generated
// fixture can be replayed with explicit flags.
func renderInput(w io.Writer, req engine.Request) {
	switch req.Family {
	case engine.Sorting:
		fmt.Fprintf(w, "input: --data %s\n", input.FormatInts(req.Ints))
	case engine.Tree:
		fmt.Fprintf(w, "input: --tree %s\n", input.FormatLevelOrder(req.Tree))
	case engine.Recursion:
		if req.Variant == "reverse" {
			fmt.Fprintf(w, "input: --text %q\n", req.Text)
			return
		}
		fmt.Fprintf(w, "input: --n %d\n", req.N)
	case engine.Graph:
		fmt.Fprintf(w, "input: --edges %s --start %d", input.FormatEdges(req.Edges), req.Start)
		if !graph.Build(req.Edges).HasNode(req.Start) {
			fmt.Fprint(w, " (start is not in the graph)")
		}
		fmt.Fprintln(w)
	}
}

func renderTable(w io.Writer, tr step.Trace) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"#", "Type", "Description", "State"})
	tbl.SetAutoWrapText(false)
	for i, s := range tr {
		tbl.Append([]string{strconv.Itoa(i), string(s.Kind), s.Description, state(s)})
	}
	tbl.Render()
}

func renderComplexity(w io.Writer, d complexity.Descriptor) {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Measure", "Complexity"})
	for _, k := range keys {
		tbl.Append([]string{k, d[k]})
	}
	tbl.Render()
}

// state summarizes the family-specific payload of s in one cell.
func state(s step.Step) string {
	switch {
	case s.Array != nil:
		return fmt.Sprint(s.Array)
	case s.RodStates != nil:
		return fmt.Sprintf("A%v B%v C%v",
			s.RodStates[recursion.RodA], s.RodStates[recursion.RodB], s.RodStates[recursion.RodC])
	case s.Queue != nil || s.Stack != nil || s.Visited != nil:
		frontier := s.Queue
		if frontier == nil {
			frontier = s.Stack
		}
		return fmt.Sprintf("frontier=%v visited=%v", ints(frontier), ints(s.Visited))
	case s.CallStack != nil:
		return strings.Join(s.CallStack, " > ")
	}
	return ""
}

func ints(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

// plotTrace charts the final array for sorting, the frontier size for
// graph traversals and the call depth otherwise.
func plotTrace(req engine.Request, tr step.Trace, height int) string {
	var series []float64
	caption := "call depth per step"
	switch req.Family {
	case engine.Sorting:
		caption = "sorted array"
		if last, ok := tr.Last(); ok {
			for _, v := range last.Array {
				series = append(series, float64(v))
			}
		}
	case engine.Graph:
		caption = "frontier size per step"
		for _, s := range tr {
			series = append(series, float64(len(s.Queue)+len(s.Stack)))
		}
	default:
		for _, s := range tr {
			series = append(series, float64(len(s.CallStack)))
		}
	}
	if len(series) == 0 {
		return "(empty trace)"
	}
	return asciigraph.Plot(series, asciigraph.Height(height), asciigraph.Caption(caption))
}

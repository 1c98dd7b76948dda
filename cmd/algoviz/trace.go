package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/params"
)

type traceT struct {
	Cmd *cobra.Command
	app *app

	asJSON bool
	plot   bool
	height int
}

// paramFlags maps each request parameter onto a string flag of the same
// name; parsing and defaults are left to package params.
var paramFlags = []struct {
	key, usage string
}{
	{params.KeyData, "comma-separated integers to sort (default " + params.DefaultData + ")"},
	{params.KeyTree, "level-order tree, null for absent nodes (default " + params.DefaultTree + ")"},
	{params.KeyN, "recursion argument (default 5, tower 3)"},
	{params.KeyText, "string to reverse (default " + params.DefaultText + ")"},
	{params.KeyEdges, "comma-separated u-v edges (default " + params.DefaultEdges + ")"},
	{params.KeyStart, "graph start node (default 0)"},
	{params.KeyGenerate, "generate the input: a sequence, a graph shape or \"complete\" for trees"},
	{params.KeySize, "generated sequence length or tree size (default 10)"},
	{params.KeyNodes, "generated graph node count (default 4)"},
	{params.KeySeed, "seed for generated input"},
	{params.KeyMin, "smallest generated value (default 1)"},
	{params.KeyMax, "largest generated value (default 99)"},
	{params.KeyDistinct, "distinct values drawn by few_unique (default 3)"},
}

func newTraceCmd(a *app) *traceT {
	t := &traceT{app: a}
	t.Cmd = &cobra.Command{
		Use:   "trace <family> <variant>",
		Short: "print the step trace of one algorithm",
		Long: `
Run one algorithm and print its trace as a table, as JSON (--json), or as
an ASCII plot (--plot). Families: sorting, tree, recursion, graph.
`,
		Example: `  algoviz trace sorting bubble --data 5,1,4
  algoviz trace recursion tower --n 3 --plot
  algoviz trace graph dfs --generate grid --nodes 3 --json`,
		Args: cobra.ExactArgs(2),
		RunE: t.run,
	}

	for _, f := range paramFlags {
		t.Cmd.Flags().String(f.key, "", f.usage)
	}
	t.Cmd.Flags().BoolVar(&t.asJSON, "json", false, "print the raw JSON response")
	t.Cmd.Flags().BoolVar(&t.plot, "plot", false, "plot the trace instead of tabulating it")
	t.Cmd.Flags().IntVar(&t.height, "height", 10, "plot height in rows")
	t.Cmd.MarkFlagsMutuallyExclusive("json", "plot")
	return t
}

// lookup reports only flags set on the command line, so unset flags fall
// back to the defaults in package params.
func (t *traceT) lookup(key string) (string, bool) {
	f := t.Cmd.Flags().Lookup(key)
	if f == nil || !f.Changed {
		return "", false
	}
	return f.Value.String(), true
}

func (t *traceT) run(cmd *cobra.Command, args []string) error {
	cfg, err := t.app.loadConfig()
	if err != nil {
		return err
	}

	family, ok := engine.ParseFamily(args[0])
	if !ok {
		return fmt.Errorf("%w: family %q", engine.ErrUnknownAlgorithm, args[0])
	}
	req, err := params.Build(family, args[1], t.lookup, cfg.Limits)
	if err != nil {
		return err
	}
	res, err := engine.Run(req)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch {
	case t.asJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case t.plot:
		renderInput(w, req)
		fmt.Fprintln(w, plotTrace(req, res.Steps, t.height))
	default:
		renderInput(w, req)
		renderTable(w, res.Steps)
	}
	renderComplexity(w, res.Complexity)
	return nil
}

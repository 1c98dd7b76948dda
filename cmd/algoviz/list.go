package main

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/params"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list traceable algorithms and input generators",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tbl := tablewriter.NewWriter(cmd.OutOrStdout())
			tbl.SetHeader([]string{"Family", "Variants", "Generators"})
			tbl.SetAutoWrapText(false)
			for _, f := range engine.Families() {
				tbl.Append([]string{
					string(f),
					strings.Join(engine.Variants(f), ", "),
					strings.Join(generators(f), ", "),
				})
			}
			tbl.Render()
		},
	}
}

func generators(f engine.Family) []string {
	switch f {
	case engine.Sorting:
		return builder.SequenceNames()
	case engine.Tree:
		return params.TreeGenerators()
	case engine.Graph:
		return builder.ShapeNames()
	}
	return nil
}

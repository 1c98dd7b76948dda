package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/config"
)

// app holds the command tree and the flags shared by every subcommand.
type app struct {
	Root *cobra.Command

	configPath string
}

func newApp() *app {
	a := &app{}
	a.Root = &cobra.Command{
		Use:           "algoviz [command] (flags)",
		Short:         "instrumented algorithm trace engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	a.Root.PersistentFlags().StringVar(
		&a.configPath, "config", "", "path to a YAML or JSON config file")

	cobra.EnableCommandSorting = false
	a.Root.AddCommand(
		newServeCmd(a),
		newTraceCmd(a).Cmd,
		newListCmd(),
	)
	return a
}

func (a *app) loadConfig() (config.Config, error) {
	return config.Load(a.configPath)
}

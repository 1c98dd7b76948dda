package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/logging"
	"github.com/katalvlaran/algoviz/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP and websocket trace API",
		Long: `
Serve the trace API until interrupted. Settings come from the config file,
then ALGOVIZ_* environment variables, then --addr.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			level, err := logging.ParseLevel(cfg.Logging.Level)
			if err != nil {
				return err
			}
			logger := logging.New(logging.Config{
				Level:   level,
				JSON:    cfg.Logging.JSON,
				Service: "algoviz",
				Output:  cmd.ErrOrStderr(),
			})

			gin.SetMode(cfg.Server.Mode)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, logger).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

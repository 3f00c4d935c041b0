package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/nursen/oriki/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the generation HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		rt, err := newRuntime(ctx, cfg)
		if err != nil {
			return err
		}
		defer rt.Close()

		if cfg.Log.Mode == "production" || cfg.Log.Mode == "prod" {
			gin.SetMode(gin.ReleaseMode)
		}

		var serviceName string
		if cfg.Telemetry.Enabled {
			serviceName = cfg.Telemetry.ServiceName
		}

		srv := server.New(cfg.Server, server.Deps{
			Generator:   rt.pipeline,
			Renderer:    rt.renderer,
			Metrics:     rt.metrics,
			Log:         rt.log,
			ServiceName: serviceName,
		})
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("host", "", "Interface to listen on")
	serveCmd.Flags().Int("port", 0, "Port to listen on")
	serveCmd.Flags().Bool("concurrent", false, "Run poem and affirmation stages in parallel")
	serveCmd.Flags().Bool("strict", false, "Reject generated output outside the expected list sizes")
}

// commandContext returns cmd's context, or Background when it has none.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

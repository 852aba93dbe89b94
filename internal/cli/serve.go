package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazesolver/internal/api"
	mazeapi "github.com/katalvlaran/mazesolver/internal/api/maze"
)

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.HTTPAddr
			}
			gin.SetMode(a.cfg.GinMode)

			router := a.router(addr)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return router.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from MAZESOLVER_HTTP_ADDR)")
	return cmd
}

// router wires the maze controller with the loaded configuration.
func (a *app) router(addr string) *api.Router {
	server := mazeapi.NewMazeServer(mazeapi.Config{
		DefaultMaze: a.cfg.DefaultMaze,
		Timeout:     a.cfg.SolveTimeout,
		Options:     a.cfg.SolverOptions(),
		Logger:      a.logger,
	})
	return api.NewRouter(api.Config{
		Addr:        addr,
		BaseURL:     a.cfg.BaseURL,
		Controllers: []api.Controller{server},
		Logger:      a.logger,
	})
}

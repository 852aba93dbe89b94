// Package cli implements the mazesolver command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazesolver/internal/config"
)

// app carries the global flags and what PersistentPreRunE derives from them.
type app struct {
	debug   bool
	envFile string

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mazesolver",
		Short: "Solve grid mazes with fifteen pathfinding algorithms",
		Long: `mazesolver runs classic and modern pathfinding algorithms on 4-connected
grid mazes and shows the path they find together with the cells they explored.

Configuration is read from the environment and from ./.env (see --env-file).

Examples:
  # Solve the first built-in maze with A*
  mazesolver solve --maze "Maze 1" --algorithm astar

  # Solve a random 20x30 maze with loops and print JSON
  mazesolver solve --random 20x30 --loops 15 --seed 42 --algorithm jps --format json

  # Watch Dijkstra explore
  mazesolver solve --algorithm dijkstra --animate --delay 50ms

  # Compare every algorithm on one maze
  mazesolver compare --maze "Maze 4"

  # Serve the HTTP API
  mazesolver serve --addr :8080`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Read variables from this file instead of ./.env")

	root.AddCommand(a.listCmd(), a.solveCmd(), a.compareCmd(), a.serveCmd())
	return root
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var files []string
	if a.envFile != "" {
		files = append(files, a.envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Setup logging
	logLevel := cfg.LogLevel
	if a.debug {
		logLevel = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(a.logger)

	a.logger.Debug("configuration loaded",
		"default_maze", cfg.DefaultMaze,
		"default_algorithm", cfg.DefaultAlgorithm,
		"sma_memory", cfg.SMAMemory,
		"solve_timeout", cfg.SolveTimeout)
	return nil
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazesolver/gridgraph"
	"github.com/katalvlaran/mazesolver/internal/session"
	"github.com/katalvlaran/mazesolver/mazegen"
	"github.com/katalvlaran/mazesolver/pathfind"
)

type solveFlags struct {
	maze      string
	random    string
	seed      int64
	loops     int
	algorithm string
	format    string
	trace     bool
	animate   bool
	delay     time.Duration
	walls     []string
}

func (a *app) solveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one maze with one algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("delay") {
				f.delay = a.cfg.FrameDelay
			}
			return a.runSolve(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.maze, "maze", "", "Built-in maze name (default from MAZESOLVER_DEFAULT_MAZE)")
	cmd.Flags().StringVar(&f.random, "random", "", "Generate a random maze of RxC rooms instead")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Seed for --random and Random Walk (0: time-based)")
	cmd.Flags().IntVar(&f.loops, "loops", 0, "Extra interior walls to remove from a --random maze")
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "Algorithm name or alias (default from MAZESOLVER_DEFAULT_ALGORITHM)")
	cmd.Flags().StringVar(&f.format, "format", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "Include the visited cells in the output")
	cmd.Flags().BoolVar(&f.animate, "animate", false, "Print a frame for every visited cell, then for every path cell")
	cmd.Flags().DurationVar(&f.delay, "delay", 0, "Pause between animation frames (default from MAZESOLVER_FRAME_DELAY)")
	cmd.Flags().StringArrayVar(&f.walls, "wall", nil, "Turn the cell R,C into a wall before solving (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("maze", "random")
	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, f solveFlags) error {
	switch f.format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format: %s (must be text or json)", f.format)
	}
	if f.animate && f.format != "text" {
		return fmt.Errorf("--animate needs the text format")
	}

	algo := a.cfg.DefaultAlgorithm
	if f.algorithm != "" {
		var err error
		if algo, err = pathfind.ParseAlgorithm(f.algorithm); err != nil {
			return err
		}
	}

	g, label, err := a.loadGrid(f)
	if err != nil {
		return err
	}
	if err = addWalls(g, f.walls); err != nil {
		return err
	}

	opts := a.cfg.SolverOptions()
	if f.seed != 0 {
		opts = append(opts, pathfind.WithSeed(f.seed))
	}

	logger := a.logger.With("maze", label, "algorithm", algo)
	logger.Info("solving", "width", g.Width, "height", g.Height)

	var (
		res     *pathfind.Result
		visited []gridgraph.Cell
	)
	if f.animate {
		res, visited, err = a.animate(cmd.Context(), cmd.OutOrStdout(), g, algo, f.delay, opts)
	} else {
		var rec pathfind.Recorder
		res, err = pathfind.Solve(g, algo, append(opts, rec.Option())...)
		visited = rec.Cells()
	}
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	logger.Debug("solve complete", "found", res.Found, "expanded", res.Expanded, "cost", res.Cost)

	var walls []gridgraph.Cell
	if !res.Found {
		if _, walls, err = g.WallsToBreak(g.Start, g.End); err != nil {
			return err
		}
		logger.Debug("no path", "walls_to_remove", len(walls))
	}

	if !f.trace {
		visited = nil
	}
	if f.format == "json" {
		return renderJSON(cmd.OutOrStdout(), label, algo, res, visited, walls)
	}
	return renderText(cmd.OutOrStdout(), label, g, res, visited, walls)
}

// addWalls applies the --wall flags.
func addWalls(g *gridgraph.Grid, specs []string) error {
	for _, spec := range specs {
		var c gridgraph.Cell
		if _, err := fmt.Sscanf(spec, "%d,%d", &c.Row, &c.Col); err != nil {
			return fmt.Errorf("invalid --wall %q (want R,C): %w", spec, err)
		}
		if err := g.SetWall(c, true); err != nil {
			return err
		}
	}
	return nil
}

// loadGrid returns the grid selected by the flags and a label for it.
func (a *app) loadGrid(f solveFlags) (*gridgraph.Grid, string, error) {
	if f.random != "" {
		var rows, cols int
		if _, err := fmt.Sscanf(f.random, "%dx%d", &rows, &cols); err != nil {
			return nil, "", fmt.Errorf("invalid --random %q (want RxC, e.g. 10x20): %w", f.random, err)
		}
		opts := []mazegen.Option{mazegen.WithExtraOpenings(f.loops)}
		if f.seed != 0 {
			opts = append(opts, mazegen.WithSeed(f.seed))
		}
		g, err := mazegen.Generate(rows, cols, opts...)
		if err != nil {
			return nil, "", err
		}
		return g, fmt.Sprintf("random %dx%d", rows, cols), nil
	}

	name := f.maze
	if name == "" {
		name = a.cfg.DefaultMaze
	}
	g, err := gridgraph.Maze(name)
	if err != nil {
		return nil, "", err
	}
	return g, name, nil
}

// animate runs the search through a session and prints one frame per
// visited cell as the trace arrives, then draws the path one cell at a time
// over the explored area.
func (a *app) animate(ctx context.Context, w io.Writer, g *gridgraph.Grid, algo pathfind.Algorithm,
	delay time.Duration, opts []pathfind.Option) (*pathfind.Result, []gridgraph.Cell, error) {
	run, err := session.New(g, a.logger).Run(ctx, algo, opts...)
	if err != nil {
		return nil, nil, err
	}

	var visited []gridgraph.Cell
	for c := range run.Trace {
		visited = append(visited, c)
		fmt.Fprintf(w, "step %d %v\n%s\n", len(visited), c, g.Render(nil, visited))
		if !pause(ctx, delay) {
			run.Cancel()
		}
	}

	out := <-run.Done
	if out.Err != nil {
		return nil, nil, out.Err
	}

	path := out.Result.Path
	for i := range path {
		fmt.Fprintf(w, "path %d/%d %v\n%s\n", i+1, len(path), path[i], g.Render(path[:i+1], visited))
		if !pause(ctx, delay) {
			return nil, nil, ctx.Err()
		}
	}
	return out.Result, visited, nil
}

// pause waits for delay and reports false if ctx ended first.
func pause(ctx context.Context, delay time.Duration) bool {
	if delay <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-time.After(delay):
		return true
	case <-ctx.Done():
		return false
	}
}

func renderText(w io.Writer, label string, g *gridgraph.Grid, res *pathfind.Result, visited, walls []gridgraph.Cell) error {
	optimal := ""
	if res.Algorithm.Optimal() {
		optimal = " (optimal)"
	}
	fmt.Fprintf(w, "maze: %s\n", label)
	fmt.Fprintf(w, "algorithm: %s%s\n", res.Algorithm, optimal)
	fmt.Fprintf(w, "found: %v  cells: %d  cost: %s  expanded: %d\n",
		res.Found, res.Len(), formatCost(res.Cost), res.Expanded)
	if len(walls) > 0 {
		fmt.Fprintf(w, "walls to remove: %v\n", walls)
	}
	_, err := fmt.Fprintln(w, g.Render(res.Path, visited))
	return err
}

// formatCost prints step counts as integers and Euclidean lengths with
// three decimals.
func formatCost(cost float64) string {
	if cost == math.Trunc(cost) {
		return fmt.Sprintf("%.0f", cost)
	}
	return fmt.Sprintf("%.3f", cost)
}

type cellJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// solveJSON is the --format json document.
type solveJSON struct {
	Maze      string     `json:"maze"`
	Algorithm string     `json:"algorithm"`
	Optimal   bool       `json:"optimal"`
	Found     bool       `json:"found"`
	Path      []cellJSON `json:"path"`
	Expanded  int        `json:"expanded"`
	Cost      float64    `json:"cost"`
	Visited   []cellJSON `json:"visited,omitempty"`
	Walls     []cellJSON `json:"walls_to_remove,omitempty"`
}

func toJSON(cells []gridgraph.Cell) []cellJSON {
	out := make([]cellJSON, len(cells))
	for i, c := range cells {
		out[i] = cellJSON{Row: c.Row, Col: c.Col}
	}
	return out
}

func renderJSON(w io.Writer, label string, algo pathfind.Algorithm, res *pathfind.Result, visited, walls []gridgraph.Cell) error {
	output := solveJSON{
		Maze:      label,
		Algorithm: algo.String(),
		Optimal:   algo.Optimal(),
		Found:     res.Found,
		Path:      toJSON(res.Path),
		Expanded:  res.Expanded,
		Cost:      res.Cost,
	}
	if len(visited) > 0 {
		output.Visited = toJSON(visited)
	}
	if len(walls) > 0 {
		output.Walls = toJSON(walls)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazesolver/pathfind"
)

func (a *app) compareCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm on one maze and tabulate the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, label, err := a.loadGrid(f)
			if err != nil {
				return err
			}
			opts := a.cfg.SolverOptions()
			if f.seed != 0 {
				opts = append(opts, pathfind.WithSeed(f.seed))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(cmd.OutOrStdout(), "maze: %s\n", label)
			fmt.Fprintf(cmd.OutOrStdout(), "components: %d  connected: %s\n",
				len(g.ConnectedComponents()), yesNo(g.Connected(g.Start, g.End)))
			fmt.Fprintln(w, "ALGORITHM\tOPTIMAL\tFOUND\tCELLS\tCOST\tEXPANDED\tTIME")
			for _, algo := range pathfind.Algorithms() {
				start := time.Now()
				res, err := pathfind.Solve(g, algo, opts...)
				if errors.Is(err, pathfind.ErrGridTooLarge) {
					fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t-\tskipped: too many open cells\n", algo, yesNo(algo.Optimal()))
					continue
				}
				if err != nil {
					return fmt.Errorf("%s: %w", algo, err)
				}
				elapsed := time.Since(start)
				a.logger.Debug("compared", "algorithm", algo, "found", res.Found, "elapsed", elapsed)
				fmt.Fprintf(w, "%s\t%s\t%v\t%d\t%s\t%d\t%s\n",
					algo, yesNo(algo.Optimal()), res.Found, res.Len(), formatCost(res.Cost), res.Expanded,
					elapsed.Round(time.Microsecond))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&f.maze, "maze", "", "Built-in maze name (default from MAZESOLVER_DEFAULT_MAZE)")
	cmd.Flags().StringVar(&f.random, "random", "", "Generate a random maze of RxC rooms instead")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Seed for --random and Random Walk (0: time-based)")
	cmd.Flags().IntVar(&f.loops, "loops", 0, "Extra interior walls to remove from a --random maze")
	cmd.MarkFlagsMutuallyExclusive("maze", "random")
	return cmd
}

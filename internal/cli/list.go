package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazesolver/gridgraph"
	"github.com/katalvlaran/mazesolver/pathfind"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in mazes and the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "MAZE\tSIZE\tOPEN\tSTART\tEND\tCOMPONENTS")
			for _, name := range gridgraph.MazeNames() {
				g, err := gridgraph.Maze(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%dx%d\t%d\t%v\t%v\t%d\n",
					name, g.Height, g.Width, g.OpenCount(), g.Start, g.End, len(g.ConnectedComponents()))
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "ALGORITHM\tOPTIMAL\tDEFAULT")
			for _, algo := range pathfind.Algorithms() {
				def := ""
				if algo == a.cfg.DefaultAlgorithm {
					def = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", algo, yesNo(algo.Optimal()), def)
			}
			return w.Flush()
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdrpinto/bestfirst/internal/report"
	"github.com/pdrpinto/bestfirst/internal/runner"
)

var exampleForSolveCmd = `
## solve every problem with every configured algorithm
bestfirst solve

## only the maze, breadth-first, as YAML
bestfirst solve maze --algorithm bfs --output yaml

## the sliding puzzle with the approximate duplicate filter
bestfirst solve slide --dedup window --max-expansions 200000
`

func newSolveCmd(a *app) *cobra.Command {
	solveCmd := &cobra.Command{
		Use:       "solve [maze|dots|slide]...",
		Short:     "Solve problems and report the search effort",
		Example:   exampleForSolveCmd,
		ValidArgs: runner.Problems,
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems := args
			if len(problems) == 0 {
				problems = runner.Problems
			}

			r := runner.New(a.cfg, a.logger)
			var rows []report.Row
			for _, name := range problems {
				problemRows, err := r.Run(cmd.Context(), name)
				rows = append(rows, problemRows...)
				if err != nil {
					return err
				}
			}
			return report.Write(cmd.OutOrStdout(), a.cfg.Output.Format, rows)
		},
	}

	flags := solveCmd.Flags()
	flags.StringSlice("algorithm", nil, "algorithms to run: astar, ucs, bfs (default from config)")
	flags.String("dedup", "", "child filter: exact, window or none")
	flags.String("path-storage", "", "path storage: copy or trail")
	flags.Int("max-expansions", 0, "stop each search after this many expansions (0 = unlimited)")
	flags.Duration("timeout", 0, "stop each search after this long (0 = no limit)")
	flags.String("output", "", "report format: table or yaml")
	flags.Int("scramble", 0, "slides used to scramble the sliding puzzle")
	flags.Int64("seed", 0, "random seed for the sliding puzzle")

	bindFlags(flags, map[string]string{
		"search.algorithms":      "algorithm",
		"search.dedup":           "dedup",
		"search.path_storage":    "path-storage",
		"search.max_expansions":  "max-expansions",
		"search.timeout":         "timeout",
		"output.format":          "output",
		"sliding.scramble_moves": "scramble",
		"sliding.seed":           "seed",
	})
	return solveCmd
}

package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/internal/runner"
)

func newTraceCmd(a *app) *cobra.Command {
	var algorithmName string

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "Print every expansion of the configured maze as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm, err := bestfirst.ParseAlgorithm(algorithmName)
			if err != nil {
				return err
			}

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			defer encoder.Close()
			return runner.New(a.cfg, a.logger).TraceMaze(cmd.Context(), algorithm, func(step runner.TraceStep) error {
				return encoder.Encode(step)
			})
		},
	}

	traceCmd.Flags().StringVar(&algorithmName, "algorithm", bestfirst.AStar.String(), "algorithm to trace: astar, ucs, bfs")
	traceCmd.Flags().Int("max-expansions", 0, "stop after this many expansions (0 = unlimited)")
	bindFlags(traceCmd.Flags(), map[string]string{"search.max_expansions": "max-expansions"})
	return traceCmd
}

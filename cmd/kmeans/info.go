package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func NewInfoCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the shape and per-dimension statistics of an instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			problem, err := e.loadProblem()
			if err != nil {
				return err
			}

			format := func(v float64) string {
				return strconv.FormatFloat(v, 'f', e.config.Decimals, 64)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "observations: %d\n", problem.NbObservations())
			fmt.Fprintf(out, "dimensions: %d\n", problem.NbDimensions())
			fmt.Fprintf(out, "k: %d\n", problem.K())
			fmt.Fprintf(out, "Dim\tMean\tStdDev\tMin\tMax\n")
			for j, s := range problem.Dataset().Stats() {
				fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%s\n", j,
					format(s.Mean), format(s.StdDev), format(s.Min), format(s.Max))
			}
			return nil
		},
	}
}

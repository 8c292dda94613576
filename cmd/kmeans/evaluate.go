package main

import (
	"fmt"
	"kmeans-problem/internal/infrastructure"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewEvaluateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <assignment>",
		Short: "Score a cluster assignment file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, err := e.loadProblem()
			if err != nil {
				return err
			}

			reader := infrastructure.NewTXTAssignmentReader(e.logger)
			solution, err := reader.ReadAssignment(args[0], problem.K(), problem.NbObservations())
			if err != nil {
				return err
			}

			if e.config.Strict {
				if err := problem.Validate(solution); err != nil {
					return err
				}
			}

			score, err := problem.Evaluate(solution)
			if err != nil {
				return err
			}

			e.logger.Info("Assignment evaluated",
				zap.String("file", args[0]),
				zap.Float64("score", score))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "score: %s\n", strconv.FormatFloat(score, 'f', e.config.Decimals, 64))
			for c, size := range solution.Sizes() {
				fmt.Fprintf(out, "cluster %d: %d\n", c, size)
			}
			return nil
		},
	}

	cmd.Flags().Bool("strict", false, "Reject assignments with duplicate or out-of-range observations")
	return cmd
}

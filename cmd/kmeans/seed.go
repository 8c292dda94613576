package main

import (
	"fmt"
	"kmeans-problem/internal/app"
	"kmeans-problem/internal/infrastructure"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewSeedCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Score random partitions and keep the best as a baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			problem, err := e.loadProblem()
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			logger := e.logger.With(zap.String("run_id", runID))

			report, err := app.NewBaselineSeeder(logger, problem, e.config).Seed(cmd.Context())
			if err != nil {
				return err
			}

			format := func(v float64) string {
				return strconv.FormatFloat(v, 'f', e.config.Decimals, 64)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run: %s\n", runID)
			fmt.Fprintf(out, "seed: %d\n", report.Seed)
			fmt.Fprintf(out, "samples: %d\n", report.Samples)
			fmt.Fprintf(out, "mean: %s\n", format(report.Mean))
			fmt.Fprintf(out, "stddev: %s\n", format(report.StdDev))
			for i, c := range report.Best {
				fmt.Fprintf(out, "best %d: %s\n", i, format(c.Score))
			}

			if e.config.OutputFile == "" {
				return nil
			}

			writer := infrastructure.NewTXTAssignmentWriter(logger, e.config.Decimals)
			meta := map[string]string{
				"run_id": runID,
				"seed":   strconv.FormatInt(report.Seed, 10),
			}
			if err := writer.WriteAssignment(e.config.OutputFile, report.Best[0], problem.NbObservations(), meta); err != nil {
				return err
			}
			logger.Info("Best assignment written", zap.String("file", e.config.OutputFile))
			return nil
		},
	}

	cmd.Flags().Int("nsamples", 0, "Number of random partitions to score")
	cmd.Flags().Int("nbest", 0, "Number of best partitions to report")
	cmd.Flags().Int("workers", 0, "Number of workers")
	cmd.Flags().StringP("output", "o", "", "Write the best assignment to this file")
	return cmd
}

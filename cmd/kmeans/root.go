package main

import (
	"errors"
	"kmeans-problem/internal/domain"
	"kmeans-problem/internal/infrastructure"
	"kmeans-problem/pkg/kmeans"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNoInstance = errors.New("no instance file: pass --instance or set instance_file in the config")

// env holds what every subcommand needs once flags are parsed.
type env struct {
	logger *zap.Logger
	config *domain.Config
}

func NewRootCmd(version string, e *env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kmeans",
		Short:         "Score k-means partitions of a dataset",
		Long:          `Loads a dataset of observations and scores candidate partitions into k clusters by total within-cluster variance.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	addPersistentFlags(rootCmd)

	rootCmd.AddCommand(
		NewInfoCmd(e),
		NewEvaluateCmd(e),
		NewSeedCmd(e),
	)

	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Path to YAML config file")
	cmd.PersistentFlags().StringP("instance", "i", "", "Instance file")
	cmd.PersistentFlags().String("base-dir", "", "Directory relative instance paths are resolved against")
	cmd.PersistentFlags().IntP("k", "k", 0, "Number of clusters")
	cmd.PersistentFlags().Int64("seed", 0, "Random seed (0 = time based)")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().String("log-file", "", "Log file (default stderr)")
}

// setup reads the config, applies explicitly set flags and builds the logger.
func (e *env) setup(cmd *cobra.Command) error {
	bootstrap, err := initLogger("info")
	if err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	config, err := infrastructure.NewYAMLConfigReader(bootstrap).ReadConfig(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, config)

	// Обновляем уровень логирования
	logger, err := initLogger(config.LogLevel, config.LogFile)
	if err != nil {
		return err
	}

	e.logger = logger
	e.config = config
	return nil
}

// applyFlags переносит в конфигурацию только явно заданные флаги.
func applyFlags(cmd *cobra.Command, config *domain.Config) {
	flags := cmd.Flags()

	if flags.Changed("instance") {
		config.InstanceFile, _ = flags.GetString("instance")
	}
	if flags.Changed("base-dir") {
		config.BaseDir, _ = flags.GetString("base-dir")
	}
	if flags.Changed("k") {
		config.K, _ = flags.GetInt("k")
	}
	if flags.Changed("seed") {
		config.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("log-level") {
		config.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		config.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("strict") {
		config.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("nsamples") {
		config.NSamples, _ = flags.GetInt("nsamples")
	}
	if flags.Changed("nbest") {
		config.NBest, _ = flags.GetInt("nbest")
	}
	if flags.Changed("workers") {
		config.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("output") {
		config.OutputFile, _ = flags.GetString("output")
	}
}

func (e *env) loadProblem() (*kmeans.Problem, error) {
	if e.config.InstanceFile == "" {
		return nil, errNoInstance
	}

	var rng *rand.Rand
	if e.config.Seed != 0 {
		rng = rand.New(rand.NewSource(e.config.Seed))
	}

	reader := infrastructure.NewTXTInstanceReader(e.logger, e.config.BaseDir)
	return kmeans.Load(e.logger, reader, e.config.InstanceFile, e.config.K, rng)
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ashureev/guideu/internal/classifier"
	"github.com/ashureev/guideu/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "guideu",
	Short:         "Learning roadmaps and learner stage predictions",
	Long:          "GuideU serves topic learning roadmaps over HTTP and predicts a learner's stage from a free-text interest.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("artifacts", "", "Directory holding classifier artifacts (overrides ARTIFACT_DIR)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment, applies command line overrides and
// installs the configured logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("artifacts"); dir != "" {
		cfg.ArtifactDir = dir
	}

	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.IsDevelopment() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
	} else {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
	}
	return cfg, nil
}

func trainConfig(cfg *config.Config) classifier.TrainConfig {
	tc := classifier.DefaultTrainConfig()
	tc.C = cfg.Classifier.C
	tc.MaxIter = cfg.Classifier.MaxIter
	return tc
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

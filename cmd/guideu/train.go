package main

import (
	"fmt"
	"log/slog"

	"github.com/ashureev/guideu/internal/classifier"
	"github.com/ashureev/guideu/internal/store"
	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the stage classifier and write its artifacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		examples, err := classifier.DefaultDataset()
		if err != nil {
			return err
		}

		result, err := classifier.Train(examples, trainConfig(cfg))
		if err != nil {
			return fmt.Errorf("train classifier: %w", err)
		}
		slog.Info("Classifier trained",
			"examples", len(examples),
			"features", result.Artifact.Vectorizer.Features(),
			"iterations", result.Iterations,
			"loss", result.Loss,
			"converged", result.Converged,
		)

		s := store.NewFileStore(cfg.ArtifactDir)
		if err := classifier.Save(cmd.Context(), s, result.Artifact); err != nil {
			return err
		}
		slog.Info("Artifacts saved", "dir", s.Dir())
		printf(cmd, "Model saved successfully to %s\n", s.Dir())
		return nil
	},
}

package main

import (
	"github.com/ashureev/guideu/internal/classifier"
	"github.com/ashureev/guideu/internal/store"
	"github.com/spf13/cobra"
)

var demoTopics = []string{"Python", "React", "AWS", "Machine Learning", "C Programming"}

var predictCmd = &cobra.Command{
	Use:   "predict [topic...]",
	Short: "Predict the learner stage for each topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		predictor, err := classifier.LoadPredictor(cmd.Context(), store.NewFileStore(cfg.ArtifactDir))
		if err != nil {
			return err
		}

		topics := args
		if len(topics) == 0 {
			topics = demoTopics
		}
		for _, topic := range topics {
			printf(cmd, "%s → %s\n", topic, predictor.PredictStage(topic))
		}
		return nil
	},
}

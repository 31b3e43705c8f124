package classifier

import (
	_ "embed"
	"fmt"

	"github.com/ashureev/guideu/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var datasetYAML []byte

// DefaultDataset returns the built-in labelled interests.
func DefaultDataset() ([]domain.TrainingExample, error) {
	return ParseDataset(datasetYAML)
}

// ParseDataset decodes a YAML list of {interest, category} entries and
// checks every category against the known stages.
func ParseDataset(data []byte) ([]domain.TrainingExample, error) {
	var raw []struct {
		Interest string `yaml:"interest"`
		Category string `yaml:"category"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	examples := make([]domain.TrainingExample, 0, len(raw))
	for i, r := range raw {
		stage, err := domain.ParseStage(r.Category)
		if err != nil {
			return nil, fmt.Errorf("dataset entry %d (%q): %w", i+1, r.Interest, err)
		}
		examples = append(examples, domain.TrainingExample{Interest: r.Interest, Category: stage})
	}
	return examples, nil
}

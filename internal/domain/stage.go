package domain

import "fmt"

// Stage is a learning difficulty label assigned to an interest.
type Stage string

const (
	StageBeginner     Stage = "Beginner"
	StageIntermediate Stage = "Intermediate"
	StageAdvanced     Stage = "Advanced"
	StageExpert       Stage = "Expert"
)

// Stages returns every stage in canonical order.
func Stages() []Stage {
	return []Stage{StageBeginner, StageIntermediate, StageAdvanced, StageExpert}
}

// ParseStage matches s against the known stage labels exactly.
func ParseStage(s string) (Stage, error) {
	for _, st := range Stages() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown stage %q", s)
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	return string(s)
}

// TrainingExample is one labelled interest string of the stage dataset.
type TrainingExample struct {
	Interest string `yaml:"interest"`
	Category Stage  `yaml:"category"`
}

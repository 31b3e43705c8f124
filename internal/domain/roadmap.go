// Package domain contains core domain types for the GuideU application.
package domain

import "fmt"

// RoadmapStep represents one fixed unit of a topic roadmap.
type RoadmapStep struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// ProgressedStep is a RoadmapStep annotated with its position in the topic.
// Progress is empty for the not-found placeholder.
type ProgressedStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    string `json:"progress,omitempty"`
}

// WithProgress returns a copy of the step labelled "Step i of total".
// i is 1-indexed.
func (s RoadmapStep) WithProgress(i, total int) ProgressedStep {
	return ProgressedStep{
		Title:       s.Title,
		Description: s.Description,
		Progress:    fmt.Sprintf("Step %d of %d", i, total),
	}
}

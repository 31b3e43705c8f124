package roadmap

import (
	"strings"

	"github.com/ashureev/guideu/internal/domain"
)

// HoursPerStep is the study time budgeted for one roadmap step.
const HoursPerStep = 2

// NotFoundStep is returned as the whole roadmap for unknown topics.
var NotFoundStep = domain.ProgressedStep{
	Title:       "Not Found",
	Description: "Sorry, we don't have a roadmap for this topic yet.",
}

// Service generates roadmaps from a read-only catalog.
type Service struct {
	catalog *Catalog
}

// NewService creates a roadmap service backed by catalog.
func NewService(catalog *Catalog) *Service {
	return &Service{catalog: catalog}
}

// Generate returns the first steps of topic's roadmap that fit into hours,
// one step per HoursPerStep and never fewer than one. Lookup ignores case.
// Unknown topics yield a single NotFoundStep.
func (s *Service) Generate(topic string, hours int) []domain.ProgressedStep {
	steps, ok := s.catalog.Steps(strings.ToLower(topic))
	if !ok {
		return []domain.ProgressedStep{NotFoundStep}
	}

	total := len(steps)
	n := StepsToShow(total, hours)

	out := make([]domain.ProgressedStep, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, steps[i].WithProgress(i+1, total))
	}
	return out
}

// Topics lists the available topics.
func (s *Service) Topics() []TopicInfo {
	return s.catalog.Topics()
}

// StepsToShow computes min(total, max(1, hours / HoursPerStep)).
// Negative hours floor below 1 either way, so truncating division is exact here.
func StepsToShow(total, hours int) int {
	n := hours / HoursPerStep
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	return n
}

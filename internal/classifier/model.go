package classifier

import (
	"fmt"
	"math"

	"github.com/ashureev/guideu/internal/domain"
)

// Model is a multinomial logistic regression over sparse vectors.
// Weights[k] and Intercepts[k] score Classes[k].
type Model struct {
	Classes    []domain.Stage `json:"classes"`
	Weights    [][]float64    `json:"weights"`
	Intercepts []float64      `json:"intercepts"`
}

func newModel(classes []domain.Stage, features int) *Model {
	m := &Model{
		Classes:    append([]domain.Stage(nil), classes...),
		Weights:    make([][]float64, len(classes)),
		Intercepts: make([]float64, len(classes)),
	}
	for k := range m.Weights {
		m.Weights[k] = make([]float64, features)
	}
	return m
}

// scores returns the linear decision value of every class.
func (m *Model) scores(x Vector) []float64 {
	out := make([]float64, len(m.Classes))
	for k := range m.Classes {
		s := m.Intercepts[k]
		w := m.Weights[k]
		for _, f := range x {
			s += w[f.Index] * f.Value
		}
		out[k] = s
	}
	return out
}

// Probabilities returns the softmax of the class scores for x.
func (m *Model) Probabilities(x Vector) []float64 {
	p := m.scores(x)
	softmax(p)
	return p
}

// Predict returns the highest scoring class. Ties go to the earlier class.
func (m *Model) Predict(x Vector) domain.Stage {
	s := m.scores(x)
	best := 0
	for k := 1; k < len(s); k++ {
		if s[k] > s[best] {
			best = k
		}
	}
	return m.Classes[best]
}

func (m *Model) validate(features int) error {
	if len(m.Classes) < 2 {
		return fmt.Errorf("model needs at least 2 classes, has %d", len(m.Classes))
	}
	if len(m.Weights) != len(m.Classes) || len(m.Intercepts) != len(m.Classes) {
		return fmt.Errorf("model has %d classes, %d weight rows, %d intercepts",
			len(m.Classes), len(m.Weights), len(m.Intercepts))
	}
	for k, row := range m.Weights {
		if len(row) != features {
			return fmt.Errorf("model class %s has %d weights, vectorizer has %d features",
				m.Classes[k], len(row), features)
		}
	}
	for _, c := range m.Classes {
		if _, err := domain.ParseStage(string(c)); err != nil {
			return fmt.Errorf("model: %w", err)
		}
	}
	return nil
}

// softmax replaces s with its normalized exponentials in place.
func softmax(s []float64) {
	hi := math.Inf(-1)
	for _, v := range s {
		if v > hi {
			hi = v
		}
	}
	var sum float64
	for i, v := range s {
		s[i] = math.Exp(v - hi)
		sum += s[i]
	}
	for i := range s {
		s[i] /= sum
	}
}

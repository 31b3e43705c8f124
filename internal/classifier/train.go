package classifier

import (
	"fmt"
	"math"
	"strings"

	"github.com/ashureev/guideu/internal/domain"
)

// TrainConfig controls model fitting.
type TrainConfig struct {
	// C is the inverse L2 regularization strength. Intercepts are not penalized.
	C float64
	// MaxIter bounds the number of gradient descent steps.
	MaxIter int
	// LearningRate is the fixed gradient descent step size.
	LearningRate float64
	// Tolerance stops training once every gradient component is below it.
	Tolerance float64
}

// DefaultTrainConfig returns the settings the stage model ships with.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		C:            10,
		MaxIter:      1000,
		LearningRate: 0.5,
		Tolerance:    1e-6,
	}
}

// Validate checks that the configuration can be trained with.
func (c TrainConfig) Validate() error {
	if c.C <= 0 {
		return fmt.Errorf("C must be > 0")
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("max iterations must be > 0")
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be > 0")
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must be >= 0")
	}
	return nil
}

// Artifact is a fitted vectorizer and the model trained on its output.
type Artifact struct {
	Vectorizer *Vectorizer
	Model      *Model
}

// Predict classifies a free-text interest.
func (a *Artifact) Predict(text string) domain.Stage {
	return a.Model.Predict(a.Vectorizer.Transform(strings.ToLower(text)))
}

// TrainResult reports how fitting went.
type TrainResult struct {
	Artifact   *Artifact
	Iterations int
	Loss       float64
	Converged  bool
}

// Train fits a vectorizer and a softmax regression on examples.
// The result depends only on examples and cfg.
func Train(examples []domain.TrainingExample, cfg TrainConfig) (*TrainResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid train config: %w", err)
	}
	if len(examples) == 0 {
		return nil, fmt.Errorf("no training examples")
	}

	docs := make([]string, len(examples))
	for i, ex := range examples {
		docs[i] = strings.ToLower(ex.Interest)
	}
	vec, err := FitVectorizer(docs)
	if err != nil {
		return nil, err
	}

	classes := domain.Stages()
	classIndex := make(map[domain.Stage]int, len(classes))
	for k, c := range classes {
		classIndex[c] = k
	}

	xs := make([]Vector, len(examples))
	ys := make([]int, len(examples))
	for i, ex := range examples {
		k, ok := classIndex[ex.Category]
		if !ok {
			return nil, fmt.Errorf("example %d (%q) has unknown stage %q", i+1, ex.Interest, ex.Category)
		}
		xs[i] = vec.Transform(docs[i])
		ys[i] = k
	}

	model := newModel(classes, vec.Features())
	res := fitSoftmax(model, xs, ys, cfg)
	res.Artifact = &Artifact{Vectorizer: vec, Model: model}
	return res, nil
}

// fitSoftmax minimizes the mean cross-entropy plus ||W||²/(2Cn) by
// full-batch gradient descent starting from zero.
func fitSoftmax(m *Model, xs []Vector, ys []int, cfg TrainConfig) *TrainResult {
	n := float64(len(xs))
	classes := len(m.Classes)
	features := len(m.Weights[0])
	reg := 1 / (cfg.C * n)

	gW := make([][]float64, classes)
	for k := range gW {
		gW[k] = make([]float64, features)
	}
	gb := make([]float64, classes)

	res := &TrainResult{}
	for iter := 1; iter <= cfg.MaxIter; iter++ {
		for k := range gW {
			for j := range gW[k] {
				gW[k][j] = reg * m.Weights[k][j]
			}
			gb[k] = 0
		}

		for i, x := range xs {
			p := m.Probabilities(x)
			for k := range p {
				r := p[k]
				if k == ys[i] {
					r--
				}
				r /= n
				gb[k] += r
				for _, f := range x {
					gW[k][f.Index] += r * f.Value
				}
			}
		}

		res.Iterations = iter
		if maxAbs(gW, gb) < cfg.Tolerance {
			res.Converged = true
			break
		}

		for k := range gW {
			for j := range gW[k] {
				m.Weights[k][j] -= cfg.LearningRate * gW[k][j]
			}
			m.Intercepts[k] -= cfg.LearningRate * gb[k]
		}
	}

	res.Loss = loss(m, xs, ys, reg)
	return res
}

func loss(m *Model, xs []Vector, ys []int, reg float64) float64 {
	var l float64
	for i, x := range xs {
		p := m.Probabilities(x)
		l -= math.Log(math.Max(p[ys[i]], 1e-300))
	}
	l /= float64(len(xs))

	var sq float64
	for _, row := range m.Weights {
		for _, w := range row {
			sq += w * w
		}
	}
	return l + reg*sq/2
}

func maxAbs(gW [][]float64, gb []float64) float64 {
	var hi float64
	for k := range gW {
		for _, g := range gW[k] {
			hi = math.Max(hi, math.Abs(g))
		}
		hi = math.Max(hi, math.Abs(gb[k]))
	}
	return hi
}

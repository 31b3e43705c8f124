// Package classifier assigns a learning stage to a free-text interest.
//
// Training and serving are separate steps. Train fits a TF-IDF vectorizer and
// a softmax regression on the built-in dataset and Save persists both to an
// artifact store. At runtime LoadPredictor reads them back once; when either
// artifact is missing the predictor runs degraded and always answers
// Beginner.
package classifier

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ashureev/guideu/internal/domain"
	"github.com/ashureev/guideu/internal/store"
)

// DefaultStage is returned when no trained model is available.
const DefaultStage = domain.StageBeginner

// Predictor serves stage predictions from a loaded artifact.
// It is read-only after construction and safe for concurrent use.
type Predictor struct {
	artifact *Artifact
}

// NewPredictor wraps a fitted artifact. A nil artifact yields a degraded predictor.
func NewPredictor(a *Artifact) *Predictor {
	return &Predictor{artifact: a}
}

// LoadPredictor loads the persisted artifacts from s. Missing artifacts are
// not an error: the returned predictor is degraded. Unreadable or corrupt
// artifacts are reported.
func LoadPredictor(ctx context.Context, s store.ArtifactStore) (*Predictor, error) {
	a, err := Load(ctx, s)
	if errors.Is(err, store.ErrNotFound) {
		slog.Warn("Stage classifier artifacts not found, predicting default stage",
			"default_stage", DefaultStage, "error", err)
		return NewPredictor(nil), nil
	}
	if err != nil {
		return nil, err
	}
	slog.Info("Stage classifier loaded",
		"features", a.Vectorizer.Features(), "classes", len(a.Model.Classes))
	return NewPredictor(a), nil
}

// Degraded reports whether the predictor has no model.
func (p *Predictor) Degraded() bool {
	return p.artifact == nil
}

// PredictStage returns the stage label for topic.
func (p *Predictor) PredictStage(topic string) domain.Stage {
	if p.Degraded() {
		return DefaultStage
	}
	return p.artifact.Predict(topic)
}

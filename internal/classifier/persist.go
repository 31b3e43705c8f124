package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ashureev/guideu/internal/store"
	"github.com/goccy/go-json"
)

// Artifact file names inside the artifact store.
const (
	VectorizerFile = "vectorizer.json"
	ModelFile      = "model.json"
)

// Save writes the vectorizer and model as two separate artifacts. If the
// model cannot be written the previous vectorizer is put back, so a failed
// Save leaves the earlier pair (or no pair) in place.
func Save(ctx context.Context, s store.ArtifactStore, a *Artifact) error {
	vec, err := json.MarshalIndent(a.Vectorizer, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vectorizer: %w", err)
	}
	model, err := json.MarshalIndent(a.Model, "", "  ")
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}

	prev, err := s.Get(ctx, VectorizerFile)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("read previous vectorizer: %w", err)
	}
	hadPrev := err == nil

	if err := s.Put(ctx, VectorizerFile, vec); err != nil {
		return fmt.Errorf("save vectorizer: %w", err)
	}
	if err := s.Put(ctx, ModelFile, model); err != nil {
		// The rollback must run even when ctx is what failed the write.
		rollbackCtx := context.WithoutCancel(ctx)
		var rbErr error
		if hadPrev {
			rbErr = s.Put(rollbackCtx, VectorizerFile, prev)
		} else {
			rbErr = s.Delete(rollbackCtx, VectorizerFile)
		}
		if rbErr != nil {
			slog.Error("Failed to roll back vectorizer", "error", rbErr)
		}
		return fmt.Errorf("save model: %w", err)
	}
	return nil
}

// Load reads both artifacts back. It returns an error wrapping
// store.ErrNotFound when either file is missing.
func Load(ctx context.Context, s store.ArtifactStore) (*Artifact, error) {
	vecData, err := s.Get(ctx, VectorizerFile)
	if err != nil {
		return nil, fmt.Errorf("load vectorizer: %w", err)
	}
	modelData, err := s.Get(ctx, ModelFile)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	var vec Vectorizer
	if err := json.Unmarshal(vecData, &vec); err != nil {
		return nil, fmt.Errorf("decode vectorizer: %w", err)
	}
	if err := vec.validate(); err != nil {
		return nil, fmt.Errorf("invalid vectorizer: %w", err)
	}

	var model Model
	if err := json.Unmarshal(modelData, &model); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if err := model.validate(vec.Features()); err != nil {
		return nil, fmt.Errorf("invalid model: %w", err)
	}

	return &Artifact{Vectorizer: &vec, Model: &model}, nil
}

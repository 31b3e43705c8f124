// Package api provides HTTP handlers for the GuideU API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/ashureev/guideu/internal/domain"
	"github.com/ashureev/guideu/internal/roadmap"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// RoadmapService generates topic roadmaps.
type RoadmapService interface {
	Generate(topic string, hours int) []domain.ProgressedStep
	Topics() []roadmap.TopicInfo
}

// StagePredictor assigns a learning stage to a free-text interest.
type StagePredictor interface {
	PredictStage(topic string) domain.Stage
	Degraded() bool
}

// Handler serves the roadmap and stage endpoints.
// Its dependencies are read-only, so one Handler is shared by all requests.
type Handler struct {
	roadmaps  RoadmapService
	predictor StagePredictor
}

// NewHandler creates a new Handler.
func NewHandler(roadmaps RoadmapService, predictor StagePredictor) *Handler {
	return &Handler{
		roadmaps:  roadmaps,
		predictor: predictor,
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/predict", h.Predict)
	r.Post("/stage", h.Stage)
	r.Get("/topics", h.Topics)
	r.Get("/health", h.Health)
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Health reports whether the stage classifier has a trained model.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	classifier := "ok"
	if h.predictor.Degraded() {
		classifier = "degraded"
	}
	JSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"checks": map[string]string{
			"api":        "ok",
			"classifier": classifier,
		},
	})
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/ashureev/guideu/internal/domain"
	"github.com/ashureev/guideu/internal/metrics"
	"github.com/ashureev/guideu/internal/roadmap"
)

// RoadmapResponse is the body of a successful POST /predict.
type RoadmapResponse struct {
	Topic   string                  `json:"topic"`
	Roadmap []domain.ProgressedStep `json:"roadmap"`
}

// Predict returns the roadmap for {"topic", "hours"}. The topic is echoed
// back exactly as sent. Values that cannot be converted are server errors.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	body, status, err := decodeObject(w, r)
	if err != nil {
		slog.Warn("Rejected roadmap request", "status", status, "error", err)
		Error(w, status, err.Error())
		return
	}

	topic, err := stringField(body, "topic", "")
	if err != nil {
		slog.Error("Failed to read topic", "error", err)
		Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	hours, err := hoursField(body)
	if err != nil {
		slog.Error("Failed to convert hours", "topic", topic, "error", err)
		Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	steps := h.roadmaps.Generate(topic, hours)
	found := !(len(steps) == 1 && steps[0] == roadmap.NotFoundStep)
	metrics.RecordRoadmap(found, len(steps))
	slog.Debug("Roadmap generated", "topic", topic, "hours", hours, "steps", len(steps), "found", found)

	JSON(w, http.StatusOK, RoadmapResponse{Topic: topic, Roadmap: steps})
}

// Topics lists the topics that have a roadmap.
func (h *Handler) Topics(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"topics": h.roadmaps.Topics(),
	})
}

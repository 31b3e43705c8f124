package api

import (
	"log/slog"
	"net/http"

	"github.com/ashureev/guideu/internal/domain"
	"github.com/ashureev/guideu/internal/metrics"
)

// StageResponse is the body of a successful POST /stage.
type StageResponse struct {
	Topic string       `json:"topic"`
	Stage domain.Stage `json:"stage"`
}

// Stage classifies {"topic"} into a learning stage.
func (h *Handler) Stage(w http.ResponseWriter, r *http.Request) {
	body, status, err := decodeObject(w, r)
	if err != nil {
		slog.Warn("Rejected stage request", "status", status, "error", err)
		Error(w, status, err.Error())
		return
	}

	topic, err := stringField(body, "topic", "")
	if err != nil {
		slog.Error("Failed to read topic", "error", err)
		Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	stage := h.predictor.PredictStage(topic)
	metrics.RecordStagePrediction(stage.String(), h.predictor.Degraded())

	JSON(w, http.StatusOK, StageResponse{Topic: topic, Stage: stage})
}

// Package metrics defines the Prometheus instruments exported by the server.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guideu_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "guideu_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "guideu_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Roadmaps
	RoadmapsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guideu_roadmaps_generated_total",
			Help: "Roadmaps generated, by whether the topic was known",
		},
		[]string{"result"}, // "found", "not_found"
	)

	RoadmapStepsServed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "guideu_roadmap_steps_served",
			Help:    "Number of steps returned per roadmap",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		},
	)

	// Stage classifier
	StagePredictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guideu_stage_predictions_total",
			Help: "Stage predictions, by label and whether the classifier was degraded",
		},
		[]string{"stage", "degraded"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRoadmap records one generated roadmap.
func RecordRoadmap(found bool, steps int) {
	result := "found"
	if !found {
		result = "not_found"
	}
	RoadmapsGenerated.WithLabelValues(result).Inc()
	RoadmapStepsServed.Observe(float64(steps))
}

// RecordStagePrediction records one stage prediction.
func RecordStagePrediction(stage string, degraded bool) {
	StagePredictions.WithLabelValues(stage, strconv.FormatBool(degraded)).Inc()
}

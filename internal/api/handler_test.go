//nolint:revive // "api" package name is intentionally concise for this layer.
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ashureev/guideu/internal/domain"
	"github.com/ashureev/guideu/internal/roadmap"
	"github.com/go-chi/chi/v5"
)

type fakePredictor struct {
	stage    domain.Stage
	degraded bool
	calls    []string
}

func (f *fakePredictor) PredictStage(topic string) domain.Stage {
	f.calls = append(f.calls, topic)
	return f.stage
}

func (f *fakePredictor) Degraded() bool { return f.degraded }

func newTestRouter(t *testing.T, predictor StagePredictor) http.Handler {
	t.Helper()
	catalog, err := roadmap.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog failed: %v", err)
	}
	r := chi.NewRouter()
	NewHandler(roadmap.NewService(catalog), predictor).RegisterRoutes(r)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"foo": "bar"}

	JSON(w, http.StatusOK, data)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if got["foo"] != "bar" {
		t.Errorf("Expected foo=bar, got %v", got["foo"])
	}
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()

	Error(w, http.StatusTeapot, "short and stout")

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status 418, got %d", w.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got["error"] != "short and stout" {
		t.Errorf("Unexpected error body: %v", got)
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		degraded bool
		want     string
	}{
		{false, "ok"},
		{true, "degraded"},
	}

	for _, tt := range tests {
		h := newTestRouter(t, &fakePredictor{degraded: tt.degraded})
		w := doRequest(t, h, http.MethodGet, "/health", "")
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var got struct {
			Status string            `json:"status"`
			Checks map[string]string `json:"checks"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if got.Checks["classifier"] != tt.want {
			t.Errorf("Expected classifier %q, got %q", tt.want, got.Checks["classifier"])
		}
	}
}

func TestTopics(t *testing.T) {
	h := newTestRouter(t, &fakePredictor{})

	w := doRequest(t, h, http.MethodGet, "/topics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var got struct {
		Topics []roadmap.TopicInfo `json:"topics"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(got.Topics) != 3 || got.Topics[0].Topic != "dsa" || got.Topics[2].Steps != 6 {
		t.Errorf("Unexpected topics: %+v", got.Topics)
	}
}

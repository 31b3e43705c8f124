package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ashureev/guideu/internal/api"
	"github.com/ashureev/guideu/internal/classifier"
	"github.com/ashureev/guideu/internal/config"
	"github.com/ashureev/guideu/internal/roadmap"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := Execute(); err != nil {
		t.Fatalf("guideu %s failed: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestTrainThenPredict(t *testing.T) {
	dir := t.TempDir()

	out := run(t, "train", "--artifacts", dir)
	if !strings.Contains(out, "Model saved successfully") {
		t.Errorf("Unexpected train output: %q", out)
	}
	for _, name := range []string{classifier.VectorizerFile, classifier.ModelFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected artifact %s: %v", name, err)
		}
	}

	out = run(t, "predict", "--artifacts", dir, "ai", "python")
	if !strings.Contains(out, "ai → Expert") || !strings.Contains(out, "python → Beginner") {
		t.Errorf("Unexpected predict output: %q", out)
	}
}

func TestPredict_DemoListWithoutArtifacts(t *testing.T) {
	out := run(t, "predict", "--artifacts", t.TempDir())

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(demoTopics) {
		t.Fatalf("Expected %d lines, got %d: %q", len(demoTopics), len(lines), out)
	}
	for i, line := range lines {
		if want := demoTopics[i] + " → Beginner"; line != want {
			t.Errorf("Line %d: expected %q, got %q", i, want, line)
		}
	}
}

func TestVersion(t *testing.T) {
	if out := run(t, "version"); out != "guideu (devel)\n" {
		t.Errorf("Unexpected version output: %q", out)
	}
}

func TestRouter(t *testing.T) {
	catalog, err := roadmap.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog failed: %v", err)
	}
	handler := api.NewHandler(roadmap.NewService(catalog), classifier.NewPredictor(nil))
	cfg := &config.Config{CORSOrigins: []string{"*"}, MetricsEnabled: true}
	r := newRouter(cfg, handler)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodPost, "/predict", `{"topic":"python","hours":4}`, http.StatusOK},
		{http.MethodPost, "/stage", `{"topic":"python"}`, http.StatusOK},
		{http.MethodGet, "/topics", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/ping", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/predict", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("Expected status %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestRouter_MetricsDisabled(t *testing.T) {
	catalog, err := roadmap.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog failed: %v", err)
	}
	handler := api.NewHandler(roadmap.NewService(catalog), classifier.NewPredictor(nil))
	r := newRouter(&config.Config{CORSOrigins: []string{"*"}}, handler)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 when metrics are disabled, got %d", w.Code)
	}
}

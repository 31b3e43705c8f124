package config

import (
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"HOST", "PORT", "APP_ENV", "ARTIFACT_DIR", "CORS_ORIGINS", "METRICS_ENABLED",
		"LOG_LEVEL", "READ_TIMEOUT", "IDLE_TIMEOUT", "CLASSIFIER_C", "CLASSIFIER_MAX_ITER",
	} {
		t.Setenv(key, "") // restored after the test
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:5000" {
		t.Errorf("Expected default addr 127.0.0.1:5000, got %s", cfg.Addr())
	}
	if !cfg.IsDevelopment() {
		t.Error("Expected development mode by default")
	}
	if cfg.ArtifactDir != "." {
		t.Errorf("Expected artifact dir '.', got %q", cfg.ArtifactDir)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("Expected CORS origins [*], got %v", cfg.CORSOrigins)
	}
	if !cfg.MetricsEnabled {
		t.Error("Expected metrics enabled by default")
	}
	if cfg.Classifier.C != 10 || cfg.Classifier.MaxIter != 1000 {
		t.Errorf("Unexpected classifier defaults: %+v", cfg.Classifier)
	}
	if cfg.ReadTimeout != 30*time.Second || cfg.IdleTimeout != 120*time.Second {
		t.Errorf("Unexpected timeouts: %v %v", cfg.ReadTimeout, cfg.IdleTimeout)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("Expected debug logging in development, got %v", cfg.SlogLevel())
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("ARTIFACT_DIR", "/var/lib/guideu")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("METRICS_ENABLED", "off")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("READ_TIMEOUT", "5s")
	t.Setenv("CLASSIFIER_C", "2.5")
	t.Setenv("CLASSIFIER_MAX_ITER", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Unexpected addr %s", cfg.Addr())
	}
	if cfg.IsDevelopment() {
		t.Error("Expected production mode")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Unexpected CORS origins %v", cfg.CORSOrigins)
	}
	if cfg.MetricsEnabled {
		t.Error("Expected metrics disabled")
	}
	if cfg.SlogLevel() != slog.LevelWarn {
		t.Errorf("Expected warn level, got %v", cfg.SlogLevel())
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Errorf("Expected 5s read timeout, got %v", cfg.ReadTimeout)
	}
	if cfg.Classifier.C != 2.5 || cfg.Classifier.MaxIter != 50 {
		t.Errorf("Unexpected classifier config: %+v", cfg.Classifier)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"PORT":                "http",
		"APP_ENV":             "staging",
		"ARTIFACT_DIR":        "",
		"CORS_ORIGINS":        " , ",
		"LOG_LEVEL":           "loud",
		"CLASSIFIER_C":        "0",
		"CLASSIFIER_MAX_ITER": "-1",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Errorf("Expected error for %s=%q", key, value)
			}
		})
	}
}

func TestGetEnvBool_Fallback(t *testing.T) {
	t.Setenv("GUIDEU_TEST_BOOL", "maybe")
	if !getEnvBool("GUIDEU_TEST_BOOL", true) {
		t.Error("Expected fallback for unrecognized value")
	}
}

// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Host           string
	Port           string
	Environment    string // "development" or "production"
	ArtifactDir    string // directory holding the classifier artifacts
	CORSOrigins    []string
	MetricsEnabled bool
	LogLevel       string
	ReadTimeout    time.Duration
	IdleTimeout    time.Duration
	Classifier     ClassifierConfig
}

// ClassifierConfig controls stage classifier training.
type ClassifierConfig struct {
	C       float64
	MaxIter int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Host:           getEnv("HOST", "127.0.0.1"),
		Port:           getEnv("PORT", "5000"),
		Environment:    strings.ToLower(getEnv("APP_ENV", "development")),
		ArtifactDir:    getEnv("ARTIFACT_DIR", "."),
		CORSOrigins:    getEnvList("CORS_ORIGINS", []string{"*"}),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		ReadTimeout:    getEnvDuration("READ_TIMEOUT", 30*time.Second),
		IdleTimeout:    getEnvDuration("IDLE_TIMEOUT", 120*time.Second),
		Classifier: ClassifierConfig{
			C:       getEnvFloat("CLASSIFIER_C", 10),
			MaxIter: getEnvInt("CLASSIFIER_MAX_ITER", 1000),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if n, err := strconv.Atoi(c.Port); err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("PORT must be a number between 0 and 65535, got %q", c.Port)
	}
	if c.Environment != "development" && c.Environment != "production" {
		return fmt.Errorf("APP_ENV must be development or production, got %q", c.Environment)
	}
	if c.ArtifactDir == "" {
		return fmt.Errorf("ARTIFACT_DIR cannot be empty")
	}
	if len(c.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS cannot be empty")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.ReadTimeout <= 0 || c.IdleTimeout <= 0 {
		return fmt.Errorf("READ_TIMEOUT and IDLE_TIMEOUT must be > 0")
	}
	if c.Classifier.C <= 0 {
		return fmt.Errorf("CLASSIFIER_C must be > 0")
	}
	if c.Classifier.MaxIter <= 0 {
		return fmt.Errorf("CLASSIFIER_MAX_ITER must be > 0")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// SlogLevel returns the configured log level. Development mode logs debug.
func (c *Config) SlogLevel() slog.Level {
	if c.IsDevelopment() {
		return slog.LevelDebug
	}
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", s)
	}
	return level, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}

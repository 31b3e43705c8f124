package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashureev/guideu/internal/api"
	"github.com/ashureev/guideu/internal/classifier"
	"github.com/ashureev/guideu/internal/config"
	"github.com/ashureev/guideu/internal/middleware"
	"github.com/ashureev/guideu/internal/roadmap"
	"github.com/ashureev/guideu/internal/store"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

func serve(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}

	slog.Info("Starting server", "addr", cfg.Addr(), "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	catalog, err := roadmap.DefaultCatalog()
	if err != nil {
		return fmt.Errorf("load roadmap catalog: %w", err)
	}
	slog.Info("Roadmap catalog loaded", "topics", len(catalog.Topics()))

	predictor, err := classifier.LoadPredictor(parent, store.NewFileStore(cfg.ArtifactDir))
	if err != nil {
		return err
	}

	handler := api.NewHandler(roadmap.NewService(catalog), predictor)

	srv := &http.Server{
		Addr:        cfg.Addr(),
		Handler:     newRouter(cfg, handler),
		ReadTimeout: cfg.ReadTimeout,
		IdleTimeout: cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or a listener failure.
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server stopped successfully")
	return nil
}

func newRouter(cfg *config.Config, handler *api.Handler) http.Handler {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics)
		r.Handle("/metrics", promhttp.Handler())
	}

	handler.RegisterRoutes(r)
	return r
}

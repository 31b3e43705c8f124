// GuideU - learning roadmap and stage classifier service
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	if err := Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

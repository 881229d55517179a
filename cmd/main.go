package main

import (
	"log/slog"
	"os"

	"github.com/itsDrac/nft-web/cmd/server"
	"github.com/itsDrac/nft-web/pkg/utils"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found or error loading it", "error", err)
	}

	var handler slog.Handler

	// Configure structured logging with slog
	logOptions := &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelInfo,
	}
	if utils.GetEnv("GO_ENV", "development") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, logOptions)
	} else {
		logOptions.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, logOptions)
	}
	slog.SetDefault(slog.New(handler))

	slog.Info("Initializing NFT marketplace web frontend...")

	srv, err := server.New()
	if err != nil {
		os.Exit(1)
	}
	if err := srv.Run(); err != nil {
		slog.Error("server failed to run", "error", err)
		os.Exit(1)
	}
}

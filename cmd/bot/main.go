package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NovaFrame52/Ron-Bot/internal/bot"
	"github.com/NovaFrame52/Ron-Bot/internal/config"
	"github.com/NovaFrame52/Ron-Bot/internal/health"
	"github.com/NovaFrame52/Ron-Bot/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	slog.Info("Starting Ron", "prefix", cfg.Prefix, "storage", cfg.StorageBackend, "water_interval", cfg.WaterInterval)

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	b, err := bot.New(cfg, store)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	if err := b.Start(ctx); err != nil {
		slog.Error("Failed to start bot", "error", err)
		os.Exit(1)
	}

	var hs *health.Server
	if cfg.HealthAddr != "" {
		hs = health.NewServer(cfg.HealthAddr, b.Status)
		hs.Start()
	}

	slog.Info("Ron is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	slog.Info("Shutting down...")
	cancel()

	if hs != nil {
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		if err := hs.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to stop health server", "error", err)
		}
		stop()
	}

	if err := b.Stop(); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}

	slog.Info("Ron stopped")
}

// openStore picks the subscription backend. The returned func releases it.
func openStore(cfg *config.Config) (*storage.Store, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		repo, err := storage.NewRepository(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		store := storage.NewStore(repo)
		slog.Info("Subscription store ready", "backend", cfg.StorageBackend, "path", cfg.DatabasePath, "subscribers", store.Len())
		return store, func() {
			if err := repo.Close(); err != nil {
				slog.Error("Failed to close database", "error", err)
			}
		}, nil
	default:
		store := storage.NewStore(storage.NewJSONFile(cfg.SubscriptionsPath))
		slog.Info("Subscription store ready", "backend", cfg.StorageBackend, "path", cfg.SubscriptionsPath, "subscribers", store.Len())
		return store, func() {}, nil
	}
}

func setupLogging(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

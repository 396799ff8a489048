package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultOwnerID is the account allowed to relay DMs, sync commands and read health.
const DefaultOwnerID = "821102915325526046"

// Storage backends
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	DiscordToken string
	Prefix       string
	OwnerID      string

	// Storage
	StorageBackend    string
	SubscriptionsPath string
	DatabasePath      string

	// Scheduling
	WaterInterval   time.Duration
	FallbackChannel string

	// Ops
	HealthAddr string
	LogLevel   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:      os.Getenv("DISCORD_TOKEN"),
		Prefix:            getEnvOrDefault("PREFIX", "!"),
		OwnerID:           getEnvOrDefault("OWNER_ID", DefaultOwnerID),
		StorageBackend:    getEnvOrDefault("STORAGE_BACKEND", BackendJSON),
		SubscriptionsPath: getEnvOrDefault("SUBSCRIPTIONS_PATH", "reminders.json"),
		DatabasePath:      getEnvOrDefault("DATABASE_PATH", "./data/ron.db"),
		FallbackChannel:   getEnvOrDefault("FALLBACK_CHANNEL", "general"),
		HealthAddr:        os.Getenv("HEALTH_ADDR"),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
	}

	// Parse broadcast interval
	intervalStr := getEnvOrDefault("WATER_INTERVAL_SECONDS", "3600")
	interval, err := strconv.Atoi(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid WATER_INTERVAL_SECONDS: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("WATER_INTERVAL_SECONDS must be positive, got %d", interval)
	}
	cfg.WaterInterval = time.Duration(interval) * time.Second

	// Validate required fields
	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}

	switch cfg.StorageBackend {
	case BackendJSON, BackendSQLite:
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (want %q or %q)", cfg.StorageBackend, BackendJSON, BackendSQLite)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

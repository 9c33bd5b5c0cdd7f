package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the pinboard tools.
type Config struct {
	LogFormat    string // text or json
	LogLevel     slog.Level
	OutputFormat string // table or json
	SnapshotPath string
}

const (
	defaultLogFormat    = "text"
	defaultOutputFormat = "table"
	defaultSnapshotPath = "internal/tags/testdata/tags.json"
)

// New loads configuration from a .env file, if present, and the environment.
// Every setting has a default, so New never fails.
func New() *Config {
	// A missing .env is normal; the environment alone is enough.
	_ = godotenv.Load()

	return &Config{
		LogFormat:    getEnv("LOG_FORMAT", defaultLogFormat),
		LogLevel:     parseLevel(os.Getenv("LOG_LEVEL")),
		OutputFormat: getEnv("PINBOARD_OUTPUT_FORMAT", defaultOutputFormat),
		SnapshotPath: getEnv("PINBOARD_SNAPSHOT_PATH", defaultSnapshotPath),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

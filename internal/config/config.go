package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment string
	LogLevel    slog.Level

	// RedisURL enables session snapshots when set. Empty means the
	// session lives only for the process lifetime.
	RedisURL   string
	SessionTTL time.Duration

	// SessionID resumes a previously saved session.
	SessionID string

	// TickInterval is the frame length of the terminal frontend.
	TickInterval time.Duration
}

func Load() *Config {
	return &Config{
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     parseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisURL:     getEnv("REDIS_URL", ""),
		SessionTTL:   parseDuration(getEnv("SESSION_TTL", "24h"), 24*time.Hour),
		SessionID:    getEnv("SESSION_ID", ""),
		TickInterval: parseDuration(getEnv("TICK_INTERVAL", "50ms"), 50*time.Millisecond),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil && ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values.
type Config struct {
	// Matching
	Threshold      float64 // minimum similarity for an automatic match
	IdenticalScore float64 // score at or above which a pair counts as unchanged

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Threshold:      getEnvFloat("LAWCMP_THRESHOLD", 0.5),
		IdenticalScore: getEnvFloat("LAWCMP_IDENTICAL_SCORE", 0.98),

		LogFile:  getEnv("LAWCMP_LOG_FILE", "/tmp/lawcmp.log"),
		LogLevel: parseLogLevel(getEnv("LAWCMP_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

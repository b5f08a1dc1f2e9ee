package config

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// NewLogger builds the lawcmp logger from the loaded configuration:
// human-readable text on stderr for the interactive run, JSON appended to
// cfg.LogFile so a compare pass can be inspected afterwards. verbose drops
// the level to debug regardless of LAWCMP_LOG_LEVEL. The returned close
// function releases the log file at the end of the run.
func NewLogger(cfg Config, verbose bool) (*slog.Logger, func() error) {
	level := cfg.LogLevel
	if verbose {
		level = slog.LevelDebug
	}

	stderrHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// An unwritable log path must not block a comparison run
		slog.Error("failed to open log file, using stderr only", "error", err, "file", cfg.LogFile)
		return slog.New(stderrHandler), func() error { return nil }
	}

	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})

	return slog.New(slogmulti.Fanout(stderrHandler, fileHandler)), file.Close
}

// NewLoggerWithWriters builds the same text+JSON fanout over custom
// writers (for testing).
func NewLoggerWithWriters(stderr, file io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slogmulti.Fanout(
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
		slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}),
	))
}

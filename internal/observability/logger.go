package observability

import (
	"log/slog"
	"os"

	"github.com/couchcryptid/ransomwatch-pull/internal/config"
)

// NewLogger builds an slog.Logger from the configured level and format.
// Diagnostics go to stderr so stdout stays reserved for the CLI's output
// contract (cutoff, fetch count, final summary line).
func NewLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

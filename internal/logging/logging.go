package logging

import (
	"io"
	"log/slog"

	"github.com/nfrund/pinboard/internal/config"
)

// New builds a slog logger writing to w and sets it as the default.
// cfg.LogFormat selects "json" or "text" (the default, with source locations).
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler
	switch cfg.LogFormat {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: cfg.LogLevel,
		})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     cfg.LogLevel,
			AddSource: true,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

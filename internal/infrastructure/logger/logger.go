package logger

import (
	"log/slog"
	"os"
)

const (
	envTest = "test"
	envDev  = "dev"
	envProd = "prod"
)

type Logger struct {
	*slog.Logger
}

// New picks the handler by environment: JSON for prod, text otherwise.
// Tests only see errors.
func New(env string) *Logger {
	var handler slog.Handler

	switch env {
	case envProd:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	case envTest:
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
	case envDev:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler)}
}


package logger

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{
		logger: logger,
	}
}

// NewBaseLogger returns a text logger for dev and a json logger for prod,
// tagged with the app and runtime details.
func NewBaseLogger(w io.Writer, env string) (*slog.Logger, error) {
	var handler slog.Handler

	switch env {
	case "dev":
		handler = slog.NewTextHandler(w, nil)
	case "prod":
		handler = slog.NewJSONHandler(w, nil)
	default:
		return nil, fmt.Errorf("environment can only be dev or prod")
	}

	return slog.New(handler).With(
		slog.String("app", "pathagar"),
		slog.String("runtime", runtime.Version()),
		slog.String("os", runtime.GOOS),
		slog.String("architecture", runtime.GOARCH),
		slog.String("version", "1.0"),
	), nil
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

package envlog

import (
	"log/slog"

	"github.com/willibrandon/envlog/internal/handler"
)

// NewSlogLogger creates a new slog.Logger backed by envlog.
func NewSlogLogger(options ...Option) *slog.Logger {
	return slog.New(handler.NewSlogHandler(New(options...)))
}

// AsSlogHandler returns the logger as an slog.Handler.
func (l *Logger) AsSlogHandler() slog.Handler {
	return handler.NewSlogHandler(l)
}

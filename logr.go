package envlog

import (
	"github.com/go-logr/logr"

	"github.com/willibrandon/envlog/internal/handler"
)

// NewLogrLogger creates a new logr.Logger backed by envlog.
func NewLogrLogger(options ...Option) logr.Logger {
	return logr.New(handler.NewLogrSink(New(options...)))
}

// AsLogrSink returns the logger as a logr.LogSink.
func (l *Logger) AsLogrSink() logr.LogSink {
	return handler.NewLogrSink(l)
}

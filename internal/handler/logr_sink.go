package handler

import (
	"github.com/go-logr/logr"

	"github.com/willibrandon/envlog/core"
)

// LogrSink implements logr.LogSink backed by an envlog logger.
// The logr message becomes the prefix; the logger name and key/value pairs
// follow as "key=value" arguments.
type LogrSink struct {
	logger core.Logger
	name   string
	values []any
}

var _ logr.LogSink = (*LogrSink)(nil)

// NewLogrSink creates a new logr.LogSink that writes to the provided logger.
func NewLogrSink(logger core.Logger) *LogrSink {
	return &LogrSink{logger: logger}
}

// Init receives optional information about the logr library.
func (s *LogrSink) Init(logr.RuntimeInfo) {}

// Enabled tests whether this LogSink is enabled at the given V-level.
func (s *LogrSink) Enabled(level int) bool {
	return s.logger.IsEnabled(LogrLevelToSeverity(level))
}

// Info logs a non-error message with the given key/value pairs.
func (s *LogrSink) Info(level int, msg string, keysAndValues ...any) {
	args := s.args(keysAndValues)
	switch LogrLevelToSeverity(level) {
	case core.InfoLevel:
		s.logger.Info(msg, args...)
	default:
		s.logger.Debug(msg, args...)
	}
}

// Error logs an error message with the given key/value pairs.
func (s *LogrSink) Error(err error, msg string, keysAndValues ...any) {
	args := append([]any{err}, s.args(keysAndValues)...)
	s.logger.Error(msg, args...)
}

// WithValues returns a new LogSink with additional key/value pairs.
func (s *LogrSink) WithValues(keysAndValues ...any) logr.LogSink {
	values := make([]any, 0, len(s.values)+len(keysAndValues))
	values = append(values, s.values...)
	values = append(values, keysAndValues...)
	return &LogrSink{
		logger: s.logger,
		name:   s.name,
		values: values,
	}
}

// WithName returns a new LogSink with the specified name appended.
func (s *LogrSink) WithName(name string) logr.LogSink {
	newName := name
	if s.name != "" {
		newName = s.name + "." + name
	}
	return &LogrSink{
		logger: s.logger,
		name:   newName,
		values: s.values,
	}
}

func (s *LogrSink) args(keysAndValues []any) []any {
	pairs := make([]any, 0, 2+len(s.values)+len(keysAndValues))
	if s.name != "" {
		pairs = append(pairs, "logger", s.name)
	}
	pairs = append(pairs, s.values...)
	pairs = append(pairs, keysAndValues...)
	return keyValueArgs(pairs)
}

// LogrLevelToSeverity converts logr V-levels: 0 is info, anything higher is debug.
func LogrLevelToSeverity(level int) core.Severity {
	if level <= 0 {
		return core.InfoLevel
	}
	return core.DebugLevel
}

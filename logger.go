package envlog

import (
	"time"

	"github.com/willibrandon/envlog/core"
)

// Logger gates leveled console logging by a threshold fixed at construction.
// It is safe for concurrent use: its only state is read-only after New returns.
type Logger struct {
	threshold core.Severity
	sinks     []core.LogEventSink
	now       func() time.Time
}

var _ core.Logger = (*Logger)(nil)

// New creates a logger. Without options the threshold comes from the
// process environment and events go to the console.
func New(options ...Option) *Logger {
	cfg := newConfig(options...)
	return &Logger{
		threshold: cfg.resolveThreshold(),
		sinks:     cfg.resolveSinks(),
		now:       time.Now,
	}
}

// Error writes an error-level event. It is written whatever the threshold.
func (l *Logger) Error(prefix string, args ...any) {
	l.emit(core.ErrorLevel, prefix, args)
}

// Warn writes a warn-level event if the threshold is at least WarnLevel.
func (l *Logger) Warn(prefix string, args ...any) {
	l.write(core.WarnLevel, prefix, args)
}

// Info writes an info-level event if the threshold is at least InfoLevel.
func (l *Logger) Info(prefix string, args ...any) {
	l.write(core.InfoLevel, prefix, args)
}

// Debug writes a debug-level event if the threshold is DebugLevel.
func (l *Logger) Debug(prefix string, args ...any) {
	l.write(core.DebugLevel, prefix, args)
}

// Write writes an event at an explicit level, applying the same gating as
// the named methods.
func (l *Logger) Write(level core.Severity, prefix string, args ...any) {
	switch level {
	case core.ErrorLevel:
		l.emit(level, prefix, args)
	default:
		l.write(level, prefix, args)
	}
}

// Threshold returns the most verbose severity this logger writes.
func (l *Logger) Threshold() core.Severity {
	return l.threshold
}

// IsEnabled returns true if events at the specified level would be written.
func (l *Logger) IsEnabled(level core.Severity) bool {
	return level == core.ErrorLevel || l.threshold.Allows(level)
}

// Close closes every sink and returns the first error.
func (l *Logger) Close() error {
	var first error
	for _, sink := range l.sinks {
		if err := sink.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (l *Logger) write(level core.Severity, prefix string, args []any) {
	if !l.threshold.Allows(level) {
		return
	}
	l.emit(level, prefix, args)
}

func (l *Logger) emit(level core.Severity, prefix string, args []any) {
	event := &core.LogEvent{
		Timestamp: l.now(),
		Level:     level,
		Prefix:    prefix,
		Args:      args,
	}
	for _, sink := range l.sinks {
		sink.Emit(event)
	}
}

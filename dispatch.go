package envlog

import (
	"strings"

	"github.com/willibrandon/envlog/core"
)

// InferSeverity classifies a prefix by case-insensitive substring search,
// checking "error", then "warn", then "info". Anything else is DebugLevel.
//
// Matching is not word-based: "terrorist" contains "error" and
// "Warning" contains "warn". Callers relying on Log should keep prefixes
// free of accidental matches.
func InferSeverity(prefix string) core.Severity {
	lower := strings.ToLower(prefix)
	switch {
	case strings.Contains(lower, "error"):
		return core.ErrorLevel
	case strings.Contains(lower, "warn"):
		return core.WarnLevel
	case strings.Contains(lower, "info"):
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// Log writes an event at the severity inferred from prefix.
// See InferSeverity for the matching rules.
func (l *Logger) Log(prefix string, args ...any) {
	switch InferSeverity(prefix) {
	case core.ErrorLevel:
		l.Error(prefix, args...)
	case core.WarnLevel:
		l.Warn(prefix, args...)
	case core.InfoLevel:
		l.Info(prefix, args...)
	default:
		l.Debug(prefix, args...)
	}
}

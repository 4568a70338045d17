package core

import (
	"fmt"
	"strings"
)

// Severity specifies how important a log event is.
// Higher values are more verbose.
type Severity int

const (
	// ErrorLevel is for errors. Error events are always written.
	ErrorLevel Severity = iota
	
	// WarnLevel is for warnings.
	WarnLevel
	
	// InfoLevel is for informational messages.
	InfoLevel
	
	// DebugLevel is for debugging information. It is the most verbose level.
	DebugLevel
)

// String returns the upper-case name of the severity.
func (s Severity) String() string {
	switch s {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Allows reports whether an event at level passes a logger whose threshold is s.
func (s Severity) Allows(level Severity) bool {
	return s >= level
}

// ParseSeverity parses a severity name. Matching is case-insensitive.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error", "err":
		return ErrorLevel, nil
	case "warn", "warning", "wrn":
		return WarnLevel, nil
	case "info", "information", "inf":
		return InfoLevel, nil
	case "debug", "dbg":
		return DebugLevel, nil
	default:
		return ErrorLevel, fmt.Errorf("unknown severity: %q", name)
	}
}

package core

import (
	"fmt"
	"strings"
	"time"
)

// LogEvent represents a single call to one of the leveled logging methods.
type LogEvent struct {
	// Timestamp is when the event occurred.
	Timestamp time.Time
	
	// Level is the severity the event was written at.
	Level Severity
	
	// Prefix is the first argument of the logging call.
	Prefix string
	
	// Args are the remaining arguments, forwarded verbatim.
	Args []any
}

// Message renders the event as "<prefix>:" followed by each argument,
// separated by single spaces.
func (e *LogEvent) Message() string {
	var sb strings.Builder
	sb.WriteString(e.Prefix)
	sb.WriteByte(':')
	for _, arg := range e.Args {
		sb.WriteByte(' ')
		sb.WriteString(formatArg(arg))
	}
	return sb.String()
}

// formatArg renders strings as-is and everything else with %+v, so struct
// fields are shown by name and Stringer/error values use their own text.
func formatArg(arg any) string {
	if s, ok := arg.(string); ok {
		return s
	}
	return fmt.Sprintf("%+v", arg)
}

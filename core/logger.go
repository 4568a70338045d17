// Package core provides the fundamental interfaces and types for envlog.
package core

// Logger is the leveled logging interface. Every method takes a prefix and
// an arbitrary list of arguments that are forwarded to the sinks verbatim.
type Logger interface {
	// Error writes an error-level event. It is never suppressed.
	Error(prefix string, args ...any)

	// Warn writes a warn-level event if the threshold allows it.
	Warn(prefix string, args ...any)

	// Info writes an info-level event if the threshold allows it.
	Info(prefix string, args ...any)

	// Debug writes a debug-level event if the threshold allows it.
	Debug(prefix string, args ...any)

	// Log infers the severity from the prefix and delegates to the matching method.
	Log(prefix string, args ...any)

	// Threshold returns the most verbose severity this logger writes.
	Threshold() Severity

	// IsEnabled returns true if events at the specified level would be written.
	IsEnabled(level Severity) bool
}

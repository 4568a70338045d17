package envlog

import (
	"sync"

	"github.com/willibrandon/envlog/configuration"
)

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide logger. It is built on first use from
// the process environment and writes to the console. Code that can accept
// a logger should take one built with New instead.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(
			WithEnvironment(configuration.FromProcess()),
			WithConsole(),
		)
	})
	return defaultLogger
}

// LogMessage forwards to Default().Log. It exists for call sites migrating
// from unstructured print-style logging.
func LogMessage(prefix string, args ...any) {
	Default().Log(prefix, args...)
}

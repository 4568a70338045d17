// Package selflog reports problems inside envlog itself.
//
// The logger never returns errors to its callers, so a console write that
// fails or a .env file that cannot be parsed would otherwise go unnoticed.
// Enable selflog to see them:
//
//	selflog.Enable(os.Stderr)
//	defer selflog.Disable()
//
// Or route them somewhere else:
//
//	selflog.EnableFunc(func(msg string) {
//	    metrics.Inc("envlog_internal_error")
//	})
//
// Messages look like:
//
//	2025-01-29T15:30:45Z [console] write failed: broken pipe
//
// Setting ENVLOG_SELFLOG to "stderr", "stdout" or a file path enables it on startup.
package selflog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// EnvVar enables selflog at startup when set.
const EnvVar = "ENVLOG_SELFLOG"

var (
	outputWriter atomic.Pointer[io.Writer]
	outputFunc   atomic.Pointer[func(string)]
)

// Enable activates self-logging to the provided writer.
// The writer should be thread-safe or wrapped with Sync().
func Enable(w io.Writer) {
	if w == nil {
		return
	}
	outputFunc.Store(nil)
	outputWriter.Store(&w)
}

// EnableFunc activates self-logging using a callback function.
func EnableFunc(fn func(string)) {
	if fn == nil {
		return
	}
	outputWriter.Store(nil)
	outputFunc.Store(&fn)
}

// Disable deactivates self-logging.
func Disable() {
	outputWriter.Store(nil)
	outputFunc.Store(nil)
}

// Printf logs an internal diagnostic message. The format should start with
// the component in square brackets, e.g. "[console] write failed: %v".
func Printf(format string, args ...any) {
	w := outputWriter.Load()
	fn := outputFunc.Load()
	if w == nil && fn == nil {
		return
	}

	line := time.Now().UTC().Format(time.RFC3339) + " " + fmt.Sprintf(format, args...)

	if w != nil {
		fmt.Fprintln(*w, line)
	} else {
		(*fn)(line)
	}
}

// IsEnabled returns true if selflog is currently enabled.
func IsEnabled() bool {
	return outputWriter.Load() != nil || outputFunc.Load() != nil
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Sync wraps a writer to make it thread-safe.
func Sync(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}

// enableFrom configures selflog from the value of EnvVar.
func enableFrom(dest string) {
	switch dest {
	case "":
		return
	case "stderr":
		Enable(os.Stderr)
	case "stdout":
		Enable(os.Stdout)
	default:
		if f, err := os.OpenFile(dest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			Enable(Sync(f))
		}
	}
}

func init() {
	enableFrom(os.Getenv(EnvVar))
}

// Package configuration derives the logging threshold from the runtime environment.
//
// The rule is deliberately small: outside of development only errors are
// written. In development, debug output is written only when the binary was
// built with the envlog_debug tag; otherwise development behaves like
// production.
package configuration

import (
	"os"

	"github.com/willibrandon/envlog/core"
)

const (
	// ModeVariable names the environment variable holding the runtime mode.
	ModeVariable = "NODE_ENV"

	// FallbackModeVariable is consulted when ModeVariable is unset.
	FallbackModeVariable = "APP_ENV"

	// DevelopmentMode is the mode value that enables verbose output.
	DevelopmentMode = "development"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Environment is the configuration a logger's threshold is computed from.
type Environment struct {
	// Mode is the runtime mode, e.g. "development" or "production".
	Mode string

	// DebugLogs enables debug output in development mode.
	DebugLogs bool
}

// IsDevelopment reports whether Mode is exactly "development".
func (e Environment) IsDevelopment() bool {
	return e.Mode == DevelopmentMode
}

// Threshold returns the most verbose severity a logger in this environment writes.
func (e Environment) Threshold() core.Severity {
	if !e.IsDevelopment() {
		return core.ErrorLevel
	}
	if e.DebugLogs {
		return core.DebugLevel
	}
	return core.ErrorLevel
}

// FromProcess reads the environment of the current process.
func FromProcess() Environment {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds an Environment from an arbitrary variable source.
// DebugLogs is always the compile-time EnableDebugLogs value.
func FromLookup(lookup LookupFunc) Environment {
	mode, ok := lookup(ModeVariable)
	if !ok {
		mode, _ = lookup(FallbackModeVariable)
	}
	return Environment{
		Mode:      mode,
		DebugLogs: EnableDebugLogs,
	}
}

// FromMap builds an Environment from a map of variables.
func FromMap(vars map[string]string) Environment {
	return FromLookup(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
}

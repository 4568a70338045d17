//go:build !envlog_debug
// +build !envlog_debug

package configuration

// EnableDebugLogs turns on debug output in development mode.
// Build with -tags envlog_debug to set it.
const EnableDebugLogs = false

//go:build envlog_debug
// +build envlog_debug

package configuration

// EnableDebugLogs turns on debug output in development mode.
const EnableDebugLogs = true

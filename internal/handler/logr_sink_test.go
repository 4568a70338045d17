package handler_test

import (
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willibrandon/envlog"
	"github.com/willibrandon/envlog/core"
	"github.com/willibrandon/envlog/internal/handler"
	"github.com/willibrandon/envlog/sinks"
)

func TestLogrSink(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := envlog.New(envlog.WithSink(memSink), envlog.WithThreshold(core.DebugLevel))
	logrLogger := logr.New(handler.NewLogrSink(logger))

	logrLogger.V(0).Info("info message", "key", "value")
	logrLogger.V(1).Info("debug message", "count", 42)
	logrLogger.Error(errors.New("test error"), "error occurred", "operation", "test")

	events := memSink.Events()
	require.Len(t, events, 3)

	assert.Equal(t, core.InfoLevel, events[0].Level)
	assert.Equal(t, "info message: key=value", events[0].Message())

	assert.Equal(t, core.DebugLevel, events[1].Level)
	assert.Equal(t, "debug message: count=42", events[1].Message())

	assert.Equal(t, core.ErrorLevel, events[2].Level)
	assert.Equal(t, "error occurred: test error operation=test", events[2].Message())
}

func TestLogrSinkRespectsThreshold(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := envlog.New(envlog.WithSink(memSink), envlog.WithThreshold(core.ErrorLevel))
	logrLogger := logr.New(handler.NewLogrSink(logger))

	assert.False(t, logrLogger.Enabled())
	logrLogger.Info("dropped")
	logrLogger.V(3).Info("dropped")
	logrLogger.Error(nil, "kept")

	require.Equal(t, 1, memSink.Count())
	assert.Equal(t, "kept: <nil>", memSink.LastEvent().Message())
}

func TestLogrSinkWithNameAndValues(t *testing.T) {
	memSink := sinks.NewMemorySink()
	logger := envlog.New(envlog.WithSink(memSink), envlog.WithThreshold(core.InfoLevel))
	logrLogger := logr.New(handler.NewLogrSink(logger)).
		WithName("api").
		WithName("auth").
		WithValues("request", "r-1")

	logrLogger.Info("login", "user", "ada", "dangling")

	require.Equal(t, 1, memSink.Count())
	assert.Equal(t, "login: logger=api.auth request=r-1 user=ada dangling=<missing>", memSink.LastEvent().Message())
}

func TestLogrLevelToSeverity(t *testing.T) {
	assert.Equal(t, core.InfoLevel, handler.LogrLevelToSeverity(0))
	assert.Equal(t, core.DebugLevel, handler.LogrLevelToSeverity(1))
	assert.Equal(t, core.DebugLevel, handler.LogrLevelToSeverity(5))
}

package sinks

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willibrandon/envlog/core"
	"github.com/willibrandon/envlog/selflog"
	"github.com/willibrandon/envlog/testutil"
)

func newTestConsole(t *testing.T) (*ConsoleSink, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv(ForceColorVariable, "off")
	var out, errOut bytes.Buffer
	return NewConsoleSinkWithWriters(&out, &errOut), &out, &errOut
}

func TestConsoleSinkStreams(t *testing.T) {
	tests := []struct {
		level       core.Severity
		toErrStream bool
	}{
		{core.ErrorLevel, true},
		{core.WarnLevel, true},
		{core.InfoLevel, false},
		{core.DebugLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			sink, out, errOut := newTestConsole(t)

			sink.Emit(&core.LogEvent{Level: tt.level, Prefix: "db", Args: []any{"connected", 3}})

			expected := "db: connected 3\n"
			if tt.toErrStream {
				assert.Equal(t, expected, errOut.String())
				assert.Empty(t, out.String())
			} else {
				assert.Equal(t, expected, out.String())
				assert.Empty(t, errOut.String())
			}
		})
	}
}

func TestConsoleSinkDegenerateEvent(t *testing.T) {
	sink, out, _ := newTestConsole(t)

	sink.Emit(&core.LogEvent{Level: core.DebugLevel})
	sink.Emit(nil)

	assert.Equal(t, ":\n", out.String())
}

func TestConsoleSinkColor(t *testing.T) {
	sink, out, errOut := newTestConsole(t)
	sink.SetUseColor(true)

	sink.Emit(&core.LogEvent{Level: core.ErrorLevel, Prefix: "ERROR", Args: []any{"disk full"}})
	sink.Emit(&core.LogEvent{Level: core.InfoLevel, Prefix: "boot", Args: []any{"ok"}})

	theme := DefaultTheme()
	assert.Equal(t, string(theme.ErrorColor)+"ERROR:"+string(ColorReset)+" disk full\n", errOut.String())
	assert.Equal(t, string(theme.InfoColor)+"boot:"+string(ColorReset)+" ok\n", out.String())
}

func TestConsoleSinkNoColorTheme(t *testing.T) {
	sink, _, errOut := newTestConsole(t)
	sink.SetUseColor(true)
	sink.SetTheme(NoColorTheme())

	sink.Emit(&core.LogEvent{Level: core.WarnLevel, Prefix: "warn", Args: []any{"low memory"}})

	assert.Equal(t, "warn: low memory\n", errOut.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConsoleSinkWriteFailureGoesToSelflog(t *testing.T) {
	t.Setenv(ForceColorVariable, "off")
	var diag bytes.Buffer
	selflog.Enable(&diag)
	defer selflog.Disable()

	sink := NewConsoleSinkWithWriters(failingWriter{}, failingWriter{})
	sink.Emit(&core.LogEvent{Level: core.ErrorLevel, Prefix: "x"})

	assert.Contains(t, diag.String(), "[console] write failed: broken pipe")
}

func TestConsoleSinkConcurrentLinesAreWhole(t *testing.T) {
	sink, out, _ := newTestConsole(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sink.Emit(&core.LogEvent{Level: core.InfoLevel, Prefix: "worker", Args: []any{"tick"}})
		}()
	}
	wg.Wait()

	lines := testutil.Lines(out.String())
	require.Len(t, lines, 50)
	for _, line := range lines {
		assert.Equal(t, "worker: tick", line)
	}
}

func TestShouldUseColor(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv(ForceColorVariable, "on")
	assert.True(t, shouldUseColor(&buf), "force on applies to any writer")

	t.Setenv(ForceColorVariable, "false")
	assert.False(t, shouldUseColor(&buf))

	t.Setenv(ForceColorVariable, "")
	t.Setenv("NO_COLOR", "1")
	assert.False(t, shouldUseColor(&buf))
}

func TestShouldUseColorNonTerminal(t *testing.T) {
	t.Setenv(ForceColorVariable, "")
	var buf bytes.Buffer
	assert.False(t, shouldUseColor(&buf), "a buffer is never a terminal")
}

func TestThemeLevelColor(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, theme.ErrorColor, theme.LevelColor(core.ErrorLevel))
	assert.Equal(t, theme.WarnColor, theme.LevelColor(core.WarnLevel))
	assert.Equal(t, theme.InfoColor, theme.LevelColor(core.InfoLevel))
	assert.Equal(t, theme.DebugColor, theme.LevelColor(core.DebugLevel))
	assert.Equal(t, Color(""), theme.LevelColor(core.Severity(9)))
}

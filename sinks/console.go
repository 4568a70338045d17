package sinks

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"

	"github.com/willibrandon/envlog/core"
	"github.com/willibrandon/envlog/selflog"
)

// ConsoleSink writes each event as one line to the console.
// Error and warn events go to the error stream; info and debug events go
// to the output stream.
type ConsoleSink struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	outColor bool
	errColor bool
	theme    *ConsoleTheme
}

// NewConsoleSink creates a console sink writing to stdout and stderr.
func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{
		out:      colorable.NewColorable(os.Stdout),
		errOut:   colorable.NewColorable(os.Stderr),
		outColor: shouldUseColor(os.Stdout),
		errColor: shouldUseColor(os.Stderr),
		theme:    DefaultTheme(),
	}
}

// NewConsoleSinkWithWriters creates a console sink with custom streams.
// Colour is enabled only if a writer is a terminal.
func NewConsoleSinkWithWriters(out, errOut io.Writer) *ConsoleSink {
	return &ConsoleSink{
		out:      out,
		errOut:   errOut,
		outColor: shouldUseColor(out),
		errColor: shouldUseColor(errOut),
		theme:    DefaultTheme(),
	}
}

// SetTheme updates the console theme.
func (cs *ConsoleSink) SetTheme(theme *ConsoleTheme) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if theme == nil {
		theme = NoColorTheme()
	}
	cs.theme = theme
}

// SetUseColor enables or disables color output on both streams.
func (cs *ConsoleSink) SetUseColor(useColor bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.outColor = useColor
	cs.errColor = useColor
}

// Emit writes the log event to the stream for its severity.
func (cs *ConsoleSink) Emit(event *core.LogEvent) {
	if event == nil {
		return
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	w, useColor := cs.out, cs.outColor
	if isErrorStream(event.Level) {
		w, useColor = cs.errOut, cs.errColor
	}

	line := cs.format(event, useColor)
	if _, err := io.WriteString(w, line); err != nil {
		selflog.Printf("[console] write failed: %v", err)
	}
}

// Close releases any resources held by the sink.
func (cs *ConsoleSink) Close() error {
	return nil
}

// format renders "<prefix>: args...\n", colouring only the prefix.
func (cs *ConsoleSink) format(event *core.LogEvent, useColor bool) string {
	message := event.Message()
	if !useColor {
		return message + "\n"
	}

	head := len(event.Prefix) + 1
	return colorize(message[:head], cs.theme.LevelColor(event.Level), true) + message[head:] + "\n"
}

func isErrorStream(level core.Severity) bool {
	return level <= core.WarnLevel
}

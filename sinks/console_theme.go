package sinks

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/willibrandon/envlog/core"
)

// ForceColorVariable overrides terminal detection when set.
// "none", "0", "false" and "off" disable colour; "true", "on" and "1" enable it.
const ForceColorVariable = "ENVLOG_FORCE_COLOR"

// Color represents an ANSI color code.
type Color string

const (
	ColorReset  Color = "\033[0m"
	ColorBold   Color = "\033[1m"
	ColorDim    Color = "\033[2m"
	ColorRed    Color = "\033[31m"
	ColorGreen  Color = "\033[32m"
	ColorYellow Color = "\033[33m"
	ColorBlue   Color = "\033[34m"
	ColorCyan   Color = "\033[36m"
	ColorGray   Color = "\033[90m"
)

// ConsoleTheme defines the color of the prefix for each severity.
type ConsoleTheme struct {
	ErrorColor Color
	WarnColor  Color
	InfoColor  Color
	DebugColor Color
}

// DefaultTheme returns the default console theme.
func DefaultTheme() *ConsoleTheme {
	return &ConsoleTheme{
		ErrorColor: ColorRed + ColorBold,
		WarnColor:  ColorYellow,
		InfoColor:  ColorGreen,
		DebugColor: ColorGray,
	}
}

// NoColorTheme returns a theme without any colors.
func NoColorTheme() *ConsoleTheme {
	return &ConsoleTheme{}
}

// LevelColor returns the color for a severity.
func (t *ConsoleTheme) LevelColor(level core.Severity) Color {
	switch level {
	case core.ErrorLevel:
		return t.ErrorColor
	case core.WarnLevel:
		return t.WarnColor
	case core.InfoLevel:
		return t.InfoColor
	case core.DebugLevel:
		return t.DebugColor
	default:
		return ""
	}
}

// shouldUseColor determines if color output should be used for w.
func shouldUseColor(w io.Writer) bool {
	if force := os.Getenv(ForceColorVariable); force != "" {
		switch strings.ToLower(force) {
		case "none", "0", "false", "off":
			return false
		case "1", "true", "on":
			return true
		}
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorize applies color to a string if colors are enabled.
func colorize(s string, color Color, useColor bool) string {
	if !useColor || color == "" {
		return s
	}
	return string(color) + s + string(ColorReset)
}

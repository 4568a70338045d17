package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/willibrandon/envlog/core"
)

// SlogHandler implements slog.Handler backed by an envlog logger.
// The record message becomes the prefix and attributes follow as
// "key=value" arguments, with group names joined by dots.
type SlogHandler struct {
	logger core.Logger
	attrs  []string
	groups []string
}

var _ slog.Handler = (*SlogHandler)(nil)

// NewSlogHandler creates a new slog.Handler that writes to the provided logger.
func NewSlogHandler(logger core.Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.IsEnabled(SlogLevelToSeverity(level))
}

// Handle writes the record.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	args := make([]any, 0, len(h.attrs)+record.NumAttrs())
	for _, a := range h.attrs {
		args = append(args, a)
	}
	record.Attrs(func(attr slog.Attr) bool {
		for _, a := range flattenAttr(h.groupPrefix(), attr) {
			args = append(args, a)
		}
		return true
	})

	switch SlogLevelToSeverity(record.Level) {
	case core.ErrorLevel:
		h.logger.Error(record.Message, args...)
	case core.WarnLevel:
		h.logger.Warn(record.Message, args...)
	case core.InfoLevel:
		h.logger.Info(record.Message, args...)
	default:
		h.logger.Debug(record.Message, args...)
	}
	return nil
}

// WithAttrs returns a new Handler that adds attrs to every record.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, attr := range attrs {
		newAttrs = append(newAttrs, flattenAttr(h.groupPrefix(), attr)...)
	}
	return &SlogHandler{
		logger: h.logger,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

// WithGroup returns a new Handler that qualifies later attribute keys with name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroups := make([]string, len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups[len(h.groups)] = name
	return &SlogHandler{
		logger: h.logger,
		attrs:  h.attrs,
		groups: newGroups,
	}
}

func (h *SlogHandler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// flattenAttr renders attr as key=value strings, expanding groups.
func flattenAttr(prefix string, attr slog.Attr) []string {
	value := attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return nil
	}

	if value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix = prefix + attr.Key + "."
		}
		var out []string
		for _, member := range value.Group() {
			out = append(out, flattenAttr(groupPrefix, member)...)
		}
		return out
	}

	return []string{fmt.Sprintf("%s%s=%+v", prefix, attr.Key, value.Any())}
}

// SlogLevelToSeverity maps slog levels to the nearest severity.
func SlogLevelToSeverity(level slog.Level) core.Severity {
	switch {
	case level < slog.LevelInfo:
		return core.DebugLevel
	case level < slog.LevelWarn:
		return core.InfoLevel
	case level < slog.LevelError:
		return core.WarnLevel
	default:
		return core.ErrorLevel
	}
}

// SeverityToSlog converts a severity to its slog level.
func SeverityToSlog(level core.Severity) slog.Level {
	switch level {
	case core.ErrorLevel:
		return slog.LevelError
	case core.WarnLevel:
		return slog.LevelWarn
	case core.InfoLevel:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

package sinks

import (
	"sync"

	"github.com/willibrandon/envlog/core"
)

// MemorySink stores log events in memory for testing purposes.
type MemorySink struct {
	events []core.LogEvent
	mu     sync.RWMutex
}

// NewMemorySink creates a new memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		events: make([]core.LogEvent, 0),
	}
}

// Emit stores a copy of the event.
func (m *MemorySink) Emit(event *core.LogEvent) {
	if event == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	eventCopy := *event
	if event.Args != nil {
		eventCopy.Args = append([]any(nil), event.Args...)
	}
	m.events = append(m.events, eventCopy)
}

// Close does nothing for memory sink.
func (m *MemorySink) Close() error {
	return nil
}

// Events returns a copy of all stored events.
func (m *MemorySink) Events() []core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]core.LogEvent, len(m.events))
	copy(result, m.events)
	return result
}

// Messages returns the rendered message of every stored event.
func (m *MemorySink) Messages() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]string, len(m.events))
	for i := range m.events {
		result[i] = m.events[i].Message()
	}
	return result
}

// Clear removes all stored events.
func (m *MemorySink) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = m.events[:0]
}

// Count returns the number of stored events.
func (m *MemorySink) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}

// CountLevel returns the number of stored events at level.
func (m *MemorySink) CountLevel(level core.Severity) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for i := range m.events {
		if m.events[i].Level == level {
			n++
		}
	}
	return n
}

// LastEvent returns the most recent event, or nil if no events.
func (m *MemorySink) LastEvent() *core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.events) == 0 {
		return nil
	}

	event := m.events[len(m.events)-1]
	return &event
}

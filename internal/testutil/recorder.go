// Package testutil provides recording fakes for control tests.
package testutil

import (
	"fmt"
	"sync"

	"github.com/frudas24/screenpad/internal/hub"
)

// EventRecorder records hub events for assertions.
type EventRecorder struct {
	mu     sync.Mutex
	events []hub.Event
}

// Sink returns a hub sink that appends to the recorder.
func (r *EventRecorder) Sink() hub.Sink {
	return func(ev hub.Event) {
		r.mu.Lock()
		r.events = append(r.events, ev)
		r.mu.Unlock()
	}
}

// Events returns a copy of the recorded events.
func (r *EventRecorder) Events() []hub.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]hub.Event, len(r.events))
	copy(out, r.events)
	return out
}

// LogRecorder captures injected trace output.
type LogRecorder struct {
	Lines []string
}

// Logf appends a formatted trace line.
func (r *LogRecorder) Logf(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

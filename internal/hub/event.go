// Package hub routes pointer messages to controls and fans events out to sinks.
package hub

// EventType identifies the kind of control state change.
type EventType string

const (
	// EventPress reports a button press or a d-pad direction engage.
	EventPress EventType = "press"
	// EventRelease reports a button, d-pad, joystick, or slider release.
	EventRelease EventType = "release"
	// EventInput reports a joystick reading.
	EventInput EventType = "input"
	// EventSlide reports a slider percentage.
	EventSlide EventType = "slide"
)

// Event is a control state change surfaced to transports.
type Event struct {
	Type      EventType `json:"t"`
	Control   string    `json:"control"`
	Direction string    `json:"direction,omitempty"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Value     int       `json:"value"`
}

// Sink receives published events. Sinks must not block; slow transports are
// expected to buffer or drop on their side.
type Sink func(Event)

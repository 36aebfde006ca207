// Package hub routes pointer messages to controls and fans events out to sinks.
package hub

import (
	"fmt"
	"sort"
	"sync"

	"github.com/frudas24/screenpad/internal/control"
	"github.com/frudas24/screenpad/internal/geom"
)

// Hub owns the live control registry. Pointer dispatch is serialized under a
// mutex so the controls themselves stay single-threaded; event publication
// uses a separate lock so control callbacks can publish mid-dispatch.
type Hub struct {
	mu       sync.Mutex
	controls map[string]control.Control

	sinkMu   sync.Mutex
	sinks    map[int]Sink
	nextSink int
}

// New returns an empty hub.
func New() *Hub {
	return &Hub{
		controls: make(map[string]control.Control),
		sinks:    make(map[int]Sink),
	}
}

// Register adds a control to the registry. Duplicate ids are rejected.
func (h *Hub) Register(c control.Control) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.controls[c.ID()]; exists {
		return fmt.Errorf("hub: control %q already registered", c.ID())
	}
	h.controls[c.ID()] = c
	return nil
}

// Unregister closes and removes a control. Unknown ids are a no-op.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.controls[id]; ok {
		c.Close()
		delete(h.controls, id)
	}
}

// ControlIDs returns the registered ids in sorted order.
func (h *Hub) ControlIDs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	ids := make([]string, 0, len(h.controls))
	for id := range h.controls {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PointerDown routes a pointer-down to the named control. It reports whether
// the control exists.
func (h *Hub) PointerDown(ctrl string, id control.PointerID, x, y float64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.controls[ctrl]
	if !ok {
		return false
	}
	c.HandleDown(id, x, y)
	return true
}

// PointerMove routes a pointer-move to the named control.
func (h *Hub) PointerMove(ctrl string, id control.PointerID, x, y float64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.controls[ctrl]
	if !ok {
		return false
	}
	c.HandleMove(id, x, y)
	return true
}

// PointerUp routes a pointer-up to the named control.
func (h *Hub) PointerUp(ctrl string, id control.PointerID, x, y float64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.controls[ctrl]
	if !ok {
		return false
	}
	c.HandleUp(id, x, y)
	return true
}

// PointerCancel routes a pointer-cancel to the named control.
func (h *Hub) PointerCancel(ctrl string, id control.PointerID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.controls[ctrl]
	if !ok {
		return false
	}
	c.HandleCancel(id)
	return true
}

// SetRegion updates the named control's on-screen rectangle after a client
// resize.
func (h *Hub) SetRegion(ctrl string, r geom.Rect) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.controls[ctrl]
	if !ok {
		return false
	}
	c.SetRegion(r)
	return true
}

// Attach subscribes a sink to published events and returns its detach
// function.
func (h *Hub) Attach(s Sink) func() {
	h.sinkMu.Lock()
	defer h.sinkMu.Unlock()
	key := h.nextSink
	h.nextSink++
	h.sinks[key] = s
	return func() {
		h.sinkMu.Lock()
		delete(h.sinks, key)
		h.sinkMu.Unlock()
	}
}

// Publish delivers an event to all attached sinks.
func (h *Hub) Publish(ev Event) {
	h.sinkMu.Lock()
	sinks := make([]Sink, 0, len(h.sinks))
	for _, s := range h.sinks {
		sinks = append(sinks, s)
	}
	h.sinkMu.Unlock()
	for _, s := range sinks {
		s(ev)
	}
}

// Close closes every registered control and clears the registry.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.controls {
		c.Close()
		delete(h.controls, id)
	}
}

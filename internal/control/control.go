// Package control implements the virtual input controls and their pointer geometry.
package control

import "github.com/frudas24/screenpad/internal/geom"

// Control is the pointer-event surface shared by every widget kind. Handlers
// run to completion synchronously; callers are expected to serialize calls per
// instance (the hub does this for transport-driven events).
type Control interface {
	// ID returns the opaque instance identifier, used for event attribution.
	ID() string
	// HandleDown processes a pointer-down at (x, y) in screen coordinates.
	HandleDown(id PointerID, x, y float64)
	// HandleMove processes a pointer-move for an owned pointer.
	HandleMove(id PointerID, x, y float64)
	// HandleUp processes a pointer-up for an owned pointer.
	HandleUp(id PointerID, x, y float64)
	// HandleCancel ends the interaction like a pointer-up would.
	HandleCancel(id PointerID)
	// SetRegion replaces the control's on-screen rectangle after a client
	// resize. An active drag keeps using the rectangle cached at press time.
	SetRegion(r geom.Rect)
	// Close detaches the control; all further events are no-ops.
	Close()
}

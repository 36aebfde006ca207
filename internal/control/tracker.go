// Package control implements the virtual input controls and their pointer geometry.
package control

import (
	"errors"

	"github.com/frudas24/screenpad/internal/geom"
)

// PointerID identifies one host pointer (touch point or mouse) for the
// duration of a single press-drag-release interaction.
type PointerID int

// ErrMissingRegion reports a control constructed without a usable mounting
// region. Zero-size regions are rejected the same way so the geometry can
// never divide by zero mid-drag.
var ErrMissingRegion = errors.New("control: mounting region missing")

// Logf is an injected trace sink. A nil Logf disables tracing entirely; the
// trace lines are not part of the functional contract.
type Logf func(format string, args ...any)

// tracker owns the single-pointer interaction state shared by every control
// kind: which pointer holds the interaction and the rectangle cached at press
// time. A second pointer-down while one is active is rejected rather than
// silently replacing the owner.
type tracker struct {
	active bool
	owner  PointerID
	rect   geom.Rect
}

// begin claims ownership for id and caches the rectangle. It reports false
// when another pointer already owns the interaction.
func (t *tracker) begin(id PointerID, r geom.Rect) bool {
	if t.active && t.owner != id {
		return false
	}
	t.active = true
	t.owner = id
	t.rect = r
	return true
}

// owns reports whether id currently holds the interaction.
func (t *tracker) owns(id PointerID) bool {
	return t.active && t.owner == id
}

// end releases ownership when id holds it and reports whether it did.
func (t *tracker) end(id PointerID) bool {
	if !t.owns(id) {
		return false
	}
	t.active = false
	return true
}

// checkRegion validates and normalizes a mounting region.
func checkRegion(r geom.Rect) (geom.Rect, error) {
	r = geom.Normalize(r)
	if r.W <= 0 || r.H <= 0 {
		return geom.Rect{}, ErrMissingRegion
	}
	return r, nil
}

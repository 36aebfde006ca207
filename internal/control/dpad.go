// Package control implements the virtual input controls and their pointer geometry.
package control

import (
	"math"

	"github.com/frudas24/screenpad/internal/geom"
)

// DefaultCenterThreshold is the dead-zone fraction used when none is set.
const DefaultCenterThreshold = 0.4

// DpadOptions configures a Dpad.
type DpadOptions struct {
	ID     string
	Region geom.Rect
	// CenterThreshold is the dead-zone radius as a fraction of the control
	// radius. Defaults to DefaultCenterThreshold when zero.
	CenterThreshold float64
	// RotateDeg is the visual rotation of the control in degrees. Pointer
	// displacement is inverse-rotated before the angle is computed so
	// direction semantics survive rotated layouts.
	RotateDeg float64
	// Repeat requests key-repeat behavior. The flag is stored but no repeat
	// scheduling exists; hosts that want repeat drive it from OnPress.
	Repeat    bool
	OnPress   func(Direction)
	OnRelease func(Direction)
	Logf      Logf
}

// Dpad maps pointer displacement from the control center to one of nine
// discrete directions. Callbacks fire on transitions only: OnPress for each
// new non-center direction, OnRelease when the reading returns to center.
type Dpad struct {
	id        string
	region    geom.Rect
	threshold float64
	rotate    float64
	repeat    bool
	trk       tracker
	deadZone  float64
	dir       Direction
	closed    bool
	onPress   func(Direction)
	onRelease func(Direction)
	logf      Logf
}

// NewDpad validates the mounting region and returns a centered d-pad.
func NewDpad(opts DpadOptions) (*Dpad, error) {
	region, err := checkRegion(opts.Region)
	if err != nil {
		return nil, err
	}
	threshold := opts.CenterThreshold
	if threshold == 0 {
		threshold = DefaultCenterThreshold
	}
	threshold = geom.Clamp(threshold, 0, 1)
	return &Dpad{
		id:        opts.ID,
		region:    region,
		threshold: threshold,
		rotate:    opts.RotateDeg,
		repeat:    opts.Repeat,
		onPress:   opts.OnPress,
		onRelease: opts.OnRelease,
		logf:      opts.Logf,
	}, nil
}

// ID returns the instance identifier.
func (d *Dpad) ID() string { return d.id }

// Direction returns the last computed reading.
func (d *Dpad) Direction() Direction { return d.dir }

// HandleDown claims the pointer, caches the rectangle and dead-zone radius,
// and processes the press position as a first move.
func (d *Dpad) HandleDown(id PointerID, x, y float64) {
	if d.closed {
		return
	}
	if !d.trk.begin(id, d.region) {
		d.trace("%s: ignoring pointer %d, pointer %d active", d.id, id, d.trk.owner)
		return
	}
	d.deadZone = math.Min(d.trk.rect.W, d.trk.rect.H) / 2 * d.threshold
	d.process(x, y)
}

// HandleMove recomputes the direction from the cached rectangle.
func (d *Dpad) HandleMove(id PointerID, x, y float64) {
	if d.closed || !d.trk.owns(id) {
		return
	}
	d.process(x, y)
}

// HandleUp resets the reading to center; OnRelease fires only when the
// direction was not already center.
func (d *Dpad) HandleUp(id PointerID, x, y float64) {
	_ = x
	_ = y
	if d.closed || !d.trk.end(id) {
		return
	}
	d.setDirection(DirCenter)
}

// HandleCancel behaves like HandleUp.
func (d *Dpad) HandleCancel(id PointerID) {
	d.HandleUp(id, 0, 0)
}

// SetRegion replaces the on-screen rectangle. Zero-size updates are ignored.
func (d *Dpad) SetRegion(r geom.Rect) {
	region, err := checkRegion(r)
	if err != nil {
		d.trace("%s: ignoring zero-size region update", d.id)
		return
	}
	d.region = region
}

// Close detaches the d-pad; all further events are no-ops.
func (d *Dpad) Close() {
	d.closed = true
	d.trk.active = false
	d.dir = DirCenter
}

// process converts a pointer position into a direction reading.
func (d *Dpad) process(x, y float64) {
	cx, cy := geom.Center(d.trk.rect)
	dx, dy := geom.InverseRotate(x-cx, y-cy, d.rotate)

	if math.Hypot(dx, dy) <= d.deadZone {
		d.setDirection(DirCenter)
		return
	}
	// Screen y grows downward; negate dy so up reads as a positive angle.
	deg := math.Atan2(-dy, dx) * 180 / math.Pi
	d.setDirection(DirectionForAngle(deg))
}

// setDirection records a new reading and fires the transition callbacks.
func (d *Dpad) setDirection(next Direction) {
	if next == d.dir {
		return
	}
	prev := d.dir
	d.dir = next
	d.trace("%s: %s -> %s", d.id, prev, next)
	if next == DirCenter {
		if d.onRelease != nil {
			d.onRelease(prev)
		}
		return
	}
	if d.onPress != nil {
		d.onPress(next)
	}
}

// trace emits a log line when a sink is configured.
func (d *Dpad) trace(format string, args ...any) {
	if d.logf != nil {
		d.logf(format, args...)
	}
}

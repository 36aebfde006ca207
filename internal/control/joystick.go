// Package control implements the virtual input controls and their pointer geometry.
package control

import (
	"fmt"

	"github.com/frudas24/screenpad/internal/geom"
)

// thumbTravelDivisor scales thumb travel against the enclosing dial size.
// The value is a visual-parity constant, not a derived formula.
const thumbTravelDivisor = 1.5

// Value is a normalized joystick reading. X grows rightward, Y grows
// downward (screen convention); both axes are clamped to [-1, 1] and rounded
// to two decimal places.
type Value struct {
	X float64
	Y float64
}

// JoystickOptions configures a Joystick.
type JoystickOptions struct {
	ID     string
	Region geom.Rect
	// Radius is the dial radius in pixels. Defaults to half the smaller
	// region dimension when zero.
	Radius float64
	// ThumbSize is the visual thumb radius in pixels. Defaults to half the
	// dial radius when zero.
	ThumbSize float64
	RotateDeg float64
	// OnInput fires with the normalized reading on every move while pressed;
	// it is a continuous stream, not an edge-triggered one.
	OnInput func(x, y float64)
	// OnRelease fires when the owning pointer lifts. No synthetic (0,0)
	// reading is emitted on release; callers infer neutral from OnRelease.
	OnRelease func()
	Logf      Logf
}

// Joystick maps pointer displacement from the control center into a
// continuous 2D vector clamped to a disc.
type Joystick struct {
	id        string
	region    geom.Rect
	radius    float64
	thumbSize float64
	rotate    float64
	trk       tracker
	last      Value
	closed    bool
	onInput   func(x, y float64)
	onRelease func()
	logf      Logf
}

// NewJoystick validates the geometry and returns a centered joystick.
func NewJoystick(opts JoystickOptions) (*Joystick, error) {
	region, err := checkRegion(opts.Region)
	if err != nil {
		return nil, err
	}
	radius := opts.Radius
	if radius == 0 {
		if region.W < region.H {
			radius = region.W / 2
		} else {
			radius = region.H / 2
		}
	}
	thumbSize := opts.ThumbSize
	if thumbSize == 0 {
		thumbSize = radius / 2
	}
	if radius <= thumbSize {
		return nil, fmt.Errorf("control: thumb size %.0f must be smaller than radius %.0f", thumbSize, radius)
	}
	return &Joystick{
		id:        opts.ID,
		region:    region,
		radius:    radius,
		thumbSize: thumbSize,
		rotate:    opts.RotateDeg,
		onInput:   opts.OnInput,
		onRelease: opts.OnRelease,
		logf:      opts.Logf,
	}, nil
}

// ID returns the instance identifier.
func (j *Joystick) ID() string { return j.id }

// Last returns the last computed reading.
func (j *Joystick) Last() Value { return j.last }

// MaxDistance returns the maximum thumb travel in pixels.
func (j *Joystick) MaxDistance() float64 {
	return (j.radius - j.thumbSize) / thumbTravelDivisor
}

// HandleDown claims the pointer, caches the rectangle, and treats the press
// position as an implicit first move.
func (j *Joystick) HandleDown(id PointerID, x, y float64) {
	if j.closed {
		return
	}
	if !j.trk.begin(id, j.region) {
		j.trace("%s: ignoring pointer %d, pointer %d active", j.id, id, j.trk.owner)
		return
	}
	j.process(x, y)
}

// HandleMove recomputes the reading from the cached rectangle and fires
// OnInput with the result.
func (j *Joystick) HandleMove(id PointerID, x, y float64) {
	if j.closed || !j.trk.owns(id) {
		return
	}
	j.process(x, y)
}

// HandleUp resets the reading to neutral and fires OnRelease. OnInput is not
// re-fired with (0,0).
func (j *Joystick) HandleUp(id PointerID, x, y float64) {
	_ = x
	_ = y
	if j.closed || !j.trk.end(id) {
		return
	}
	j.last = Value{}
	j.trace("%s: released", j.id)
	if j.onRelease != nil {
		j.onRelease()
	}
}

// HandleCancel behaves like HandleUp.
func (j *Joystick) HandleCancel(id PointerID) {
	j.HandleUp(id, 0, 0)
}

// SetRegion replaces the on-screen rectangle. Zero-size updates are ignored.
func (j *Joystick) SetRegion(r geom.Rect) {
	region, err := checkRegion(r)
	if err != nil {
		j.trace("%s: ignoring zero-size region update", j.id)
		return
	}
	j.region = region
}

// Close detaches the joystick; all further events are no-ops.
func (j *Joystick) Close() {
	j.closed = true
	j.trk.active = false
	j.last = Value{}
}

// process converts a pointer position into a normalized reading.
func (j *Joystick) process(x, y float64) {
	cx, cy := geom.Center(j.trk.rect)
	maxDist := j.MaxDistance()

	dx, dy := geom.ClampToDisc(x-cx, y-cy, maxDist)
	dx, dy = geom.InverseRotate(dx, dy, j.rotate)

	j.last = Value{
		X: geom.Round2(geom.Clamp(dx/maxDist, -1, 1)),
		Y: geom.Round2(geom.Clamp(dy/maxDist, -1, 1)),
	}
	if j.onInput != nil {
		j.onInput(j.last.X, j.last.Y)
	}
}

// trace emits a log line when a sink is configured.
func (j *Joystick) trace(format string, args ...any) {
	if j.logf != nil {
		j.logf(format, args...)
	}
}

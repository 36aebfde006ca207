// Package control implements the virtual input controls and their pointer geometry.
package control

import (
	"math"

	"github.com/frudas24/screenpad/internal/geom"
)

// Axis selects the slider's travel direction.
type Axis int

const (
	// AxisVertical reads 100 at the top edge and 0 at the bottom.
	AxisVertical Axis = iota
	// AxisHorizontal reads 0 at the left edge and 100 at the right.
	AxisHorizontal
)

// String returns the wire name of the axis.
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// SliderOptions configures a Slider.
type SliderOptions struct {
	ID     string
	Region geom.Rect
	Axis   Axis
	// OnSlide fires with the integer percentage when the rounded value
	// changes, and once on press with the current (possibly stale) value.
	OnSlide func(value int)
	// OnRelease fires when a release resets a nonzero value back to zero.
	OnRelease func()
	Logf      Logf
}

// Slider maps 1D pointer displacement along its axis to an integer
// percentage in [0, 100] that snaps back to zero when the pointer lifts.
type Slider struct {
	id        string
	region    geom.Rect
	axis      Axis
	trk       tracker
	value     int
	closed    bool
	onSlide   func(int)
	onRelease func()
	logf      Logf
}

// NewSlider validates the mounting region and returns a slider at zero.
func NewSlider(opts SliderOptions) (*Slider, error) {
	region, err := checkRegion(opts.Region)
	if err != nil {
		return nil, err
	}
	return &Slider{
		id:        opts.ID,
		region:    region,
		axis:      opts.Axis,
		onSlide:   opts.OnSlide,
		onRelease: opts.OnRelease,
		logf:      opts.Logf,
	}, nil
}

// ID returns the instance identifier.
func (s *Slider) ID() string { return s.id }

// Value returns the last computed percentage.
func (s *Slider) Value() int { return s.value }

// Axis returns the configured travel direction.
func (s *Slider) Axis() Axis { return s.axis }

// HandleDown claims the pointer, caches the rectangle, and fires OnSlide with
// the current (possibly stale) value.
func (s *Slider) HandleDown(id PointerID, x, y float64) {
	if s.closed {
		return
	}
	if !s.trk.begin(id, s.region) {
		s.trace("%s: ignoring pointer %d, pointer %d active", s.id, id, s.trk.owner)
		return
	}
	_ = x
	_ = y
	if s.onSlide != nil {
		s.onSlide(s.value)
	}
}

// HandleMove recomputes the percentage from the cached rectangle; OnSlide
// fires only when the rounded value changes.
func (s *Slider) HandleMove(id PointerID, x, y float64) {
	if s.closed || !s.trk.owns(id) {
		return
	}
	r := s.trk.rect
	var raw float64
	if s.axis == AxisHorizontal {
		raw = (x - r.X) / r.W * 100
	} else {
		raw = 100 - (y-r.Y)/r.H*100
	}
	next := int(math.Round(geom.Clamp(raw, 0, 100)))
	if next == s.value {
		return
	}
	s.value = next
	s.trace("%s: %d", s.id, next)
	if s.onSlide != nil {
		s.onSlide(next)
	}
}

// HandleUp retracts a nonzero value back to zero and fires OnRelease exactly
// once; a value already at zero fires nothing.
func (s *Slider) HandleUp(id PointerID, x, y float64) {
	_ = x
	_ = y
	if s.closed || !s.trk.end(id) {
		return
	}
	if s.value == 0 {
		return
	}
	s.value = 0
	s.trace("%s: retracted", s.id)
	if s.onRelease != nil {
		s.onRelease()
	}
}

// HandleCancel behaves like HandleUp.
func (s *Slider) HandleCancel(id PointerID) {
	s.HandleUp(id, 0, 0)
}

// SetRegion replaces the on-screen rectangle. Zero-size updates are ignored.
func (s *Slider) SetRegion(r geom.Rect) {
	region, err := checkRegion(r)
	if err != nil {
		s.trace("%s: ignoring zero-size region update", s.id)
		return
	}
	s.region = region
}

// Close detaches the slider; all further events are no-ops.
func (s *Slider) Close() {
	s.closed = true
	s.trk.active = false
	s.value = 0
}

// trace emits a log line when a sink is configured.
func (s *Slider) trace(format string, args ...any) {
	if s.logf != nil {
		s.logf(format, args...)
	}
}

// Package control implements the virtual input controls and their pointer geometry.
package control

import "github.com/frudas24/screenpad/internal/geom"

// ButtonOptions configures a Button.
type ButtonOptions struct {
	ID        string
	Region    geom.Rect
	OnPress   func()
	OnRelease func()
	Logf      Logf
}

// Button toggles between released and pressed, driven by pointer-down/up on
// its region. A pointer-up releases regardless of where the pointer travelled
// ("release anywhere"), so a drag leaving the button bounds cannot leave it
// stuck pressed.
type Button struct {
	id        string
	region    geom.Rect
	trk       tracker
	pressed   bool
	closed    bool
	onPress   func()
	onRelease func()
	logf      Logf
}

// NewButton validates the mounting region and returns a released button.
func NewButton(opts ButtonOptions) (*Button, error) {
	region, err := checkRegion(opts.Region)
	if err != nil {
		return nil, err
	}
	return &Button{
		id:        opts.ID,
		region:    region,
		onPress:   opts.OnPress,
		onRelease: opts.OnRelease,
		logf:      opts.Logf,
	}, nil
}

// ID returns the instance identifier.
func (b *Button) ID() string { return b.id }

// Pressed reports the current state.
func (b *Button) Pressed() bool { return b.pressed }

// Press moves the button to pressed and fires OnPress. Pressing an already
// pressed button is a no-op.
func (b *Button) Press() {
	if b.closed || b.pressed {
		return
	}
	b.pressed = true
	b.trace("%s: pressed", b.id)
	if b.onPress != nil {
		b.onPress()
	}
}

// Release moves the button to released and fires OnRelease. Releasing an
// already released button is a no-op.
func (b *Button) Release() {
	if b.closed || !b.pressed {
		return
	}
	b.pressed = false
	b.trace("%s: released", b.id)
	if b.onRelease != nil {
		b.onRelease()
	}
}

// HandleDown claims the pointer and presses the button.
func (b *Button) HandleDown(id PointerID, x, y float64) {
	if b.closed {
		return
	}
	if !b.trk.begin(id, b.region) {
		b.trace("%s: ignoring pointer %d, pointer %d active", b.id, id, b.trk.owner)
		return
	}
	_ = x
	_ = y
	b.Press()
}

// HandleMove is a no-op; buttons do not track movement.
func (b *Button) HandleMove(id PointerID, x, y float64) {
	_ = id
	_ = x
	_ = y
}

// HandleUp releases the button when the owning pointer lifts, regardless of
// position.
func (b *Button) HandleUp(id PointerID, x, y float64) {
	_ = x
	_ = y
	if b.closed || !b.trk.end(id) {
		return
	}
	b.Release()
}

// HandleCancel behaves like HandleUp.
func (b *Button) HandleCancel(id PointerID) {
	b.HandleUp(id, 0, 0)
}

// SetRegion replaces the on-screen rectangle. Zero-size updates are ignored.
func (b *Button) SetRegion(r geom.Rect) {
	region, err := checkRegion(r)
	if err != nil {
		b.trace("%s: ignoring zero-size region update", b.id)
		return
	}
	b.region = region
}

// Close detaches the button; all further events are no-ops.
func (b *Button) Close() {
	b.closed = true
	b.trk.active = false
	b.pressed = false
}

// trace emits a log line when a sink is configured.
func (b *Button) trace(format string, args ...any) {
	if b.logf != nil {
		b.logf(format, args...)
	}
}

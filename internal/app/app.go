// Package app wires HTTP, transports, and the control registry together.
package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/frudas24/screenpad/internal/config"
	"github.com/frudas24/screenpad/internal/control"
	"github.com/frudas24/screenpad/internal/hub"
	"github.com/frudas24/screenpad/internal/idgen"
	"github.com/frudas24/screenpad/internal/layout"
	"github.com/frudas24/screenpad/internal/session"
	"github.com/frudas24/screenpad/internal/signaling"
	"github.com/frudas24/screenpad/internal/ws"
)

// App coordinates the HTTP API, both input transports, and the control hub.
type App struct {
	cfg       config.Config
	session   *session.Session
	hub       *hub.Hub
	ids       idgen.Generator
	control   *ws.Server
	signaling *signaling.Server
	layout    layout.Layout
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, sess *session.Session, ids idgen.Generator) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if ids == nil {
		ids = idgen.UUID{}
	}

	app := &App{
		cfg:     cfg,
		session: sess,
		hub:     hub.New(),
		ids:     ids,
	}
	app.control = ws.NewServer(sess, app.hub)
	app.signaling = signaling.NewServer(sess, app.hub, signaling.ViewerReplace)
	return app, nil
}

// Start loads the layout and builds the control set. It fails before any
// control is registered when an entry has no usable mounting region.
func (a *App) Start() error {
	lay, err := layout.Load(a.cfg.LayoutPath)
	if err != nil {
		return err
	}
	return a.ApplyLayout(lay)
}

// ApplyLayout replaces the live control set with the given layout.
func (a *App) ApplyLayout(lay layout.Layout) error {
	for i := range lay.Controls {
		if lay.Controls[i].ID == "" {
			lay.Controls[i].ID = a.ids.NewID()
		}
	}

	built := make([]control.Control, 0, len(lay.Controls))
	for _, spec := range lay.Controls {
		c, err := a.buildControl(spec)
		if err != nil {
			return fmt.Errorf("control %q: %w", spec.ID, err)
		}
		built = append(built, c)
	}

	a.hub.Close()
	for _, c := range built {
		if err := a.hub.Register(c); err != nil {
			return err
		}
	}
	a.layout = lay
	return nil
}

// Stop closes every control and releases its listeners.
func (a *App) Stop() error {
	a.hub.Close()
	return nil
}

// Hub returns the control hub.
func (a *App) Hub() *hub.Hub {
	return a.hub
}

// Control returns the control websocket handler.
func (a *App) Control() *ws.Server {
	return a.control
}

// Signaling returns the signaling websocket handler.
func (a *App) Signaling() *signaling.Server {
	return a.signaling
}

// Layout returns the active layout.
func (a *App) Layout() layout.Layout {
	return a.layout
}

// buildControl constructs one control from its layout entry, wiring its
// callbacks into the hub event stream.
func (a *App) buildControl(spec layout.Control) (control.Control, error) {
	id := spec.ID
	logf := a.traceLogf()

	switch spec.Kind {
	case layout.KindButton:
		return control.NewButton(control.ButtonOptions{
			ID:     id,
			Region: spec.Region,
			OnPress: func() {
				a.hub.Publish(hub.Event{Type: hub.EventPress, Control: id})
			},
			OnRelease: func() {
				a.hub.Publish(hub.Event{Type: hub.EventRelease, Control: id})
			},
			Logf: logf,
		})
	case layout.KindDpad:
		return control.NewDpad(control.DpadOptions{
			ID:              id,
			Region:          spec.Region,
			CenterThreshold: spec.CenterThreshold,
			RotateDeg:       spec.RotateDeg,
			Repeat:          spec.Repeat,
			OnPress: func(dir control.Direction) {
				a.hub.Publish(hub.Event{Type: hub.EventPress, Control: id, Direction: dir.String()})
			},
			OnRelease: func(dir control.Direction) {
				a.hub.Publish(hub.Event{Type: hub.EventRelease, Control: id, Direction: dir.String()})
			},
			Logf: logf,
		})
	case layout.KindJoystick:
		return control.NewJoystick(control.JoystickOptions{
			ID:        id,
			Region:    spec.Region,
			Radius:    spec.Radius,
			ThumbSize: spec.ThumbSize,
			RotateDeg: spec.RotateDeg,
			OnInput: func(x, y float64) {
				a.hub.Publish(hub.Event{Type: hub.EventInput, Control: id, X: x, Y: y})
			},
			OnRelease: func() {
				a.hub.Publish(hub.Event{Type: hub.EventRelease, Control: id})
			},
			Logf: logf,
		})
	case layout.KindSlider:
		axis := control.AxisVertical
		if spec.Axis == "horizontal" {
			axis = control.AxisHorizontal
		}
		return control.NewSlider(control.SliderOptions{
			ID:     id,
			Region: spec.Region,
			Axis:   axis,
			OnSlide: func(value int) {
				a.hub.Publish(hub.Event{Type: hub.EventSlide, Control: id, Value: value})
			},
			OnRelease: func() {
				a.hub.Publish(hub.Event{Type: hub.EventRelease, Control: id})
			},
			Logf: logf,
		})
	default:
		return nil, fmt.Errorf("unknown control type %q", spec.Kind)
	}
}

// traceLogf returns the control trace sink, or nil unless verbose. Controls
// prefix their own id in each trace line.
func (a *App) traceLogf() control.Logf {
	if !a.cfg.Verbose {
		return nil
	}
	return func(format string, args ...any) {
		log.Printf(format, args...)
	}
}

package app

import (
	"strings"
	"testing"

	"github.com/frudas24/screenpad/internal/config"
	"github.com/frudas24/screenpad/internal/control"
	"github.com/frudas24/screenpad/internal/geom"
	"github.com/frudas24/screenpad/internal/hub"
	"github.com/frudas24/screenpad/internal/idgen"
	"github.com/frudas24/screenpad/internal/layout"
	"github.com/frudas24/screenpad/internal/session"
	"github.com/frudas24/screenpad/internal/testutil"
)

// newTestApp builds an app with a deterministic id generator.
func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New(config.Config{}, session.New("secret"), &idgen.Sequential{Prefix: "ctl"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a
}

// TestNew_RequiresSession verifies a nil session is rejected.
func TestNew_RequiresSession(t *testing.T) {
	if _, err := New(config.Config{}, nil, nil); err == nil {
		t.Fatalf("expected error for nil session")
	}
}

// TestApplyLayout_BuildsAllKinds verifies the default layout produces one
// registered control per entry.
func TestApplyLayout_BuildsAllKinds(t *testing.T) {
	a := newTestApp(t)
	if err := a.ApplyLayout(layout.Default()); err != nil {
		t.Fatalf("ApplyLayout failed: %v", err)
	}
	ids := a.Hub().ControlIDs()
	if len(ids) != 4 {
		t.Fatalf("expected 4 controls, got %v", ids)
	}
}

// TestApplyLayout_FillsEmptyIDs verifies anonymous entries receive generated
// identifiers.
func TestApplyLayout_FillsEmptyIDs(t *testing.T) {
	a := newTestApp(t)
	lay := layout.Layout{Controls: []layout.Control{
		{Kind: layout.KindButton, Region: geom.Rect{W: 50, H: 50}},
		{Kind: layout.KindButton, Region: geom.Rect{X: 60, W: 50, H: 50}},
	}}
	if err := a.ApplyLayout(lay); err != nil {
		t.Fatalf("ApplyLayout failed: %v", err)
	}
	ids := a.Hub().ControlIDs()
	if len(ids) != 2 || ids[0] != "ctl-1" || ids[1] != "ctl-2" {
		t.Fatalf("unexpected generated ids: %v", ids)
	}
}

// TestApplyLayout_BadRegionLeavesRegistryIntact verifies a zero-size entry
// fails before the previous control set is torn down.
func TestApplyLayout_BadRegionLeavesRegistryIntact(t *testing.T) {
	a := newTestApp(t)
	if err := a.ApplyLayout(layout.Default()); err != nil {
		t.Fatalf("ApplyLayout failed: %v", err)
	}

	bad := layout.Layout{Controls: []layout.Control{
		{ID: "broken", Kind: layout.KindButton},
	}}
	err := a.ApplyLayout(bad)
	if err == nil {
		t.Fatalf("expected error for zero-size region")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Fatalf("expected failing control named, got %v", err)
	}
	if ids := a.Hub().ControlIDs(); len(ids) != 4 {
		t.Fatalf("expected previous controls kept, got %v", ids)
	}
}

// TestApplyLayout_UnknownKindRejected verifies build failures surface the
// control id.
func TestApplyLayout_UnknownKindRejected(t *testing.T) {
	a := newTestApp(t)
	lay := layout.Layout{Controls: []layout.Control{
		{ID: "x", Kind: "knob", Region: geom.Rect{W: 10, H: 10}},
	}}
	if err := a.ApplyLayout(lay); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}

// TestJoystickThroughHub verifies the full path from pointer routing to the
// published event stream: a drag far right reads exactly (1.0, 0.0).
func TestJoystickThroughHub(t *testing.T) {
	a := newTestApp(t)
	lay := layout.Layout{Controls: []layout.Control{
		{ID: "stick", Kind: layout.KindJoystick, Region: geom.Rect{W: 200, H: 200}, Radius: 100},
	}}
	if err := a.ApplyLayout(lay); err != nil {
		t.Fatalf("ApplyLayout failed: %v", err)
	}

	var rec testutil.EventRecorder
	detach := a.Hub().Attach(rec.Sink())
	defer detach()

	a.Hub().PointerDown("stick", control.PointerID(1), 100, 100)
	a.Hub().PointerMove("stick", control.PointerID(1), 300, 100)
	a.Hub().PointerUp("stick", control.PointerID(1), 300, 100)

	events := rec.Events()
	if len(events) != 3 {
		t.Fatalf("expected press reading, move reading, and release, got %#v", events)
	}
	if events[1].Type != hub.EventInput || events[1].X != 1.0 || events[1].Y != 0.0 {
		t.Fatalf("expected clamped (1.0,0.0) reading, got %#v", events[1])
	}
	if events[2].Type != hub.EventRelease || events[2].Control != "stick" {
		t.Fatalf("expected release event, got %#v", events[2])
	}
}

// TestSliderThroughHub verifies slider percentages and retraction reach the
// event stream.
func TestSliderThroughHub(t *testing.T) {
	a := newTestApp(t)
	lay := layout.Layout{Controls: []layout.Control{
		{ID: "throttle", Kind: layout.KindSlider, Region: geom.Rect{W: 40, H: 200}, Axis: "vertical"},
	}}
	if err := a.ApplyLayout(lay); err != nil {
		t.Fatalf("ApplyLayout failed: %v", err)
	}

	var rec testutil.EventRecorder
	detach := a.Hub().Attach(rec.Sink())
	defer detach()

	a.Hub().PointerDown("throttle", control.PointerID(1), 20, 200)
	a.Hub().PointerMove("throttle", control.PointerID(1), 20, 50)
	a.Hub().PointerUp("throttle", control.PointerID(1), 20, 50)

	events := rec.Events()
	// Stale 0 on press, 75 on move, release on lift.
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %#v", events)
	}
	if events[0].Type != hub.EventSlide || events[0].Value != 0 {
		t.Fatalf("expected stale slide 0, got %#v", events[0])
	}
	if events[1].Type != hub.EventSlide || events[1].Value != 75 {
		t.Fatalf("expected slide 75, got %#v", events[1])
	}
	if events[2].Type != hub.EventRelease {
		t.Fatalf("expected release, got %#v", events[2])
	}
}

// TestStopClosesControls verifies Stop tears the registry down.
func TestStopClosesControls(t *testing.T) {
	a := newTestApp(t)
	if err := a.ApplyLayout(layout.Default()); err != nil {
		t.Fatalf("ApplyLayout failed: %v", err)
	}
	if err := a.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if ids := a.Hub().ControlIDs(); len(ids) != 0 {
		t.Fatalf("expected empty registry after Stop, got %v", ids)
	}
}

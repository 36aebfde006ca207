package control

import (
	"testing"

	"github.com/frudas24/screenpad/internal/geom"
)

// newTestDpad builds a 200x200 d-pad at the origin recording transitions.
// Center is (100,100); with threshold 0.4 the dead zone radius is 40.
func newTestDpad(t *testing.T, rotate float64, presses, releases *[]Direction) *Dpad {
	t.Helper()
	d, err := NewDpad(DpadOptions{
		ID:              "pad",
		Region:          geom.Rect{X: 0, Y: 0, W: 200, H: 200},
		CenterThreshold: 0.4,
		RotateDeg:       rotate,
		OnPress:         func(dir Direction) { *presses = append(*presses, dir) },
		OnRelease:       func(dir Direction) { *releases = append(*releases, dir) },
	})
	if err != nil {
		t.Fatalf("NewDpad failed: %v", err)
	}
	return d
}

// TestDpad_DeadZoneAlwaysCenter verifies displacements within the dead zone
// read center regardless of angle.
func TestDpad_DeadZoneAlwaysCenter(t *testing.T) {
	var presses, releases []Direction
	d := newTestDpad(t, 0, &presses, &releases)

	d.HandleDown(1, 100, 100)
	points := [][2]float64{
		{130, 80},  // up-right-ish, dist ~36
		{100, 140}, // straight down, dist 40 (boundary, inclusive)
		{61, 100},  // left, dist 39
	}
	for _, p := range points {
		d.HandleMove(1, p[0], p[1])
		if d.Direction() != DirCenter {
			t.Fatalf("expected center at (%v,%v), got %s", p[0], p[1], d.Direction())
		}
	}
	if len(presses) != 0 {
		t.Fatalf("expected no presses inside dead zone, got %v", presses)
	}
}

// TestDpad_TransitionsFireOnce verifies callbacks fire only when the reading
// changes.
func TestDpad_TransitionsFireOnce(t *testing.T) {
	var presses, releases []Direction
	d := newTestDpad(t, 0, &presses, &releases)

	d.HandleDown(1, 100, 100)
	d.HandleMove(1, 200, 100) // right
	d.HandleMove(1, 190, 100) // still right
	d.HandleMove(1, 180, 101) // still right
	if len(presses) != 1 || presses[0] != DirRight {
		t.Fatalf("expected single right press, got %v", presses)
	}

	d.HandleMove(1, 100, 10) // up
	if len(presses) != 2 || presses[1] != DirUp {
		t.Fatalf("expected up press, got %v", presses)
	}

	d.HandleMove(1, 100, 100) // back into dead zone
	if len(releases) != 1 || releases[0] != DirUp {
		t.Fatalf("expected release of up, got %v", releases)
	}
}

// TestDpad_DiagonalSectors verifies diagonal displacement maps to combined
// directions in screen coordinates.
func TestDpad_DiagonalSectors(t *testing.T) {
	var presses, releases []Direction
	d := newTestDpad(t, 0, &presses, &releases)

	d.HandleDown(1, 100, 100)
	d.HandleMove(1, 160, 40) // up and right on screen
	if d.Direction() != DirUpRight {
		t.Fatalf("expected up-right, got %s", d.Direction())
	}
	d.HandleMove(1, 40, 160) // down and left on screen
	if d.Direction() != DirDownLeft {
		t.Fatalf("expected down-left, got %s", d.Direction())
	}
}

// TestDpad_RotatedLayout verifies a 90-degree rotated pad reads screen-down
// displacement as right.
func TestDpad_RotatedLayout(t *testing.T) {
	var presses, releases []Direction
	d := newTestDpad(t, 90, &presses, &releases)

	d.HandleDown(1, 100, 100)
	d.HandleMove(1, 100, 200)
	if d.Direction() != DirRight {
		t.Fatalf("expected right on rotated pad, got %s", d.Direction())
	}
}

// TestDpad_ReleaseFiresOnlyFromNonCenter verifies pointer-up resets to center
// and fires OnRelease only when the reading was engaged.
func TestDpad_ReleaseFiresOnlyFromNonCenter(t *testing.T) {
	var presses, releases []Direction
	d := newTestDpad(t, 0, &presses, &releases)

	d.HandleDown(1, 100, 100)
	d.HandleUp(1, 100, 100)
	if len(releases) != 0 {
		t.Fatalf("expected no release from center, got %v", releases)
	}

	d.HandleDown(2, 100, 100)
	d.HandleMove(2, 200, 100)
	d.HandleUp(2, 200, 100)
	if len(releases) != 1 || releases[0] != DirRight {
		t.Fatalf("expected release of right, got %v", releases)
	}
	if d.Direction() != DirCenter {
		t.Fatalf("expected center after release, got %s", d.Direction())
	}
}

// TestDpad_SecondPointerRejected verifies the first pointer keeps ownership.
func TestDpad_SecondPointerRejected(t *testing.T) {
	var presses, releases []Direction
	d := newTestDpad(t, 0, &presses, &releases)

	d.HandleDown(1, 100, 100)
	d.HandleMove(1, 200, 100)
	d.HandleDown(2, 100, 10)
	d.HandleMove(2, 100, 10)
	if d.Direction() != DirRight {
		t.Fatalf("expected pointer 2 to be ignored, got %s", d.Direction())
	}
}

// TestDpad_DefaultThreshold verifies the default dead-zone fraction applies.
func TestDpad_DefaultThreshold(t *testing.T) {
	d, err := NewDpad(DpadOptions{ID: "pad", Region: geom.Rect{W: 200, H: 200}})
	if err != nil {
		t.Fatalf("NewDpad failed: %v", err)
	}
	d.HandleDown(1, 100, 100)
	d.HandleMove(1, 139, 100) // dist 39 < 100*0.4
	if d.Direction() != DirCenter {
		t.Fatalf("expected center within default dead zone, got %s", d.Direction())
	}
	d.HandleMove(1, 141, 100)
	if d.Direction() != DirRight {
		t.Fatalf("expected right outside default dead zone, got %s", d.Direction())
	}
}

package control

import (
	"testing"

	"github.com/frudas24/screenpad/internal/geom"
)

// TestTracker_SingleOwner verifies a second pointer cannot claim an active
// interaction and the same pointer can re-begin.
func TestTracker_SingleOwner(t *testing.T) {
	var trk tracker
	r := geom.Rect{W: 10, H: 10}

	if !trk.begin(1, r) {
		t.Fatalf("expected first begin to succeed")
	}
	if trk.begin(2, r) {
		t.Fatalf("expected second pointer to be rejected")
	}
	if !trk.begin(1, r) {
		t.Fatalf("expected owner re-begin to succeed")
	}
}

// TestTracker_EndByOwnerOnly verifies only the owning pointer ends the
// interaction.
func TestTracker_EndByOwnerOnly(t *testing.T) {
	var trk tracker
	trk.begin(1, geom.Rect{W: 10, H: 10})

	if trk.end(2) {
		t.Fatalf("expected non-owner end to fail")
	}
	if !trk.owns(1) {
		t.Fatalf("expected pointer 1 to still own")
	}
	if !trk.end(1) {
		t.Fatalf("expected owner end to succeed")
	}
	if trk.owns(1) {
		t.Fatalf("expected ownership cleared")
	}
}

// TestTracker_CachesRect verifies the rectangle captured at begin survives
// later region updates.
func TestTracker_CachesRect(t *testing.T) {
	var trk tracker
	trk.begin(1, geom.Rect{X: 5, Y: 5, W: 10, H: 10})
	if trk.rect.X != 5 || trk.rect.W != 10 {
		t.Fatalf("unexpected cached rect: %+v", trk.rect)
	}
}

// TestCheckRegion verifies missing and zero-size regions are rejected and
// negative spans are normalized.
func TestCheckRegion(t *testing.T) {
	if _, err := checkRegion(geom.Rect{}); err == nil {
		t.Fatalf("expected error for empty region")
	}
	r, err := checkRegion(geom.Rect{X: 10, Y: 10, W: -4, H: 4})
	if err != nil {
		t.Fatalf("expected normalized region, got %v", err)
	}
	if r.X != 6 || r.W != 4 {
		t.Fatalf("unexpected normalized region: %+v", r)
	}
}

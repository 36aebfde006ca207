// Package geom provides the rectangle and vector math shared by the controls.
package geom

import "math"

// Rect describes a control region using top-left origin and size, in CSS pixels.
type Rect struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// Normalize returns a rectangle with non-negative width/height.
func Normalize(r Rect) Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Contains reports whether a point is inside the rectangle (edges inclusive).
func Contains(r Rect, x, y float64) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center returns the center point of rect.
func Center(r Rect) (float64, float64) {
	r = Normalize(r)
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp bounds v to the [lo, hi] range.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// InverseRotate undoes a visual rotation of deg degrees applied to the control,
// mapping a screen-space displacement back into control-local space.
func InverseRotate(dx, dy, deg float64) (float64, float64) {
	if deg == 0 {
		return dx, dy
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return dx*cos + dy*sin, dy*cos - dx*sin
}

// ClampToDisc rescales (dx,dy) onto the disc of the given radius when its
// magnitude exceeds it, preserving direction.
func ClampToDisc(dx, dy, radius float64) (float64, float64) {
	dist := math.Hypot(dx, dy)
	if dist <= radius || dist == 0 {
		return dx, dy
	}
	scale := radius / dist
	return dx * scale, dy * scale
}

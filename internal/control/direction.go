// Package control implements the virtual input controls and their pointer geometry.
package control

import "math"

// Direction is one of the nine discrete d-pad readings.
type Direction int

const (
	// DirCenter means the pointer is inside the dead zone or released.
	DirCenter Direction = iota
	// DirRight covers angles in [-22.5, 22.5) degrees.
	DirRight
	// DirUpRight covers angles in [22.5, 67.5) degrees.
	DirUpRight
	// DirUp covers angles in [67.5, 112.5) degrees.
	DirUp
	// DirUpLeft covers angles in [112.5, 157.5) degrees.
	DirUpLeft
	// DirLeft covers angles in [157.5, 202.5) degrees.
	DirLeft
	// DirDownLeft covers angles in [202.5, 247.5) degrees.
	DirDownLeft
	// DirDown covers angles in [247.5, 292.5) degrees.
	DirDown
	// DirDownRight covers angles in [292.5, 337.5) degrees.
	DirDownRight
)

// sectors orders the eight outer directions counter-clockwise from right.
var sectors = [8]Direction{
	DirRight, DirUpRight, DirUp, DirUpLeft,
	DirLeft, DirDownLeft, DirDown, DirDownRight,
}

// directionNames maps directions to their wire/debug names.
var directionNames = map[Direction]string{
	DirCenter:    "center",
	DirRight:     "right",
	DirUpRight:   "up-right",
	DirUp:        "up",
	DirUpLeft:    "up-left",
	DirLeft:      "left",
	DirDownLeft:  "down-left",
	DirDown:      "down",
	DirDownRight: "down-right",
}

// String returns the wire name of the direction.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "center"
}

// DirectionForAngle buckets an angle in degrees (counter-clockwise, 0 = right)
// into one of the eight outer directions. Sectors are 45 degrees wide with
// lower-inclusive boundaries at odd multiples of 22.5, so exactly 22.5 reads
// up-right while anything below it reads right.
func DirectionForAngle(deg float64) Direction {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	k := int(math.Floor((a+22.5)/45)) % 8
	return sectors[k]
}

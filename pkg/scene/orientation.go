package scene

import (
	"fmt"
	"math"

	"github.com/philipparndt/hiddenline/pkg/geometry"
)

// Axis selects which orientation angle a delta applies to
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Orientation is the rotation of the box in degrees. Both angles stay in
// [0, 360) once normalized.
type Orientation struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NewOrientation returns a normalized orientation
func NewOrientation(x, y float64) Orientation {
	return Orientation{X: NormalizeAngle(x), Y: NormalizeAngle(y)}
}

// Radians returns both angles in radians
func (o Orientation) Radians() (x, y float64) {
	return geometry.Radians(o.X), geometry.Radians(o.Y)
}

// Rounded returns the angles rounded to whole degrees for display
func (o Orientation) Rounded() (x, y int) {
	return int(math.Round(o.X)), int(math.Round(o.Y))
}

// Transform rotates a point by this orientation, X first
func (o Orientation) Transform(p geometry.Vector3) geometry.Vector3 {
	ax, ay := o.Radians()
	return p.Rotate(ax, ay)
}

func (o Orientation) String() string {
	x, y := o.Rounded()
	return fmt.Sprintf("X: %d°, Y: %d°", x, y)
}

// NormalizeAngle maps degrees into [0, 360) with floored modulo, so -5
// becomes 355.
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(math.Mod(deg, 360)+360, 360)
	// Tiny negative inputs round up to exactly 360.
	if a >= 360 {
		return 0
	}
	return a
}

package viewer

import "github.com/philipparndt/hiddenline/pkg/geometry"

// Projector maps camera-space points onto a viewport with a fixed
// orthographic projection. The origin lands in the viewport centre and Y is
// flipped because display coordinates grow downward.
type Projector struct {
	Width  float64
	Height float64
}

// NewProjector creates a projector for a viewport of the given size
func NewProjector(width, height float64) Projector {
	return Projector{Width: width, Height: height}
}

// Project drops depth and moves the point into display coordinates
func (p Projector) Project(point geometry.Vector3) geometry.Vector2 {
	return ProjectTo2D(point, p.Width, p.Height)
}

// ProjectTo2D projects a camera-space point onto a width x height viewport
func ProjectTo2D(point geometry.Vector3, width, height float64) geometry.Vector2 {
	return geometry.Vector2{
		X: point.X + width/2,
		Y: -point.Y + height/2,
	}
}

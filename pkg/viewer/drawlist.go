package viewer

import (
	"image/color"

	"github.com/philipparndt/hiddenline/pkg/geometry"
	"github.com/philipparndt/hiddenline/pkg/scene"
)

// Style holds the presentation settings shared by every host
type Style struct {
	Wireframe   color.RGBA
	HiddenLine  color.RGBA
	Point       color.RGBA
	Background  color.RGBA
	Text        color.RGBA
	LineWidth   float64
	PointRadius float64
}

// DefaultStyle returns the stock palette: blue wireframe, green visible
// edges, red vertex markers
func DefaultStyle() Style {
	return Style{
		Wireframe:   color.RGBA{0x21, 0x96, 0xF3, 0xFF},
		HiddenLine:  color.RGBA{0x4C, 0xAF, 0x50, 0xFF},
		Point:       color.RGBA{0xF4, 0x43, 0x36, 0xFF},
		Background:  color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Text:        color.RGBA{0x22, 0x22, 0x22, 0xFF},
		LineWidth:   2,
		PointRadius: 3,
	}
}

// Segment is a projected edge
type Segment struct {
	Edge  scene.Edge       `json:"edge" yaml:"edge"`
	From  geometry.Vector2 `json:"from" yaml:"from"`
	To    geometry.Vector2 `json:"to" yaml:"to"`
	Color color.RGBA       `json:"-" yaml:"-"`
}

// Marker is a projected vertex
type Marker struct {
	Vertex int              `json:"vertex" yaml:"vertex"`
	At     geometry.Vector2 `json:"at" yaml:"at"`
	Color  color.RGBA       `json:"-" yaml:"-"`
}

// DrawList is everything a host draws for one view. Order carries no
// meaning.
type DrawList struct {
	Segments []Segment `json:"segments" yaml:"segments"`
	Markers  []Marker  `json:"markers" yaml:"markers"`
}

package stl

import (
	"github.com/philipparndt/hiddenline/pkg/geometry"
	"github.com/philipparndt/hiddenline/pkg/scene"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromTopology triangulates every face of a topology as a fan around its
// first vertex. Vertices are rotated by o first, so the export matches what
// the views show.
func FromTopology(name string, topology *scene.Topology, o scene.Orientation) *Model {
	ax, ay := o.Radians()
	vertices := geometry.RotateAll(topology.Vertices, ax, ay)

	model := NewModel(name)
	for _, face := range topology.Faces {
		first := vertices[face.Indices[0]]
		for i := 1; i+1 < len(face.Indices); i++ {
			t := geometry.Triangle{
				V1: first,
				V2: vertices[face.Indices[i]],
				V3: vertices[face.Indices[i+1]],
			}
			t.Normal = t.CalculateNormal()
			model.AddTriangle(t)
		}
	}
	return model
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Volume returns the enclosed volume. Only meaningful for closed,
// outward-wound models; inverted models give a negative value.
func (m *Model) Volume() float64 {
	volume := 0.0
	for _, triangle := range m.Triangles {
		volume += triangle.SignedVolume()
	}
	return volume
}

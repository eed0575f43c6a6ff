// Package scene holds the fixed box topology and the mutable orientation
// that user input changes.
package scene

import (
	"fmt"

	"github.com/philipparndt/hiddenline/pkg/geometry"
)

// Edge is an unordered pair of vertex indices stored as (min, max), so two
// edges compare equal iff they join the same vertices.
type Edge struct {
	A int `json:"a" yaml:"a"`
	B int `json:"b" yaml:"b"`
}

// NewEdge returns the canonical edge joining i and j
func NewEdge(i, j int) Edge {
	if i > j {
		i, j = j, i
	}
	return Edge{A: i, B: j}
}

// String formats the edge as "a-b"
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.A, e.B)
}

// Face is a planar convex polygon. Indices are wound so that
// (v1-v0) × (v2-v0) points out of the solid.
type Face struct {
	Name    string
	Indices []int
}

// Edges returns the edges of the face cycle, wrapping last to first
func (f Face) Edges() []Edge {
	edges := make([]Edge, len(f.Indices))
	for i, current := range f.Indices {
		next := f.Indices[(i+1)%len(f.Indices)]
		edges[i] = NewEdge(current, next)
	}
	return edges
}

// Topology is the immutable vertex, edge and face description of the box
type Topology struct {
	Vertices []geometry.Vector3
	Edges    []Edge
	Faces    []Face
}

// Face names of the box, in topology order
const (
	FaceFront  = "front"
	FaceBack   = "back"
	FaceLeft   = "left"
	FaceRight  = "right"
	FaceTop    = "top"
	FaceBottom = "bottom"
)

// NewBox builds a rectangular cuboid of the given full extents centred on the
// origin, +Y up and +Z toward the viewer. The tilt is baked into the vertex
// coordinates (X rotation, then Y) and gives the box its resting pose.
//
// Vertex layout:
//
//	0 left-top-front    4 left-top-back
//	1 right-top-front   5 right-top-back
//	2 right-bottom-front 6 right-bottom-back
//	3 left-bottom-front 7 left-bottom-back
func NewBox(size geometry.Vector3, tilt Orientation) *Topology {
	w, h, d := size.X/2, size.Y/2, size.Z/2

	corners := []geometry.Vector3{
		{X: -w, Y: h, Z: d},
		{X: w, Y: h, Z: d},
		{X: w, Y: -h, Z: d},
		{X: -w, Y: -h, Z: d},
		{X: -w, Y: h, Z: -d},
		{X: w, Y: h, Z: -d},
		{X: w, Y: -h, Z: -d},
		{X: -w, Y: -h, Z: -d},
	}
	ax, ay := tilt.Radians()

	return &Topology{
		Vertices: geometry.RotateAll(corners, ax, ay),
		Edges: []Edge{
			// Front ring
			{0, 1}, {1, 2}, {2, 3}, {0, 3},
			// Back ring
			{4, 5}, {5, 6}, {6, 7}, {4, 7},
			// Front to back
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
		Faces: []Face{
			{Name: FaceFront, Indices: []int{0, 3, 2, 1}},
			{Name: FaceBack, Indices: []int{5, 6, 7, 4}},
			{Name: FaceLeft, Indices: []int{4, 7, 3, 0}},
			{Name: FaceRight, Indices: []int{1, 2, 6, 5}},
			{Name: FaceTop, Indices: []int{4, 0, 1, 5}},
			{Name: FaceBottom, Indices: []int{3, 7, 6, 2}},
		},
	}
}

// FaceByName returns the face with the given name
func (t *Topology) FaceByName(name string) (Face, bool) {
	for _, f := range t.Faces {
		if f.Name == name {
			return f, true
		}
	}
	return Face{}, false
}

// Validate checks the closure invariants: every index is in range, every face
// has at least three vertices, every edge is canonical and belongs to exactly
// two faces, and no face contributes an edge missing from the edge list.
func (t *Topology) Validate() error {
	n := len(t.Vertices)
	owners := make(map[Edge]int, len(t.Edges))
	for _, e := range t.Edges {
		if e.A < 0 || e.B >= n || e.A >= e.B {
			return fmt.Errorf("edge %s: invalid vertex indices", e)
		}
		if _, dup := owners[e]; dup {
			return fmt.Errorf("edge %s: listed twice", e)
		}
		owners[e] = 0
	}

	for _, f := range t.Faces {
		if len(f.Indices) < 3 {
			return fmt.Errorf("face %q: %d vertices, need at least 3", f.Name, len(f.Indices))
		}
		for _, idx := range f.Indices {
			if idx < 0 || idx >= n {
				return fmt.Errorf("face %q: vertex index %d out of range", f.Name, idx)
			}
		}
		if geometry.FaceNormal(f.Indices, t.Vertices).Length() == 0 {
			return fmt.Errorf("face %q: degenerate normal", f.Name)
		}
		for _, e := range f.Edges() {
			count, ok := owners[e]
			if !ok {
				return fmt.Errorf("face %q: edge %s not in edge list", f.Name, e)
			}
			owners[e] = count + 1
		}
	}

	for _, e := range t.Edges {
		if owners[e] != 2 {
			return fmt.Errorf("edge %s: shared by %d faces, want 2", e, owners[e])
		}
	}
	return nil
}

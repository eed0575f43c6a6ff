// Package export writes the box as a glTF 2.0 asset. The object-space box
// goes into the buffers once and the orientation is carried by the node
// transform, so viewers that load the file see the same pose as the views.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/philipparndt/hiddenline/pkg/culling"
	"github.com/philipparndt/hiddenline/pkg/geometry"
	"github.com/philipparndt/hiddenline/pkg/scene"
)

// Mesh names in the exported document
const (
	SolidMesh   = "box"
	OutlineMesh = "outline"
)

// NodeMatrix returns the column-major transform for an orientation: X
// rotation first, then Y
func NodeMatrix(o scene.Orientation) mgl64.Mat4 {
	ax, ay := o.Radians()
	return mgl64.HomogRotate3DY(ay).Mul4(mgl64.HomogRotate3DX(ax))
}

// Build creates a document with two meshes: the solid box (triangles plus
// every edge as lines) and the hidden-line outline for o
func Build(topology *scene.Topology, o scene.Orientation) *gltf.Document {
	doc := gltf.NewDocument()

	positions := make([][3]float32, len(topology.Vertices))
	for i, v := range topology.Vertices {
		positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	}
	position := modeler.WritePosition(doc, positions)

	triangles := modeler.WriteIndices(doc, triangleIndices(topology))
	edges := modeler.WriteIndices(doc, edgeIndices(topology.Edges))

	ax, ay := o.Radians()
	_, outline := culling.ExtractVisible(topology, geometry.RotateAll(topology.Vertices, ax, ay))
	visible := modeler.WriteIndices(doc, edgeIndices(outline.Edges))

	doc.Meshes = []*gltf.Mesh{
		{
			Name: SolidMesh,
			Primitives: []*gltf.Primitive{
				{
					Indices:    gltf.Index(triangles),
					Attributes: map[string]int{gltf.POSITION: position},
					Mode:       gltf.PrimitiveTriangles,
				},
				{
					Indices:    gltf.Index(edges),
					Attributes: map[string]int{gltf.POSITION: position},
					Mode:       gltf.PrimitiveLines,
				},
			},
		},
		{
			Name: OutlineMesh,
			Primitives: []*gltf.Primitive{
				{
					Indices:    gltf.Index(visible),
					Attributes: map[string]int{gltf.POSITION: position},
					Mode:       gltf.PrimitiveLines,
				},
			},
		},
	}

	matrix := [16]float64(NodeMatrix(o))
	doc.Nodes = []*gltf.Node{
		{Name: SolidMesh, Mesh: gltf.Index(0), Matrix: matrix},
		{Name: OutlineMesh, Mesh: gltf.Index(1), Matrix: matrix},
	}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0, 1)

	return doc
}

// Save writes a document. A .glb path, or binary set, writes the binary
// container; anything else writes JSON with the buffer embedded as a data
// URI.
func Save(path string, doc *gltf.Document, binary bool) error {
	if binary || strings.EqualFold(filepath.Ext(path), ".glb") {
		if err := gltf.SaveBinary(doc, path); err != nil {
			return fmt.Errorf("failed to write GLB: %w", err)
		}
		return nil
	}

	for _, b := range doc.Buffers {
		if b.URI == "" {
			b.EmbeddedResource()
		}
	}
	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("failed to write glTF: %w", err)
	}
	return nil
}

// triangleIndices fans each face around its first vertex. Windings stay
// outward, which glTF treats as front-facing.
func triangleIndices(topology *scene.Topology) []uint16 {
	var indices []uint16
	for _, face := range topology.Faces {
		for i := 1; i+1 < len(face.Indices); i++ {
			indices = append(indices,
				uint16(face.Indices[0]),
				uint16(face.Indices[i]),
				uint16(face.Indices[i+1]))
		}
	}
	return indices
}

func edgeIndices(edges []scene.Edge) []uint16 {
	indices := make([]uint16, 0, 2*len(edges))
	for _, e := range edges {
		indices = append(indices, uint16(e.A), uint16(e.B))
	}
	return indices
}

// Package culling classifies box faces as front- or back-facing and derives
// the set of edges that remain visible after back-face removal.
package culling

import (
	"github.com/philipparndt/hiddenline/pkg/geometry"
	"github.com/philipparndt/hiddenline/pkg/scene"
)

// IsFaceVisible reports whether a face points toward a camera looking down
// -Z. The normal is taken from the camera-space vertices; faces seen exactly
// edge-on (normal Z of zero) are not visible.
func IsFaceVisible(face scene.Face, rotated []geometry.Vector3) bool {
	return geometry.FaceNormal(face.Indices, rotated).Z > 0
}

// VisibleFaces returns the indices, in topology order, of the faces that are
// visible for the given camera-space vertices
func VisibleFaces(faces []scene.Face, rotated []geometry.Vector3) []int {
	visible := make([]int, 0, len(faces))
	for i, face := range faces {
		if IsFaceVisible(face, rotated) {
			visible = append(visible, i)
		}
	}
	return visible
}

package culling

import (
	"testing"

	"github.com/philipparndt/hiddenline/pkg/geometry"
	"github.com/philipparndt/hiddenline/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	boxSize     = geometry.NewVector3(200, 150, 100)
	defaultTilt = scene.Orientation{X: 25, Y: -35}
)

func rotated(top *scene.Topology, o scene.Orientation) []geometry.Vector3 {
	ax, ay := o.Radians()
	return geometry.RotateAll(top.Vertices, ax, ay)
}

func faceNames(top *scene.Topology, idx []int) []string {
	names := make([]string, len(idx))
	for i, f := range idx {
		names[i] = top.Faces[f].Name
	}
	return names
}

func TestRestingPoseShowsThreeFaces(t *testing.T) {
	top := scene.NewBox(boxSize, defaultTilt)

	visible, result := ExtractVisible(top, rotated(top, scene.Orientation{}))

	assert.Equal(t, []string{scene.FaceFront, scene.FaceRight, scene.FaceTop}, faceNames(top, visible))
	assert.Len(t, result.Edges, 9)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, result.Vertices)
	for _, e := range result.Edges {
		assert.NotEqual(t, 7, e.A, "edge %s touches the hidden corner", e)
		assert.NotEqual(t, 7, e.B, "edge %s touches the hidden corner", e)
	}
}

func TestAxisAlignedBoxCullsEdgeOnFaces(t *testing.T) {
	top := scene.NewBox(boxSize, scene.Orientation{})

	visible, result := ExtractVisible(top, rotated(top, scene.Orientation{}))

	// The four side faces are exactly edge-on and stay culled.
	assert.Equal(t, []string{scene.FaceFront}, faceNames(top, visible))
	assert.Equal(t, []scene.Edge{{A: 0, B: 1}, {A: 0, B: 3}, {A: 1, B: 2}, {A: 2, B: 3}}, result.Edges)
	assert.Equal(t, []int{0, 1, 2, 3}, result.Vertices)
}

func TestIsFaceVisibleFlipsWithHalfTurn(t *testing.T) {
	top := scene.NewBox(boxSize, scene.Orientation{})
	front, _ := top.FaceByName(scene.FaceFront)
	back, _ := top.FaceByName(scene.FaceBack)

	turned := rotated(top, scene.Orientation{Y: 180})
	assert.False(t, IsFaceVisible(front, turned))
	assert.True(t, IsFaceVisible(back, turned))
}

func TestExtractDeduplicatesSharedEdges(t *testing.T) {
	faces := []scene.Face{
		{Name: "a", Indices: []int{0, 1, 2, 3}},
		{Name: "b", Indices: []int{1, 0, 4, 5}},
	}

	result := Extract(faces)

	// 8 raw mentions, edge 0-1 shared.
	assert.Len(t, result.Edges, 7)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, result.Vertices)
}

func TestExtractEmpty(t *testing.T) {
	result := Extract(nil)
	assert.Empty(t, result.Edges)
	assert.Empty(t, result.Vertices)
}

func TestEdgeSetCollapsesReversedPairs(t *testing.T) {
	s := make(EdgeSet)
	s.Add(3, 1)
	s.Add(1, 3)
	s.Add(2, 0)

	assert.Len(t, s, 2)
	assert.True(t, s.Contains(1, 3))
	assert.True(t, s.Contains(0, 2))
	assert.False(t, s.Contains(0, 1))
	assert.Equal(t, []scene.Edge{{A: 0, B: 2}, {A: 1, B: 3}}, s.Sorted())
}

// Sweep a grid of orientations and check the outline against the faces that
// produced it.
func TestVisibleOutlineAcrossOrientations(t *testing.T) {
	top := scene.NewBox(boxSize, defaultTilt)
	wantEdges := map[int]int{1: 4, 2: 7, 3: 9}

	for x := 0.0; x < 360; x += 15 {
		for y := 0.0; y < 360; y += 15 {
			o := scene.Orientation{X: x, Y: y}
			visible, result := ExtractVisible(top, rotated(top, o))

			require.NotEmpty(t, visible, "orientation %v", o)
			require.LessOrEqual(t, len(visible), 3, "orientation %v", o)
			assert.Len(t, result.Edges, wantEdges[len(visible)], "orientation %v", o)

			owned := make(EdgeSet)
			for _, idx := range visible {
				for _, e := range top.Faces[idx].Edges() {
					owned.Add(e.A, e.B)
				}
			}
			for _, e := range result.Edges {
				assert.True(t, owned.Contains(e.A, e.B), "orientation %v: edge %s belongs only to culled faces", o, e)
			}
			assert.Len(t, owned, len(result.Edges), "orientation %v", o)

			if len(visible) == 3 {
				assertMutuallyAdjacent(t, top, visible, o)
			}
		}
	}
}

func assertMutuallyAdjacent(t *testing.T, top *scene.Topology, visible []int, o scene.Orientation) {
	t.Helper()
	for i := 0; i < len(visible); i++ {
		for j := i + 1; j < len(visible); j++ {
			a := make(EdgeSet)
			for _, e := range top.Faces[visible[i]].Edges() {
				a.Add(e.A, e.B)
			}
			shared := 0
			for _, e := range top.Faces[visible[j]].Edges() {
				if a.Contains(e.A, e.B) {
					shared++
				}
			}
			assert.Equal(t, 1, shared, "orientation %v: faces %d and %d", o, visible[i], visible[j])
		}
	}
}

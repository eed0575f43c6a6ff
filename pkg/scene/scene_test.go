package scene

import (
	"math"
	"testing"

	"github.com/philipparndt/hiddenline/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var boxSize = geometry.NewVector3(200, 150, 100)

func TestNewEdgeIsCanonical(t *testing.T) {
	assert.Equal(t, Edge{A: 2, B: 5}, NewEdge(5, 2))
	assert.Equal(t, NewEdge(1, 3), NewEdge(3, 1))
	assert.Equal(t, "2-5", NewEdge(5, 2).String())
}

func TestFaceEdgesWrap(t *testing.T) {
	f := Face{Name: "quad", Indices: []int{4, 0, 1, 5}}
	assert.Equal(t, []Edge{{0, 4}, {0, 1}, {1, 5}, {4, 5}}, f.Edges())
}

func TestNewBoxTopology(t *testing.T) {
	top := NewBox(boxSize, Orientation{})

	require.Len(t, top.Vertices, 8)
	require.Len(t, top.Edges, 12)
	require.Len(t, top.Faces, 6)
	require.NoError(t, top.Validate())

	// Without tilt the box is axis aligned with distinct extents.
	bounds := geometry.BoundsOf(top.Vertices)
	assert.Equal(t, boxSize, bounds.Size())
	assert.Equal(t, geometry.Vector3{}, bounds.Center())
}

func TestNewBoxNormalsPointOutward(t *testing.T) {
	top := NewBox(boxSize, Orientation{})
	want := map[string]geometry.Vector3{
		FaceFront:  {Z: 1},
		FaceBack:   {Z: -1},
		FaceLeft:   {X: -1},
		FaceRight:  {X: 1},
		FaceTop:    {Y: 1},
		FaceBottom: {Y: -1},
	}
	for name, dir := range want {
		face, ok := top.FaceByName(name)
		require.True(t, ok, name)
		n := geometry.FaceNormal(face.Indices, top.Vertices).Normalize()
		assert.InDelta(t, 1.0, n.Dot(dir), 1e-9, "face %s normal %v", name, n)
	}
}

func TestNewBoxTiltKeepsShape(t *testing.T) {
	flat := NewBox(boxSize, Orientation{})
	tilted := NewBox(boxSize, Orientation{X: 25, Y: -35})

	require.NoError(t, tilted.Validate())
	for _, e := range flat.Edges {
		a := flat.Vertices[e.A].Distance(flat.Vertices[e.B])
		b := tilted.Vertices[e.A].Distance(tilted.Vertices[e.B])
		assert.InDelta(t, a, b, 1e-9, "edge %s", e)
	}
}

func TestValidateRejectsBrokenTopology(t *testing.T) {
	top := NewBox(boxSize, Orientation{})

	missing := *top
	missing.Edges = top.Edges[:11]
	assert.Error(t, missing.Validate())

	outOfRange := *top
	outOfRange.Faces = append([]Face{{Name: "bad", Indices: []int{0, 1, 9}}}, top.Faces[1:]...)
	assert.Error(t, outOfRange.Validate())

	tiny := *top
	tiny.Faces = append([]Face{{Name: "line", Indices: []int{0, 1}}}, top.Faces[1:]...)
	assert.Error(t, tiny.Validate())
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-5, 355},
		{360, 0},
		{365, 5},
		{-360, 0},
		{-725, 355},
		{720.5, 0.5},
		{-1e-15, 0},
	}
	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "NormalizeAngle(%v)", tt.in)
		assert.True(t, got >= 0 && got < 360, "NormalizeAngle(%v) = %v out of range", tt.in, got)
	}
}

func TestApplyDeltaWrapsNegative(t *testing.T) {
	s := New(NewBox(boxSize, Orientation{}))
	for i := 0; i < 6; i++ {
		s.ApplyDelta(AxisX, -5)
	}
	assert.Equal(t, Orientation{X: 330, Y: 0}, s.CurrentOrientation())
}

func TestApplyDeltaStaysInRange(t *testing.T) {
	s := New(NewBox(boxSize, Orientation{}))
	steps := []struct {
		axis Axis
		step float64
	}{
		{AxisY, 5}, {AxisX, -5}, {AxisY, -5}, {AxisY, -5}, {AxisX, 355}, {AxisX, 5}, {AxisY, 725},
	}
	for _, st := range steps {
		s.ApplyDelta(st.axis, st.step)
		o := s.CurrentOrientation()
		require.True(t, o.X >= 0 && o.X < 360, "x out of range: %v", o.X)
		require.True(t, o.Y >= 0 && o.Y < 360, "y out of range: %v", o.Y)
	}
	assert.Equal(t, Orientation{X: 355, Y: 0}, s.CurrentOrientation())
}

func TestOrientationRoundedAndString(t *testing.T) {
	o := Orientation{X: 12.4, Y: 359.6}
	x, y := o.Rounded()
	assert.Equal(t, 12, x)
	assert.Equal(t, 360, y)
	assert.Equal(t, "X: 12°, Y: 360°", o.String())

	ax, ay := Orientation{X: 180, Y: 90}.Radians()
	assert.InDelta(t, math.Pi, ax, 1e-12)
	assert.InDelta(t, math.Pi/2, ay, 1e-12)
}

func TestSetTopologyKeepsOrientation(t *testing.T) {
	s := New(NewBox(boxSize, Orientation{}))
	s.ApplyDelta(AxisY, 15)

	bigger := NewBox(geometry.NewVector3(300, 200, 100), Orientation{})
	s.SetTopology(bigger)

	assert.Same(t, bigger, s.Topology())
	assert.Equal(t, Orientation{Y: 15}, s.CurrentOrientation())
}

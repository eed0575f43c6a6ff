package viewer

import (
	"bytes"
	"image/png"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/hiddenline/pkg/geometry"
	"github.com/philipparndt/hiddenline/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer() *Renderer {
	box := scene.NewBox(geometry.NewVector3(200, 150, 100), scene.Orientation{X: 25, Y: -35})
	return NewRenderer(box, NewProjector(500, 400), DefaultStyle())
}

func TestProjectOriginToCentre(t *testing.T) {
	p := NewProjector(500, 400)
	got := p.Project(geometry.Vector3{})
	assert.Equal(t, geometry.Vector2{X: 250, Y: 200}, got)
}

func TestProjectFlipsY(t *testing.T) {
	got := ProjectTo2D(geometry.NewVector3(10, 20, -99), 100, 100)
	assert.Equal(t, geometry.Vector2{X: 60, Y: 30}, got)
}

func TestWireframeIsComplete(t *testing.T) {
	r := testRenderer()
	for x := 0.0; x < 360; x += 30 {
		for y := 0.0; y < 360; y += 30 {
			frame := r.Render(scene.NewOrientation(x, y))
			require.Len(t, frame.Wireframe.Segments, 12, "x=%v y=%v", x, y)
			require.Len(t, frame.Wireframe.Markers, 8, "x=%v y=%v", x, y)
		}
	}
}

func TestHiddenLineAtRest(t *testing.T) {
	frame := testRenderer().Render(scene.Orientation{})

	assert.ElementsMatch(t, []string{scene.FaceFront, scene.FaceRight, scene.FaceTop}, frame.VisibleFaces)
	assert.Len(t, frame.HiddenLine.Segments, 9)
	assert.Len(t, frame.HiddenLine.Markers, 7)
	assert.Equal(t, 0, frame.RotationX)
	assert.Equal(t, 0, frame.RotationY)

	for _, m := range frame.HiddenLine.Markers {
		assert.NotEqual(t, 7, m.Vertex, "vertex 7 belongs only to hidden faces")
	}
}

func TestHiddenLineSegmentsMatchWireframe(t *testing.T) {
	frame := testRenderer().Render(scene.NewOrientation(40, 120))

	byEdge := make(map[scene.Edge]Segment)
	for _, s := range frame.Wireframe.Segments {
		byEdge[s.Edge] = s
	}
	for _, s := range frame.HiddenLine.Segments {
		w, ok := byEdge[s.Edge]
		require.True(t, ok, "edge %s missing from wireframe", s.Edge)
		assert.Equal(t, w.From, s.From)
		assert.Equal(t, w.To, s.To)
	}
}

func TestColorsAreDistinct(t *testing.T) {
	style := DefaultStyle()
	frame := testRenderer().Render(scene.Orientation{})

	assert.Equal(t, style.Wireframe, frame.Wireframe.Segments[0].Color)
	assert.Equal(t, style.HiddenLine, frame.HiddenLine.Segments[0].Color)
	assert.Equal(t, style.Point, frame.HiddenLine.Markers[0].Color)
	assert.NotEqual(t, style.Wireframe, style.HiddenLine)
	assert.NotEqual(t, style.HiddenLine, style.Point)
}

func TestRotationLabel(t *testing.T) {
	frame := testRenderer().Render(scene.NewOrientation(12.6, 355))
	assert.Equal(t, "X: 13°, Y: 355°", RotationLabel(frame))
}

func TestRasterize(t *testing.T) {
	style := DefaultStyle()
	frame := testRenderer().Render(scene.Orientation{})
	img := Rasterize(frame, 500, 400, style)

	assert.Equal(t, 1000, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())

	// Markers are drawn last, so vertex centres carry the point colour
	for _, m := range frame.Wireframe.Markers {
		assert.Equal(t, style.Point, img.RGBAAt(round(m.At.X), round(m.At.Y)))
	}
	for _, m := range frame.HiddenLine.Markers {
		assert.Equal(t, style.Point, img.RGBAAt(500+round(m.At.X), round(m.At.Y)))
	}

	// The pane centre is inside the front face, away from any edge
	assert.Equal(t, style.Background, img.RGBAAt(500+250, 200+30))
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	frame := testRenderer().Render(scene.Orientation{})
	require.NoError(t, EncodePNG(&buf, frame, 200, 160, DefaultStyle()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestDrawLineClipsToBounds(t *testing.T) {
	style := DefaultStyle()
	img := Rasterize(Frame{}, 10, 10, style)
	drawLine(img, -5, 5, 50, 5, style.Point)
	assert.Equal(t, style.Point, img.RGBAAt(0, 5))
	assert.Equal(t, style.Point, img.RGBAAt(19, 5))
}

func TestViewWidget(t *testing.T) {
	test.NewTempApp(t)

	frame := testRenderer().Render(scene.Orientation{})
	v := NewView(HiddenLineTitle, 500, 400, DefaultStyle())
	v.SetDrawList(frame.HiddenLine, RotationLabel(frame))

	r := test.TempWidgetRenderer(t, v)
	// background, 9 lines, 7 markers, title, rotation label
	assert.Len(t, r.Objects(), 1+9+7+2)
	assert.Equal(t, "X: 0°, Y: 0°", v.Label())
	assert.Equal(t, float32(500), r.MinSize().Width)
}

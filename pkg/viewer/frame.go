package viewer

import (
	"github.com/philipparndt/hiddenline/pkg/culling"
	"github.com/philipparndt/hiddenline/pkg/geometry"
	"github.com/philipparndt/hiddenline/pkg/scene"
)

// Frame is the output of one render pass: both views plus the rounded
// rotation shown next to them
type Frame struct {
	Orientation  scene.Orientation `json:"orientation" yaml:"orientation"`
	RotationX    int               `json:"rotation_x" yaml:"rotation_x"`
	RotationY    int               `json:"rotation_y" yaml:"rotation_y"`
	VisibleFaces []string          `json:"visible_faces" yaml:"visible_faces"`
	Wireframe    DrawList          `json:"wireframe" yaml:"wireframe"`
	HiddenLine   DrawList          `json:"hidden_line" yaml:"hidden_line"`
}

// Renderer turns an orientation into a Frame. It keeps no per-frame state;
// every call recomputes the frame from scratch.
type Renderer struct {
	topology  *scene.Topology
	projector Projector
	style     Style
}

// NewRenderer creates a renderer for a topology and viewport
func NewRenderer(topology *scene.Topology, projector Projector, style Style) *Renderer {
	return &Renderer{
		topology:  topology,
		projector: projector,
		style:     style,
	}
}

// Projector returns the viewport projection
func (r *Renderer) Projector() Projector {
	return r.projector
}

// Style returns the presentation style
func (r *Renderer) Style() Style {
	return r.style
}

// Render computes both views for an orientation
func (r *Renderer) Render(o scene.Orientation) Frame {
	// Camera space: X rotation, then Y
	ax, ay := o.Radians()
	rotated := geometry.RotateAll(r.topology.Vertices, ax, ay)

	frame := Frame{Orientation: o}
	frame.RotationX, frame.RotationY = o.Rounded()
	frame.Wireframe = r.wireframe(rotated)

	visible, outline := culling.ExtractVisible(r.topology, rotated)
	frame.HiddenLine = r.hiddenLine(rotated, outline)
	frame.VisibleFaces = make([]string, len(visible))
	for i, idx := range visible {
		frame.VisibleFaces[i] = r.topology.Faces[idx].Name
	}
	return frame
}

// wireframe draws every edge and every vertex, no culling
func (r *Renderer) wireframe(rotated []geometry.Vector3) DrawList {
	projected := make([]geometry.Vector2, len(rotated))
	for i, v := range rotated {
		projected[i] = r.projector.Project(v)
	}

	list := DrawList{
		Segments: make([]Segment, 0, len(r.topology.Edges)),
		Markers:  make([]Marker, 0, len(projected)),
	}
	for _, e := range r.topology.Edges {
		list.Segments = append(list.Segments, Segment{
			Edge:  e,
			From:  projected[e.A],
			To:    projected[e.B],
			Color: r.style.Wireframe,
		})
	}
	for i, p := range projected {
		list.Markers = append(list.Markers, Marker{Vertex: i, At: p, Color: r.style.Point})
	}
	return list
}

// hiddenLine draws the outline of the visible faces, projecting only the
// vertices it touches
func (r *Renderer) hiddenLine(rotated []geometry.Vector3, outline culling.Result) DrawList {
	projected := make(map[int]geometry.Vector2, len(outline.Vertices))
	for _, idx := range outline.Vertices {
		projected[idx] = r.projector.Project(rotated[idx])
	}

	list := DrawList{
		Segments: make([]Segment, 0, len(outline.Edges)),
		Markers:  make([]Marker, 0, len(outline.Vertices)),
	}
	for _, e := range outline.Edges {
		list.Segments = append(list.Segments, Segment{
			Edge:  e,
			From:  projected[e.A],
			To:    projected[e.B],
			Color: r.style.HiddenLine,
		})
	}
	for _, idx := range outline.Vertices {
		list.Markers = append(list.Markers, Marker{Vertex: idx, At: projected[idx], Color: r.style.Point})
	}
	return list
}

package viewer

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// View is a fyne widget that draws one DrawList with a title and the
// rotation label underneath
type View struct {
	widget.BaseWidget

	mu     sync.Mutex
	title  string
	label  string
	list   DrawList
	style  Style
	width  float32
	height float32
}

// NewView creates a view widget for a viewport of the given size
func NewView(title string, width, height float64, style Style) *View {
	v := &View{
		title:  title,
		style:  style,
		width:  float32(width),
		height: float32(height),
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetDrawList replaces the drawn content. Must be called on the fyne
// thread.
func (v *View) SetDrawList(list DrawList, label string) {
	v.mu.Lock()
	v.list = list
	v.label = label
	v.mu.Unlock()
	v.Refresh()
}

// SetStyle changes background and text colors and stroke sizes. Must be
// called on the fyne thread.
func (v *View) SetStyle(style Style) {
	v.mu.Lock()
	v.style = style
	v.mu.Unlock()
	v.Refresh()
}

// DrawList returns the content currently shown
func (v *View) DrawList() DrawList {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.list
}

// Label returns the rotation label currently shown
func (v *View) Label() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.label
}

// CreateRenderer creates the renderer for the widget
func (v *View) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(v.style.Background)
	title := canvas.NewText(v.title, v.style.Text)
	title.TextStyle = fyne.TextStyle{Bold: true}
	label := canvas.NewText("", v.style.Text)

	r := &viewWidgetRenderer{
		view:       v,
		background: bg,
		title:      title,
		rotation:   label,
	}
	r.Refresh()
	return r
}

// viewWidgetRenderer implements fyne.WidgetRenderer
type viewWidgetRenderer struct {
	view       *View
	background *canvas.Rectangle
	title      *canvas.Text
	rotation   *canvas.Text
	lines      []*canvas.Line
	markers    []*canvas.Circle
	objects    []fyne.CanvasObject
}

func (r *viewWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))
	r.title.Move(fyne.NewPos(8, 4))
	r.rotation.Move(fyne.NewPos(8, 4+r.title.MinSize().Height))
}

func (r *viewWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.view.width, r.view.height)
}

func (r *viewWidgetRenderer) Refresh() {
	v := r.view
	v.mu.Lock()
	list := v.list
	label := v.label
	style := v.style
	v.mu.Unlock()

	r.lines = make([]*canvas.Line, 0, len(list.Segments))
	for _, s := range list.Segments {
		line := canvas.NewLine(s.Color)
		line.StrokeWidth = float32(style.LineWidth)
		line.Position1 = fyne.NewPos(float32(s.From.X), float32(s.From.Y))
		line.Position2 = fyne.NewPos(float32(s.To.X), float32(s.To.Y))
		r.lines = append(r.lines, line)
	}

	r.markers = make([]*canvas.Circle, 0, len(list.Markers))
	size := float32(2 * style.PointRadius)
	for _, m := range list.Markers {
		marker := canvas.NewCircle(m.Color)
		marker.Resize(fyne.NewSize(size, size))
		marker.Move(fyne.NewPos(float32(m.At.X)-size/2, float32(m.At.Y)-size/2))
		r.markers = append(r.markers, marker)
	}

	r.background.FillColor = style.Background
	r.title.Color = style.Text
	r.rotation.Color = style.Text
	r.rotation.Text = label

	r.objects = make([]fyne.CanvasObject, 0, 3+len(r.lines)+len(r.markers))
	r.objects = append(r.objects, r.background)
	for _, line := range r.lines {
		r.objects = append(r.objects, line)
	}
	for _, marker := range r.markers {
		r.objects = append(r.objects, marker)
	}
	r.objects = append(r.objects, r.title, r.rotation)

	r.Layout(v.Size())
	canvas.Refresh(v)
}

func (r *viewWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *viewWidgetRenderer) Destroy() {}

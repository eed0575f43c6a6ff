package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// WireframeTitle labels the left pane
	WireframeTitle = "Wireframe"
	// HiddenLineTitle labels the right pane
	HiddenLineTitle = "Hidden Line"
)

// Rasterize draws a frame into an image with the wireframe view on the left
// and the hidden-line view on the right. Each pane is width x height pixels.
func Rasterize(frame Frame, width, height int, style Style) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2*width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: style.Background}, image.Point{}, draw.Src)

	left := img.SubImage(image.Rect(0, 0, width, height)).(*image.RGBA)
	right := img.SubImage(image.Rect(width, 0, 2*width, height)).(*image.RGBA)

	drawPane(left, frame.Wireframe, WireframeTitle, frame, style)
	drawPane(right, frame.HiddenLine, HiddenLineTitle, frame, style)

	// Divider between the panes
	drawLine(img, width, 0, width, height-1, style.Text)
	return img
}

// EncodePNG rasterizes a frame and writes it as PNG
func EncodePNG(w io.Writer, frame Frame, width, height int, style Style) error {
	img := Rasterize(frame, width, height, style)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// RotationLabel formats the rounded rotation shown under each view title
func RotationLabel(frame Frame) string {
	return fmt.Sprintf("X: %d°, Y: %d°", frame.RotationX, frame.RotationY)
}

// asciiRotationLabel spells out degrees; the bitmap face has no glyph for
// the degree sign
func asciiRotationLabel(frame Frame) string {
	return fmt.Sprintf("X: %d deg, Y: %d deg", frame.RotationX, frame.RotationY)
}

// drawPane draws one view. Pane coordinates are offset by the sub-image
// origin so draw lists stay in viewport space.
func drawPane(pane *image.RGBA, list DrawList, title string, frame Frame, style Style) {
	origin := pane.Bounds().Min

	for _, s := range list.Segments {
		strokeLine(pane,
			origin.X+round(s.From.X), origin.Y+round(s.From.Y),
			origin.X+round(s.To.X), origin.Y+round(s.To.Y),
			style.LineWidth, s.Color)
	}
	for _, m := range list.Markers {
		fillCircle(pane, origin.X+round(m.At.X), origin.Y+round(m.At.Y), style.PointRadius, m.Color)
	}

	drawLabel(pane, origin.X+8, origin.Y+16, title, style.Text)
	drawLabel(pane, origin.X+8, origin.Y+32, asciiRotationLabel(frame), style.Text)
}

// strokeLine draws a line of the given width by offsetting single pixel
// Bresenham lines
func strokeLine(img *image.RGBA, x1, y1, x2, y2 int, width float64, col color.RGBA) {
	n := int(math.Max(1, math.Round(width)))
	start := -(n - 1) / 2
	for ox := start; ox < start+n; ox++ {
		for oy := start; oy < start+n; oy++ {
			drawLine(img, x1+ox, y1+oy, x2+ox, y2+oy, col)
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		if (image.Point{X: x1, Y: y1}).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillCircle fills a disc centred on (cx, cy)
func fillCircle(img *image.RGBA, cx, cy int, radius float64, col color.RGBA) {
	bounds := img.Bounds()
	r := int(math.Ceil(radius))
	r2 := radius * radius

	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			if dx*dx+dy*dy > r2 {
				continue
			}
			if (image.Point{X: x, Y: y}).In(bounds) {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLabel writes text with its baseline at (x, y)
func drawLabel(img *image.RGBA, x, y int, text string, col color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

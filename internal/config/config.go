// Package config handles loading and validating hiddenline settings.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/philipparndt/hiddenline/internal/logger"
	"github.com/philipparndt/hiddenline/pkg/geometry"
	"github.com/philipparndt/hiddenline/pkg/scene"
	"github.com/philipparndt/hiddenline/pkg/viewer"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all settings.
type Config struct {
	Box     BoxConfig     `yaml:"box"`
	Input   InputConfig   `yaml:"input"`
	View    ViewConfig    `yaml:"view"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   bool          `yaml:"watch"`
}

// BoxConfig holds the box extents and the resting tilt baked into it.
type BoxConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
	TiltX  float64 `yaml:"tilt_x"`
	TiltY  float64 `yaml:"tilt_y"`
}

// InputConfig holds the rotation step and key bindings.
type InputConfig struct {
	Step float64    `yaml:"step"`
	Keys KeyBinding `yaml:"keys"`
}

// KeyBinding maps each rotation action to a single character.
type KeyBinding struct {
	RotateXNeg string `yaml:"rotate_x_neg"`
	RotateXPos string `yaml:"rotate_x_pos"`
	RotateYNeg string `yaml:"rotate_y_neg"`
	RotateYPos string `yaml:"rotate_y_pos"`
}

// ViewConfig holds viewport and drawing settings.
type ViewConfig struct {
	Width       int         `yaml:"width"`
	Height      int         `yaml:"height"`
	LineWidth   float64     `yaml:"line_width"`
	PointRadius float64     `yaml:"point_radius"`
	Colors      ColorConfig `yaml:"colors"`
}

// ColorConfig holds hex colors.
type ColorConfig struct {
	Wireframe  string `yaml:"wireframe"`
	HiddenLine string `yaml:"hidden_line"`
	Points     string `yaml:"points"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Box: BoxConfig{
			Width:  200,
			Height: 150,
			Depth:  100,
			TiltX:  25,
			TiltY:  -35,
		},
		Input: InputConfig{
			Step: 5,
			Keys: KeyBinding{
				RotateXNeg: "w",
				RotateXPos: "s",
				RotateYNeg: "a",
				RotateYPos: "d",
			},
		},
		View: ViewConfig{
			Width:       500,
			Height:      400,
			LineWidth:   2,
			PointRadius: 3,
			Colors: ColorConfig{
				Wireframe:  "#2196F3",
				HiddenLine: "#4CAF50",
				Points:     "#F44336",
				Background: "#FFFFFF",
				Text:       "#222222",
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Watch: true,
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Box.Width <= 0 || c.Box.Height <= 0 || c.Box.Depth <= 0 {
		return fmt.Errorf("%w: box extents must be positive, got %gx%gx%g",
			ErrInvalid, c.Box.Width, c.Box.Height, c.Box.Depth)
	}
	if c.Input.Step <= 0 || c.Input.Step >= 360 {
		return fmt.Errorf("%w: input.step must be in (0, 360), got %g", ErrInvalid, c.Input.Step)
	}
	if err := c.Input.Keys.validate(); err != nil {
		return err
	}
	if c.View.Width <= 0 || c.View.Height <= 0 {
		return fmt.Errorf("%w: view size must be positive, got %dx%d", ErrInvalid, c.View.Width, c.View.Height)
	}
	if c.View.LineWidth <= 0 || c.View.PointRadius < 0 {
		return fmt.Errorf("%w: line_width must be positive and point_radius non-negative", ErrInvalid)
	}
	if _, err := c.Style(); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	return nil
}

func (k KeyBinding) validate() error {
	seen := make(map[string]string)
	for _, b := range []struct{ name, key string }{
		{"rotate_x_neg", k.RotateXNeg},
		{"rotate_x_pos", k.RotateXPos},
		{"rotate_y_neg", k.RotateYNeg},
		{"rotate_y_pos", k.RotateYPos},
	} {
		if utf8.RuneCountInString(b.key) != 1 {
			return fmt.Errorf("%w: input.keys.%s must be a single character, got %q", ErrInvalid, b.name, b.key)
		}
		lower := strings.ToLower(b.key)
		if other, dup := seen[lower]; dup {
			return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, b.key, other, b.name)
		}
		seen[lower] = b.name
	}
	return nil
}

// Topology builds the box described by the box section.
func (c *Config) Topology() *scene.Topology {
	size := geometry.NewVector3(c.Box.Width, c.Box.Height, c.Box.Depth)
	return scene.NewBox(size, scene.Orientation{X: c.Box.TiltX, Y: c.Box.TiltY})
}

// Projector returns the viewport projection.
func (c *Config) Projector() viewer.Projector {
	return viewer.NewProjector(float64(c.View.Width), float64(c.View.Height))
}

// Style converts the view section into a drawing style.
func (c *Config) Style() (viewer.Style, error) {
	style := viewer.Style{
		LineWidth:   c.View.LineWidth,
		PointRadius: c.View.PointRadius,
	}

	for _, p := range []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"wireframe", c.View.Colors.Wireframe, &style.Wireframe},
		{"hidden_line", c.View.Colors.HiddenLine, &style.HiddenLine},
		{"points", c.View.Colors.Points, &style.Point},
		{"background", c.View.Colors.Background, &style.Background},
		{"text", c.View.Colors.Text, &style.Text},
	} {
		rgba, err := parseColor(p.hex)
		if err != nil {
			return viewer.Style{}, fmt.Errorf("%w: view.colors.%s: %v", ErrInvalid, p.name, err)
		}
		*p.dst = rgba
	}

	return style, nil
}

// parseColor accepts #rgb and #rrggbb
func parseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// Package app wires the scene, renderer and input into an interactive
// session and hosts it in a fyne window.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/philipparndt/hiddenline/internal/config"
	"github.com/philipparndt/hiddenline/pkg/scene"
	"github.com/philipparndt/hiddenline/pkg/viewer"
)

// Session owns the orientation and turns events into frames. It is not safe
// for concurrent use; Loop serializes access.
type Session struct {
	scene    *scene.Scene
	renderer *viewer.Renderer
	keymap   Keymap
	step     float64
	log      *zap.Logger
}

// NewSession creates a session at orientation (0, 0)
func NewSession(cfg *config.Config, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		scene: scene.New(cfg.Topology()),
		log:   log,
	}
	if err := s.configure(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// configure validates before touching any state
func (s *Session) configure(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	style, err := cfg.Style()
	if err != nil {
		return err
	}

	s.scene.SetTopology(cfg.Topology())
	s.renderer = viewer.NewRenderer(s.scene.Topology(), cfg.Projector(), style)
	s.keymap = NewKeymap(cfg.Input.Keys)
	s.step = cfg.Input.Step
	return nil
}

// Frame renders the current orientation
func (s *Session) Frame() viewer.Frame {
	return s.renderer.Render(s.scene.CurrentOrientation())
}

// Orientation returns the current orientation
func (s *Session) Orientation() scene.Orientation {
	return s.scene.CurrentOrientation()
}

// Keymap returns the active key bindings
func (s *Session) Keymap() Keymap {
	return s.keymap
}

// Style returns the active drawing style
func (s *Session) Style() viewer.Style {
	return s.renderer.Style()
}

// Projector returns the active viewport projection
func (s *Session) Projector() viewer.Projector {
	return s.renderer.Projector()
}

// Apply rotates by one step and renders
func (s *Session) Apply(a Action) viewer.Frame {
	if axis, delta, ok := a.Delta(s.step); ok {
		s.scene.ApplyDelta(axis, delta)
		s.log.Debug("rotated",
			zap.Stringer("action", a),
			zap.Stringer("orientation", s.scene.CurrentOrientation()))
	}
	return s.Frame()
}

// HandleKey applies the action bound to r. Unbound keys leave the state
// untouched and report false; nothing should be presented for them.
func (s *Session) HandleKey(r rune) (viewer.Frame, bool) {
	a, ok := s.keymap.Lookup(r)
	if !ok {
		return viewer.Frame{}, false
	}
	return s.Apply(a), true
}

// Replay feeds every rune of keys through HandleKey and returns the final
// frame
func (s *Session) Replay(keys string) viewer.Frame {
	for _, r := range keys {
		s.HandleKey(r)
	}
	return s.Frame()
}

// Reload swaps in a new configuration. The orientation is kept; on error
// the session is unchanged.
func (s *Session) Reload(cfg *config.Config) (viewer.Frame, error) {
	if err := s.configure(cfg); err != nil {
		return viewer.Frame{}, fmt.Errorf("reload rejected: %w", err)
	}
	s.log.Info("configuration reloaded", zap.Float64("step", s.step))
	return s.Frame(), nil
}

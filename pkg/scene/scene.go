package scene

// Scene pairs the box topology with the current orientation. It is not safe
// for concurrent use; a single event loop owns it.
type Scene struct {
	topology    *Topology
	orientation Orientation
}

// New creates a scene at orientation (0, 0)
func New(topology *Topology) *Scene {
	return &Scene{topology: topology}
}

// Topology returns the box topology
func (s *Scene) Topology() *Topology {
	return s.topology
}

// SetTopology replaces the box, keeping the orientation
func (s *Scene) SetTopology(topology *Topology) {
	s.topology = topology
}

// CurrentOrientation returns the orientation
func (s *Scene) CurrentOrientation() Orientation {
	return s.orientation
}

// SetOrientation replaces the orientation, normalizing both angles
func (s *Scene) SetOrientation(o Orientation) {
	s.orientation = NewOrientation(o.X, o.Y)
}

// ApplyDelta adds step degrees to one axis and re-normalizes both angles
func (s *Scene) ApplyDelta(axis Axis, step float64) {
	switch axis {
	case AxisX:
		s.orientation.X += step
	case AxisY:
		s.orientation.Y += step
	}
	s.orientation = NewOrientation(s.orientation.X, s.orientation.Y)
}

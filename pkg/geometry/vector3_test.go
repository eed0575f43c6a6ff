package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func approxEqual(a, b Vector3) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon && math.Abs(a.Z-b.Z) < epsilon
}

func TestVector3Add(t *testing.T) {
	result := NewVector3(1, 2, 3).Add(NewVector3(4, 5, 6))

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	result := NewVector3(5, 7, 9).Sub(NewVector3(1, 2, 3))

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Distance(t *testing.T) {
	distance := NewVector3(0, 0, 0).Distance(NewVector3(3, 4, 0))

	if math.Abs(distance-5.0) > epsilon {
		t.Errorf("Distance failed: expected 5, got %v", distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	normalized := NewVector3(3, 4, 0).Normalize()

	if math.Abs(normalized.Length()-1.0) > epsilon {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Length())
	}
	if zero := (Vector3{}).Normalize(); zero != (Vector3{}) {
		t.Errorf("Normalize of zero vector failed: got %v", zero)
	}
}

func TestVector3Cross(t *testing.T) {
	result := NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0))

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	result := NewVector3(1, 2, 3).Dot(NewVector3(4, 5, 6))

	if math.Abs(result-32.0) > epsilon {
		t.Errorf("Dot failed: expected 32, got %v", result)
	}
}

func TestRotateX(t *testing.T) {
	tests := []struct {
		name  string
		point Vector3
		angle float64
		want  Vector3
	}{
		{"zero angle", NewVector3(1, 2, 3), 0, NewVector3(1, 2, 3)},
		{"y to z", NewVector3(0, 1, 0), math.Pi / 2, NewVector3(0, 0, 1)},
		{"z to -y", NewVector3(0, 0, 1), math.Pi / 2, NewVector3(0, -1, 0)},
		{"x unchanged", NewVector3(7, 0, 0), 1.234, NewVector3(7, 0, 0)},
		{"half turn", NewVector3(1, 2, 3), math.Pi, NewVector3(1, -2, -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.point.RotateX(tt.angle); !approxEqual(got, tt.want) {
				t.Errorf("RotateX(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestRotateY(t *testing.T) {
	tests := []struct {
		name  string
		point Vector3
		angle float64
		want  Vector3
	}{
		{"zero angle", NewVector3(1, 2, 3), 0, NewVector3(1, 2, 3)},
		{"z to x", NewVector3(0, 0, 1), math.Pi / 2, NewVector3(1, 0, 0)},
		{"x to -z", NewVector3(1, 0, 0), math.Pi / 2, NewVector3(0, 0, -1)},
		{"y unchanged", NewVector3(0, 5, 0), 0.77, NewVector3(0, 5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.point.RotateY(tt.angle); !approxEqual(got, tt.want) {
				t.Errorf("RotateY(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestRotatePreservesLength(t *testing.T) {
	p := NewVector3(100, -75, 50)
	for deg := 0.0; deg < 360; deg += 15 {
		r := p.Rotate(Radians(deg), Radians(360-deg))
		if math.Abs(r.Length()-p.Length()) > 1e-9 {
			t.Fatalf("rotation by %v changed length: %v != %v", deg, r.Length(), p.Length())
		}
	}
}

func TestRotationOrderMatters(t *testing.T) {
	p := NewVector3(0, 1, 0)
	quarter := Radians(90)

	xThenY := p.RotateX(quarter).RotateY(quarter)
	yThenX := p.RotateY(quarter).RotateX(quarter)

	if approxEqual(xThenY, yThenX) {
		t.Fatalf("expected different results, both are %v", xThenY)
	}
	if got := p.Rotate(quarter, quarter); !approxEqual(got, xThenY) {
		t.Errorf("Rotate must apply X before Y: got %v, want %v", got, xThenY)
	}
	if !approxEqual(xThenY, NewVector3(1, 0, 0)) {
		t.Errorf("X then Y: got %v, want (1, 0, 0)", xThenY)
	}
	if !approxEqual(yThenX, NewVector3(0, 0, 1)) {
		t.Errorf("Y then X: got %v, want (0, 0, 1)", yThenX)
	}
}

func TestRotateAll(t *testing.T) {
	points := []Vector3{NewVector3(1, 0, 0), NewVector3(0, 1, 0)}
	rotated := RotateAll(points, 0, Radians(90))

	if len(rotated) != 2 {
		t.Fatalf("expected 2 points, got %d", len(rotated))
	}
	if !approxEqual(rotated[0], NewVector3(0, 0, -1)) {
		t.Errorf("unexpected first point %v", rotated[0])
	}
	if points[0] != NewVector3(1, 0, 0) {
		t.Error("RotateAll must not modify its input")
	}
}

func TestFaceNormal(t *testing.T) {
	vertices := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(2, 0, 0),
		NewVector3(2, 3, 0),
		NewVector3(0, 3, 0),
	}

	ccw := FaceNormal([]int{0, 1, 2, 3}, vertices)
	if ccw != NewVector3(0, 0, 6) {
		t.Errorf("counter-clockwise normal: expected (0, 0, 6), got %v", ccw)
	}

	cw := FaceNormal([]int{0, 3, 2, 1}, vertices)
	if cw.Z >= 0 {
		t.Errorf("clockwise winding should point away: got %v", cw)
	}
}

func TestRadians(t *testing.T) {
	if math.Abs(Radians(180)-math.Pi) > epsilon {
		t.Errorf("Radians(180) = %v, want pi", Radians(180))
	}
}

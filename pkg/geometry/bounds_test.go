package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundsOf(t *testing.T) {
	bbox := BoundsOf([]Vector3{NewVector3(0, 0, 0), NewVector3(10, 20, 30)})

	if size := bbox.Size(); size != NewVector3(10, 20, 30) {
		t.Errorf("Size failed: expected (10, 20, 30), got %v", size)
	}
	if center := bbox.Center(); center != NewVector3(5, 10, 15) {
		t.Errorf("Center failed: expected (5, 10, 15), got %v", center)
	}
}

func TestTriangleAreaAndVolume(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	if area := tri.Area(); math.Abs(area-6.0) > epsilon {
		t.Errorf("Area failed: expected 6, got %v", area)
	}
	if n := tri.CalculateNormal(); n != NewVector3(0, 0, 1) {
		t.Errorf("CalculateNormal failed: expected (0, 0, 1), got %v", n)
	}

	// Tetrahedron from origin to a unit right triangle lifted to z=1
	lifted := NewTriangle(Vector3{}, NewVector3(0, 0, 1), NewVector3(1, 0, 1), NewVector3(0, 1, 1))
	if v := lifted.SignedVolume(); math.Abs(v-1.0/6.0) > epsilon {
		t.Errorf("SignedVolume failed: expected 1/6, got %v", v)
	}
}

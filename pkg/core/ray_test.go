package core

import (
	"errors"
	"testing"
)

func TestNewRay(t *testing.T) {
	origin := Point(1, 2, 3)
	direction := Vector(4, 5, 6)

	ray, err := NewRay(origin, direction)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ray.Origin.Equals(origin) || !ray.Direction.Equals(direction) {
		t.Errorf("Expected ray (%v, %v), got (%v, %v)", origin, direction, ray.Origin, ray.Direction)
	}

	if _, err := NewRay(direction, direction); !errors.Is(err, ErrNotPoint) {
		t.Errorf("Expected ErrNotPoint for vector origin, got %v", err)
	}
	if _, err := NewRay(origin, origin); !errors.Is(err, ErrNotVector) {
		t.Errorf("Expected ErrNotVector for point direction, got %v", err)
	}
}

func TestRay_Position(t *testing.T) {
	ray, err := NewRay(Point(2, 3, 4), Vector(1, 0, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		t        float64
		expected Tuple
	}{
		{t: 0, expected: Point(2, 3, 4)},
		{t: 1, expected: Point(3, 3, 4)},
		{t: -1, expected: Point(1, 3, 4)},
		{t: 2.5, expected: Point(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if got := ray.Position(tt.t); !got.Equals(tt.expected) {
			t.Errorf("Position(%v): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	ray, err := NewRay(Point(1, 2, 3), Vector(0, 1, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	translated := ray.Transform(Translation(3, 4, 5))
	if !translated.Origin.Equals(Point(4, 6, 8)) {
		t.Errorf("Expected origin (4, 6, 8), got %v", translated.Origin)
	}
	if !translated.Direction.Equals(Vector(0, 1, 0)) {
		t.Errorf("Expected direction unchanged, got %v", translated.Direction)
	}

	scaled := ray.Transform(Scaling(2, 3, 4))
	if !scaled.Origin.Equals(Point(2, 6, 12)) {
		t.Errorf("Expected origin (2, 6, 12), got %v", scaled.Origin)
	}
	if !scaled.Direction.Equals(Vector(0, 3, 0)) {
		t.Errorf("Expected direction (0, 3, 0), got %v", scaled.Direction)
	}

	// The source ray is untouched.
	if !ray.Origin.Equals(Point(1, 2, 3)) || !ray.Direction.Equals(Vector(0, 1, 0)) {
		t.Error("Transform mutated the original ray")
	}
}

package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/ipersids/go-ray-tracer/pkg/core"
)

func TestNewCamera(t *testing.T) {
	c, err := NewCamera(160, 120, math.Pi/2, core.Point(0, 0, 0), core.Point(0, 0, -1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Width != 160 || c.Height != 120 {
		t.Errorf("Expected 160x120, got %dx%d", c.Width, c.Height)
	}
	if c.FOV != math.Pi/2 {
		t.Errorf("Expected fov pi/2, got %v", c.FOV)
	}
}

func TestNewCamera_PixelSize(t *testing.T) {
	horizontal, err := NewCamera(200, 125, math.Pi/2, core.Point(0, 0, 0), core.Point(0, 0, -1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !core.ApproxEq(horizontal.pixelSize, 0.01) {
		t.Errorf("Expected pixel size 0.01, got %v", horizontal.pixelSize)
	}

	vertical, err := NewCamera(125, 200, math.Pi/2, core.Point(0, 0, 0), core.Point(0, 0, -1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !core.ApproxEq(vertical.pixelSize, 0.01) {
		t.Errorf("Expected pixel size 0.01, got %v", vertical.pixelSize)
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	c, err := NewCamera(201, 101, math.Pi/2, core.Point(0, 0, 0), core.Point(0, 0, -1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("through the center of the canvas", func(t *testing.T) {
		ray, err := c.RayForPixel(100, 50)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !ray.Origin.Equals(core.Point(0, 0, 0)) {
			t.Errorf("Expected origin at the eye, got %v", ray.Origin)
		}
		if !ray.Direction.Equals(core.Vector(0, 0, -1)) {
			t.Errorf("Expected direction (0, 0, -1), got %v", ray.Direction)
		}
	})

	t.Run("through a corner of the canvas", func(t *testing.T) {
		ray, err := c.RayForPixel(0, 0)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !ray.Direction.Equals(core.Vector(0.66519, 0.33259, -0.66851)) {
			t.Errorf("Expected direction (0.66519, 0.33259, -0.66851), got %v", ray.Direction)
		}
	})
}

func TestCamera_RayForPixel_Positioned(t *testing.T) {
	c, err := NewCamera(11, 11, math.Pi/2, core.Point(0, 0, 8), core.Point(0, 0, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray, err := c.RayForPixel(5, 5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ray.Origin.Equals(core.Point(0, 0, 8)) {
		t.Errorf("Expected origin (0, 0, 8), got %v", ray.Origin)
	}
	if !ray.Direction.Equals(core.Vector(0, 0, -1)) {
		t.Errorf("Expected direction (0, 0, -1), got %v", ray.Direction)
	}
}

func TestNewCamera_Degenerate(t *testing.T) {
	// The eye and target coincide: no gaze direction exists.
	if _, err := NewCamera(10, 10, math.Pi/2, core.Point(1, 2, 3), core.Point(1, 2, 3)); !errors.Is(err, core.ErrZeroDivisor) {
		t.Errorf("Expected ErrZeroDivisor, got %v", err)
	}
}

package geometry

import (
	"github.com/ipersids/go-ray-tracer/pkg/core"
	"github.com/ipersids/go-ray-tracer/pkg/material"
)

// Shape is the capability every primitive exposes to the world
// pipeline: intersection distances along a ray, the surface normal at
// a world-space point, and the surface material. Spheres are the only
// implementation today; new kinds plug in without touching world
// logic.
type Shape interface {
	// Intersect returns the distances along the ray where it meets the
	// shape, in ascending order. Distances may be negative; the caller
	// decides validity.
	Intersect(ray core.Ray) ([]float64, error)

	// NormalAt returns the world-space surface normal at a world-space
	// point on the shape.
	NormalAt(worldPoint core.Tuple) (core.Tuple, error)

	// Material returns the shape's surface material.
	Material() material.Material
}

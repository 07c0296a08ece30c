// Package scene aggregates shapes, a light and a camera into a
// renderable world and turns rays into colors.
package scene

import (
	"fmt"

	"github.com/ipersids/go-ray-tracer/pkg/core"
	"github.com/ipersids/go-ray-tracer/pkg/geometry"
	"github.com/ipersids/go-ray-tracer/pkg/material"
)

// World is the entire renderable scene: an ordered list of shapes and
// exactly one light. It must not be mutated during a render pass;
// read-only access is safe from any number of goroutines.
type World struct {
	Objects []geometry.Shape
	Light   material.Light
}

// Comps is the transient shading context derived from one
// intersection: the hit distance, the hit shape, the world-space hit
// point, the eye vector back toward the ray origin, whether the hit
// lies on the inside of the surface, and the (then flipped) normal.
type Comps struct {
	T      float64
	Object geometry.Shape
	Point  core.Tuple
	Eye    core.Tuple
	Inside bool
	Normal core.Tuple
}

// NewDefaultWorld builds the canonical two-sphere world: an outer
// green-ish sphere and an inner sphere scaled to half size, lit by a
// white point light at (-10, 10, -10).
func NewDefaultWorld() *World {
	s1 := geometry.NewSphere()
	m1 := material.Default()
	m1.Color = core.NewColor(0.8, 1.0, 0.6)
	m1.Diffuse = 0.7
	m1.Specular = 0.2
	s1.SetMaterial(m1)

	s2 := geometry.NewSphere()
	s2.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	light := material.Light{
		Position:  core.Point(-10, 10, -10),
		Intensity: core.White(),
	}

	return &World{
		Objects: []geometry.Shape{s1, s2},
		Light:   light,
	}
}

// Intersect collects the intersections of the ray with every object,
// tagged with the owning object's index, merged into one sorted
// ledger.
func (w *World) Intersect(ray core.Ray) (geometry.Intersections, error) {
	var xs geometry.Intersections
	for i, shape := range w.Objects {
		ts, err := shape.Intersect(ray)
		if err != nil {
			return geometry.Intersections{}, fmt.Errorf("object %d: %w", i, err)
		}
		for _, t := range ts {
			xs.Add(geometry.NewIntersection(t, i))
		}
	}
	return xs, nil
}

// PrepareComputations builds the shading context for one intersection.
// When the normal points away from the eye the hit is on the inside of
// the surface: the flag is set and the normal flipped so shading still
// faces the viewer.
func (w *World) PrepareComputations(hit geometry.Intersection, ray core.Ray) (Comps, error) {
	if hit.ShapeIndex < 0 || hit.ShapeIndex >= len(w.Objects) {
		return Comps{}, fmt.Errorf("shape index %d out of range", hit.ShapeIndex)
	}
	obj := w.Objects[hit.ShapeIndex]

	point := ray.Position(hit.T)
	eye, err := ray.Direction.Negate()
	if err != nil {
		return Comps{}, err
	}
	normal, err := obj.NormalAt(point)
	if err != nil {
		return Comps{}, err
	}

	inside := false
	d, err := normal.Dot(eye)
	if err != nil {
		return Comps{}, err
	}
	if d < 0 {
		inside = true
		normal, err = normal.Negate()
		if err != nil {
			return Comps{}, err
		}
	}

	return Comps{
		T:      hit.T,
		Object: obj,
		Point:  point,
		Eye:    eye,
		Inside: inside,
		Normal: normal,
	}, nil
}

// ShadeHit evaluates the lighting model for a prepared shading
// context.
func (w *World) ShadeHit(comps Comps) (core.Color, error) {
	return material.Lighting(comps.Object.Material(), w.Light, comps.Point, comps.Eye, comps.Normal)
}

// ColorAt is the single entry point of the rendering pipeline: it
// intersects the ray with the world, picks the nearest valid hit and
// shades it, or returns background black when the ray misses
// everything.
func (w *World) ColorAt(ray core.Ray) (core.Color, error) {
	xs, err := w.Intersect(ray)
	if err != nil {
		return core.Color{}, err
	}
	hit, ok := xs.Hit()
	if !ok {
		return core.Black(), nil
	}
	comps, err := w.PrepareComputations(hit, ray)
	if err != nil {
		return core.Color{}, err
	}
	return w.ShadeHit(comps)
}

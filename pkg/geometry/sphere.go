package geometry

import (
	"math"

	"github.com/ipersids/go-ray-tracer/pkg/core"
	"github.com/ipersids/go-ray-tracer/pkg/material"
)

// Sphere is a unit sphere at the origin of its own object space. Its
// placement and size in the world come from the object-to-world
// transform; the material describes its surface. A sphere is mutable
// during setup and must not change during a render pass.
type Sphere struct {
	Origin    core.Tuple
	Radius    float64
	transform core.Matrix4
	material  material.Material
}

// NewSphere creates a unit sphere with the identity transform and the
// default material.
func NewSphere() *Sphere {
	return &Sphere{
		Origin:    core.Point(0, 0, 0),
		Radius:    1,
		transform: core.Identity(),
		material:  material.Default(),
	}
}

// SetTransform replaces the object-to-world transform.
func (s *Sphere) SetTransform(m core.Matrix4) {
	s.transform = m
}

// Transform returns the object-to-world transform.
func (s *Sphere) Transform() core.Matrix4 {
	return s.transform
}

// SetMaterial replaces the surface material.
func (s *Sphere) SetMaterial(m material.Material) {
	s.material = m
}

// Material returns the surface material.
func (s *Sphere) Material() material.Material {
	return s.material
}

// Intersect transforms the ray into object space and solves the
// ray/unit-sphere quadratic. It returns both roots in ascending order
// (they may be negative or equal), an empty result when the ray
// misses, or an error when the sphere's transform is degenerate.
func (s *Sphere) Intersect(ray core.Ray) ([]float64, error) {
	inv, err := s.transform.Inverse()
	if err != nil {
		return nil, err
	}
	local := ray.Transform(inv)

	sphereToRay, err := local.Origin.Subtract(s.Origin)
	if err != nil {
		return nil, err
	}
	a, err := local.Direction.Dot(local.Direction)
	if err != nil {
		return nil, err
	}
	db, err := local.Direction.Dot(sphereToRay)
	if err != nil {
		return nil, err
	}
	oc, err := sphereToRay.Dot(sphereToRay)
	if err != nil {
		return nil, err
	}

	b := 2 * db
	c := oc - s.Radius*s.Radius
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil, nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{
		(-b - sqrtD) / (2 * a),
		(-b + sqrtD) / (2 * a),
	}, nil
}

// NormalAt maps a world-space surface point into object space, takes
// the normal there and maps it back through the transpose of the
// inverse transform. The w component is forced to zero first: with
// non-uniform scaling the transposed inverse smuggles translation
// terms into w.
func (s *Sphere) NormalAt(worldPoint core.Tuple) (core.Tuple, error) {
	if !worldPoint.IsPoint() {
		return core.Tuple{}, core.ErrNotPoint
	}
	inv, err := s.transform.Inverse()
	if err != nil {
		return core.Tuple{}, err
	}

	objectPoint := inv.MultiplyTuple(worldPoint)
	objectNormal, err := objectPoint.Subtract(s.Origin)
	if err != nil {
		return core.Tuple{}, err
	}

	worldNormal := inv.Transpose().MultiplyTuple(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}

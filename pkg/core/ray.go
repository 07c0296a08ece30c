package core

// Ray is a half-line with a point origin and a vector direction.
// Rays are constructed per query and immutable.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay validates that origin is a point and direction is a vector.
func NewRay(origin, direction Tuple) (Ray, error) {
	if !origin.IsPoint() {
		return Ray{}, ErrNotPoint
	}
	if !direction.IsVector() {
		return Ray{}, ErrNotVector
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// Position returns the point at distance t along the ray.
func (r Ray) Position(t float64) Tuple {
	return Tuple{
		X: r.Origin.X + r.Direction.X*t,
		Y: r.Origin.Y + r.Direction.Y*t,
		Z: r.Origin.Z + r.Direction.Z*t,
		W: r.Origin.W,
	}
}

// Transform returns a new ray with origin and direction premultiplied
// by the matrix. The direction keeps w=0, so the translation column
// contributes nothing to it.
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}

package core

import "math"

const (
	pointW  = 1.0
	vectorW = 0.0
)

// Tuple represents a point (w=1) or a vector (w=0) in 3D space.
// Tuples are immutable values; every operation returns a new Tuple.
type Tuple struct {
	X, Y, Z, W float64
}

// Point creates a tuple with w=1.
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: pointW}
}

// Vector creates a tuple with w=0.
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: vectorW}
}

// IsPoint reports whether the tuple is a point.
func (t Tuple) IsPoint() bool {
	return ApproxEq(t.W, pointW)
}

// IsVector reports whether the tuple is a vector.
func (t Tuple) IsVector() bool {
	return ApproxEq(t.W, vectorW)
}

// Equals compares all four components within Epsilon.
func (t Tuple) Equals(other Tuple) bool {
	return ApproxEq(t.X, other.X) &&
		ApproxEq(t.Y, other.Y) &&
		ApproxEq(t.Z, other.Z) &&
		ApproxEq(t.W, other.W)
}

// Add returns the sum of two tuples. Validity is decided by the
// resulting w alone: vector+vector is a vector, point+vector is a
// point, and point+point is rejected with ErrInvalidW.
func (t Tuple) Add(other Tuple) (Tuple, error) {
	w := t.W + other.W
	if !ApproxEq(w, vectorW) && !ApproxEq(w, pointW) {
		return Tuple{}, ErrInvalidW
	}
	return Tuple{X: t.X + other.X, Y: t.Y + other.Y, Z: t.Z + other.Z, W: w}, nil
}

// Subtract returns the difference of two tuples. Point-point and
// vector-vector yield vectors, point-vector yields a point; vector
// minus point is rejected with ErrInvalidW.
func (t Tuple) Subtract(other Tuple) (Tuple, error) {
	w := t.W - other.W
	if !ApproxEq(w, vectorW) && !ApproxEq(w, pointW) {
		return Tuple{}, ErrInvalidW
	}
	return Tuple{X: t.X - other.X, Y: t.Y - other.Y, Z: t.Z - other.Z, W: w}, nil
}

// Negate returns the opposite vector. Points cannot be negated.
func (t Tuple) Negate() (Tuple, error) {
	if !t.IsVector() {
		return Tuple{}, ErrNotVector
	}
	return Tuple{X: -t.X, Y: -t.Y, Z: -t.Z, W: t.W}, nil
}

// Multiply returns the tuple scaled by a scalar.
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{X: t.X * scalar, Y: t.Y * scalar, Z: t.Z * scalar, W: t.W * scalar}
}

// Divide returns the tuple divided by a scalar.
func (t Tuple) Divide(scalar float64) (Tuple, error) {
	if scalar == 0 {
		return Tuple{}, ErrZeroDivisor
	}
	return t.Multiply(1 / scalar), nil
}

// Magnitude returns the length of a vector.
func (t Tuple) Magnitude() (float64, error) {
	if !t.IsVector() {
		return 0, ErrNotVector
	}
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z), nil
}

// Normalize converts a vector to a unit vector in the same direction.
// Normalizing a zero-length vector returns ErrZeroDivisor.
func (t Tuple) Normalize() (Tuple, error) {
	length, err := t.Magnitude()
	if err != nil {
		return Tuple{}, err
	}
	return t.Divide(length)
}

// Dot returns the dot product of two vectors.
func (t Tuple) Dot(other Tuple) (float64, error) {
	if !t.IsVector() || !other.IsVector() {
		return 0, ErrNotVector
	}
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z, nil
}

// Cross returns the cross product of two vectors.
func (t Tuple) Cross(other Tuple) (Tuple, error) {
	if !t.IsVector() || !other.IsVector() {
		return Tuple{}, ErrNotVector
	}
	return Tuple{
		X: t.Y*other.Z - t.Z*other.Y,
		Y: t.Z*other.X - t.X*other.Z,
		Z: t.X*other.Y - t.Y*other.X,
		W: vectorW,
	}, nil
}

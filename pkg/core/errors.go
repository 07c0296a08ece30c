package core

import "errors"

// Geometric precondition violations. These are contract errors at the
// boundary of the algebra layer: the operation would produce silently
// wrong geometry, so it is rejected instead.
var (
	// ErrNotPoint is returned when an operation requires a point (w=1).
	ErrNotPoint = errors.New("tuple is not a point")

	// ErrNotVector is returned when a vector-only operation is applied
	// to a point.
	ErrNotVector = errors.New("tuple is not a vector")

	// ErrInvalidW is returned when adding or subtracting tuples would
	// produce a w component that marks neither a point nor a vector,
	// e.g. adding two points.
	ErrInvalidW = errors.New("result is neither a point nor a vector")

	// ErrZeroDivisor is returned by scalar division by zero, including
	// normalizing a zero-length vector.
	ErrZeroDivisor = errors.New("division by zero")

	// ErrNotInvertible is returned when a matrix determinant is
	// approximately zero.
	ErrNotInvertible = errors.New("matrix is not invertible")
)

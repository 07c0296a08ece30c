package core

import "math"

// Epsilon is the tolerance used for every geometric comparison in the
// tracer: tuple and matrix equality, point/vector classification and
// invertibility checks all go through ApproxEq so numerical behavior
// stays consistent between components.
const Epsilon = 1e-5

// ApproxEq reports whether two floats are equal within Epsilon.
func ApproxEq(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

package core

import "math"

// Translation returns a matrix that moves points by (x, y, z).
// Vectors are unaffected because their w component is zero.
func Translation(x, y, z float64) Matrix4 {
	res := Identity()
	res[0][3] = x
	res[1][3] = y
	res[2][3] = z
	return res
}

// Scaling returns a matrix that scales each axis independently.
func Scaling(x, y, z float64) Matrix4 {
	res := Identity()
	res[0][0] = x
	res[1][1] = y
	res[2][2] = z
	return res
}

// RotationX returns a right-handed rotation around the x axis.
func RotationX(radians float64) Matrix4 {
	res := Identity()
	res[1][1] = math.Cos(radians)
	res[1][2] = -math.Sin(radians)
	res[2][1] = math.Sin(radians)
	res[2][2] = math.Cos(radians)
	return res
}

// RotationY returns a right-handed rotation around the y axis.
func RotationY(radians float64) Matrix4 {
	res := Identity()
	res[0][0] = math.Cos(radians)
	res[0][2] = math.Sin(radians)
	res[2][0] = -math.Sin(radians)
	res[2][2] = math.Cos(radians)
	return res
}

// RotationZ returns a right-handed rotation around the z axis.
func RotationZ(radians float64) Matrix4 {
	res := Identity()
	res[0][0] = math.Cos(radians)
	res[0][1] = -math.Sin(radians)
	res[1][0] = math.Sin(radians)
	res[1][1] = math.Cos(radians)
	return res
}

// Shearing returns a matrix where each coordinate shifts in proportion
// to the other two: xy is the shear of x in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix4 {
	res := Identity()
	res[0][1] = xy
	res[0][2] = xz
	res[1][0] = yx
	res[1][2] = yz
	res[2][0] = zx
	res[2][1] = zy
	return res
}

// ViewTransform builds the matrix mapping world space into camera
// space from an eye position, a look-at target and an up vector. The
// forward, left and true-up axes are orthonormalized from to-from and
// up, then combined with a translation by -from.
func ViewTransform(from, to, up Tuple) (Matrix4, error) {
	if !from.IsPoint() || !to.IsPoint() {
		return Matrix4{}, ErrNotPoint
	}
	gaze, err := to.Subtract(from)
	if err != nil {
		return Matrix4{}, err
	}
	forward, err := gaze.Normalize()
	if err != nil {
		return Matrix4{}, err
	}
	upn, err := up.Normalize()
	if err != nil {
		return Matrix4{}, err
	}
	left, err := forward.Cross(upn)
	if err != nil {
		return Matrix4{}, err
	}
	trueUp, err := left.Cross(forward)
	if err != nil {
		return Matrix4{}, err
	}
	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z)), nil
}

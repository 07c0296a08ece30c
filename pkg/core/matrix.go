package core

// Matrix4 is a 4x4 matrix in row-major order, the only size transforms
// ever need. Determinants recurse through unexported 3x3 and 2x2
// helpers instead of a runtime-sized matrix type.
type Matrix4 [4][4]float64

// Identity returns the 4x4 identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Equals compares all entries within Epsilon.
func (m Matrix4) Equals(other Matrix4) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !ApproxEq(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix4) Transpose() Matrix4 {
	var res Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			res[col][row] = m[row][col]
		}
	}
	return res
}

// Multiply returns the matrix product m * other.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var res Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			for i := 0; i < 4; i++ {
				res[row][col] += m[row][i] * other[i][col]
			}
		}
	}
	return res
}

// MultiplyTuple returns the matrix applied to a tuple.
func (m Matrix4) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Submatrix drops one row and one column.
func (m Matrix4) Submatrix(rmRow, rmCol int) Matrix3 {
	var res Matrix3
	row := 0
	for srcRow := 0; srcRow < 4; srcRow++ {
		if srcRow == rmRow {
			continue
		}
		col := 0
		for srcCol := 0; srcCol < 4; srcCol++ {
			if srcCol == rmCol {
				continue
			}
			res[row][col] = m[srcRow][srcCol]
			col++
		}
		row++
	}
	return res
}

// Minor returns the determinant of the submatrix at (row, col).
func (m Matrix4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor with sign (-1)^(row+col).
func (m Matrix4) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along the
// first row.
func (m Matrix4) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the determinant is not approximately zero.
func (m Matrix4) IsInvertible() bool {
	return !ApproxEq(m.Determinant(), 0)
}

// Inverse returns the inverse as the transposed cofactor matrix divided
// by the determinant. Returns ErrNotInvertible when the determinant is
// approximately zero.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if ApproxEq(det, 0) {
		return Matrix4{}, ErrNotInvertible
	}
	var res Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			res[col][row] = m.Cofactor(row, col) / det
		}
	}
	return res, nil
}

// Matrix3 is the 3x3 submatrix type produced during cofactor expansion.
type Matrix3 [3][3]float64

// Submatrix drops one row and one column.
func (m Matrix3) Submatrix(rmRow, rmCol int) Matrix2 {
	var res Matrix2
	row := 0
	for srcRow := 0; srcRow < 3; srcRow++ {
		if srcRow == rmRow {
			continue
		}
		col := 0
		for srcCol := 0; srcCol < 3; srcCol++ {
			if srcCol == rmCol {
				continue
			}
			res[row][col] = m[srcRow][srcCol]
			col++
		}
		row++
	}
	return res
}

// Minor returns the determinant of the submatrix at (row, col).
func (m Matrix3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor with sign (-1)^(row+col).
func (m Matrix3) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along the
// first row.
func (m Matrix3) Determinant() float64 {
	det := 0.0
	for col := 0; col < 3; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Matrix2 is the 2x2 base case of the cofactor recursion.
type Matrix2 [2][2]float64

// Determinant returns ad - bc.
func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[1][0]*m[0][1]
}

package math

// Mat3 is a 3x3 matrix stored column-major as [col][row].
// Used for normal matrices and orientation-only transforms.
type Mat3 [3][3]float32

func Mat3Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mat3 extracts the upper-left 3x3 block (rotation+scale part) of m.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// ToMat4 widens m to a 4x4 with identity in the last row/column.
func (m Mat3) ToMat4() Mat4 {
	return Mat4{
		{m[0][0], m[0][1], m[0][2], 0},
		{m[1][0], m[1][1], m[1][2], 0},
		{m[2][0], m[2][1], m[2][2], 0},
		{0, 0, 0, 1},
	}
}

func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}

func (m Mat3) Transpose() Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[j][i]
		}
	}
	return result
}

// Inverse returns the inverse of m via the adjugate, or identity if singular.
func (m Mat3) Inverse() Mat3 {
	// Cofactors of the row-major interpretation; the flat layout is
	// symmetric so the same expansion works column-major.
	c00 := m[1][1]*m[2][2] - m[2][1]*m[1][2]
	c01 := m[2][0]*m[1][2] - m[1][0]*m[2][2]
	c02 := m[1][0]*m[2][1] - m[2][0]*m[1][1]

	det := m[0][0]*c00 + m[0][1]*c01 + m[0][2]*c02
	if det == 0 {
		return Mat3Identity()
	}
	inv := 1 / det

	return Mat3{
		{c00 * inv, (m[2][1]*m[0][2] - m[0][1]*m[2][2]) * inv, (m[0][1]*m[1][2] - m[1][1]*m[0][2]) * inv},
		{c01 * inv, (m[0][0]*m[2][2] - m[2][0]*m[0][2]) * inv, (m[1][0]*m[0][2] - m[0][0]*m[1][2]) * inv},
		{c02 * inv, (m[2][0]*m[0][1] - m[0][0]*m[2][1]) * inv, (m[0][0]*m[1][1] - m[1][0]*m[0][1]) * inv},
	}
}

// NormalMatrix returns the inverse-transpose of the upper 3x3 of a model
// matrix, for transforming normals under non-uniform scale.
func (m Mat4) NormalMatrix() Mat3 {
	return m.Mat3().Inverse().Transpose()
}

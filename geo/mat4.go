package geo

import "math"

// Mat4 is a 4x4 affine matrix in row-major logical order: m[row][col].
type Mat4 [4][4]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate builds a translation matrix.
func Translate(v V3) Mat4 {
	m := Identity()
	m[0][3] = v.X
	m[1][3] = v.Y
	m[2][3] = v.Z
	return m
}

// Scale builds a scale matrix.
func Scale(v V3) Mat4 {
	m := Identity()
	m[0][0] = v.X
	m[1][1] = v.Y
	m[2][2] = v.Z
	return m
}

// Rotate builds a rotation matrix of angle radians around axis.
func Rotate(axis V3, angle float64) Mat4 {
	v, ok := axis.Normalize()
	if !ok {
		return Identity()
	}
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c

	return Mat4{
		{t*v.X*v.X + c, t*v.X*v.Y - v.Z*s, t*v.Z*v.X + v.Y*s, 0},
		{t*v.X*v.Y + v.Z*s, t*v.Y*v.Y + c, t*v.Y*v.Z - v.X*s, 0},
		{t*v.Z*v.X - v.Y*s, t*v.Y*v.Z + v.X*s, t*v.Z*v.Z + c, 0},
		{0, 0, 0, 1},
	}
}

// Mul composes two matrices (m applied after other, i.e. m*other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[row][k] * other[k][col]
			}
			r[row][col] = sum
		}
	}
	return r
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[col][row] = m[row][col]
		}
	}
	return r
}

// TransformPoint applies m to p as a homogeneous point (w=1).
func (m Mat4) TransformPoint(p V3) V3 {
	return V3{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// TransformDirection applies the upper-left 3x3 of m to v without
// translation, matching the "transform-normal" contract of spec §3: the
// result is renormalized. Used both for surface normals and for ray
// directions (spec §3 "Transform by an affine matrix transforms ...
// direction as a normal").
func (m Mat4) TransformDirection(v V3) V3 {
	d := V3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
	if n, ok := d.Normalize(); ok {
		return n
	}
	return d
}

// Determinant computes the 4x4 determinant.
func (m Mat4) Determinant() float64 {
	d := m
	return d[0][0]*d[1][1]*d[2][2]*d[3][3] - d[0][0]*d[1][1]*d[2][3]*d[3][2] +
		d[0][0]*d[1][2]*d[2][3]*d[3][1] - d[0][0]*d[1][2]*d[2][1]*d[3][3] +
		d[0][0]*d[1][3]*d[2][1]*d[3][2] - d[0][0]*d[1][3]*d[2][2]*d[3][1] -
		d[0][1]*d[1][2]*d[2][3]*d[3][0] + d[0][1]*d[1][2]*d[2][0]*d[3][3] -
		d[0][1]*d[1][3]*d[2][0]*d[3][2] + d[0][1]*d[1][3]*d[2][2]*d[3][0] -
		d[0][1]*d[1][0]*d[2][2]*d[3][3] + d[0][1]*d[1][0]*d[2][3]*d[3][2] +
		d[0][2]*d[1][3]*d[2][0]*d[3][1] - d[0][2]*d[1][3]*d[2][1]*d[3][0] +
		d[0][2]*d[1][0]*d[2][1]*d[3][3] - d[0][2]*d[1][0]*d[2][3]*d[3][1] +
		d[0][2]*d[1][1]*d[2][3]*d[3][0] - d[0][2]*d[1][1]*d[2][0]*d[3][3] -
		d[0][3]*d[1][0]*d[2][1]*d[3][2] + d[0][3]*d[1][0]*d[2][2]*d[3][1] -
		d[0][3]*d[1][1]*d[2][2]*d[3][0] + d[0][3]*d[1][1]*d[2][0]*d[3][2] -
		d[0][3]*d[1][2]*d[2][0]*d[3][1] + d[0][3]*d[1][2]*d[2][1]*d[3][0]
}

// Inverse computes the full 4x4 inverse. ok is false for a singular matrix
// (per spec §7, this is a runtime-degenerate case, not a construction-time
// programmer error, so it returns a bool rather than panicking).
func (m Mat4) Inverse() (Mat4, bool) {
	det := m.Determinant()
	if det == 0 {
		return Mat4{}, false
	}

	d := m
	var r Mat4
	r[0][0] = (d[1][2]*d[2][3]*d[3][1] - d[1][3]*d[2][2]*d[3][1] + d[1][3]*d[2][1]*d[3][2] - d[1][1]*d[2][3]*d[3][2] - d[1][2]*d[2][1]*d[3][3] + d[1][1]*d[2][2]*d[3][3]) / det
	r[0][1] = (d[0][3]*d[2][2]*d[3][1] - d[0][2]*d[2][3]*d[3][1] - d[0][3]*d[2][1]*d[3][2] + d[0][1]*d[2][3]*d[3][2] + d[0][2]*d[2][1]*d[3][3] - d[0][1]*d[2][2]*d[3][3]) / det
	r[0][2] = (d[0][2]*d[1][3]*d[3][1] - d[0][3]*d[1][2]*d[3][1] + d[0][3]*d[1][1]*d[3][2] - d[0][1]*d[1][3]*d[3][2] - d[0][2]*d[1][1]*d[3][3] + d[0][1]*d[1][2]*d[3][3]) / det
	r[0][3] = (d[0][3]*d[1][2]*d[2][1] - d[0][2]*d[1][3]*d[2][1] - d[0][3]*d[1][1]*d[2][2] + d[0][1]*d[1][3]*d[2][2] + d[0][2]*d[1][1]*d[2][3] - d[0][1]*d[1][2]*d[2][3]) / det
	r[1][0] = (d[1][3]*d[2][2]*d[3][0] - d[1][2]*d[2][3]*d[3][0] - d[1][3]*d[2][0]*d[3][2] + d[1][0]*d[2][3]*d[3][2] + d[1][2]*d[2][0]*d[3][3] - d[1][0]*d[2][2]*d[3][3]) / det
	r[1][1] = (d[0][2]*d[2][3]*d[3][0] - d[0][3]*d[2][2]*d[3][0] + d[0][3]*d[2][0]*d[3][2] - d[0][0]*d[2][3]*d[3][2] - d[0][2]*d[2][0]*d[3][3] + d[0][0]*d[2][2]*d[3][3]) / det
	r[1][2] = (d[0][3]*d[1][2]*d[3][0] - d[0][2]*d[1][3]*d[3][0] - d[0][3]*d[1][0]*d[3][2] + d[0][0]*d[1][3]*d[3][2] + d[0][2]*d[1][0]*d[3][3] - d[0][0]*d[1][2]*d[3][3]) / det
	r[1][3] = (d[0][2]*d[1][3]*d[2][0] - d[0][3]*d[1][2]*d[2][0] + d[0][3]*d[1][0]*d[2][2] - d[0][0]*d[1][3]*d[2][2] - d[0][2]*d[1][0]*d[2][3] + d[0][0]*d[1][2]*d[2][3]) / det
	r[2][0] = (d[1][1]*d[2][3]*d[3][0] - d[1][3]*d[2][1]*d[3][0] + d[1][3]*d[2][0]*d[3][1] - d[1][0]*d[2][3]*d[3][1] - d[1][1]*d[2][0]*d[3][3] + d[1][0]*d[2][1]*d[3][3]) / det
	r[2][1] = (d[0][3]*d[2][1]*d[3][0] - d[0][1]*d[2][3]*d[3][0] - d[0][3]*d[2][0]*d[3][1] + d[0][0]*d[2][3]*d[3][1] + d[0][1]*d[2][0]*d[3][3] - d[0][0]*d[2][1]*d[3][3]) / det
	r[2][2] = (d[0][1]*d[1][3]*d[3][0] - d[0][3]*d[1][1]*d[3][0] + d[0][3]*d[1][0]*d[3][1] - d[0][0]*d[1][3]*d[3][1] - d[0][1]*d[1][0]*d[3][3] + d[0][0]*d[1][1]*d[3][3]) / det
	r[2][3] = (d[0][3]*d[1][1]*d[2][0] - d[0][1]*d[1][3]*d[2][0] - d[0][3]*d[1][0]*d[2][1] + d[0][0]*d[1][3]*d[2][1] + d[0][1]*d[1][0]*d[2][3] - d[0][0]*d[1][1]*d[2][3]) / det
	r[3][0] = (d[1][2]*d[2][1]*d[3][0] - d[1][1]*d[2][2]*d[3][0] - d[1][2]*d[2][0]*d[3][1] + d[1][0]*d[2][2]*d[3][1] + d[1][1]*d[2][0]*d[3][2] - d[1][0]*d[2][1]*d[3][2]) / det
	r[3][1] = (d[0][1]*d[2][2]*d[3][0] - d[0][2]*d[2][1]*d[3][0] + d[0][2]*d[2][0]*d[3][1] - d[0][0]*d[2][2]*d[3][1] - d[0][1]*d[2][0]*d[3][2] + d[0][0]*d[2][1]*d[3][2]) / det
	r[3][2] = (d[0][2]*d[1][1]*d[3][0] - d[0][1]*d[1][2]*d[3][0] - d[0][2]*d[1][0]*d[3][1] + d[0][0]*d[1][2]*d[3][1] + d[0][1]*d[1][0]*d[3][2] - d[0][0]*d[1][1]*d[3][2]) / det
	r[3][3] = (d[0][1]*d[1][2]*d[2][0] - d[0][2]*d[1][1]*d[2][0] + d[0][2]*d[1][0]*d[2][1] - d[0][0]*d[1][2]*d[2][1] - d[0][1]*d[1][0]*d[2][2] + d[0][0]*d[1][1]*d[2][2]) / det

	return r, true
}

package iso

import "math"

// IJ is a point in the diagonal projection plane used as an
// intermediate step between voxel space and the final cartesian plane.
type IJ struct{ I, J int }

// XY is a point in the final cartesian plane.
type XY struct{ X, Y float64 }

var (
	isoCos30 = math.Sqrt(3) / 2
	isoSin30 = 0.5
)

// projectIJ maps a voxel to its IJ coordinate.
func projectIJ(v Voxel) IJ { return IJ{I: v.X - v.Z, J: v.Y - v.Z} }

// projectIso maps an IJ coordinate to the cartesian plane.
func projectIso(p IJ) XY {
	i, j := float64(p.I), float64(p.J)
	return XY{
		X: i*isoCos30 - j*isoCos30,
		Y: i*isoSin30 + j*isoSin30,
	}
}

// nearness scores a voxel for the painter's pass; higher is closer to
// the viewer.
func nearness(v Voxel) int { return v.X + v.Y + v.Z }

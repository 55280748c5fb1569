// Package geo implements the shared geometric core: vector algebra, rays,
// axis-aligned bounding boxes, affine matrices and the analytic primitive
// intersectors every renderer in this module builds on.
package geo

import "math"

// Axis indexes one of the three components of a V3.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// V3 is a three-component vector of f64s, used both as a point and a
// direction depending on context.
type V3 struct {
	X, Y, Z float64
}

// Zero is the additive identity.
var Zero = V3{}

// NewV3 builds a vector from its three components.
func NewV3(x, y, z float64) V3 { return V3{x, y, z} }

// Get returns the component addressed by axis.
func (v V3) Get(axis Axis) float64 {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// With returns a copy of v with the component addressed by axis replaced.
func (v V3) With(axis Axis, value float64) V3 {
	switch axis {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}

func (v V3) Add(o V3) V3 { return V3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v V3) Sub(o V3) V3 { return V3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v V3) Mul(o V3) V3 { return V3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v V3) Div(o V3) V3 { return V3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

// Scale multiplies every component by a scalar.
func (v V3) Scale(s float64) V3 { return V3{v.X * s, v.Y * s, v.Z * s} }

// Negate returns -v.
func (v V3) Negate() V3 { return V3{-v.X, -v.Y, -v.Z} }

func (v V3) Dot(o V3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v V3) Cross(o V3) V3 {
	return V3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// NormSquared is the squared Euclidean norm, cheaper than Norm when only
// used for comparisons.
func (v V3) NormSquared() float64 { return v.Dot(v) }

// Norm is the Euclidean length of v.
func (v V3) Norm() float64 { return math.Sqrt(v.NormSquared()) }

// Normalize returns v scaled to unit length. ok is false when v is
// zero-length, in which case v itself is returned unchanged — callers must
// check ok before trusting the result, per the "no silent degenerate
// results during geometry" rule.
func (v V3) Normalize() (V3, bool) {
	n := v.Norm()
	if n == 0 {
		return v, false
	}
	return v.Scale(1 / n), true
}

// Lerp linearly interpolates between v and o at parameter t.
func (v V3) Lerp(o V3, t float64) V3 { return v.Add(o.Sub(v).Scale(t)) }

// Min returns the componentwise minimum of v and o.
func (v V3) Min(o V3) V3 {
	return V3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

// Max returns the componentwise maximum of v and o.
func (v V3) Max(o V3) V3 {
	return V3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// Abs returns the componentwise absolute value of v.
func (v V3) Abs() V3 { return V3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }

// MaxComponent returns the largest of the three components.
func (v V3) MaxComponent() float64 { return math.Max(v.X, math.Max(v.Y, v.Z)) }

// Reflect reflects v about the unit normal n (v - 2*dot(v,n)*n).
func (v V3) Reflect(n V3) V3 { return v.Sub(n.Scale(2 * v.Dot(n))) }

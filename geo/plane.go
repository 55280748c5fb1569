package geo

import "math"

// Plane is an infinite plane defined by a point on the plane and its unit
// normal.
type Plane struct {
	Point  V3
	Normal V3
}

// Bbox returns a box spanning all three axes to infinity, used by the BVH
// to siphon infinite shapes into its unconditional list (spec §4.1).
func (p Plane) Bbox() Aabb {
	inf := math.Inf(1)
	ninf := math.Inf(-1)
	return Aabb{Min: V3{ninf, ninf, ninf}, Max: V3{inf, inf, inf}}
}

// RayIntersection returns the parametric distance to the plane, or ok=false
// if the ray is (near-)parallel to the plane or the hit is behind the
// origin.
func (p Plane) RayIntersection(r Ray) (float64, bool) {
	d := p.Normal.Dot(r.Dir)
	if math.Abs(d) < 1e-6 {
		return 0, false
	}

	a := p.Point.Sub(r.Origin)
	t := a.Dot(p.Normal) / d
	if t < 1e-6 {
		return 0, false
	}
	return t, true
}

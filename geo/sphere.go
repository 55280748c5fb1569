package geo

import "math"

// Sphere is defined by a center and radius.
type Sphere struct {
	Center V3
	Radius float64
}

// Bbox is the axis-aligned box tightly enclosing the sphere.
func (s Sphere) Bbox() Aabb {
	return Aabb{Min: s.Center.Sub(V3{s.Radius, s.Radius, s.Radius}), Max: s.Center.Add(V3{s.Radius, s.Radius, s.Radius})}
}

// NormalAt returns the outward unit normal at a point assumed to lie on the
// sphere's surface.
func (s Sphere) NormalAt(p V3) V3 {
	n, _ := p.Sub(s.Center).Normalize()
	return n
}

// RayIntersection returns the closest positive-t root of the sphere's
// quadratic, or ok=false if the ray misses or both roots are behind the
// origin.
func (s Sphere) RayIntersection(r Ray) (float64, bool) {
	oc := r.Origin.Sub(s.Center)

	a := r.Dir.Dot(r.Dir)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discr := b*b - a*c
	if discr < 0 {
		return 0, false
	}

	sq := math.Sqrt(discr)
	t0 := (-b - sq) / a
	if t0 > 1e-9 {
		return t0, true
	}

	t1 := (-b + sq) / a
	if t1 > 1e-9 {
		return t1, true
	}

	return 0, false
}

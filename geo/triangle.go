package geo

import "math"

// Triangle is a flat triangle defined by its three vertices.
type Triangle struct {
	A, B, C V3
}

// Area is half the magnitude of the cross product of two edges; zero for
// degenerate (collinear) triangles.
func (t Triangle) Area() float64 {
	e0 := t.B.Sub(t.A)
	e1 := t.C.Sub(t.A)
	return e0.Cross(e1).Norm() / 2
}

// Normal is the unit normal (B-A) x (C-A). Degenerate triangles return the
// zero vector (callers should check Area first if this matters).
func (t Triangle) Normal() V3 {
	e0 := t.B.Sub(t.A)
	e1 := t.C.Sub(t.A)
	n, _ := e0.Cross(e1).Normalize()
	return n
}

// Centroid is the average of the three vertices.
func (t Triangle) Centroid() V3 {
	return t.A.Add(t.B).Add(t.C).Scale(1.0 / 3.0)
}

// Bbox is the bounding box of the triangle's three vertices.
func (t Triangle) Bbox() Aabb {
	return NewAabb(t.A).Expanded(t.B).Expanded(t.C)
}

// Barycentric computes the barycentric coordinates (alpha, beta, gamma) of
// p with respect to the triangle, where p = alpha*A + beta*B + gamma*C.
// ok is false if p lies outside the triangle or the triangle is
// degenerate.
func (t Triangle) Barycentric(p V3) (alpha, beta, gamma float64, ok bool) {
	e0 := t.C.Sub(t.A)
	e1 := t.B.Sub(t.A)
	ep := p.Sub(t.A)

	dot00 := e0.Dot(e0)
	dot01 := e0.Dot(e1)
	dot11 := e1.Dot(e1)
	den := dot00*dot11 - dot01*dot01
	if den == 0 {
		return 0, 0, 0, false
	}

	dot12 := e1.Dot(ep)
	dot02 := e0.Dot(ep)

	u := (dot11*dot02 - dot01*dot12) / den
	v := (dot00*dot12 - dot01*dot02) / den

	if u < 0 || v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}
	return 1 - u - v, v, u, true
}

// RayIntersection implements the Möller-Trumbore algorithm with a 1e-9
// determinant tolerance, returning the closest positive-t hit.
func (t Triangle) RayIntersection(r Ray) (float64, bool) {
	e1 := t.B.Sub(t.A)
	e2 := t.C.Sub(t.A)

	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < 1e-9 {
		return 0, false
	}

	inv := 1 / det
	tv := r.Origin.Sub(t.A)
	u := tv.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := tv.Cross(e1)
	v := r.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	d := e2.Dot(q) * inv
	if d < 1e-9 {
		return 0, false
	}
	return d, true
}

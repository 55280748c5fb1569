package sdf

import (
	"math"

	"github.com/mirgo-labs/r3d/geo"
)

// Union returns the surface occupied by either a or b.
func Union(a, b Sdf) Sdf {
	return New(a.bbox.Union(b.bbox), func(p geo.V3) float64 {
		return math.Min(a.dist(p), b.dist(p))
	})
}

// Intersection returns the surface occupied by both a and b. If the two
// bounding boxes don't overlap the result's bbox collapses to the
// origin, mirroring the upstream convention of never constructing an
// invalid box for a degenerate intersection.
func Intersection(a, b Sdf) Sdf {
	box, ok := a.bbox.Intersection(b.bbox)
	if !ok {
		box = geo.NewAabb(geo.V3{})
	}
	return New(box, func(p geo.V3) float64 {
		return math.Max(a.dist(p), b.dist(p))
	})
}

// Difference returns a with the volume of b removed.
func Difference(a, b Sdf) Sdf {
	return New(a.bbox, func(p geo.V3) float64 {
		return math.Max(a.dist(p), -b.dist(p))
	})
}

// Translate shifts an Sdf by delta.
func Translate(s Sdf, delta geo.V3) Sdf {
	b := geo.Aabb{Min: s.bbox.Min.Add(delta), Max: s.bbox.Max.Add(delta)}
	return New(b, func(p geo.V3) float64 {
		return s.dist(p.Sub(delta))
	})
}

// Transform maps an Sdf through an affine matrix: points are queried in
// the Sdf's local space via the matrix's inverse. m must be invertible;
// a singular matrix falls back to treating the Sdf as untransformed
// rather than panicking, since this is a runtime geometric condition,
// not a programmer error.
func Transform(s Sdf, m geo.Mat4) Sdf {
	inv, ok := m.Inverse()
	if !ok {
		return s
	}
	b := s.bbox.Transform(m)
	return New(b, func(p geo.V3) float64 {
		return s.dist(inv.TransformPoint(p))
	})
}

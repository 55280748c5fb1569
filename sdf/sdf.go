// Package sdf implements implicit geometry via signed distance functions:
// a boxed distance closure carrying its own bounding box, boolean
// combinators, affine transform, and ray marching.
package sdf

import (
	"github.com/mirgo-labs/r3d/geo"
)

// DistFunc returns the signed distance from p to a surface: negative
// inside, positive outside, approximately zero on the boundary. It must
// be 1-Lipschitz for ray marching to be sound.
type DistFunc func(p geo.V3) float64

// Sdf is an erased distance function paired with a bounding box that
// encloses its zero level set.
type Sdf struct {
	dist DistFunc
	bbox geo.Aabb
}

// New builds an Sdf from an explicit bounding box and distance function.
func New(bbox geo.Aabb, dist DistFunc) Sdf {
	return Sdf{dist: dist, bbox: bbox}
}

// Dist evaluates the distance function at p.
func (s Sdf) Dist(p geo.V3) float64 { return s.dist(p) }

// Bbox returns the bounding box enclosing the surface.
func (s Sdf) Bbox() geo.Aabb { return s.bbox }

// NormalAt computes the surface normal at p via a central-difference
// numerical gradient. p is assumed to already lie on the surface; no
// check is made.
func (s Sdf) NormalAt(p geo.V3) geo.V3 {
	const e = 1e-6
	g := geo.V3{
		X: s.dist(geo.V3{X: p.X + e, Y: p.Y, Z: p.Z}) - s.dist(geo.V3{X: p.X - e, Y: p.Y, Z: p.Z}),
		Y: s.dist(geo.V3{X: p.X, Y: p.Y + e, Z: p.Z}) - s.dist(geo.V3{X: p.X, Y: p.Y - e, Z: p.Z}),
		Z: s.dist(geo.V3{X: p.X, Y: p.Y, Z: p.Z + e}) - s.dist(geo.V3{X: p.X, Y: p.Y, Z: p.Z - e}),
	}
	n, ok := g.Normalize()
	if !ok {
		return geo.V3{}
	}
	return n
}

// Shell hollows the surface into a shell around the original boundary:
// everything farther than thickness from the boundary, in either
// direction, is removed.
func (s Sdf) Shell(thickness float64) Sdf {
	b := geo.Aabb{
		Min: s.bbox.Min.Sub(geo.V3{X: thickness, Y: thickness, Z: thickness}),
		Max: s.bbox.Max.Add(geo.V3{X: thickness, Y: thickness, Z: thickness}),
	}
	inner := s.dist
	return New(b, func(p geo.V3) float64 {
		d := inner(p)
		if d < 0 {
			d = -d
		}
		return d - thickness
	})
}

// Round grows the surface outward by radius, rounding sharp convex
// edges.
func (s Sdf) Round(radius float64) Sdf {
	b := geo.Aabb{
		Min: s.bbox.Min.Sub(geo.V3{X: radius, Y: radius, Z: radius}),
		Max: s.bbox.Max.Add(geo.V3{X: radius, Y: radius, Z: radius}),
	}
	inner := s.dist
	return New(b, func(p geo.V3) float64 {
		return inner(p) - radius
	})
}

package sdf

import (
	"math"

	"github.com/mirgo-labs/r3d/geo"
)

// Sphere is a solid sphere of the given radius centered on the origin.
func Sphere(radius float64) Sdf {
	box := geo.Sphere{Center: geo.V3{}, Radius: radius}.Bbox()
	return New(box, func(p geo.V3) float64 {
		return p.Norm() - radius
	})
}

// Cuboid is a solid box of the given size centered on the origin.
func Cuboid(size geo.V3) Sdf {
	half := size.Scale(0.5)
	box := geo.MustAabb(half.Negate(), half)
	return New(box, func(p geo.V3) float64 {
		x := math.Abs(p.X) - half.X
		y := math.Abs(p.Y) - half.Y
		z := math.Abs(p.Z) - half.Z

		a := math.Min(math.Max(x, math.Max(y, z)), 0)

		x = math.Max(x, 0)
		y = math.Max(y, 0)
		z = math.Max(z, 0)

		return a + math.Sqrt(x*x+y*y+z*z)
	})
}

// Cylinder is a solid right cylinder of the given radius and height,
// centered on the origin with its axis along Y.
func Cylinder(radius, height float64) Sdf {
	box := geo.MustAabb(
		geo.V3{X: -radius, Y: -height / 2, Z: -radius},
		geo.V3{X: radius, Y: height / 2, Z: radius},
	)
	return New(box, func(p geo.V3) float64 {
		x := math.Hypot(p.X, p.Z) - radius
		y := math.Abs(p.Y) - height/2

		a := math.Min(math.Max(x, y), 0)

		x = math.Max(x, 0)
		y = math.Max(y, 0)

		return a + math.Hypot(x, y)
	})
}

// Torus lies in the XY plane, with r1 the distance from the center of
// the tube to the center of the torus and r2 the tube radius.
func Torus(r1, r2 float64) Sdf {
	a := r2
	b := r1 + r2
	box := geo.MustAabb(geo.V3{X: -b, Y: -b, Z: -a}, geo.V3{X: b, Y: b, Z: a})
	return New(box, func(p geo.V3) float64 {
		qx := math.Hypot(p.X, p.Y) - r1
		return math.Hypot(qx, p.Z) - r2
	})
}

// Capsule is the set of points within r of the segment [a,b].
func Capsule(a, b geo.V3, r float64) Sdf {
	box := geo.NewAabb(a.Sub(geo.V3{X: r, Y: r, Z: r})).
		Expanded(a.Add(geo.V3{X: r, Y: r, Z: r})).
		Expanded(b.Sub(geo.V3{X: r, Y: r, Z: r})).
		Expanded(b.Add(geo.V3{X: r, Y: r, Z: r}))

	ba := b.Sub(a)
	baDot := ba.Dot(ba)

	return New(box, func(p geo.V3) float64 {
		pa := p.Sub(a)
		h := 0.0
		if baDot != 0 {
			h = clamp(pa.Dot(ba)/baDot, 0, 1)
		}
		return pa.Sub(ba.Scale(h)).Norm() - r
	})
}

// Octahedron is a solid octahedron (L1-ball) with "radius" r, centered
// on the origin.
func Octahedron(r float64) Sdf {
	tan30 := math.Tan(30 * math.Pi / 180)
	box := geo.MustAabb(geo.V3{X: -r, Y: -r, Z: -r}, geo.V3{X: r, Y: r, Z: r})
	return New(box, func(p geo.V3) float64 {
		m := math.Abs(p.X) + math.Abs(p.Y) + math.Abs(p.Z) - r
		return m * tan30
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

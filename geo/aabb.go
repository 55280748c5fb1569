package geo

import "math"

// Aabb is an axis-aligned bounding box with the invariant Min <= Max
// componentwise, enforced at construction.
type Aabb struct {
	Min, Max V3
}

// NewAabb builds a box covering a single point.
func NewAabb(p V3) Aabb { return Aabb{Min: p, Max: p} }

// MustAabb builds a box from explicit min/max bounds, panicking if
// min > max on any axis — this is a programmer error (spec §7: "fail
// loudly at construction, not during queries").
func MustAabb(min, max V3) Aabb {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		panic("geo: Aabb min > max")
	}
	return Aabb{Min: min, Max: max}
}

// Cuboid builds a box centered at center with the given edge size.
func Cuboid(center V3, size V3) Aabb {
	half := size.Scale(0.5)
	return MustAabb(center.Sub(half), center.Add(half))
}

// FromPoints builds the smallest box covering every point. ok is false
// for an empty slice.
func FromPoints(pts []V3) (Aabb, bool) {
	if len(pts) == 0 {
		return Aabb{}, false
	}
	box := NewAabb(pts[0])
	for _, p := range pts[1:] {
		box = box.Expanded(p)
	}
	return box, true
}

// Center returns the box's centroid.
func (a Aabb) Center() V3 { return a.Min.Add(a.Max).Scale(0.5) }

// Dimensions returns the box's edge lengths.
func (a Aabb) Dimensions() V3 { return a.Max.Sub(a.Min) }

// Expanded returns a new box that also covers p.
func (a Aabb) Expanded(p V3) Aabb {
	return Aabb{Min: a.Min.Min(p), Max: a.Max.Max(p)}
}

// Union returns the smallest box covering both a and o.
func (a Aabb) Union(o Aabb) Aabb {
	return Aabb{Min: a.Min.Min(o.Min), Max: a.Max.Max(o.Max)}
}

// Intersection returns the overlap of a and o. ok is false when the boxes
// are disjoint.
func (a Aabb) Intersection(o Aabb) (Aabb, bool) {
	b := Aabb{Min: a.Min.Max(o.Min), Max: a.Max.Min(o.Max)}
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z {
		return Aabb{}, false
	}
	return b, true
}

// Contains reports whether pt lies within (or on) the box.
func (a Aabb) Contains(pt V3) bool {
	return a.Min.X <= pt.X && pt.X <= a.Max.X &&
		a.Min.Y <= pt.Y && pt.Y <= a.Max.Y &&
		a.Min.Z <= pt.Z && pt.Z <= a.Max.Z
}

// RayIntersection performs the slab test, returning the near/far
// parametric distances. A negative t means the intersection lies behind
// the ray's origin. ok is false when the ray misses the box entirely.
func (a Aabb) RayIntersection(r Ray) (tNear, tFar float64, ok bool) {
	tmin := (a.Min.X - r.Origin.X) / r.Dir.X
	tmax := (a.Max.X - r.Origin.X) / r.Dir.X
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}

	tymin := (a.Min.Y - r.Origin.Y) / r.Dir.Y
	tymax := (a.Max.Y - r.Origin.Y) / r.Dir.Y
	if tymin > tymax {
		tymin, tymax = tymax, tymin
	}

	if tmin > tymax || tymin > tmax {
		return 0, 0, false
	}
	tmin = math.Max(tmin, tymin)
	tmax = math.Min(tmax, tymax)

	tzmin := (a.Min.Z - r.Origin.Z) / r.Dir.Z
	tzmax := (a.Max.Z - r.Origin.Z) / r.Dir.Z
	if tzmin > tzmax {
		tzmin, tzmax = tzmax, tzmin
	}

	if tmin > tzmax || tzmin > tmax {
		return 0, 0, false
	}
	tmin = math.Max(tmin, tzmin)
	tmax = math.Min(tmax, tzmax)

	return tmin, tmax, true
}

// BoundingSphere returns a sphere (center, radius) that encloses the box.
func (a Aabb) BoundingSphere() (center V3, radius float64) {
	c := a.Center()
	return c, a.Min.Sub(c).Norm()
}

// Transform maps the box through an affine matrix using Arvo's method
// (http://dev.theomader.com/transform-bounding-boxes/): the 8 corners are
// never materialized, only the column vectors of m and their min/max
// contributions per axis.
func (a Aabb) Transform(m Mat4) Aabb {
	right := V3{m[0][0], m[1][0], m[2][0]}
	up := V3{m[0][1], m[1][1], m[2][1]}
	back := V3{m[0][2], m[1][2], m[2][2]}
	translation := V3{m[0][3], m[1][3], m[2][3]}

	xa, xb := right.Scale(a.Min.X), right.Scale(a.Max.X)
	ya, yb := up.Scale(a.Min.Y), up.Scale(a.Max.Y)
	za, zb := back.Scale(a.Min.Z), back.Scale(a.Max.Z)

	xMin, xMax := xa.Min(xb), xa.Max(xb)
	yMin, yMax := ya.Min(yb), ya.Max(yb)
	zMin, zMax := za.Min(zb), za.Max(zb)

	return Aabb{
		Min: xMin.Add(yMin).Add(zMin).Add(translation),
		Max: xMax.Add(yMax).Add(zMax).Add(translation),
	}
}

// Infinite reports whether the box has unbounded extent along any axis —
// used to siphon infinite shapes (e.g. planes) out of the BVH (spec §4.1).
func (a Aabb) Infinite() bool {
	return math.IsInf(a.Min.X, 0) || math.IsInf(a.Max.X, 0) ||
		math.IsInf(a.Min.Y, 0) || math.IsInf(a.Max.Y, 0) ||
		math.IsInf(a.Min.Z, 0) || math.IsInf(a.Max.Z, 0)
}

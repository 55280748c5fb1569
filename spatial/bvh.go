package spatial

import "github.com/mirgo-labs/r3d/geo"

// BVH is a bounding volume hierarchy over shapes of type S. Shapes whose
// bbox has infinite extent (e.g. infinite planes) are held in a flat
// list queried unconditionally rather than being placed in the tree.
type BVH[S Shape] struct {
	root     *bvhNode[S]
	infinite []S
}

type bvhNode[S Shape] struct {
	bbox        geo.Aabb
	shape       S
	isLeaf      bool
	left, right *bvhNode[S]
}

// BuildBVH constructs a BVH over shapes. The build works on its own
// copy; the input slice is left unchanged.
func BuildBVH[S Shape](shapes []S) *BVH[S] {
	finite := make([]S, 0, len(shapes))
	var infinite []S
	for _, s := range shapes {
		if s.Bbox().Infinite() {
			infinite = append(infinite, s)
		} else {
			finite = append(finite, s)
		}
	}
	return &BVH[S]{root: buildBVHNode(finite), infinite: infinite}
}

func buildBVHNode[S Shape](shapes []S) *bvhNode[S] {
	if len(shapes) == 0 {
		return nil
	}
	if len(shapes) == 1 {
		return &bvhNode[S]{bbox: shapes[0].Bbox(), shape: shapes[0], isLeaf: true}
	}

	var centerBox geo.Aabb
	var unionBox geo.Aabb
	for i, s := range shapes {
		b := s.Bbox()
		if i == 0 {
			centerBox = geo.NewAabb(b.Center())
			unionBox = b
		} else {
			centerBox = centerBox.Expanded(b.Center())
			unionBox = unionBox.Union(b)
		}
	}

	dims := centerBox.Dimensions()
	axis := geo.AxisX
	switch {
	case dims.Y >= dims.X && dims.Y >= dims.Z:
		axis = geo.AxisY
	case dims.Z >= dims.X && dims.Z >= dims.Y:
		axis = geo.AxisZ
	}

	mid := len(shapes) / 2
	quickSelect(shapes, mid, func(s S) float64 { return s.Bbox().Center().Get(axis) })

	return &bvhNode[S]{
		bbox:  unionBox,
		left:  buildBVHNode(shapes[:mid]),
		right: buildBVHNode(shapes[mid:]),
	}
}

// Intersecting enumerates every shape (finite or infinite) whose bbox
// overlaps query.
func (b *BVH[S]) Intersecting(query geo.Aabb) []S {
	var out []S
	out = append(out, b.infinite...)
	var walk func(n *bvhNode[S])
	walk = func(n *bvhNode[S]) {
		if n == nil {
			return
		}
		if _, ok := n.bbox.Intersection(query); !ok {
			return
		}
		if n.isLeaf {
			out = append(out, n.shape)
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(b.root)
	return out
}

// RayHits returns every shape the ray intersects, each paired with its
// intersection distance. Order is not guaranteed; callers wanting the
// closest hit must select the minimum themselves.
func (b *BVH[S]) RayHits(r geo.Ray) []Hit[S] {
	var out []Hit[S]
	for _, s := range b.infinite {
		if t, ok := s.RayIntersection(r); ok && t >= 0 {
			out = append(out, Hit[S]{Shape: s, T: t})
		}
	}

	var walk func(n *bvhNode[S])
	walk = func(n *bvhNode[S]) {
		if n == nil {
			return
		}
		tNear, tFar, ok := n.bbox.RayIntersection(r)
		if !ok || tFar < 0 || tNear > tFar {
			return
		}
		if n.isLeaf {
			if t, hit := n.shape.RayIntersection(r); hit && t >= 0 {
				out = append(out, Hit[S]{Shape: n.shape, T: t})
			}
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(b.root)
	return out
}

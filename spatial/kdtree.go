package spatial

import (
	"math"
	"sort"

	"github.com/mirgo-labs/r3d/geo"
)

// leafCapacity bounds the number of shapes a k-d tree leaf may hold
// before the build attempts another split.
const leafCapacity = 8

// KDTree is a k-d tree over shapes of type S. A shape whose bounding box
// straddles a split plane is referenced from both children — shared
// ownership is modeled as index membership in an arena slice rather
// than a reference-counted pointer, since Go has no Rc/Arc.
type KDTree[S Shape] struct {
	shapes []S
	bbox   geo.Aabb
	empty  bool
	root   *kdNode
}

type kdNode struct {
	leaf    bool
	indices []int

	axis        geo.Axis
	value       float64
	left, right *kdNode
}

// BuildKDTree constructs a k-d tree over shapes. Panics if shapes is
// empty — an empty tree is a construction-time programmer error, not a
// runtime condition callers need to recover from.
func BuildKDTree[S Shape](shapes []S) *KDTree[S] {
	if len(shapes) == 0 {
		panic("spatial: BuildKDTree called with no shapes")
	}

	box := shapes[0].Bbox()
	indices := make([]int, len(shapes))
	for i, s := range shapes {
		indices[i] = i
		if i > 0 {
			box = box.Union(s.Bbox())
		}
	}

	t := &KDTree[S]{shapes: shapes, bbox: box}
	t.root = t.buildNode(indices)
	return t
}

func (t *KDTree[S]) buildNode(indices []int) *kdNode {
	if len(indices) <= leafCapacity {
		return &kdNode{leaf: true, indices: indices}
	}

	type candidate struct {
		axis        geo.Axis
		value       float64
		left, right []int
	}

	var best *candidate
	bestScore := len(indices) + 1

	for _, axis := range []geo.Axis{geo.AxisX, geo.AxisY, geo.AxisZ} {
		centers := make([]float64, len(indices))
		for i, idx := range indices {
			centers[i] = t.shapes[idx].Bbox().Center().Get(axis)
		}
		value := median(centers)

		left, right := partitionByPlane(indices, t.shapes, axis, value)
		score := len(left)
		if len(right) > score {
			score = len(right)
		}
		if score < bestScore {
			bestScore = score
			best = &candidate{axis: axis, value: value, left: left, right: right}
		}
	}

	if best == nil || len(best.left) == len(indices) || len(best.right) == len(indices) {
		return &kdNode{leaf: true, indices: indices}
	}

	return &kdNode{
		axis:  best.axis,
		value: best.value,
		left:  t.buildNode(best.left),
		right: t.buildNode(best.right),
	}
}

func partitionByPlane[S Shape](indices []int, shapes []S, axis geo.Axis, value float64) (left, right []int) {
	for _, idx := range indices {
		b := shapes[idx].Bbox()
		switch {
		case b.Max.Get(axis) <= value:
			left = append(left, idx)
		case b.Min.Get(axis) >= value:
			right = append(right, idx)
		default:
			left = append(left, idx)
			right = append(right, idx)
		}
	}
	return left, right
}

// median selects the element at index len/2 of the sorted values (the
// upper-middle one for an even count) via
// quickselect, without fully sorting.
func median(values []float64) float64 {
	cp := append([]float64(nil), values...)
	k := len(cp) / 2
	quickSelect(cp, k, func(f float64) float64 { return f })
	return cp[k]
}

// RayHits traverses the tree following the canonical k-d traversal and
// returns every shape hit, in strictly non-decreasing t order.
func (t *KDTree[S]) RayHits(r geo.Ray) []Hit[S] {
	tmin, tmax, ok := t.bbox.RayIntersection(r)
	if !ok || tmax < 0 || tmin > tmax {
		return nil
	}
	return t.walk(t.root, r, tmin, tmax)
}

func (t *KDTree[S]) walk(n *kdNode, r geo.Ray, tmin, tmax float64) []Hit[S] {
	if n == nil {
		return nil
	}

	if n.leaf {
		hits := make([]Hit[S], 0, len(n.indices))
		for _, idx := range n.indices {
			shape := t.shapes[idx]
			hitT, hit := shape.RayIntersection(r)
			if !hit {
				continue
			}
			if hitT < tmin || hitT > tmax {
				continue
			}
			hits = append(hits, Hit[S]{Shape: shape, T: hitT})
		}
		sort.Slice(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
		return hits
	}

	origin := r.Origin.Get(n.axis)
	dir := r.Dir.Get(n.axis)

	var tSplit float64
	if dir == 0 {
		tSplit = math.Inf(1)
	} else {
		tSplit = (n.value - origin) / dir
	}

	var near, far *kdNode
	switch {
	case origin < n.value:
		near, far = n.left, n.right
	case origin > n.value:
		near, far = n.right, n.left
	default:
		if dir < 0 {
			near, far = n.left, n.right
		} else {
			near, far = n.right, n.left
		}
	}

	if math.IsInf(tSplit, 0) {
		// ray parallel to the splitting axis: visit both children across
		// the whole interval.
		out := t.walk(near, r, tmin, tmax)
		out = append(out, t.walk(far, r, tmin, tmax)...)
		return out
	}

	if tSplit > tmax || tSplit <= 0 {
		return t.walk(near, r, tmin, tmax)
	}
	if tSplit < tmin {
		return t.walk(far, r, tmin, tmax)
	}

	out := t.walk(near, r, tmin, tSplit)
	out = append(out, t.walk(far, r, tSplit, tmax)...)
	return out
}

// Intersecting enumerates every distinct shape whose bbox overlaps
// query. A shape referenced from both children due to straddling a
// split plane is reported once.
func (t *KDTree[S]) Intersecting(query geo.Aabb) []S {
	seen := make(map[int]bool)
	var out []S
	var walk func(n *kdNode)
	walk = func(n *kdNode) {
		if n == nil {
			return
		}
		if n.leaf {
			for _, idx := range n.indices {
				if seen[idx] {
					continue
				}
				if _, ok := t.shapes[idx].Bbox().Intersection(query); ok {
					seen[idx] = true
					out = append(out, t.shapes[idx])
				}
			}
			return
		}
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return out
}

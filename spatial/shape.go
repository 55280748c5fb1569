// Package spatial implements the two spatial indices shared by the
// surface and line renderers: a median-center-split bounding volume
// hierarchy and a k-d tree with shared-ownership straddling shapes. Both
// are generic over any shape that can report a bounding box and
// intersect a ray.
package spatial

import "github.com/mirgo-labs/r3d/geo"

// Shape is the capability every spatial index needs from its elements.
type Shape interface {
	Bbox() geo.Aabb
	RayIntersection(r geo.Ray) (float64, bool)
}

// Hit pairs a shape with the parametric distance at which a ray struck
// it.
type Hit[S Shape] struct {
	Shape S
	T     float64
}

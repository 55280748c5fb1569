package line

import (
	"github.com/mirgo-labs/r3d/geo"
	"github.com/mirgo-labs/r3d/spatial"
)

// Scene is a collection of line Objects indexed for occlusion queries.
type Scene struct {
	Index *spatial.KDTree[Object]
}

// NewScene indexes objects into a k-d tree.
func NewScene(objects []Object) *Scene {
	return &Scene{Index: spatial.BuildKDTree(objects)}
}

// Intersection returns the nearest positive-t hit along ray, if any.
func (s *Scene) Intersection(ray geo.Ray) (float64, bool) {
	hits := s.Index.RayHits(ray)
	for _, h := range hits {
		if h.T > 0 {
			return h.T, true
		}
	}
	return 0, false
}

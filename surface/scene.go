package surface

import (
	"github.com/mirgo-labs/r3d/geo"
	"github.com/mirgo-labs/r3d/spatial"
)

// Environment supplies the color seen by rays that escape the scene
// without hitting anything.
type Environment interface {
	At(dir geo.V3) geo.V3
}

// Color is a constant-color environment.
type Color geo.V3

func (c Color) At(geo.V3) geo.V3 { return geo.V3(c) }

// LinearGradient interpolates between Top and Bottom based on the ray
// direction's vertical component, matching a simple sky gradient.
type LinearGradient struct {
	Bottom, Top geo.V3
}

func (g LinearGradient) At(dir geo.V3) geo.V3 {
	n := dir.Norm()
	if n == 0 {
		return g.Bottom
	}
	t := 0.5 * (dir.Y/n + 1)
	return g.Bottom.Lerp(g.Top, t)
}

// Scene is a collection of indexed objects rendered against an
// environment, with lights cached separately for direct-lighting
// sampling.
type Scene struct {
	Index       *spatial.BVH[Object]
	Environment Environment
	Lights      []Object
}

// NewScene indexes objects into a BVH, assigns each a unique surface id,
// and caches the subset whose material is a light for direct-lighting
// sampling.
func NewScene(objects []Object, env Environment) *Scene {
	var lights []Object
	for i, o := range objects {
		o.setSurfaceID(i)
		if _, ok := o.Material().(light); ok {
			lights = append(lights, o)
		}
	}

	return &Scene{
		Index:       spatial.BuildBVH(objects),
		Environment: env,
		Lights:      lights,
	}
}

// Intersect returns the nearest object hit by ray, if any.
func (s *Scene) Intersect(ray geo.Ray) (Object, Hit, bool) {
	hits := s.Index.RayHits(ray)

	var (
		best    Object
		bestHit Hit
		found   bool
	)
	for _, h := range hits {
		if h.T <= 0 {
			continue
		}
		hit, ok := h.Shape.Intersect(ray)
		if !ok {
			continue
		}
		if !found || hit.T < bestHit.T {
			best, bestHit, found = h.Shape, hit, true
		}
	}
	return best, bestHit, found
}

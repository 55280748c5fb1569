package surface

import (
	"math/rand/v2"

	"github.com/mirgo-labs/r3d/geo"
)

// ParticleCloud generates count small spheres of the given radius,
// scattered uniformly within bounds and sharing a single material,
// built once as ordinary objects rather than a renderer-specific path.
func ParticleCloud(count int, bounds geo.Aabb, radius float64, mat Material, r *rand.Rand) []Object {
	out := make([]Object, 0, count)
	size := bounds.Max.Sub(bounds.Min)
	for i := 0; i < count; i++ {
		center := bounds.Min.Add(geo.V3{
			X: r.Float64() * size.X,
			Y: r.Float64() * size.Y,
			Z: r.Float64() * size.Z,
		})
		out = append(out, NewSphere(center, radius, mat))
	}
	return out
}

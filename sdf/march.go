package sdf

import (
	"math"

	"github.com/mirgo-labs/r3d/geo"
)

// MaxSteps is the default ray-march iteration budget.
const MaxSteps = 128

const marchEpsilon = 1e-5
const marchJump = 1e-3

// RayMarch walks ray through the Sdf's distance field looking for a
// surface crossing. steps bounds the iteration count; pass MaxSteps for
// the default budget. ok is false if the ray misses the bounding box or
// the march exhausts its step budget without converging.
//
// If the ray enters the bounding box already inside the surface (the
// first sample is negative), the march steps backward once by a small
// jump to re-enter the exterior before resuming forward; this avoids an
// immediate zero-distance return at transformed or CSG concavities
// whose bbox the ray enters from inside.
func (s Sdf) RayMarch(ray geo.Ray, steps int) (float64, bool) {
	t1, t2, ok := s.bbox.RayIntersection(ray)
	if !ok || t2 < t1 || t2 < 0 {
		return 0, false
	}

	t := math.Max(t1, 1e-4)
	jump := true

	for i := 0; i < steps; i++ {
		d := s.dist(ray.PointAt(t))

		if jump && d < 0 {
			t -= marchJump
			jump = false
			continue
		}

		if d < marchEpsilon {
			return t, true
		}

		if jump && d < marchJump {
			d = marchJump
		}

		t += d
		if t > t2 {
			break
		}
	}

	return 0, false
}

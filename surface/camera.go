package surface

import (
	"math"
	"math/rand/v2"

	"github.com/mirgo-labs/r3d/geo"
)

// Camera casts rays from a fixed viewpoint through a viewport towards a
// target, built from the classic look-at / vertical-fov parameterization.
type Camera struct {
	position geo.V3
	target   geo.V3

	u, v, w geo.V3
	m       float64

	lensRadius float64
	focusDist  float64
}

// LookAt builds a camera positioned at position looking towards target,
// oriented by vup, with the given vertical field of view in degrees.
func LookAt(position, target, vup geo.V3, fovyDeg float64) Camera {
	w, ok := target.Sub(position).Normalize()
	if !ok {
		w = geo.V3{Z: -1}
	}
	u, ok := w.Cross(vup).Normalize()
	if !ok {
		u = geo.V3{X: 1}
	}
	v := u.Cross(w)

	m := 1 / math.Tan(fovyDeg*math.Pi/360)

	return Camera{position: position, target: target, u: u, v: v, w: w, m: m}
}

// WithFocus enables depth-of-field: aperture is the lens radius, and
// the focal plane is set at the camera's distance to target.
func (c Camera) WithFocus(target geo.V3, aperture float64) Camera {
	c.lensRadius = aperture
	c.focusDist = target.Sub(c.position).Norm()
	return c
}

// CastRay builds a ray from the camera through pixel (x,y) of a
// (width,height) viewport, jittered within the pixel by (ju,jv) in
// [0,1). When depth-of-field is enabled via WithFocus, the ray origin is
// additionally perturbed within the lens disk and recentered onto the
// focal plane.
func (c Camera) CastRay(x, y int, width, height int, ju, jv float64, rng *rand.Rand) geo.Ray {
	// invert y: image space has (0,0) top-left growing down, world space
	// is centered with y growing up.
	fx := float64(x)
	fy := float64(height - y)
	fw := float64(width)
	fh := float64(height)

	aspect := fw / fh
	ndcx := (fx+ju-0.5)/(fw-1)*2 - 1
	ndcy := (fy+jv-0.5)/(fh-1)*2 - 1

	rd := c.u.Scale(ndcx * aspect).Add(c.v.Scale(ndcy)).Add(c.w.Scale(c.m))
	dir, ok := rd.Normalize()
	if !ok {
		dir = rd
	}

	if c.lensRadius <= 0 {
		return geo.NewRay(c.position, dir)
	}

	focusPoint := c.position.Add(dir.Scale(c.focusDist))
	lx, ly := randomInUnitDisk(rng)
	offset := c.u.Scale(lx * c.lensRadius).Add(c.v.Scale(ly * c.lensRadius))
	origin := c.position.Add(offset)

	newDir, ok := focusPoint.Sub(origin).Normalize()
	if !ok {
		newDir = dir
	}
	return geo.NewRay(origin, newDir)
}

func randomInUnitDisk(rng *rand.Rand) (x, y float64) {
	for {
		x = rng.Float64()*2 - 1
		y = rng.Float64()*2 - 1
		if x*x+y*y <= 1 {
			return x, y
		}
	}
}

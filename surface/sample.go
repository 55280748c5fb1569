package surface

import (
	"math/rand/v2"

	"github.com/mirgo-labs/r3d/config"
	"github.com/mirgo-labs/r3d/geo"
)

// sample traces ray through scene, returning its radiance estimate.
// Recursion bottoms out either at config.MaxBounces or at a Light
// material, matching the source renderer's depth-first path tracer.
func sample(scene *Scene, ray geo.Ray, depth int, rng *rand.Rand, cfg config.SurfaceConfig) geo.V3 {
	obj, hit, ok := scene.Intersect(ray)
	if !ok {
		return scene.Environment.At(ray.Dir)
	}
	if depth >= cfg.MaxBounces {
		return geo.V3{}
	}

	var point, normal geo.V3
	if hit.Cached != nil {
		point, normal = hit.Cached.Point, hit.Cached.Normal
	} else {
		point = ray.PointAt(hit.T)
		normal = obj.NormalAt(point)
	}

	return sampleMaterial(scene, ray, depth, obj.Material(), point, normal, rng, cfg)
}

func sampleMaterial(scene *Scene, ray geo.Ray, depth int, mat Material, point, n geo.V3, rng *rand.Rand, cfg config.SurfaceConfig) geo.V3 {
	switch m := mat.(type) {
	case lambertian:
		indirect := sample(scene, lambertianBounce(point, n, rng), depth+1, rng, cfg)

		var direct geo.V3
		if cfg.DirectLighting {
			for _, l := range scene.Lights {
				direct = direct.Add(sampleLight(scene, l, ray, point, n, rng, cfg))
			}
		}

		return m.Albedo.Mul(direct.Add(indirect))

	case metal:
		bounced := metalBounce(ray, point, n, m.Fuzziness, rng)
		if bounced.Dir.Dot(n) < 0 {
			return geo.V3{}
		}
		return m.Albedo.Mul(sample(scene, bounced, depth+1, rng, cfg))

	case dielectric:
		return sample(scene, dielectricBounce(ray, point, n, m.RefractionIndex, rng), depth+1, rng, cfg)

	case light:
		return m.Emittance

	default:
		return geo.V3{}
	}
}

// sampleLight casts a shadow ray from point towards light and returns
// its contribution if it is unoccluded; it returns zero otherwise. When
// soft shadows are enabled, the sampled point is perturbed within the
// light's bounding disk using an orthonormal frame built from a random
// unit vector.
func sampleLight(scene *Scene, lightObj Object, ray geo.Ray, point, n geo.V3, rng *rand.Rand, cfg config.SurfaceConfig) geo.V3 {
	lightPos, lightRadius := lightObj.BoundingSphere()

	if cfg.SoftShadows && lightRadius > 0 {
		lightPos = perturbOnDisk(lightPos, lightRadius, ray.Origin, rng)
	}

	dir, ok := lightPos.Sub(point).Normalize()
	if !ok {
		return geo.V3{}
	}
	shadowRay := geo.NewRay(point, dir)

	diffuse := shadowRay.Dir.Dot(n)
	if diffuse <= 0 {
		return geo.V3{}
	}

	hitObj, _, ok := scene.Intersect(shadowRay)
	if !ok {
		return geo.V3{}
	}
	if lit, ok := hitObj.Material().(light); ok {
		return lit.Emittance.Scale(diffuse)
	}
	return geo.V3{}
}

func perturbOnDisk(center geo.V3, radius float64, from geo.V3, rng *rand.Rand) geo.V3 {
	x, y := randomInUnitDisk(rng)

	l, ok := center.Sub(from).Normalize()
	if !ok {
		l = geo.V3{Z: 1}
	}
	u, ok := l.Cross(randomUnitVector(rng)).Normalize()
	if !ok {
		u = geo.V3{X: 1}
	}
	v := l.Cross(u)

	return center.Add(u.Scale(x * radius)).Add(v.Scale(y * radius))
}

func randomUnitVector(rng *rand.Rand) geo.V3 {
	for {
		v := geo.V3{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1, Z: rng.Float64()*2 - 1}
		if u, ok := v.Normalize(); ok {
			return u
		}
	}
}

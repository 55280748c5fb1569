package surface

import (
	"math"
	"math/rand/v2"

	"github.com/mirgo-labs/r3d/geo"
)

// Material dictates how light interacts with a surface at a hit point.
// Go has no tagged union, so the four variants the source enum carries
// are modeled as an interface with unexported concrete types and
// exported constructors.
type Material interface {
	isMaterial()
}

type lambertian struct{ Albedo geo.V3 }
type metal struct {
	Albedo    geo.V3
	Fuzziness float64
}
type dielectric struct{ RefractionIndex float64 }
type light struct{ Emittance geo.V3 }

func (lambertian) isMaterial() {}
func (metal) isMaterial()      {}
func (dielectric) isMaterial() {}
func (light) isMaterial()      {}

// NewLambertian is a perfectly matte diffuse surface of the given albedo.
func NewLambertian(albedo geo.V3) Material { return lambertian{Albedo: albedo} }

// NewMetal reflects incoming rays about the surface normal, perturbed by
// fuzziness (clamped to [0,1] by convention of the caller).
func NewMetal(albedo geo.V3, fuzziness float64) Material {
	return metal{Albedo: albedo, Fuzziness: fuzziness}
}

// NewDielectric refracts and reflects according to Snell's law and
// Schlick's approximation, with the given index of refraction.
func NewDielectric(refractionIndex float64) Material {
	return dielectric{RefractionIndex: refractionIndex}
}

// NewLight is a terminal emitter of the given radiance; sampling it never
// recurses further.
func NewLight(emittance geo.V3) Material { return light{Emittance: emittance} }

// randomInUnitBall returns a uniformly distributed point within the
// unit ball via rejection sampling.
func randomInUnitBall(rng *rand.Rand) geo.V3 {
	for {
		p := geo.V3{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
			Z: rng.Float64()*2 - 1,
		}
		if p.NormSquared() < 1 {
			return p
		}
	}
}

func lambertianBounce(point, n geo.V3, rng *rand.Rand) geo.Ray {
	return geo.NewRay(point, n.Add(randomInUnitBall(rng)))
}

func metalBounce(ray geo.Ray, point, n geo.V3, fuzziness float64, rng *rand.Rand) geo.Ray {
	unitDir, ok := ray.Dir.Normalize()
	if !ok {
		unitDir = ray.Dir
	}
	reflected := unitDir.Reflect(n)
	return geo.NewRay(point, reflected.Add(randomInUnitBall(rng).Scale(fuzziness)))
}

func dielectricBounce(ray geo.Ray, point, n geo.V3, refractionIndex float64, rng *rand.Rand) geo.Ray {
	var outwardNormal geo.V3
	var refIdx, cosTheta float64

	dirNorm := ray.Dir.Norm()
	if ray.Dir.Dot(n) > 0 {
		outwardNormal = n.Negate()
		refIdx = refractionIndex
		cosTheta = math.Sqrt(1 - refIdx*refIdx*(1-square(ray.Dir.Dot(n)/dirNorm)))
	} else {
		outwardNormal = n
		refIdx = 1 / refractionIndex
		cosTheta = -ray.Dir.Dot(n) / dirNorm
	}

	refracted, ok := refract(ray.Dir, outwardNormal, refIdx)
	var dir geo.V3
	if ok {
		reflectProb := schlick(cosTheta, refIdx)
		if rng.Float64() < reflectProb {
			dir = ray.Dir.Reflect(n)
		} else {
			dir = refracted
		}
	} else {
		dir = ray.Dir.Reflect(n)
	}

	return geo.NewRay(point, dir)
}

// refract computes the refracted direction of v through a surface with
// outward normal n and relative refraction index ni. ok is false on
// total internal reflection.
func refract(v, n geo.V3, ni float64) (geo.V3, bool) {
	uv, ok := v.Normalize()
	if !ok {
		return geo.V3{}, false
	}
	dt := uv.Dot(n)
	discriminant := 1 - ni*ni*(1-dt*dt)
	if discriminant <= 0 {
		return geo.V3{}, false
	}
	refracted := uv.Sub(n.Scale(dt)).Scale(ni).Sub(n.Scale(math.Sqrt(discriminant)))
	return refracted, true
}

// schlick approximates the Fresnel reflectance. The r0 term deliberately
// matches the source's squared-denominator formula rather than the
// textbook ((1-n)/(1+n))^2 — see the sampling open question.
func schlick(cosTheta, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / math.Pow(1+refractionIndex, 2)
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}

func square(v float64) float64 { return v * v }

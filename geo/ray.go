package geo

// Ray is a half-line with an origin and a (not necessarily unit) direction.
type Ray struct {
	Origin V3
	Dir    V3
}

// NewRay builds a ray from an origin and direction.
func NewRay(origin, dir V3) Ray { return Ray{Origin: origin, Dir: dir} }

// PointAt evaluates origin + dir*t.
func (r Ray) PointAt(t float64) V3 { return r.Origin.Add(r.Dir.Scale(t)) }

// Transform applies an affine matrix to the ray: the origin transforms as a
// point, the direction as a normal (no translation component).
func (r Ray) Transform(m Mat4) Ray {
	return Ray{
		Origin: m.TransformPoint(r.Origin),
		Dir:    m.TransformDirection(r.Dir),
	}
}

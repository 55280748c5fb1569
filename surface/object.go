package surface

import "github.com/mirgo-labs/r3d/geo"

// HitInfo is a world-space position paired with a surface normal,
// cached inside a Hit to save a redundant NormalAt call.
type HitInfo struct {
	Point, Normal geo.V3
}

// Hit is the result of a ray striking an Object in a Scene.
type Hit struct {
	T         float64
	SurfaceID int
	Cached    *HitInfo
}

// Object is anything a Scene can render: it can be hit by a ray, report
// its normal, material, bounds, and a unique id assigned once the Scene
// takes ownership of it.
type Object interface {
	// Bbox and RayIntersection satisfy spatial.Shape, letting a slice of
	// Objects be indexed by a BVH.
	Bbox() geo.Aabb
	RayIntersection(r geo.Ray) (float64, bool)

	// Intersect performs the same test as RayIntersection but returns
	// the richer Hit value the sampler needs.
	Intersect(r geo.Ray) (Hit, bool)

	NormalAt(p geo.V3) geo.V3
	Material() Material
	BoundingSphere() (center geo.V3, radius float64)

	SurfaceID() int
	setSurfaceID(id int)
}

// baseObject is embedded by every concrete Object to provide the
// surface-id bookkeeping uniformly.
type baseObject struct {
	surfaceID int
}

func (b *baseObject) SurfaceID() int      { return b.surfaceID }
func (b *baseObject) setSurfaceID(id int) { b.surfaceID = id }

// Sphere is a renderable sphere with a material.
type Sphere struct {
	baseObject
	geo.Sphere
	Mat Material
}

// NewSphere builds a renderable sphere.
func NewSphere(center geo.V3, radius float64, mat Material) *Sphere {
	return &Sphere{Sphere: geo.Sphere{Center: center, Radius: radius}, Mat: mat}
}

func (s *Sphere) Intersect(r geo.Ray) (Hit, bool) {
	t, ok := s.RayIntersection(r)
	if !ok {
		return Hit{}, false
	}
	return Hit{T: t, SurfaceID: s.surfaceID}, true
}

func (s *Sphere) Material() Material { return s.Mat }

func (s *Sphere) BoundingSphere() (geo.V3, float64) { return s.Center, s.Radius }

// Plane is a renderable infinite plane with a material.
type Plane struct {
	baseObject
	geo.Plane
	Mat Material
}

// NewPlane builds a renderable infinite plane.
func NewPlane(point, normal geo.V3, mat Material) *Plane {
	return &Plane{Plane: geo.Plane{Point: point, Normal: normal}, Mat: mat}
}

func (p *Plane) Intersect(r geo.Ray) (Hit, bool) {
	t, ok := p.RayIntersection(r)
	if !ok {
		return Hit{}, false
	}
	return Hit{T: t, SurfaceID: p.surfaceID}, true
}

func (p *Plane) Material() Material { return p.Mat }

func (p *Plane) NormalAt(geo.V3) geo.V3 { return p.Plane.Normal }

// BoundingSphere is degenerate for an infinite plane — it cannot itself
// be used as a light source, and reports its anchor point with zero
// radius.
func (p *Plane) BoundingSphere() (geo.V3, float64) { return p.Point, 0 }

// Triangle is a renderable flat triangle with a material.
type Triangle struct {
	baseObject
	geo.Triangle
	Mat Material
}

// NewTriangle builds a renderable triangle.
func NewTriangle(a, b, c geo.V3, mat Material) *Triangle {
	return &Triangle{Triangle: geo.Triangle{A: a, B: b, C: c}, Mat: mat}
}

func (t *Triangle) Intersect(r geo.Ray) (Hit, bool) {
	d, ok := t.RayIntersection(r)
	if !ok {
		return Hit{}, false
	}
	return Hit{T: d, SurfaceID: t.surfaceID}, true
}

func (t *Triangle) Material() Material { return t.Mat }

func (t *Triangle) NormalAt(geo.V3) geo.V3 { return t.Triangle.Normal() }

func (t *Triangle) BoundingSphere() (geo.V3, float64) {
	c := t.Centroid()
	r := c.Sub(t.A).Norm()
	if d := c.Sub(t.B).Norm(); d > r {
		r = d
	}
	if d := c.Sub(t.C).Norm(); d > r {
		r = d
	}
	return c, r
}

// Transformed wraps an Object with an affine matrix: rays are unwound
// into the child's local space, and hit results (point, normal) are
// cached since computing them required transforming back to world space
// anyway.
type Transformed struct {
	baseObject
	Child   Object
	matrix  geo.Mat4
	inverse geo.Mat4
}

// NewTransformed wraps child so it appears transformed by m in world
// space. Panics if m is singular — an un-invertible transform is a
// construction-time mistake.
func NewTransformed(child Object, m geo.Mat4) *Transformed {
	inv, ok := m.Inverse()
	if !ok {
		panic("surface: NewTransformed: matrix is not invertible")
	}
	return &Transformed{Child: child, matrix: m, inverse: inv}
}

func (t *Transformed) Bbox() geo.Aabb { return t.Child.Bbox().Transform(t.matrix) }

func (t *Transformed) RayIntersection(r geo.Ray) (float64, bool) {
	local := r.Transform(t.inverse)
	return t.Child.RayIntersection(local)
}

func (t *Transformed) Intersect(r geo.Ray) (Hit, bool) {
	local := r.Transform(t.inverse)
	d, ok := t.Child.RayIntersection(local)
	if !ok {
		return Hit{}, false
	}

	localPoint := local.PointAt(d)
	localNormal := t.Child.NormalAt(localPoint)

	worldPoint := t.matrix.TransformPoint(localPoint)
	worldNormal := t.matrix.TransformDirection(localNormal)
	worldT := worldPoint.Sub(r.Origin).Norm()

	return Hit{
		T:         worldT,
		SurfaceID: t.surfaceID,
		Cached:    &HitInfo{Point: worldPoint, Normal: worldNormal},
	}, true
}

func (t *Transformed) NormalAt(p geo.V3) geo.V3 {
	local := t.inverse.TransformPoint(p)
	n := t.Child.NormalAt(local)
	return t.matrix.TransformDirection(n)
}

func (t *Transformed) Material() Material { return t.Child.Material() }

func (t *Transformed) BoundingSphere() (geo.V3, float64) {
	center, radius := t.Child.BoundingSphere()
	worldCenter := t.matrix.TransformPoint(center)
	worldEdge := t.matrix.TransformPoint(center.Add(geo.V3{X: radius}))
	return worldCenter, worldEdge.Sub(worldCenter).Norm()
}

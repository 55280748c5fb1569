package line

import (
	"github.com/mirgo-labs/r3d/geo"
	"github.com/mirgo-labs/r3d/sdf"
)

// Polyline is a connected sequence of world-space points.
type Polyline []geo.V3

// Object is anything the line renderer can draw: it must be
// intersectable (so the scene can occlusion-test against it) and able
// to report the world-space edges that define its silhouette/features.
type Object interface {
	Bbox() geo.Aabb
	RayIntersection(r geo.Ray) (float64, bool)
	Paths() []Polyline
}

// Mesh is a line object whose paths are its triangles' edges.
type Mesh struct {
	Triangles []geo.Triangle
}

func (m Mesh) Bbox() geo.Aabb {
	box, ok := geo.FromPoints(meshPoints(m.Triangles))
	if !ok {
		return geo.NewAabb(geo.V3{})
	}
	return box
}

func meshPoints(triangles []geo.Triangle) []geo.V3 {
	pts := make([]geo.V3, 0, len(triangles)*3)
	for _, t := range triangles {
		pts = append(pts, t.A, t.B, t.C)
	}
	return pts
}

func (m Mesh) RayIntersection(r geo.Ray) (float64, bool) {
	best := 0.0
	found := false
	for _, t := range m.Triangles {
		if d, ok := t.RayIntersection(r); ok && (!found || d < best) {
			best, found = d, true
		}
	}
	return best, found
}

// Paths returns each triangle's three edges as separate two-point
// polylines.
func (m Mesh) Paths() []Polyline {
	out := make([]Polyline, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		out = append(out, Polyline{t.A, t.B}, Polyline{t.B, t.C}, Polyline{t.C, t.A})
	}
	return out
}

// SDFObject is a supplemental line Object backed by an implicit
// surface: its outline is approximated by marching a coarse grid of
// +Z rays across the bbox and emitting a short segment at the first
// surface hit of each ray.
type SDFObject struct {
	Surface sdf.Sdf
	// GridStep is the spacing between sampled rows/columns when
	// extracting the silhouette.
	GridStep float64
}

func (o SDFObject) Bbox() geo.Aabb { return o.Surface.Bbox() }

func (o SDFObject) RayIntersection(r geo.Ray) (float64, bool) {
	return o.Surface.RayMarch(r, sdf.MaxSteps)
}

// Paths marches a grid of rays parallel to Z across the bbox's XY
// extent and emits a short Z-aligned segment at the first surface hit
// of each ray (the side facing -Z); later crossings are not followed.
func (o SDFObject) Paths() []Polyline {
	box := o.Surface.Bbox()
	step := o.GridStep
	if step <= 0 {
		step = 0.25
	}

	var out []Polyline
	for x := box.Min.X; x <= box.Max.X; x += step {
		for y := box.Min.Y; y <= box.Max.Y; y += step {
			origin := geo.V3{X: x, Y: y, Z: box.Min.Z - step}
			ray := geo.NewRay(origin, geo.V3{Z: 1})
			t, ok := o.Surface.RayMarch(ray, sdf.MaxSteps)
			if !ok {
				continue
			}
			p := ray.PointAt(t)
			out = append(out, Polyline{p.Sub(geo.V3{Z: step / 4}), p.Add(geo.V3{Z: step / 4})})
		}
	}
	return out
}

package line

import (
	"github.com/mirgo-labs/r3d/config"
	"github.com/mirgo-labs/r3d/geo"
)

// clipBox is the NDC cube the projection matrix maps visible geometry
// into; points outside it are clipped.
var clipBox = geo.Cuboid(geo.V3{}, geo.V3{X: 2, Y: 2, Z: 2})

// Render traces every object's paths through camera against scene,
// chopping each segment into visibility-tested steps, projecting and
// clipping the visible run, and simplifying the result.
func Render(camera Camera, scene *Scene, objects []Object, cfg config.LineConfig) []Polyline {
	var out []Polyline

	for _, obj := range objects {
		for _, path := range obj.Paths() {
			out = append(out, renderPath(camera, scene, path, cfg)...)
		}
	}

	for i, p := range out {
		out[i] = simplify(p, cfg.SimplifyEps)
	}
	return out
}

func renderPath(camera Camera, scene *Scene, path Polyline, cfg config.LineConfig) []Polyline {
	var out []Polyline

	for i := 0; i+1 < len(path); i++ {
		s, e := path[i], path[i+1]
		out = append(out, chopSegment(camera, scene, s, e, cfg)...)
	}
	return out
}

func chopSegment(camera Camera, scene *Scene, s, e geo.V3, cfg config.LineConfig) []Polyline {
	dir, ok := e.Sub(s).Normalize()
	if !ok {
		return nil
	}
	maxLen := e.Sub(s).Norm()

	var out []Polyline
	var current Polyline

	for l := 0.0; l <= maxLen; l += cfg.ChopEps {
		p := s.Add(dir.Scale(l))
		projected, pok := camera.Project(p)

		if pok && isVisible(camera, scene, p, cfg.ChopEps) && clipBox.Contains(projected) {
			if len(current) > 1 {
				current = current[:len(current)-1]
			}
			current = append(current, projected)
		} else if len(current) > 0 {
			out = append(out, current)
			current = nil
		}
	}

	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}

// isVisible casts a ray from p towards the camera's eye, offset by eps
// towards the eye to avoid self-intersection, and reports p as visible
// unless the scene has a hit closer to p than the eye itself is.
func isVisible(camera Camera, scene *Scene, p geo.V3, eps float64) bool {
	d := camera.Position().Sub(p)
	dist := d.Norm()
	if dist == 0 {
		return true
	}

	dir, ok := d.Normalize()
	if !ok {
		return true
	}

	origin := p.Add(dir.Scale(eps))
	ray := geo.NewRay(origin, dir)

	t, hit := scene.Intersection(ray)
	if !hit {
		return true
	}
	return t >= dist
}

// Package svg writes iso and line renderer output as SVG, shared
// between both renderers since they both ultimately produce polylines
// (and, for iso, filled triangles) in a cartesian plane.
package svg

import (
	"fmt"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo"

	"github.com/mirgo-labs/r3d/config"
	"github.com/mirgo-labs/r3d/iso"
)

// WritePolylines emits polylines as a stroked, unfilled SVG document
// scaled per cfg.
func WritePolylines(w io.Writer, polylines []iso.Polyline, cfg config.SVGConfig) {
	minx, miny, maxx, maxy, ok := polylineBounds(polylines)
	if !ok {
		emitEmpty(w)
		return
	}

	_, _, canvas := beginCanvas(w, minx, miny, maxx, maxy, cfg)
	defer canvas.End()

	canvas.Gstyle(fmt.Sprintf("stroke:black;stroke-width:%g;fill:none", cfg.StrokeWidth))
	for _, pl := range polylines {
		xs, ys := make([]int, len(pl)), make([]int, len(pl))
		for i, p := range pl {
			xs[i], ys[i] = scalePoint(p.X, p.Y, minx, miny, cfg.Scale)
		}
		canvas.Polyline(xs, ys)
	}
	canvas.Gend()
}

// WriteFillGroups emits iso.FillGroups as three filled triangle groups
// (top/left/right), each with its own shade, matching the three-tone
// isometric shading convention.
func WriteFillGroups(w io.Writer, groups iso.FillGroups, colors [3]string, cfg config.SVGConfig) {
	all := append(append(append([]iso.Triangle{}, groups.Top...), groups.Left...), groups.Right...)

	var polys []iso.Polyline
	for _, t := range all {
		polys = append(polys, iso.Polyline{t.Pts[0], t.Pts[1], t.Pts[2]})
	}
	minx, miny, maxx, maxy, ok := polylineBounds(polys)
	if !ok {
		emitEmpty(w)
		return
	}

	_, _, canvas := beginCanvas(w, minx, miny, maxx, maxy, cfg)
	defer canvas.End()

	writeGroup(canvas, groups.Top, colors[0], minx, miny, cfg.Scale)
	writeGroup(canvas, groups.Left, colors[1], minx, miny, cfg.Scale)
	writeGroup(canvas, groups.Right, colors[2], minx, miny, cfg.Scale)
}

func writeGroup(canvas *svgo.SVG, triangles []iso.Triangle, color string, minx, miny, scale float64) {
	canvas.Gstyle(fmt.Sprintf("fill:%s;stroke:none", color))
	for _, t := range triangles {
		xs := make([]int, 3)
		ys := make([]int, 3)
		for i, p := range t.Pts {
			xs[i], ys[i] = scalePoint(p.X, p.Y, minx, miny, scale)
		}
		canvas.Polygon(xs, ys)
	}
	canvas.Gend()
}

func beginCanvas(w io.Writer, minx, miny, maxx, maxy float64, cfg config.SVGConfig) (width, height int, canvas *svgo.SVG) {
	width = int(math.Ceil((maxx - minx) * cfg.Scale))
	height = int(math.Ceil((maxy - miny) * cfg.Scale))

	canvas = svgo.New(w)
	canvas.Start(width, height)
	if cfg.Background != "" {
		canvas.Rect(0, 0, width, height, fmt.Sprintf("fill:%s", cfg.Background))
	}
	return width, height, canvas
}

func scalePoint(x, y, minx, miny, scale float64) (int, int) {
	return int(math.Round((x - minx) * scale)), int(math.Round((y - miny) * scale))
}

func polylineBounds(polylines []iso.Polyline) (minx, miny, maxx, maxy float64, ok bool) {
	minx, miny = math.Inf(1), math.Inf(1)
	maxx, maxy = math.Inf(-1), math.Inf(-1)
	for _, pl := range polylines {
		for _, p := range pl {
			minx, maxx = math.Min(minx, p.X), math.Max(maxx, p.X)
			miny, maxy = math.Min(miny, p.Y), math.Max(maxy, p.Y)
			ok = true
		}
	}
	return minx, miny, maxx, maxy, ok
}

func emitEmpty(w io.Writer) {
	fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprint(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 0 0"></svg>`+"\n")
}

package iso

import "sort"

// Triangle is a triangle in the final cartesian plane, tagged with
// which face it belongs to and which of its edges are visible.
type Triangle struct {
	Orientation Orientation
	Pts         [3]XY
	Visible     [3]bool
}

// Polyline is a connected sequence of points in the cartesian plane.
type Polyline []XY

// ijTriangle is the painter's-pass intermediate representation: a
// triangle with IJ (not yet scaled to cartesian) vertices, used both to
// dedup triangles that two voxels would otherwise draw twice and to
// build the edge connectivity graph for coalescing.
type ijTriangle struct {
	Orientation Orientation
	Pts         [3]IJ
	Visible     [3]bool
}

// Render runs the painter's pass over voxels: for each IJ column only
// the nearest voxel survives, voxels are drawn front-to-back, and
// triangles already drawn by a nearer voxel are skipped.
func Render(voxels []Voxel) []Triangle {
	return renderIJ(voxels).toTriangles()
}

// Polylines coalesces the visible edges of triangles into maximal
// straight runs, per the connectivity-graph algorithm (spec §4.5.4).
func Polylines(voxels []Voxel) []Polyline {
	return coalesce(renderIJ(voxels))
}

// FillGroups buckets triangles by face orientation for fill-shaded
// rendering: three separate groups so each can receive its own shade.
type FillGroups struct {
	Top, Left, Right []Triangle
}

func GroupsByOrientation(triangles []Triangle) FillGroups {
	var g FillGroups
	for _, t := range triangles {
		switch t.Orientation {
		case Top:
			g.Top = append(g.Top, t)
		case Left:
			g.Left = append(g.Left, t)
		case Right:
			g.Right = append(g.Right, t)
		}
	}
	return g
}

type triangleList []ijTriangle

func renderIJ(voxels []Voxel) triangleList {
	// keep only the nearest voxel per IJ column.
	nearest := make(map[IJ]Voxel)
	for _, v := range voxels {
		ij := projectIJ(v)
		if cur, ok := nearest[ij]; !ok || nearness(v) > nearness(cur) {
			nearest[ij] = v
		}
	}

	survivors := make([]Voxel, 0, len(nearest))
	lookup := make(voxelLookup, len(nearest))
	for _, v := range nearest {
		survivors = append(survivors, v)
		lookup[v] = struct{}{}
	}

	sort.Slice(survivors, func(i, j int) bool {
		return nearness(survivors[i]) > nearness(survivors[j])
	})

	drawn := make(map[[3]IJ]bool)
	var out triangleList

	for _, vox := range survivors {
		for _, tri := range triangulate(vox, lookup) {
			ijTri := ijTriangle{
				Orientation: tri.Orientation,
				Visible:     tri.Visible,
				Pts:         [3]IJ{projectIJ(tri.Pts[0]), projectIJ(tri.Pts[1]), projectIJ(tri.Pts[2])},
			}
			if drawn[ijTri.Pts] {
				continue
			}
			drawn[ijTri.Pts] = true
			out = append(out, ijTri)
		}
	}

	return out
}

func (ts triangleList) toTriangles() []Triangle {
	out := make([]Triangle, len(ts))
	for i, t := range ts {
		out[i] = Triangle{
			Orientation: t.Orientation,
			Visible:     t.Visible,
			Pts: [3]XY{
				halve(projectIso(t.Pts[0])),
				halve(projectIso(t.Pts[1])),
				halve(projectIso(t.Pts[2])),
			},
		}
	}
	return out
}

func halve(p XY) XY { return XY{X: p.X / 2, Y: p.Y / 2} }

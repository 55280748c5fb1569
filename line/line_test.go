package line_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirgo-labs/r3d/config"
	"github.com/mirgo-labs/r3d/geo"
	"github.com/mirgo-labs/r3d/line"
)

func cubeMesh() line.Mesh {
	// a unit cube centered at the origin, as two triangles per face.
	c := geo.V3{}
	half := 0.5
	corners := [8]geo.V3{
		c.Add(geo.V3{X: -half, Y: -half, Z: -half}),
		c.Add(geo.V3{X: half, Y: -half, Z: -half}),
		c.Add(geo.V3{X: half, Y: half, Z: -half}),
		c.Add(geo.V3{X: -half, Y: half, Z: -half}),
		c.Add(geo.V3{X: -half, Y: -half, Z: half}),
		c.Add(geo.V3{X: half, Y: -half, Z: half}),
		c.Add(geo.V3{X: half, Y: half, Z: half}),
		c.Add(geo.V3{X: -half, Y: half, Z: half}),
	}
	quad := func(a, b, cc, d int) []geo.Triangle {
		return []geo.Triangle{
			{A: corners[a], B: corners[b], C: corners[cc]},
			{A: corners[a], B: corners[cc], C: corners[d]},
		}
	}
	var tris []geo.Triangle
	tris = append(tris, quad(0, 1, 2, 3)...) // back
	tris = append(tris, quad(4, 5, 6, 7)...) // front
	tris = append(tris, quad(0, 1, 5, 4)...) // bottom
	tris = append(tris, quad(3, 2, 6, 7)...) // top
	tris = append(tris, quad(0, 3, 7, 4)...) // left
	tris = append(tris, quad(1, 2, 6, 5)...) // right

	return line.Mesh{Triangles: tris}
}

func TestRenderCubeProducesVisiblePolylines(t *testing.T) {
	mesh := cubeMesh()
	objects := []line.Object{mesh}
	scene := line.NewScene(objects)

	cam := line.LookAt(geo.V3{X: 3, Y: 3, Z: 3}, geo.V3{}, geo.V3{Y: 1}).
		WithPerspective(40, 1, 0.1, 100)

	cfg := config.LineConfig{ChopEps: 0.05, SimplifyEps: 0.01}
	polylines := line.Render(cam, scene, objects, cfg)

	require.NotEmpty(t, polylines, "a cube viewed obliquely should produce visible edges")
}

func TestCameraProjectReturnsPointWithinNDCForVisiblePoint(t *testing.T) {
	cam := line.LookAt(geo.V3{X: 0, Y: 0, Z: 5}, geo.V3{}, geo.V3{Y: 1}).
		WithPerspective(60, 1, 0.1, 100)

	p, ok := cam.Project(geo.V3{})
	require.True(t, ok)
	require.InDelta(t, 0, p.X, 1e-9)
	require.InDelta(t, 0, p.Y, 1e-9)
}

func TestToXYDropsZComponent(t *testing.T) {
	polylines := []line.Polyline{{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}}
	xy := line.ToXY(polylines)
	require.Len(t, xy, 1)
	require.Equal(t, 1.0, xy[0][0].X)
	require.Equal(t, 2.0, xy[0][0].Y)
}

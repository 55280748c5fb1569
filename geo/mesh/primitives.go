package mesh

import (
	"math"

	"github.com/mirgo-labs/r3d/geo"
)

// UVSphere generates a ring/segment-parameterized sphere mesh.
func UVSphere(radius float64, segments, rings int) Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	verts := make([][]geo.V3, rings+1)
	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * math.Pi / float64(rings)
		sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

		row := make([]geo.V3, segments+1)
		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2 * math.Pi / float64(segments)
			sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)
			row[seg] = geo.V3{X: sinPhi * cosTheta * radius, Y: cosPhi * radius, Z: sinPhi * sinTheta * radius}
		}
		verts[ring] = row
	}

	var tris []geo.Triangle
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a, b := verts[ring][seg], verts[ring][seg+1]
			c, d := verts[ring+1][seg], verts[ring+1][seg+1]
			tris = append(tris, geo.Triangle{A: a, B: c, C: b}, geo.Triangle{A: b, B: c, C: d})
		}
	}
	return Mesh{Name: "sphere", Triangles: tris}
}

// Plane generates a flat, subdivided rectangle in the XZ plane,
// centered at the origin.
func Plane(width, depth float64, subdivisions int) Mesh {
	if subdivisions < 1 {
		subdivisions = 1
	}
	halfW, halfD := width/2, depth/2

	grid := make([][]geo.V3, subdivisions+1)
	for z := 0; z <= subdivisions; z++ {
		row := make([]geo.V3, subdivisions+1)
		for x := 0; x <= subdivisions; x++ {
			u := float64(x) / float64(subdivisions)
			v := float64(z) / float64(subdivisions)
			row[x] = geo.V3{X: -halfW + u*width, Y: 0, Z: -halfD + v*depth}
		}
		grid[z] = row
	}

	var tris []geo.Triangle
	for z := 0; z < subdivisions; z++ {
		for x := 0; x < subdivisions; x++ {
			topLeft, topRight := grid[z][x], grid[z][x+1]
			botLeft, botRight := grid[z+1][x], grid[z+1][x+1]
			tris = append(tris, geo.Triangle{A: topLeft, B: botLeft, C: topRight})
			tris = append(tris, geo.Triangle{A: topRight, B: botLeft, C: botRight})
		}
	}
	return Mesh{Name: "plane", Triangles: tris}
}

// Torus generates a torus mesh swept around the Y axis.
func Torus(majorRadius, minorRadius float64, majorSegments, minorSegments int) Mesh {
	if majorSegments < 3 {
		majorSegments = 3
	}
	if minorSegments < 3 {
		minorSegments = 3
	}

	verts := make([][]geo.V3, majorSegments+1)
	for i := 0; i <= majorSegments; i++ {
		theta := float64(i) * 2 * math.Pi / float64(majorSegments)
		cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)

		row := make([]geo.V3, minorSegments+1)
		for j := 0; j <= minorSegments; j++ {
			phi := float64(j) * 2 * math.Pi / float64(minorSegments)
			cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

			row[j] = geo.V3{
				X: (majorRadius + minorRadius*cosPhi) * cosTheta,
				Y: minorRadius * sinPhi,
				Z: (majorRadius + minorRadius*cosPhi) * sinTheta,
			}
		}
		verts[i] = row
	}

	var tris []geo.Triangle
	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			a, b := verts[i][j], verts[i][j+1]
			c, d := verts[i+1][j], verts[i+1][j+1]
			tris = append(tris, geo.Triangle{A: a, B: c, C: b}, geo.Triangle{A: b, B: c, C: d})
		}
	}
	return Mesh{Name: "torus", Triangles: tris}
}

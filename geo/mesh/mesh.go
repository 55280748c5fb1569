// Package mesh loads the external mesh formats this renderer consumes:
// STL (ASCII and binary, auto-detected) and a narrow subset of OBJ.
package mesh

import (
	"errors"

	"github.com/mirgo-labs/r3d/geo"
)

// ErrBadFormat is returned when a mesh file is malformed, truncated, or
// contains a token the loader doesn't recognize.
var ErrBadFormat = errors.New("mesh: bad format")

// ErrInvalidNumber is returned when a numeric field fails to parse.
var ErrInvalidNumber = errors.New("mesh: invalid number")

// Mesh is a loaded set of triangles, irrespective of source format.
type Mesh struct {
	// Name is the STL solid name or OBJ file base name, when known.
	Name      string
	Triangles []geo.Triangle
}

// Bbox returns the union bounding box of every triangle in the mesh. ok is
// false for an empty mesh.
func (m Mesh) Bbox() (geo.Aabb, bool) {
	if len(m.Triangles) == 0 {
		return geo.Aabb{}, false
	}
	box := m.Triangles[0].Bbox()
	for _, t := range m.Triangles[1:] {
		box = box.Union(t.Bbox())
	}
	return box, true
}

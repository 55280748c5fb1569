package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mirgo-labs/r3d/geo"
)

// LoadOBJ reads the narrow slice of Wavefront OBJ this renderer needs:
// vertex positions (v) and triangular faces (f). Normals, texture
// coordinates, parameter-space vertices and smoothing groups (vn, vt, vp,
// s) are recognized and silently skipped; anything else, including a
// face with other than exactly three vertex references, is ErrBadFormat.
// There is no fan-triangulation of larger polygons.
func LoadOBJ(r io.Reader) (Mesh, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var verts []geo.V3
	var tris []geo.Triangle

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return Mesh{}, err
			}
			verts = append(verts, v)
		case "vn", "vt", "vp", "s":
			// ignored
		case "f":
			if len(fields) != 4 {
				return Mesh{}, fmt.Errorf("mesh: obj: face must have exactly 3 vertices: %w", ErrBadFormat)
			}
			tri, err := parseFace(fields[1:], verts)
			if err != nil {
				return Mesh{}, err
			}
			tris = append(tris, tri)
		default:
			return Mesh{}, fmt.Errorf("mesh: obj: unrecognized command %q: %w", fields[0], ErrBadFormat)
		}
	}
	if err := sc.Err(); err != nil {
		return Mesh{}, fmt.Errorf("mesh: obj: %w", err)
	}

	return Mesh{Triangles: tris}, nil
}

func parseVertex(fields []string) (geo.V3, error) {
	if len(fields) < 3 {
		return geo.V3{}, fmt.Errorf("mesh: obj: vertex needs 3 components: %w", ErrBadFormat)
	}
	var v geo.V3
	for i, dst := range []*float64{&v.X, &v.Y, &v.Z} {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geo.V3{}, fmt.Errorf("mesh: obj: %w: %v", ErrInvalidNumber, err)
		}
		*dst = f
	}
	return v, nil
}

// WriteOBJ writes m as Wavefront OBJ: three vertex lines per triangle
// (shared corners are not merged) followed by one face per triangle. Kept minimal
// (positions and faces only, no normals/UVs/materials round-trip) for
// debugging geometry pipelines, not for a lossless OBJ round-trip.
func WriteOBJ(w io.Writer, m Mesh) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "# exported by r3d"); err != nil {
		return fmt.Errorf("mesh: obj: %w", err)
	}
	if m.Name != "" {
		if _, err := fmt.Fprintf(bw, "o %s\n", m.Name); err != nil {
			return fmt.Errorf("mesh: obj: %w", err)
		}
	}

	for _, t := range m.Triangles {
		for _, v := range []geo.V3{t.A, t.B, t.C} {
			if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
				return fmt.Errorf("mesh: obj: %w", err)
			}
		}
	}
	for i := range m.Triangles {
		base := i*3 + 1
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", base, base+1, base+2); err != nil {
			return fmt.Errorf("mesh: obj: %w", err)
		}
	}

	return bw.Flush()
}

func parseFace(fields []string, verts []geo.V3) (geo.Triangle, error) {
	var idx [3]int
	for i, f := range fields {
		tok := f
		if slash := strings.IndexByte(tok, '/'); slash >= 0 {
			tok = tok[:slash]
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return geo.Triangle{}, fmt.Errorf("mesh: obj: %w: %v", ErrInvalidNumber, err)
		}

		var resolved int
		switch {
		case n > 0:
			resolved = n - 1
		case n < 0:
			resolved = len(verts) + n
		default:
			return geo.Triangle{}, fmt.Errorf("mesh: obj: face index must not be zero: %w", ErrBadFormat)
		}
		if resolved < 0 || resolved >= len(verts) {
			return geo.Triangle{}, fmt.Errorf("mesh: obj: face index out of range: %w", ErrBadFormat)
		}
		idx[i] = resolved
	}
	return geo.Triangle{A: verts[idx[0]], B: verts[idx[1]], C: verts[idx[2]]}, nil
}

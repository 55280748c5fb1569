package mesh

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mirgo-labs/r3d/geo"
)

// LoadSTL reads either ASCII or binary STL from r, auto-detecting the
// format from the leading bytes. A binary STL's 80-byte header may itself
// start with the literal text "solid", so detection here only trusts the
// ASCII branch when the whole stream parses as ASCII tokens; any token
// mismatch after the "solid" keyword falls back to ErrBadFormat rather
// than silently misreading a binary file.
func LoadSTL(r io.Reader) (Mesh, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	head, err := br.Peek(5)
	if err != nil && err != io.EOF {
		return Mesh{}, fmt.Errorf("mesh: reading stl header: %w", err)
	}
	if string(head) == "solid" {
		return loadSTLAscii(br)
	}
	return loadSTLBinary(br)
}

func loadSTLBinary(r io.Reader) (Mesh, error) {
	header := make([]byte, 80)
	if _, err := io.ReadFull(r, header); err != nil {
		return Mesh{}, fmt.Errorf("mesh: reading stl header: %w", err)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return Mesh{}, fmt.Errorf("mesh: reading stl triangle count: %w", err)
	}

	tris := make([]geo.Triangle, 0, count)
	for i := uint32(0); i < count; i++ {
		var raw [12]float32 // normal(3) + 3 vertices(3 each)
		if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
			return Mesh{}, fmt.Errorf("mesh: reading stl triangle %d: %w", i, err)
		}
		var attr uint16
		if err := binary.Read(r, binary.LittleEndian, &attr); err != nil {
			return Mesh{}, fmt.Errorf("mesh: reading stl attribute count: %w", err)
		}

		a := geo.V3{X: float64(raw[3]), Y: float64(raw[4]), Z: float64(raw[5])}
		b := geo.V3{X: float64(raw[6]), Y: float64(raw[7]), Z: float64(raw[8])}
		c := geo.V3{X: float64(raw[9]), Y: float64(raw[10]), Z: float64(raw[11])}
		tris = append(tris, geo.Triangle{A: a, B: b, C: c})
	}

	return Mesh{Triangles: tris}, nil
}

func loadSTLAscii(r io.Reader) (Mesh, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	tok, ok := next()
	if !ok || tok != "solid" {
		return Mesh{}, fmt.Errorf("mesh: ascii stl: %w", ErrBadFormat)
	}

	var name strings.Builder
	for {
		tok, ok = next()
		if !ok {
			return Mesh{}, fmt.Errorf("mesh: ascii stl: unexpected eof: %w", ErrBadFormat)
		}
		if tok == "facet" || tok == "endsolid" {
			break
		}
		if name.Len() > 0 {
			name.WriteByte(' ')
		}
		name.WriteString(tok)
	}

	var tris []geo.Triangle
	for tok == "facet" {
		if t, ok := next(); !ok || t != "normal" {
			return Mesh{}, fmt.Errorf("mesh: ascii stl: expected normal: %w", ErrBadFormat)
		}
		if _, err := readVec3(next); err != nil {
			return Mesh{}, err
		}

		if t, ok := next(); !ok || t != "outer" {
			return Mesh{}, fmt.Errorf("mesh: ascii stl: expected outer loop: %w", ErrBadFormat)
		}
		if t, ok := next(); !ok || t != "loop" {
			return Mesh{}, fmt.Errorf("mesh: ascii stl: expected outer loop: %w", ErrBadFormat)
		}

		var verts [3]geo.V3
		for i := 0; i < 3; i++ {
			if t, ok := next(); !ok || t != "vertex" {
				return Mesh{}, fmt.Errorf("mesh: ascii stl: expected vertex: %w", ErrBadFormat)
			}
			v, err := readVec3(next)
			if err != nil {
				return Mesh{}, err
			}
			verts[i] = v
		}

		if t, ok := next(); !ok || t != "endloop" {
			return Mesh{}, fmt.Errorf("mesh: ascii stl: expected endloop: %w", ErrBadFormat)
		}
		if t, ok := next(); !ok || t != "endfacet" {
			return Mesh{}, fmt.Errorf("mesh: ascii stl: expected endfacet: %w", ErrBadFormat)
		}

		tris = append(tris, geo.Triangle{A: verts[0], B: verts[1], C: verts[2]})

		tok, ok = next()
		if !ok {
			return Mesh{}, fmt.Errorf("mesh: ascii stl: unexpected eof: %w", ErrBadFormat)
		}
	}

	if tok != "endsolid" {
		return Mesh{}, fmt.Errorf("mesh: ascii stl: expected endsolid: %w", ErrBadFormat)
	}

	return Mesh{Name: strings.TrimSpace(name.String()), Triangles: tris}, nil
}

func readVec3(next func() (string, bool)) (geo.V3, error) {
	var v geo.V3
	for i, dst := range []*float64{&v.X, &v.Y, &v.Z} {
		t, ok := next()
		if !ok {
			return geo.V3{}, fmt.Errorf("mesh: ascii stl: unexpected eof reading component %d: %w", i, ErrBadFormat)
		}
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return geo.V3{}, fmt.Errorf("mesh: ascii stl: %w: %v", ErrInvalidNumber, err)
		}
		*dst = f
	}
	return v, nil
}

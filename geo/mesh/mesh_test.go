package mesh_test

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirgo-labs/r3d/geo/mesh"
)

const cubeASCII = `solid cube
facet normal 0 0 -1
outer loop
vertex -1 -1 -1
vertex -1 1 -1
vertex 1 1 -1
endloop
endfacet
facet normal 0 0 -1
outer loop
vertex -1 -1 -1
vertex 1 1 -1
vertex 1 -1 -1
endloop
endfacet
endsolid cube
`

func TestLoadSTLAscii(t *testing.T) {
	m, err := mesh.LoadSTL(strings.NewReader(cubeASCII))
	require.NoError(t, err)
	require.Equal(t, "cube", m.Name)
	require.Len(t, m.Triangles, 2)

	box, ok := m.Bbox()
	require.True(t, ok)
	require.Equal(t, -1.0, box.Min.X)
	require.Equal(t, 1.0, box.Max.X)
}

func TestLoadSTLAsciiBadFormat(t *testing.T) {
	_, err := mesh.LoadSTL(strings.NewReader("solid x\nfacet normal 0 0 0\n"))
	require.ErrorIs(t, err, mesh.ErrBadFormat)
}

func buildBinarySTL(t *testing.T, tris [][3][3]float32) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(tris))))
	for _, tri := range tris {
		var normal [3]float32
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, normal))
		for _, v := range tri {
			require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
		}
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(0)))
	}
	return buf.Bytes()
}

func TestLoadSTLBinary(t *testing.T) {
	data := buildBinarySTL(t, [][3][3]float32{
		{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
	})
	m, err := mesh.LoadSTL(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, m.Triangles, 1)
	require.Equal(t, float64(1), m.Triangles[0].B.X)
}

const cubeOBJ = `# comment
v -1 -1 -1
v 1 -1 -1
v 1 1 -1
v -1 1 -1
vn 0 0 -1
f 1 2 3
f 1 3 4
`

func TestLoadOBJ(t *testing.T) {
	m, err := mesh.LoadOBJ(strings.NewReader(cubeOBJ))
	require.NoError(t, err)
	require.Len(t, m.Triangles, 2)
}

func TestLoadOBJRejectsQuadFace(t *testing.T) {
	bad := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"
	_, err := mesh.LoadOBJ(strings.NewReader(bad))
	require.ErrorIs(t, err, mesh.ErrBadFormat)
}

func TestLoadOBJRejectsUnknownCommand(t *testing.T) {
	bad := "v 0 0 0\ng mygroup\n"
	_, err := mesh.LoadOBJ(strings.NewReader(bad))
	require.ErrorIs(t, err, mesh.ErrBadFormat)
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"
	m, err := mesh.LoadOBJ(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Triangles, 1)
	require.Equal(t, float64(1), m.Triangles[0].B.X)
}

func TestUVSphereProducesClosedBoundedMesh(t *testing.T) {
	m := mesh.UVSphere(2, 12, 8)
	require.Len(t, m.Triangles, 2*12*8)

	box, ok := m.Bbox()
	require.True(t, ok)
	require.InDelta(t, -2, box.Min.Y, 1e-9)
	require.InDelta(t, 2, box.Max.Y, 1e-9)
}

func TestPlaneProducesExpectedTriangleCount(t *testing.T) {
	m := mesh.Plane(4, 6, 3)
	require.Len(t, m.Triangles, 2*3*3)

	box, ok := m.Bbox()
	require.True(t, ok)
	require.InDelta(t, -2, box.Min.X, 1e-9)
	require.InDelta(t, 3, box.Max.Z, 1e-9)
}

func TestTorusProducesExpectedTriangleCount(t *testing.T) {
	m := mesh.Torus(2, 0.5, 16, 8)
	require.Len(t, m.Triangles, 2*16*8)
}

func TestWriteOBJRoundTrips(t *testing.T) {
	m, err := mesh.LoadOBJ(strings.NewReader(cubeOBJ))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mesh.WriteOBJ(&buf, m))

	roundTripped, err := mesh.LoadOBJ(&buf)
	require.NoError(t, err)
	require.Len(t, roundTripped.Triangles, len(m.Triangles))
	require.Equal(t, m.Triangles[0].A, roundTripped.Triangles[0].A)
	require.Equal(t, m.Triangles[1].C, roundTripped.Triangles[1].C)
}

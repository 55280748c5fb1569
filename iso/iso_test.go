package iso_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirgo-labs/r3d/iso"
)

func TestVoxelSetAddIsIdempotent(t *testing.T) {
	s := iso.NewVoxelSet()
	v := iso.Voxel{X: 1, Y: 2, Z: 3}

	s.Add(v)
	s.Add(v)

	require.True(t, s.IsSet(v))
	require.Len(t, s.Slice(), 1)
}

func TestVoxelSetRemove(t *testing.T) {
	s := iso.NewVoxelSet()
	v := iso.Voxel{X: 1, Y: 2, Z: 3}
	s.Add(v)
	s.Remove(v)
	require.False(t, s.IsSet(v))
}

func TestVoxelSetManyAddsStayConsistent(t *testing.T) {
	s := iso.NewVoxelSet()
	var added []iso.Voxel
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			for z := 0; z < 5; z++ {
				v := iso.Voxel{X: x, Y: y, Z: z}
				s.Add(v)
				added = append(added, v)
			}
		}
	}
	require.Len(t, s.Slice(), len(added))
	for _, v := range added {
		require.True(t, s.IsSet(v))
	}
	require.False(t, s.IsSet(iso.Voxel{X: 100, Y: 100, Z: 100}))
}

func TestRenderSingleVoxelProducesSixTriangles(t *testing.T) {
	triangles := iso.Render([]iso.Voxel{{X: 0, Y: 0, Z: 0}})
	require.Len(t, triangles, 6)

	for _, tr := range triangles {
		visibleCount := 0
		for _, v := range tr.Visible {
			if v {
				visibleCount++
			}
		}
		require.Greater(t, visibleCount, 0, "every triangle of an isolated voxel has at least one visible edge")
	}
}

func TestRenderCubeHidesInteriorFaces(t *testing.T) {
	var voxels []iso.Voxel
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				voxels = append(voxels, iso.Voxel{X: x, Y: y, Z: z})
			}
		}
	}
	triangles := iso.Render(voxels)
	require.NotEmpty(t, triangles)

	// 8 voxels have 48 face triangles; only the cube's three outer
	// faces (4 rhombi of 2 triangles each) survive.
	require.Len(t, triangles, 24)
}

func TestPolylinesNonEmptyForCube(t *testing.T) {
	var voxels []iso.Voxel
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				voxels = append(voxels, iso.Voxel{X: x, Y: y, Z: z})
			}
		}
	}
	polylines := iso.Polylines(voxels)
	require.NotEmpty(t, polylines)
	for _, pl := range polylines {
		require.GreaterOrEqual(t, len(pl), 2)
	}
}

func TestGroupsByOrientationPartitionsAllTriangles(t *testing.T) {
	triangles := iso.Render([]iso.Voxel{{X: 0, Y: 0, Z: 0}})
	groups := iso.GroupsByOrientation(triangles)
	total := len(groups.Top) + len(groups.Left) + len(groups.Right)
	require.Equal(t, len(triangles), total)
}

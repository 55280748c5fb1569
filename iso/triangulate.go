package iso

// Orientation is which of a voxel's three visible faces a triangle
// belongs to, used to bucket triangles for fill-shaded output.
type Orientation int

const (
	Top Orientation = iota
	Left
	Right
)

// faceTriangle is a triangle over doubled-lattice voxel coordinates
// (every vertex lies on an integer lattice point, spec §4.5.3). Edges
// are always ordered vertical, u-parallel, v-parallel — edge i runs
// from Pts[i] to Pts[(i+1)%3], and Visible[i] records whether that edge
// should be drawn.
type faceTriangle struct {
	Orientation Orientation
	Pts         [3]Voxel
	Visible     [3]bool
}

// edge bit positions, matching the vertical/u-parallel/v-parallel
// ordering of faceTriangle's edges.
const (
	edgeVertical = iota
	edgeU
	edgeV
)

// triangulate returns the six triangles (two per visible face: top,
// left, right) of voxel vox, with edge visibility resolved by checking
// which of its neighbors are present in set.
func triangulate(vox Voxel, set membership) [6]faceTriangle {
	x, y, z := vox.X, vox.Y, vox.Z

	right := set.has(Voxel{x + 1, y, z})
	front := set.has(Voxel{x, y + 1, z})
	back := set.has(Voxel{x, y - 1, z})
	left := set.has(Voxel{x - 1, y, z})
	up := set.has(Voxel{x, y, z + 1})
	down := set.has(Voxel{x, y, z - 1})
	backRight := set.has(Voxel{x + 1, y - 1, z})
	upRight := set.has(Voxel{x + 1, y, z + 1})
	downRight := set.has(Voxel{x + 1, y, z - 1})
	frontDown := set.has(Voxel{x, y + 1, z - 1})
	frontUp := set.has(Voxel{x, y + 1, z + 1})
	frontLeft := set.has(Voxel{x - 1, y + 1, z})

	// scale by 2 so every vertex lands on an integer lattice point.
	x, y, z = x*2, y*2, z*2

	return [6]faceTriangle{
		{
			Orientation: Top,
			Pts: [3]Voxel{
				{x - 1, y - 1, z + 1},
				{x + 1, y + 1, z + 1},
				{x - 1, y + 1, z + 1},
			},
			Visible: [3]bool{false, !front, !left},
		},
		{
			Orientation: Top,
			Pts: [3]Voxel{
				{x + 1, y + 1, z + 1},
				{x - 1, y - 1, z + 1},
				{x + 1, y - 1, z + 1},
			},
			Visible: [3]bool{false, !back, !right},
		},
		{
			Orientation: Right,
			Pts: [3]Voxel{
				{x + 1, y - 1, z + 1},
				{x + 1, y - 1, z - 1},
				{x + 1, y + 1, z + 1},
			},
			Visible: [3]bool{!back || backRight, false, !up || upRight},
		},
		{
			Orientation: Right,
			Pts: [3]Voxel{
				{x + 1, y + 1, z - 1},
				{x + 1, y + 1, z + 1},
				{x + 1, y - 1, z - 1},
			},
			Visible: [3]bool{!front, false, !down || downRight},
		},
		{
			Orientation: Left,
			Pts: [3]Voxel{
				{x + 1, y + 1, z + 1},
				{x + 1, y + 1, z - 1},
				{x - 1, y + 1, z - 1},
			},
			Visible: [3]bool{!right, !down || frontDown, false},
		},
		{
			Orientation: Left,
			Pts: [3]Voxel{
				{x - 1, y + 1, z - 1},
				{x - 1, y + 1, z + 1},
				{x + 1, y + 1, z + 1},
			},
			Visible: [3]bool{!left || frontLeft, !up || frontUp, false},
		},
	}
}

// membership abstracts the constant-time lookup triangulate needs,
// satisfied by both VoxelSet and the plain set used internally by the
// painter's pass.
type membership interface {
	has(Voxel) bool
}

func (s *VoxelSet) has(v Voxel) bool { return s.IsSet(v) }

type voxelLookup map[Voxel]struct{}

func (m voxelLookup) has(v Voxel) bool { _, ok := m[v]; return ok }

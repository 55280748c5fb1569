// Package iso implements the isometric voxel renderer: a voxel index,
// IJ projection, per-voxel triangulation with neighbor-aware visibility,
// a painter's-algorithm pass, and polyline coalescing for a line-art
// SVG output.
package iso

// Voxel is an integer lattice coordinate.
type Voxel struct{ X, Y, Z int }

// maxSparseVoxels is the sparse-set size at which VoxelSet migrates to a
// dense bit-grid over the current bounding box.
const maxSparseVoxels = 1 << 20

// VoxelSet is a set of voxels with add/remove/membership, backed by a
// Go map while small and migrating to a dense bit-grid once the sparse
// set grows past maxSparseVoxels, the way a spatial structure trades
// generality for density at scale.
type VoxelSet struct {
	sparse map[Voxel]struct{}

	dense    []uint64
	min, max Voxel
	dimX     int
	dimXY    int
}

// NewVoxelSet returns an empty set.
func NewVoxelSet() *VoxelSet {
	return &VoxelSet{sparse: make(map[Voxel]struct{})}
}

// Add inserts v. Idempotent.
func (s *VoxelSet) Add(v Voxel) {
	if s.dense != nil {
		if s.inBounds(v) {
			s.setBit(v, true)
			return
		}
		s.migrate(s.boundsUnion(v))
		s.setBit(v, true)
		return
	}

	if _, ok := s.sparse[v]; ok {
		return
	}
	s.sparse[v] = struct{}{}

	if len(s.sparse) >= maxSparseVoxels {
		s.migrate(s.sparseBounds())
	}
}

// Remove deletes v. A no-op if v is not a member.
func (s *VoxelSet) Remove(v Voxel) {
	if s.dense != nil {
		if s.inBounds(v) {
			s.setBit(v, false)
		}
		return
	}
	delete(s.sparse, v)
}

// IsSet reports whether v is a member.
func (s *VoxelSet) IsSet(v Voxel) bool {
	if s.dense != nil {
		return s.inBounds(v) && s.getBit(v)
	}
	_, ok := s.sparse[v]
	return ok
}

// Each calls fn once for every member voxel, in unspecified order.
func (s *VoxelSet) Each(fn func(Voxel)) {
	if s.dense != nil {
		for z := s.min.Z; z <= s.max.Z; z++ {
			for y := s.min.Y; y <= s.max.Y; y++ {
				for x := s.min.X; x <= s.max.X; x++ {
					v := Voxel{x, y, z}
					if s.getBit(v) {
						fn(v)
					}
				}
			}
		}
		return
	}
	for v := range s.sparse {
		fn(v)
	}
}

// Slice returns every member voxel as a slice.
func (s *VoxelSet) Slice() []Voxel {
	var out []Voxel
	s.Each(func(v Voxel) { out = append(out, v) })
	return out
}

func (s *VoxelSet) inBounds(v Voxel) bool {
	return v.X >= s.min.X && v.X <= s.max.X &&
		v.Y >= s.min.Y && v.Y <= s.max.Y &&
		v.Z >= s.min.Z && v.Z <= s.max.Z
}

func (s *VoxelSet) bitIndex(v Voxel) int {
	dx := v.X - s.min.X
	dy := v.Y - s.min.Y
	dz := v.Z - s.min.Z
	return dz*s.dimXY + dy*s.dimX + dx
}

func (s *VoxelSet) setBit(v Voxel, on bool) {
	idx := s.bitIndex(v)
	word, bit := idx/64, uint(idx%64)
	if on {
		s.dense[word] |= 1 << bit
	} else {
		s.dense[word] &^= 1 << bit
	}
}

func (s *VoxelSet) getBit(v Voxel) bool {
	idx := s.bitIndex(v)
	word, bit := idx/64, uint(idx%64)
	return s.dense[word]&(1<<bit) != 0
}

func (s *VoxelSet) sparseBounds() (min, max Voxel) {
	first := true
	for v := range s.sparse {
		if first {
			min, max = v, v
			first = false
			continue
		}
		min = minVoxel(min, v)
		max = maxVoxel(max, v)
	}
	return min, max
}

func (s *VoxelSet) boundsUnion(v Voxel) (min, max Voxel) {
	return minVoxel(s.min, v), maxVoxel(s.max, v)
}

// migrate (re)allocates the dense bit-grid to cover [min,max], copying
// any existing dense contents or the sparse set in.
func (s *VoxelSet) migrate(min, max Voxel) {
	dimX := max.X - min.X + 1
	dimY := max.Y - min.Y + 1
	dimZ := max.Z - min.Z + 1
	words := (dimX*dimY*dimZ + 63) / 64

	newDense := make([]uint64, words)
	newDimX := dimX
	newDimXY := dimX * dimY

	collect := func(v Voxel) {
		dx := v.X - min.X
		dy := v.Y - min.Y
		dz := v.Z - min.Z
		idx := dz*newDimXY + dy*newDimX + dx
		newDense[idx/64] |= 1 << uint(idx%64)
	}

	if s.dense != nil {
		s.Each(collect)
	} else {
		for v := range s.sparse {
			collect(v)
		}
	}

	s.dense = newDense
	s.min, s.max = min, max
	s.dimX, s.dimXY = newDimX, newDimXY
	s.sparse = nil
}

func minVoxel(a, b Voxel) Voxel {
	return Voxel{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

func maxVoxel(a, b Voxel) Voxel {
	return Voxel{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}

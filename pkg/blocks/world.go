package blocks

// World is a sparse in-memory block store. Missing blocks are Air.
type World struct {
	blocks map[BlockPos]Material
	writes int
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{blocks: make(map[BlockPos]Material)}
}

// SetMaterial implements SurfaceWriter. Writing Air clears the block.
func (w *World) SetMaterial(x, y, z int, m Material) {
	w.writes++
	pos := BlockPos{x, y, z}
	if m == Air || m == "" {
		delete(w.blocks, pos)
		return
	}
	w.blocks[pos] = m
}

// Get returns the material at pos.
func (w *World) Get(pos BlockPos) Material {
	if m, ok := w.blocks[pos]; ok {
		return m
	}
	return Air
}

// Count returns the number of non-air blocks.
func (w *World) Count() int {
	return len(w.blocks)
}

// Writes returns how many SetMaterial calls the world received.
func (w *World) Writes() int {
	return w.writes
}

// Counts returns the number of blocks per material.
func (w *World) Counts() map[Material]int {
	counts := make(map[Material]int)
	for _, m := range w.blocks {
		counts[m]++
	}
	return counts
}

// Bounds returns the smallest box holding every non-air block.
func (w *World) Bounds() (lo, hi BlockPos, ok bool) {
	for pos := range w.blocks {
		if !ok {
			lo, hi, ok = pos, pos, true
			continue
		}
		lo = BlockPos{min(lo.X, pos.X), min(lo.Y, pos.Y), min(lo.Z, pos.Z)}
		hi = BlockPos{max(hi.X, pos.X), max(hi.Y, pos.Y), max(hi.Z, pos.Z)}
	}
	return lo, hi, ok
}

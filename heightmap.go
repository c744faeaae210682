package roamterrain

// Grid is a minimal in-memory heightmap: size*size samples, row-major,
// implementing GetHeightFunc directly via Sample. It exists purely as a
// convenient, dependency-free GetHeight source for tests and demos; a
// real caller backed by a streaming or procedural heightfield (e.g. the
// device-graph evaluators the rest of this package's example pack
// favors) supplies its own GetHeightFunc closure instead and never
// needs this type.
type Grid struct {
	size   int
	values []uint8
}

// NewGrid allocates a zero-filled Grid of size x size samples. size
// must be a power of two matching the Engine it will feed.
func NewGrid(size int) *Grid {
	return &Grid{size: size, values: make([]uint8, size*size)}
}

// Set stores the height sample at (x, y). Out-of-range coordinates are
// ignored (a caller populating a grid from a smaller source image is
// not required to pre-clip it).
func (g *Grid) Set(x, y int, h uint8) {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return
	}
	g.values[y*g.size+x] = h
}

// Sample implements GetHeightFunc. Coordinates outside [0, size-1] clamp
// to the nearest edge sample, so callers that probe one past the last
// row/column (a midpoint on the outer boundary) still get a defined
// value.
func (g *Grid) Sample(x, y int) uint8 {
	if x < 0 {
		x = 0
	}
	if x >= g.size {
		x = g.size - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= g.size {
		y = g.size - 1
	}
	return g.values[y*g.size+x]
}

// Fill sets every sample by invoking f once per grid point.
func (g *Grid) Fill(f func(x, y int) uint8) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			g.values[y*g.size+x] = f(x, y)
		}
	}
}

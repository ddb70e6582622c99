package life

import (
	"glautomata/pkg/core"
)

// State is the liveness of a single cell.
type State uint8

const (
	// Dead marks an empty cell.
	Dead State = iota
	// Alive marks a populated cell.
	Alive
)

// neighborOffsets lists the 8 Moore-neighborhood vectors around a cell.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid implements Conway's Game of Life on a square board. The board does not
// wrap: cells outside the grid read as Dead, so edge and corner cells simply
// have fewer live neighbors.
type Grid struct {
	size int
	cur  []State
	nxt  []State
	rng  *core.RNG
}

// New returns a Grid with the provided side length. The soup generator
// starts from seed 1 until Reset supplies a real seed.
func New(size int) *Grid {
	if size <= 0 {
		size = 1
	}
	cells := make([]State, size*size)
	return &Grid{
		size: size,
		cur:  cells,
		nxt:  make([]State, len(cells)),
		rng:  core.NewRNG(1),
	}
}

// Size returns the side length of the board.
func (g *Grid) Size() int { return g.size }

// Cells exposes the current generation in row-major order.
func (g *Grid) Cells() []State { return g.cur }

// StateAt reports the state of the cell at (x, y). Coordinates outside the
// board are Dead.
func (g *Grid) StateAt(x, y int) State {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return Dead
	}
	return g.cur[y*g.size+x]
}

// SetState overwrites the state of the cell at (x, y). Coordinates outside
// the board are ignored.
func (g *Grid) SetState(x, y int, s State) {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return
	}
	g.cur[y*g.size+x] = s
}

// liveNeighbors counts the live cells around (x, y).
func (g *Grid) liveNeighbors(x, y int) int {
	n := 0
	for _, off := range neighborOffsets {
		if g.StateAt(x+off[0], y+off[1]) == Alive {
			n++
		}
	}
	return n
}

// Step advances the board by one generation. The next generation is written
// to a separate buffer while the current one is read, then the buffers swap,
// so neighbor counts always see the pre-update state.
func (g *Grid) Step() {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			neighbors := g.liveNeighbors(x, y)
			idx := y*g.size + x
			alive := g.cur[idx] == Alive
			g.nxt[idx] = Dead
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				g.nxt[idx] = Alive
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

// Randomize overwrites every cell independently with a 50/50 alive/dead
// draw from the engine's generator. Repeated calls continue the same
// stream, so each produces a fresh soup.
func (g *Grid) Randomize() {
	for i := range g.cur {
		if g.rng.Bool() {
			g.cur[i] = Alive
		} else {
			g.cur[i] = Dead
		}
	}
}

// Reset discards the board, reseeds the generator with the provided value
// and regenerates the soup. The same seed reproduces the same board.
func (g *Grid) Reset(seed int64) {
	g.rng = core.NewRNG(seed)
	g.Randomize()
}

// Population returns the number of live cells in the current generation.
func (g *Grid) Population() int {
	n := 0
	for _, s := range g.cur {
		if s == Alive {
			n++
		}
	}
	return n
}

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Fingerprint hashes the current generation (FNV-1a). Equal boards hash
// equal, which is enough to spot still lifes and short cycles.
func (g *Grid) Fingerprint() uint64 {
	h := uint64(fnvOffset64)
	for _, s := range g.cur {
		h ^= uint64(s)
		h *= fnvPrime64
	}
	return h
}

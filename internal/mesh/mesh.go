// Package mesh turns a board of cell states into colored screen-space quads.
// It is pure geometry: no GPU types, so the same mesh feeds the interactive
// renderer and the offline snapshot writer.
package mesh

import (
	"glautomata/internal/life"
)

// Color is an RGB triple with channels in [0, 1].
type Color struct {
	R, G, B float32
}

// Vertex is one corner of a cell quad.
type Vertex struct {
	X, Y float32
	Col  Color
}

var (
	deadColor  = Color{R: 0, G: 0, B: 0}
	aliveColor = Color{R: 1, G: 1, B: 1}
)

// StateColor maps a cell state to its display color: white for live cells,
// black for dead ones.
func StateColor(s life.State) Color {
	if s == life.Alive {
		return aliveColor
	}
	return deadColor
}

// CellQuad returns the four corners of the cell at board position (x, y):
// an axis-aligned square of side cell anchored at (x*cell, y*cell). Corners
// run top-left, top-right, bottom-right, bottom-left.
func CellQuad(x, y int, cell float32, c Color) [4]Vertex {
	px := float32(x) * cell
	py := float32(y) * cell
	return [4]Vertex{
		{X: px, Y: py, Col: c},
		{X: px + cell, Y: py, Col: c},
		{X: px + cell, Y: py + cell, Col: c},
		{X: px, Y: py + cell, Col: c},
	}
}

// QuadIndices returns indices splitting each of n quads into two triangles,
// (0, 1, 2) and (0, 2, 3) relative to the quad's first vertex. n must stay
// small enough that 4n fits in a uint16.
func QuadIndices(n int) []uint16 {
	idx := make([]uint16, 0, n*6)
	for q := 0; q < n; q++ {
		base := uint16(q * 4)
		idx = append(idx, base, base+1, base+2, base, base+2, base+3)
	}
	return idx
}

// Mesh holds one quad per board cell, row-major, four vertices per quad.
type Mesh struct {
	size  int
	cell  float32
	verts []Vertex
}

// New returns a mesh sized for a size×size board with the given cell size
// in pixels.
func New(size int, cell float32) *Mesh {
	return &Mesh{
		size:  size,
		cell:  cell,
		verts: make([]Vertex, 4*size*size),
	}
}

// SetCell rewrites the four vertices of the quad backing the cell at (x, y):
// positions derive from the coordinate, color from c. Coordinates outside the
// board are ignored.
func (m *Mesh) SetCell(x, y int, c Color) {
	if x < 0 || y < 0 || x >= m.size || y >= m.size {
		return
	}
	quad := CellQuad(x, y, m.cell, c)
	copy(m.verts[(y*m.size+x)*4:], quad[:])
}

// Rebuild regenerates every quad from the board in cells, which must be
// row-major with side length matching the mesh.
func (m *Mesh) Rebuild(cells []life.State) {
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			m.SetCell(x, y, StateColor(cells[y*m.size+x]))
		}
	}
}

// Vertices exposes the vertex buffer. The slice is reused across Rebuild
// calls, so callers must not retain it.
func (m *Mesh) Vertices() []Vertex { return m.verts }

// Size returns the board side length the mesh was built for.
func (m *Mesh) Size() int { return m.size }

// CellSize returns the pixel size of one cell.
func (m *Mesh) CellSize() float32 { return m.cell }

//go:build ebiten

package render

import (
	"image/color"

	"glautomata/internal/mesh"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchQuads caps one DrawTriangles call so that quad indices stay inside
// the uint16 range ebiten requires.
const maxBatchQuads = 8192

// QuadRenderer draws a cell mesh as two solid triangles per cell. The quads
// sample a 1x1 white texture and carry their color on the vertices.
type QuadRenderer struct {
	white   *ebiten.Image
	indices []uint16
	scratch []ebiten.Vertex
}

// NewQuadRenderer allocates a renderer with a batch-sized index buffer. The
// index pattern never changes, so it is built once and sliced per batch.
func NewQuadRenderer() *QuadRenderer {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &QuadRenderer{
		white:   white,
		indices: mesh.QuadIndices(maxBatchQuads),
	}
}

// Blit draws every quad in m onto dst, batching as needed.
func (r *QuadRenderer) Blit(dst *ebiten.Image, m *mesh.Mesh) {
	verts := m.Vertices()
	quads := len(verts) / 4
	op := &ebiten.DrawTrianglesOptions{}
	for start := 0; start < quads; start += maxBatchQuads {
		count := quads - start
		if count > maxBatchQuads {
			count = maxBatchQuads
		}
		r.drawBatch(dst, verts[start*4:(start+count)*4], op)
	}
}

func (r *QuadRenderer) drawBatch(dst *ebiten.Image, verts []mesh.Vertex, op *ebiten.DrawTrianglesOptions) {
	if cap(r.scratch) < len(verts) {
		r.scratch = make([]ebiten.Vertex, len(verts))
	}
	r.scratch = r.scratch[:len(verts)]
	for i, v := range verts {
		r.scratch[i] = ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: v.Col.R,
			ColorG: v.Col.G,
			ColorB: v.Col.B,
			ColorA: 1,
		}
	}
	dst.DrawTriangles(r.scratch, r.indices[:len(verts)/4*6], r.white, op)
}

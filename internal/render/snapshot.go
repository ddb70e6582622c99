package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"glautomata/internal/life"
)

// Snapshot renders the board into an RGBA image at one pixel per cell, white
// for live cells and black for dead ones. cells must be row-major with side
// length size.
func Snapshot(cells []life.State, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillStateRGBA(img.Pix, cells, color.White, color.Black)
	return img
}

// SavePNG writes a Snapshot of the board to path.
func SavePNG(path string, cells []life.State, size int) error {
	if len(cells) != size*size {
		return fmt.Errorf("snapshot: got %d cells for size %d", len(cells), size)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, Snapshot(cells, size)); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}

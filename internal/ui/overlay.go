//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a stats readout and key reference in the top-left corner.
type Overlay struct {
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs an overlay, visible by default.
func NewOverlay() *Overlay {
	o := &Overlay{visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles visibility when H is pressed.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

const (
	overlayPadding  = 8
	overlayLine     = 16
	overlayBaseline = 12
)

// Draw renders the readout onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image, stats Stats) {
	if !o.visible || o.pixel == nil {
		return
	}

	state := "running"
	if stats.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("gen %d  pop %d  %s", stats.Generation, stats.Population, state),
		fmt.Sprintf("rate %d/s  seed %d", stats.Rate, stats.Seed),
		"space pause  n step  s reseed  r replay",
		"[ ] rate  p snapshot  h hide  q quit",
	}

	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}

	bw := float64(width + 2*overlayPadding)
	bh := float64(len(lines)*overlayLine + 2*overlayPadding)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(bw, bh)
	op.ColorM.Scale(0, 0, 0, 160.0/255.0)
	screen.DrawImage(o.pixel, op)

	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, line := range lines {
		y := overlayPadding + overlayBaseline + i*overlayLine
		text.Draw(screen, line, face, overlayPadding, y, fg)
	}
}

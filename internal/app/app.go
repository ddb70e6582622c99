//go:build ebiten

package app

import (
	"fmt"
	"log"
	"time"

	"glautomata/internal/core"
	"glautomata/internal/life"
	"glautomata/internal/mesh"
	"glautomata/internal/render"
	"glautomata/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life board to the ebiten.Game interface.
type Game struct {
	grid    *life.Grid
	mesh    *mesh.Mesh
	painter *render.QuadRenderer
	overlay *ui.Overlay
	step    *core.FixedStep

	scale      int
	seed       int64
	generation int
	paused     bool
	tickOnce   bool
}

// New constructs a Game around the provided board.
func New(grid *life.Grid, cfg *Config) *Game {
	return &Game{
		grid:    grid,
		mesh:    mesh.New(grid.Size(), float32(cfg.Scale)),
		painter: render.NewQuadRenderer(),
		overlay: ui.NewOverlay(),
		step:    core.NewFixedStep(cfg.Rate),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
}

// Reset reseeds the board and restarts the generation count.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.grid.Reset(seed)
	g.generation = 0
	g.tickOnce = false
}

// Update handles input and advances the simulation at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.saveSnapshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.step.Halve()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.step.Double()
	}

	g.overlay.Update()

	if g.paused {
		if g.tickOnce {
			g.advance()
			g.tickOnce = false
		}
		g.step.Rewind()
		return nil
	}
	for i := g.step.Pending(); i > 0; i-- {
		g.advance()
	}
	return nil
}

func (g *Game) advance() {
	g.grid.Step()
	g.generation++
}

func (g *Game) saveSnapshot() {
	name := fmt.Sprintf("glautomata-%s.png", time.Now().Format("20060102-150405"))
	if err := render.SavePNG(name, g.grid.Cells(), g.grid.Size()); err != nil {
		log.Print(err)
		return
	}
	log.Printf("saved %s", name)
}

// Draw rebuilds the cell mesh from the current board and renders it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mesh.Rebuild(g.grid.Cells())
	g.painter.Blit(screen, g.mesh)
	g.overlay.Draw(screen, ui.Stats{
		Generation: g.generation,
		Population: g.grid.Population(),
		Rate:       g.step.Rate(),
		Seed:       g.seed,
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.grid.Size() * g.scale
	return side, side
}

//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"glautomata/internal/app"
	"glautomata/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.ResolveSeed(flag.CommandLine)

	grid := life.New(cfg.Grid)
	grid.Reset(cfg.Seed)

	game := app.New(grid, cfg)
	side := grid.Size() * cfg.Scale

	ebiten.SetWindowTitle("glautomata — Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(side, side)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

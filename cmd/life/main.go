//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifeboard/internal/app"
	"lifeboard/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = core.TimeSeed()
	}

	b := cfg.NewBoard()
	ctrl := app.NewController(cfg, b, core.NewRNG(seed))
	game := app.New(ctrl)
	l := ctrl.Layout()

	log.Printf("board %dx%d, %d generations/s, seed %d", b.Size().W, b.Size().H, cfg.TPS, seed)

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(l.Width, l.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"wildgrid/internal/app"
	"wildgrid/internal/sims/ecosystem"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ecosim: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	worldCfg, err := cfg.WorldConfig()
	if err != nil {
		log.Fatal(err)
	}
	world, err := ecosystem.NewWithConfig(worldCfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(world, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("wildgrid - " + world.Name())
	ebiten.SetWindowSize(w, h)

	log.Printf("%dx%d world, seed %d, %.4f years per tick", worldCfg.Width, worldCfg.Height, worldCfg.Seed, worldCfg.TickUnit)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

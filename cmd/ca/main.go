//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/caarlos0/env/v11"

	"plating-ca/internal/app"
	"plating-ca/internal/core"
	_ "plating-ca/internal/sims/plating"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load("ca", os.Args[1:], env.ToMap(os.Environ()))
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, app.Options{
		Scale:    cfg.Scale,
		HUDWidth: cfg.HUDWidth,
		Seed:     cfg.Seed,
		Interval: cfg.Delay,
	})
	size := sim.Size()

	ebiten.SetWindowTitle("plating-ca — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/caarlos0/env/v11"

	"plating-ca/internal/app"
	"plating-ca/internal/core"
	"plating-ca/internal/platform/otel"
	"plating-ca/internal/render"
	_ "plating-ca/internal/sims/plating"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("plating: ")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	environ := env.ToMap(os.Environ())
	cfg, err := app.Load("plating", os.Args[1:], environ)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Setup(ctx, "plating", environ)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return fmt.Errorf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}
	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)
	if p, ok := sim.(core.ParameterProvider); ok {
		for _, line := range p.Parameters().Lines() {
			log.Print(line)
		}
	}

	frames, err := app.Run(ctx, sim, render.NewText(os.Stdout), app.RunOptions{
		Frames: cfg.Frames,
		Delay:  cfg.Delay,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run after %d frames: %w", frames, err)
	}
	log.Printf("stopped after %d frames", frames)
	return nil
}

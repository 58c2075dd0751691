package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	gotel "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"plating-ca/internal/platform/otel"
	"plating-ca/internal/sims/plating"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("plating-sweep: ")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	trials := flag.Int("trials", 64, "independent boards to simulate")
	steps := flag.Int("steps", 200, "update passes per board")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 120, "board width")
	height := flag.Int("h", 40, "board height")
	seed := flag.Int64("seed", 1, "seed of the first trial; trial i uses seed+i")
	rule := flag.String("rule", string(plating.RuleReference), "survival rule: reference or bands")
	neighborhood := flag.String("neighborhood", string(plating.NeighborhoodMoore), "activation neighborhood: moore or vonneumann")
	flag.Parse()

	cfg := plating.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed
	if cfg.Width < 3 || cfg.Height < 3 {
		return fmt.Errorf("board %dx%d too small", cfg.Width, cfg.Height)
	}
	r, ok := plating.ParseRule(*rule)
	if !ok {
		return fmt.Errorf("unknown rule %q", *rule)
	}
	n, ok := plating.ParseNeighborhood(*neighborhood)
	if !ok {
		return fmt.Errorf("unknown neighborhood %q", *neighborhood)
	}
	cfg.Params.Rule = r
	cfg.Params.Neighborhood = n

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := otel.Setup(ctx, "plating-sweep", env.ToMap(os.Environ()))
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	ctx, span := gotel.Tracer("plating-ca/cmd/plating-sweep").Start(ctx, "plating.sweep", trace.WithAttributes(
		attribute.Int("trials", *trials),
		attribute.Int("steps", *steps),
		attribute.Int("workers", *workers),
	))
	defer span.End()

	fmt.Printf("Sweeping %d boards of %dx%d (%d workers, %d steps, rule=%s, neighborhood=%s)\n",
		*trials, cfg.Width, cfg.Height, *workers, *steps, cfg.Params.Rule, cfg.Params.Neighborhood)

	start := time.Now()
	res, err := plating.Sweep(ctx, cfg, *trials, *steps, *workers)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("sweep: %w", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nCoverage after %d steps (elapsed %s):\n", res.Steps, elapsed.Round(time.Millisecond))
	fmt.Printf("  mean %.4f  min %.4f  max %.4f  mean front row %.1f\n",
		res.MeanFraction, res.MinFraction, res.MaxFraction, res.MeanFront)

	fmt.Println("\nMean density per interior row:")
	for i, d := range res.MeanRowDensity {
		bar := strings.Repeat("#", int(d*50+0.5))
		fmt.Printf("  %3d %.3f %s\n", i+1, d, bar)
	}
	return nil
}

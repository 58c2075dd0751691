package plating

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// TrialResult is the coverage of one independently seeded board.
type TrialResult struct {
	Seed     int64
	Coverage Coverage
}

// SweepResult aggregates coverage over many trials.
type SweepResult struct {
	Trials []TrialResult
	Steps  int

	MeanFraction float64
	MinFraction  float64
	MaxFraction  float64
	MeanFront    float64
	// MeanRowDensity is indexed like Coverage.RowDensity.
	MeanRowDensity []float64
}

// Sweep runs trials boards for steps passes each, spread over at most
// workers goroutines. Trial i uses seed cfg.Seed+i, so results do not depend
// on scheduling.
func Sweep(ctx context.Context, cfg Config, trials, steps, workers int) (SweepResult, error) {
	if trials <= 0 {
		return SweepResult{}, fmt.Errorf("sweep needs at least one trial, got %d", trials)
	}
	if steps < 0 {
		return SweepResult{}, fmt.Errorf("sweep steps must not be negative, got %d", steps)
	}

	results := make([]TrialResult, trials)
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < trials; i++ {
		g.Go(func() error {
			res, err := runTrial(ctx, cfg, cfg.Seed+int64(i), steps)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SweepResult{}, err
	}
	return summarize(results, steps), nil
}

func runTrial(ctx context.Context, cfg Config, seed int64, steps int) (TrialResult, error) {
	trialCfg := cfg
	trialCfg.Seed = seed
	board := NewWithConfig(trialCfg)
	board.Reset(0)
	for s := 0; s < steps; s++ {
		if s%32 == 0 {
			if err := ctx.Err(); err != nil {
				return TrialResult{}, err
			}
		}
		board.Step()
	}
	return TrialResult{Seed: seed, Coverage: board.Coverage()}, nil
}

func summarize(results []TrialResult, steps int) SweepResult {
	out := SweepResult{
		Trials:         results,
		Steps:          steps,
		MinFraction:    math.Inf(1),
		MaxFraction:    math.Inf(-1),
		MeanRowDensity: make([]float64, len(results[0].Coverage.RowDensity)),
	}
	n := float64(len(results))
	for _, r := range results {
		f := r.Coverage.Fraction()
		out.MeanFraction += f / n
		out.MinFraction = math.Min(out.MinFraction, f)
		out.MaxFraction = math.Max(out.MaxFraction, f)
		out.MeanFront += float64(r.Coverage.Front) / n
		for y, d := range r.Coverage.RowDensity {
			out.MeanRowDensity[y] += d / n
		}
	}
	return out
}

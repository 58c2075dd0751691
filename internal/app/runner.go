package app

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"plating-ca/internal/core"
)

const tracerName = "plating-ca/internal/app"

// Renderer draws one frame of a simulation.
type Renderer interface {
	Render(size core.Size, cells []uint8) error
}

// RunOptions paces the console loop.
type RunOptions struct {
	// Frames is the number of render/step iterations; zero runs until the
	// context is cancelled.
	Frames int
	Delay  time.Duration
}

// Run renders the sim and advances it once per frame, sleeping Delay between
// frames. It returns the number of completed frames. Cancelling ctx stops the
// loop with ctx.Err().
func Run(ctx context.Context, sim core.Sim, r Renderer, opts RunOptions) (int, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "plating.run", trace.WithAttributes(
		attribute.String("sim", sim.Name()),
		attribute.Int("frames", opts.Frames),
		attribute.Int64("delay_ms", opts.Delay.Milliseconds()),
	))
	defer span.End()

	size := sim.Size()
	done := 0
	for opts.Frames <= 0 || done < opts.Frames {
		if err := ctx.Err(); err != nil {
			return done, err
		}
		if err := frame(ctx, tracer, sim, size, r, done); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return done, err
		}
		done++
		if err := sleep(ctx, opts.Delay); err != nil {
			return done, err
		}
	}
	return done, nil
}

func frame(ctx context.Context, tracer trace.Tracer, sim core.Sim, size core.Size, r Renderer, n int) error {
	_, span := tracer.Start(ctx, "plating.frame", trace.WithAttributes(attribute.Int("frame", n)))
	defer span.End()
	if err := r.Render(size, sim.Cells()); err != nil {
		return fmt.Errorf("frame %d: %w", n, err)
	}
	sim.Step()
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

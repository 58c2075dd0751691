package plating

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestSweepIndependentOfWorkerCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 16
	cfg.Seed = 100

	serial, err := Sweep(context.Background(), cfg, 6, 40, 1)
	if err != nil {
		t.Fatalf("serial sweep: %v", err)
	}
	parallel, err := Sweep(context.Background(), cfg, 6, 40, 4)
	if err != nil {
		t.Fatalf("parallel sweep: %v", err)
	}

	for i := range serial.Trials {
		a, b := serial.Trials[i], parallel.Trials[i]
		if a.Seed != cfg.Seed+int64(i) || a.Seed != b.Seed {
			t.Fatalf("trial %d seeds %d/%d", i, a.Seed, b.Seed)
		}
		if a.Coverage.Alive != b.Coverage.Alive || !slices.Equal(a.Coverage.RowDensity, b.Coverage.RowDensity) {
			t.Fatalf("trial %d differs between serial and parallel runs", i)
		}
	}
	if serial.MeanFraction != parallel.MeanFraction {
		t.Fatalf("mean fraction %f vs %f", serial.MeanFraction, parallel.MeanFraction)
	}
	if serial.MinFraction > serial.MeanFraction || serial.MeanFraction > serial.MaxFraction {
		t.Fatalf("inconsistent bounds min=%f mean=%f max=%f", serial.MinFraction, serial.MeanFraction, serial.MaxFraction)
	}
	if len(serial.MeanRowDensity) != cfg.Height-2 {
		t.Fatalf("row density length %d, expected %d", len(serial.MeanRowDensity), cfg.Height-2)
	}
}

func TestSweepMatchesSingleBoard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 30
	cfg.Height = 12
	cfg.Seed = 8

	res, err := Sweep(context.Background(), cfg, 1, 25, 0)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	board := NewWithConfig(cfg)
	board.Reset(8)
	for i := 0; i < 25; i++ {
		board.Step()
	}
	if got, want := res.Trials[0].Coverage.Alive, board.Coverage().Alive; got != want {
		t.Fatalf("sweep alive %d, single board %d", got, want)
	}
}

func TestSweepRejectsBadInput(t *testing.T) {
	if _, err := Sweep(context.Background(), DefaultConfig(), 0, 10, 1); err == nil {
		t.Fatal("expected error for zero trials")
	}
	if _, err := Sweep(context.Background(), DefaultConfig(), 1, -1, 1); err == nil {
		t.Fatal("expected error for negative steps")
	}
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sweep(ctx, DefaultConfig(), 3, 100, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error %v, expected context.Canceled", err)
	}
}

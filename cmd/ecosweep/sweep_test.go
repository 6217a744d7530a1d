package main

import (
	"testing"

	"wildgrid/internal/sims/ecosystem"
)

func TestTicksFor(t *testing.T) {
	cases := []struct {
		years, unit float64
		want        int
	}{
		{1, 1.0 / 52, 52},
		{2.5, 0.5, 5},
		{2.4, 0.5, 5},
		{0, 0.5, 0},
	}
	for _, tc := range cases {
		if got := ticksFor(tc.years, tc.unit); got != tc.want {
			t.Fatalf("ticksFor(%v, %v) = %d, want %d", tc.years, tc.unit, got, tc.want)
		}
	}
}

func TestRunSweepMatchesSerialRuns(t *testing.T) {
	cfg := ecosystem.DefaultConfig()
	cfg.Width, cfg.Height = 24, 12
	cfg.TickUnit = 0.5
	seeds := seedRange(10, 5)

	results := runSweep(cfg, seeds, 40, 3, true)
	if len(results) != len(seeds) {
		t.Fatalf("got %d results, want %d", len(results), len(seeds))
	}
	for i, res := range results {
		if res.err != nil {
			t.Fatalf("seed %d: %v", res.seed, res.err)
		}
		if res.seed != seeds[i] {
			t.Fatalf("result %d has seed %d, want %d", i, res.seed, seeds[i])
		}
		serial := runSeed(cfg, res.seed, 40, false)
		if serial.census != res.census {
			t.Fatalf("seed %d: parallel census %+v differs from serial %+v", res.seed, res.census, serial.census)
		}
	}
}

func TestRunSweepReportsInvalidConfig(t *testing.T) {
	cfg := ecosystem.DefaultConfig()
	cfg.Width = 0
	results := runSweep(cfg, seedRange(1, 2), 1, 2, false)
	for _, res := range results {
		if res.err == nil {
			t.Fatalf("seed %d ran with an invalid config", res.seed)
		}
	}
	if mean := meanCensus(results); mean.Ticks != 0 {
		t.Fatalf("mean over failed runs = %+v", mean)
	}
}

func TestMeanCensus(t *testing.T) {
	a := ecosystem.Census{Years: 1, Ticks: 2}
	a.Vine = ecosystem.CategoryStats{Count: 3, AvgAge: 1}
	b := ecosystem.Census{Years: 3, Ticks: 6}
	b.Vine = ecosystem.CategoryStats{Count: 5, AvgAge: 2}

	mean := meanCensus([]runResult{{census: a}, {census: b}})
	if mean.Years != 2 || mean.Ticks != 4 || mean.Vine.Count != 4 || mean.Vine.AvgAge != 1.5 {
		t.Fatalf("mean = %+v", mean)
	}
}

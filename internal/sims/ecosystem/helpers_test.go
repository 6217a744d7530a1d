package ecosystem

import (
	"testing"

	rng "wildgrid/pkg/core"
)

// fixedSource returns the same draw forever. IntN always picks index 0.
type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) IntN(int) int     { return 0 }

var (
	alwaysHits = fixedSource{f: 0}
	neverHits  = fixedSource{f: 0.999999}
)

// scriptSource plays back floats in order and then repeats fallback.
type scriptSource struct {
	floats   []float64
	ints     []int
	fallback float64
}

func (s *scriptSource) Float64() float64 {
	if len(s.floats) == 0 {
		return s.fallback
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

// strictSource fails the test on any draw.
type strictSource struct{ t *testing.T }

func (s strictSource) Float64() float64 {
	s.t.Helper()
	s.t.Fatal("unexpected random draw")
	return 0
}

func (s strictSource) IntN(int) int {
	s.t.Helper()
	s.t.Fatal("unexpected random draw")
	return 0
}

// testWorld builds a w*h world of uniform terrain with empty layers. The
// source is swapped in after generation so scripted draws start at the
// first Step.
func testWorld(t *testing.T, w, h int, unit float64, terrain Terrain, src rng.Source) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.TickUnit = unit
	world, err := NewWithSource(cfg, neverHits)
	if err != nil {
		t.Fatalf("NewWithSource: %v", err)
	}
	world.terrainCurr.Fill(terrain)
	world.terrainNext.Fill(terrain)
	world.rng = src
	world.rebuildDisplay()
	return world
}

func (w *World) putPlant(x, y int, kind PlantKind, stage Stage, age float64) *Plant {
	w.plants.Set(x, y, Plant{Kind: kind, Stage: stage, Age: age})
	return w.plants.Ptr(x, y)
}

func (w *World) putVine(x, y int, age float64) *Vine {
	w.vines.Set(x, y, Vine{Present: true, Age: age})
	return w.vines.Ptr(x, y)
}

func (w *World) terrainRow(y int) []Terrain {
	row := make([]Terrain, w.w)
	for x := range row {
		row[x] = w.terrainCurr.At(x, y)
	}
	return row
}

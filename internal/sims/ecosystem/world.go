package ecosystem

import (
	"fmt"

	"wildgrid/internal/core"
	rng "wildgrid/pkg/core"
)

// World stores the terrain, plant and vine layers plus the clock of one
// simulation run. A World is not safe for concurrent use; readers must not
// overlap with Step.
type World struct {
	cfg Config

	w, h int

	terrainCurr *core.Grid[Terrain]
	terrainNext *core.Grid[Terrain]
	plants      *core.Grid[Plant]
	vines       *core.Grid[Vine]
	rockTrees   *core.Grid[float64]

	// Scratch buffers reused across ticks.
	erosionDist  []int
	erosionQueue []int
	fireSources  []fireSource

	display []uint8

	years float64
	ticks int

	rng rng.Source
}

// New returns a world with default settings and the given dimensions.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg and returns a freshly generated world.
func NewWithConfig(cfg Config) (*World, error) {
	return NewWithSource(cfg, rng.NewRNG(cfg.Seed))
}

// NewWithSource is NewWithConfig with an explicit random stream. Reset only
// reseeds src when it implements rng.Seeder.
func NewWithSource(cfg Config, src rng.Source) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new ecosystem world: %w", err)
	}
	if src == nil {
		src = rng.NewRNG(cfg.Seed)
	}
	total := cfg.Width * cfg.Height
	w := &World{
		cfg:         cfg,
		w:           cfg.Width,
		h:           cfg.Height,
		terrainCurr: core.NewGrid[Terrain](cfg.Width, cfg.Height),
		terrainNext: core.NewGrid[Terrain](cfg.Width, cfg.Height),
		plants:      core.NewGrid[Plant](cfg.Width, cfg.Height),
		vines:       core.NewGrid[Vine](cfg.Width, cfg.Height),
		rockTrees:   core.NewGrid[float64](cfg.Width, cfg.Height),
		erosionDist: make([]int, total),
		display:     make([]uint8, total),
		rng:         src,
	}
	w.Reset(0)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "ecosystem" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// TickUnit reports the simulated years added per Step.
func (w *World) TickUnit() float64 { return w.cfg.TickUnit }

// Years reports the simulated time elapsed since the last Reset.
func (w *World) Years() float64 { return w.years }

// Ticks reports the number of Steps since the last Reset.
func (w *World) Ticks() int { return w.ticks }

// Terrain exposes the committed terrain layer in row-major order.
func (w *World) Terrain() []Terrain { return w.terrainCurr.Cells() }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Reset regenerates the world from seed, clearing every layer and the clock.
// A zero seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if s, ok := w.rng.(rng.Seeder); ok {
		s.Seed(effective)
	}

	w.plants.Clear()
	w.vines.Clear()
	w.rockTrees.Clear()
	w.years = 0
	w.ticks = 0

	w.generateTerrain()
	w.terrainNext.CopyFrom(w.terrainCurr)
	w.rebuildDisplay()
}

// Step advances the simulation by one tick of the configured unit.
func (w *World) Step() {
	u := w.cfg.TickUnit

	w.erodeRockNearWater()
	w.applyTerrainRules(u)

	w.sproutPlants(u)
	w.growPlants(u)
	w.overtakeSaplings(u)

	w.updateVines(u)
	w.updateFire(u)

	w.years += u
	w.ticks++
	w.rebuildDisplay()
}

// Tick runs n Steps and returns the census taken afterwards.
func (w *World) Tick(n int) Census {
	for i := 0; i < n; i++ {
		w.Step()
	}
	return w.Census()
}

// chance draws once from the stream and reports whether the draw fell below p.
func (w *World) chance(p float64) bool {
	return w.rng.Float64() < p
}

func (w *World) matureTreeAt(x, y int) bool {
	return w.plants.At(x, y).MatureTree()
}

//go:build ebiten

package app

import (
	"time"

	"wildgrid/internal/core"
	"wildgrid/internal/render"
	"wildgrid/internal/sims/ecosystem"
	"wildgrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an ecosystem world to the ebiten.Game interface.
type Game struct {
	world   *ecosystem.World
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	history *CensusHistory
	clock   *core.FixedStep

	scale    int
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(world *ecosystem.World, cfg *Config) *Game {
	size := world.Size()
	scale := max(cfg.Scale, 1)
	g := &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(world, scale),
		hud:     ui.NewHUD(world, cfg.HUDWidth),
		history: NewCensusHistory(0),
		clock:   core.NewFixedStep(cfg.TPS),
		scale:   scale,
		seed:    world.Config().Seed,
	}
	g.history.Record(world.Census())
	return g
}

// Reset reinitializes the world with the provided seed and starts a fresh
// census history.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
	g.clock.Reset()
	g.history.Reset()
	g.history.Record(g.world.Census())
}

// History exposes the census snapshots recorded since the last reset.
func (g *Game) History() *CensusHistory { return g.history }

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.clock.SetPaused(!g.clock.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.hud.Toggle()
	}

	g.overlay.Update()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if x, y, ok := g.overlay.Hovered(); ok {
			g.world.Ignite(x, y)
		}
	}

	ticks := g.clock.Frame()
	if g.tickOnce {
		ticks = max(ticks, 1)
		g.tickOnce = false
	}
	for i := 0; i < ticks; i++ {
		g.world.Step()
	}
	if ticks > 0 {
		g.history.Record(g.world.Census())
	}

	latest, _ := g.history.Latest()
	g.hud.Update(latest, g.clock.Paused())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.world.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

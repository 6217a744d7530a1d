package ecosystem

import "image/color"

// A display value packs terrain, the plant overlay and flags into one byte:
// bits 0-1 terrain, bits 2-4 overlay, then vine, fire and bees.
const (
	displayTerrainMask  = 0x03
	displayOverlayShift = 2
	displayOverlayMask  = 0x1c
	displayVineBit      = 0x20
	displayFireBit      = 0x40
	displayBeesBit      = 0x80
)

type overlay uint8

const (
	overlayNone overlay = iota
	overlayTreeSeed
	overlaySapling
	overlayTree
	overlayDeadTree
	overlayFlowerSeed
	overlayMeadow
)

var ecosystemPalette = buildEcosystemPalette()

// Palette exposes the color palette used for rendering the display buffer.
func (w *World) Palette() []color.RGBA {
	return ecosystemPalette
}

func overlayFor(p Plant) overlay {
	switch {
	case p.Is(PlantTree, StageSeed):
		return overlayTreeSeed
	case p.Is(PlantTree, StageSapling):
		return overlaySapling
	case p.Is(PlantTree, StageMature):
		return overlayTree
	case p.Is(PlantTree, StageDead):
		return overlayDeadTree
	case p.Is(PlantFlower, StageSeed):
		return overlayFlowerSeed
	case p.Is(PlantFlower, StageMeadow):
		return overlayMeadow
	default:
		return overlayNone
	}
}

func encodeDisplayValue(t Terrain, p Plant, v Vine) uint8 {
	value := uint8(t) & displayTerrainMask
	value |= (uint8(overlayFor(p)) << displayOverlayShift) & displayOverlayMask
	if v.Present {
		value |= displayVineBit
	}
	if (p.Present() && p.OnFire) || (v.Present && v.OnFire) {
		value |= displayFireBit
	}
	if p.HasBees {
		value |= displayBeesBit
	}
	return value
}

func (w *World) rebuildDisplay() {
	terrain := w.terrainCurr.Cells()
	plants := w.plants.Cells()
	vines := w.vines.Cells()
	for i := range w.display {
		w.display[i] = encodeDisplayValue(terrain[i], plants[i], vines[i])
	}
}

func buildEcosystemPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		t := Terrain(i & displayTerrainMask)
		o := overlay((i & displayOverlayMask) >> displayOverlayShift)
		c := terrainColor(t)
		if o != overlayNone {
			c = blendColors(c, overlayColor(o), 0.7)
		}
		if i&displayVineBit != 0 {
			c = blendColors(c, color.NRGBA{R: 110, G: 40, B: 130, A: 255}, 0.45)
		}
		if i&displayBeesBit != 0 {
			c = blendColors(c, color.NRGBA{R: 240, G: 200, B: 40, A: 255}, 0.25)
		}
		if i&displayFireBit != 0 {
			c = color.NRGBA{R: 255, G: 110, B: 30, A: 255}
		}
		palette[i] = toRGBA(c)
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func terrainColor(t Terrain) color.NRGBA {
	switch t {
	case TerrainWater:
		return color.NRGBA{R: 50, G: 110, B: 200, A: 255}
	case TerrainRock:
		return color.NRGBA{R: 130, G: 130, B: 130, A: 255}
	case TerrainGrass:
		return color.NRGBA{R: 110, G: 180, B: 80, A: 255}
	default:
		return color.NRGBA{R: 110, G: 80, B: 50, A: 255}
	}
}

func overlayColor(o overlay) color.NRGBA {
	switch o {
	case overlayTreeSeed:
		return color.NRGBA{R: 139, G: 69, B: 19, A: 255}
	case overlaySapling:
		return color.NRGBA{R: 40, G: 150, B: 40, A: 255}
	case overlayTree:
		return color.NRGBA{R: 10, G: 90, B: 30, A: 255}
	case overlayDeadTree:
		return color.NRGBA{R: 90, G: 70, B: 60, A: 255}
	case overlayFlowerSeed:
		return color.NRGBA{R: 165, G: 42, B: 42, A: 255}
	case overlayMeadow:
		return color.NRGBA{R: 240, G: 150, B: 190, A: 255}
	default:
		return color.NRGBA{A: 255}
	}
}

func blendColors(base, over color.NRGBA, weight float64) color.NRGBA {
	if weight <= 0 {
		return base
	}
	if weight >= 1 {
		return over
	}
	inv := 1 - weight
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*inv + float64(b)*weight + 0.5)
	}
	return color.NRGBA{
		R: mix(base.R, over.R),
		G: mix(base.G, over.G),
		B: mix(base.B, over.B),
		A: mix(base.A, over.A),
	}
}

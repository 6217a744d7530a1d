package ecosystem

import rng "wildgrid/pkg/core"

// generateTerrain scatters rock, dirt and grass, then carves rivers and
// mountain ranges as vertical random walks three cells wide.
func (w *World) generateTerrain() {
	for x := 0; x < w.w; x++ {
		for y := 0; y < w.h; y++ {
			r := w.rng.Float64()
			switch {
			case r < genRockFraction:
				w.terrainCurr.Set(x, y, TerrainRock)
			case r < genDirtCutoff:
				w.terrainCurr.Set(x, y, TerrainDirt)
			default:
				w.terrainCurr.Set(x, y, TerrainGrass)
			}
		}
	}

	for k := 0; k < genRiverCount; k++ {
		w.carveWalk(TerrainWater, true)
	}
	for k := 0; k < genRangeCount; k++ {
		w.carveWalk(TerrainRock, false)
	}
}

// carveWalk paints a band of kind down every row, drifting the centre column
// by -1, 0 or +1 per row. Water is left untouched unless overWater is set.
func (w *World) carveWalk(kind Terrain, overWater bool) {
	col := w.rng.IntN(w.w)
	for y := 0; y < w.h; y++ {
		col += rng.IntRange(w.rng, -1, 1)
		col = clampInt(col, 1, w.w-2)
		for dx := -genBandHalf; dx <= genBandHalf; dx++ {
			x := col + dx
			if x < 0 || x >= w.w {
				continue
			}
			if !overWater && w.terrainCurr.At(x, y) == TerrainWater {
				continue
			}
			w.terrainCurr.Set(x, y, kind)
		}
	}
}

// clampInt bounds v to [lo, hi]. When the range is empty (grids narrower
// than three columns) lo wins.
func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

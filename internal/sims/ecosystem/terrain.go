package ecosystem

const unreached = int(^uint(0) >> 1)

// erodeRockNearWater turns every Rock cell within erosionRadius steps
// (8-connected) of Water into Dirt. The BFS runs from all Water cells at
// once and never expands past the radius. Only Water cells seed the search
// and none are written, so updating in place matches a staged update.
func (w *World) erodeRockNearWater() {
	cells := w.terrainCurr.Cells()
	dist := w.erosionDist
	queue := w.erosionQueue[:0]
	for i, t := range cells {
		if t == TerrainWater {
			dist[i] = 0
			queue = append(queue, i)
			continue
		}
		dist[i] = unreached
	}

	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		d := dist[idx]
		if d >= erosionRadius {
			continue
		}
		x, y := idx%w.w, idx/w.w
		w.terrainCurr.Moore(x, y, func(nx, ny int) {
			n := ny*w.w + nx
			if dist[n] > d+1 {
				dist[n] = d + 1
				queue = append(queue, n)
			}
		})
	}
	w.erosionQueue = queue

	for i, t := range cells {
		if t == TerrainRock && dist[i] <= erosionRadius {
			cells[i] = TerrainDirt
		}
	}
}

// applyTerrainRules runs grass spread, rock breakdown, dirt consolidation and
// river meander against the committed grid, staging every write so no rule
// sees another cell's change from this tick.
func (w *World) applyTerrainRules(u float64) {
	w.terrainNext.CopyFrom(w.terrainCurr)

	w.spreadGrass(u)
	w.breakDownRock(u)
	w.consolidateDirt(u)
	w.meanderRivers(u)

	w.terrainCurr, w.terrainNext = w.terrainNext, w.terrainCurr
}

func (w *World) spreadGrass(u float64) {
	cur := w.terrainCurr
	for x := 0; x < w.w; x++ {
		for y := 0; y < w.h; y++ {
			if cur.At(x, y) != TerrainDirt {
				continue
			}
			hasGrass, hasWater := false, false
			cur.Moore(x, y, func(nx, ny int) {
				switch cur.At(nx, ny) {
				case TerrainGrass:
					hasGrass = true
				case TerrainWater:
					hasWater = true
				}
			})
			if !hasGrass {
				continue
			}
			rate := grassSpreadRate
			if hasWater {
				rate = grassSpreadWaterRate
			}
			if w.chance(rate * u) {
				w.terrainNext.Set(x, y, TerrainGrass)
			}
		}
	}
}

// breakDownRock counts how long each Rock cell has been ringed by mature
// trees and cracks it into Dirt once the count reaches rockBreakdownYears.
func (w *World) breakDownRock(u float64) {
	cur := w.terrainCurr
	for x := 0; x < w.w; x++ {
		for y := 0; y < w.h; y++ {
			counter := w.rockTrees.Ptr(x, y)
			if cur.At(x, y) != TerrainRock {
				*counter = 0
				continue
			}
			trees := w.plants.CountMoore(x, y, Plant.MatureTree)
			if trees >= rockBreakdownTrees {
				*counter += u
			} else {
				*counter = 0
			}
			if *counter >= rockBreakdownYears {
				w.terrainNext.Set(x, y, TerrainDirt)
				*counter = 0
			}
		}
	}
}

// consolidateDirt hardens interior Dirt surrounded on all four sides by Dirt.
func (w *World) consolidateDirt(u float64) {
	cur := w.terrainCurr
	for x := 1; x < w.w-1; x++ {
		for y := 1; y < w.h-1; y++ {
			if cur.At(x, y) != TerrainDirt ||
				cur.At(x-1, y) != TerrainDirt ||
				cur.At(x+1, y) != TerrainDirt ||
				cur.At(x, y-1) != TerrainDirt ||
				cur.At(x, y+1) != TerrainDirt {
				continue
			}
			if w.chance(dirtConsolidationRate * u) {
				w.terrainNext.Set(x, y, TerrainRock)
			}
		}
	}
}

// meanderRivers looks at the first three-wide water run in each interior row
// and occasionally slides it one column sideways.
func (w *World) meanderRivers(u float64) {
	cur := w.terrainCurr
	water := func(x, y int) bool { return cur.At(x, y) == TerrainWater }
	for y := 1; y < w.h-1; y++ {
		for x := 1; x+meanderRunLength < w.w; x++ {
			if !water(x, y) || !water(x+1, y) || !water(x+2, y) {
				continue
			}
			if x != 1 && water(x-1, y) {
				continue
			}
			right := x + meanderRunLength
			if right < w.w && water(right, y) {
				continue
			}

			if w.chance(meanderRate * u) {
				preferLeft := w.chance(0.5)
				leftOK := x > 1 && !water(x-1, y)
				rightOK := right < w.w && !water(right, y)
				switch {
				case preferLeft && leftOK:
					w.shiftRun(x, y, -1)
				case rightOK:
					w.shiftRun(x, y, 1)
				case leftOK:
					w.shiftRun(x, y, -1)
				}
			}
			break
		}
	}
}

// shiftRun moves the water run starting at column x one cell in direction dir.
func (w *World) shiftRun(x, y, dir int) {
	last := x + meanderRunLength - 1
	if dir < 0 {
		w.terrainNext.Set(x-1, y, TerrainWater)
		w.terrainNext.Set(last, y, TerrainDirt)
		return
	}
	w.terrainNext.Set(last+1, y, TerrainWater)
	w.terrainNext.Set(x, y, TerrainDirt)
}

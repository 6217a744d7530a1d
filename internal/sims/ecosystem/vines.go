package ecosystem

// updateVines spawns, removes, ages and spreads vines in one in-place sweep.
// Each cell works from the vine it held when the sweep reached it: a vine
// spawned here this tick is not aged, and a vine removed here still makes
// its spread attempt.
func (w *World) updateVines(u float64) {
	for x := 0; x < w.w; x++ {
		for y := 0; y < w.h; y++ {
			plant := w.plants.At(x, y)
			vine := w.vines.At(x, y)

			if w.terrainCurr.At(x, y) == TerrainGrass && plant.MatureTree() {
				if !vine.Present && w.chance(vineSpawnRate*u) {
					w.vines.Set(x, y, newVine())
				}
				if vine.Present && w.chance(vineTreeRemovalRate*u) {
					w.vines.Set(x, y, Vine{})
				}
			}

			if !vine.Present {
				continue
			}

			vine.Age += u
			if cur := w.vines.Ptr(x, y); cur.Present {
				cur.Age = vine.Age
			}
			if vine.Age >= vineSpreadAge {
				w.spreadVine(x, y, u)
			}

			if plant.Meadow() && w.chance(vineMeadowRemoveRate*u) {
				w.vines.Set(x, y, Vine{})
			}
		}
	}
}

// spreadVine picks one cardinal neighbour and may climb onto it when it holds
// an uncovered mature tree.
func (w *World) spreadVine(x, y int, u float64) {
	d := cardinals[w.rng.IntN(len(cardinals))]
	nx, ny := x+d[0], y+d[1]
	if !w.vines.InBounds(nx, ny) {
		return
	}
	if !w.matureTreeAt(nx, ny) || w.vines.At(nx, ny).Present {
		return
	}
	if w.chance(vineSpreadRate * u) {
		w.vines.Set(nx, ny, newVine())
	}
}

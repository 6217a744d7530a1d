package ecosystem

type fireSource struct {
	x, y int
}

// updateFire spreads fire one hop from every occupant that was burning when
// the phase began, then ages all fires and burns out the finished ones.
func (w *World) updateFire(u float64) {
	sources := w.fireSources[:0]
	for x := 0; x < w.w; x++ {
		for y := 0; y < w.h; y++ {
			if p := w.plants.At(x, y); p.Present() && p.OnFire {
				sources = append(sources, fireSource{x: x, y: y})
			}
			if v := w.vines.At(x, y); v.Present && v.OnFire {
				sources = append(sources, fireSource{x: x, y: y})
			}
		}
	}
	w.fireSources = sources

	// Plant and vine fires spread identically, so a cell with both burning
	// simply gets two passes over its neighbours.
	for _, src := range sources {
		w.plants.Moore(src.x, src.y, func(nx, ny int) {
			w.ignitePlant(nx, ny, u)
			w.igniteVine(nx, ny, u)
		})
	}

	w.burnDown(u)
}

func (w *World) ignitePlant(x, y int, u float64) {
	p := w.plants.Ptr(x, y)
	if !p.Present() || p.OnFire {
		return
	}
	switch {
	case p.Is(PlantTree, StageDead):
		// dead wood always catches
	case p.MatureTree():
		if !w.chance(fireMatureIgniteRate * u) {
			return
		}
	case p.Meadow():
		if !w.chance(fireMeadowIgniteRate * u) {
			return
		}
	default:
		return
	}
	p.OnFire = true
	p.FireAge = 0
}

func (w *World) igniteVine(x, y int, u float64) {
	v := w.vines.Ptr(x, y)
	if !v.Present || v.OnFire {
		return
	}
	if w.chance(fireVineIgniteRate * u) {
		v.OnFire = true
		v.FireAge = 0
	}
}

// burnDown ages every fire. A plant that burns out leaves bare Dirt; a vine
// that burns out leaves whatever plant is under it.
func (w *World) burnDown(u float64) {
	for x := 0; x < w.w; x++ {
		for y := 0; y < w.h; y++ {
			if p := w.plants.Ptr(x, y); p.Present() && p.OnFire {
				p.FireAge += u
				if p.FireAge >= fireBurnYears {
					w.terrainCurr.Set(x, y, TerrainDirt)
					*p = Plant{}
				}
			}
			if v := w.vines.Ptr(x, y); v.Present && v.OnFire {
				v.FireAge += u
				if v.FireAge >= fireBurnYears {
					*v = Vine{}
				}
			}
		}
	}
}

// Ignite sets every occupant of (x, y) on fire, the way a lightning strike or
// a host's click would. It reports whether anything new caught fire.
func (w *World) Ignite(x, y int) bool {
	if !w.plants.InBounds(x, y) {
		return false
	}
	lit := false
	if p := w.plants.Ptr(x, y); p.Present() && !p.OnFire {
		p.OnFire = true
		p.FireAge = 0
		lit = true
	}
	if v := w.vines.Ptr(x, y); v.Present && !v.OnFire {
		v.OnFire = true
		v.FireAge = 0
		lit = true
	}
	if lit {
		w.rebuildDisplay()
	}
	return lit
}

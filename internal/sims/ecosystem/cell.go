package ecosystem

import (
	"fmt"
	"strings"
)

// Cell is a value snapshot of one grid position.
type Cell struct {
	X, Y    int
	Terrain Terrain
	Plant   Plant
	Vine    Vine
}

// CellAt returns a copy of the cell at (x, y). ok is false outside the grid.
func (w *World) CellAt(x, y int) (Cell, bool) {
	if !w.terrainCurr.InBounds(x, y) {
		return Cell{}, false
	}
	return Cell{
		X:       x,
		Y:       y,
		Terrain: w.terrainCurr.At(x, y),
		Plant:   w.plants.At(x, y),
		Vine:    w.vines.At(x, y),
	}, true
}

// Describe renders the tooltip text for the cell, one fact per line.
func (c Cell) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Terrain: %s\n", c.Terrain)
	if p := c.Plant; p.Present() {
		fmt.Fprintf(&b, "Plant: %s (%s)\n", p.Kind, p.Stage)
		fmt.Fprintf(&b, "Age: %.2f yrs\n", p.Age)
		if p.VineExposure > 0 {
			fmt.Fprintf(&b, "Vine exposure: %.2f\n", p.VineExposure)
		}
		if p.DeadAge > 0 {
			fmt.Fprintf(&b, "Dead age: %.2f\n", p.DeadAge)
		}
		if p.OnFire {
			fmt.Fprintf(&b, "On fire: %.2f\n", p.FireAge)
		}
		if p.HasBees {
			fmt.Fprintf(&b, "Bees timer: %.2f\n", p.Bees)
		}
	}
	if v := c.Vine; v.Present {
		fmt.Fprintf(&b, "Vine age: %.2f\n", v.Age)
		if v.OnFire {
			fmt.Fprintf(&b, "Vine fire age: %.2f\n", v.FireAge)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

package ecosystem

import (
	"fmt"
	"math"
)

// CheckInvariants walks every layer and returns an *InvariantError for the
// first cell whose state is impossible. Intended for tests and debug hosts.
func (w *World) CheckInvariants() error {
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			if t := w.terrainCurr.At(x, y); t >= terrainCount {
				return &InvariantError{X: x, Y: y, Layer: "terrain", Detail: fmt.Sprintf("unknown terrain %d", t)}
			}
			if err := checkPlant(w.plants.At(x, y)); err != "" {
				return &InvariantError{X: x, Y: y, Layer: "plant", Detail: err}
			}
			if err := checkVine(w.vines.At(x, y)); err != "" {
				return &InvariantError{X: x, Y: y, Layer: "vine", Detail: err}
			}
		}
	}
	return nil
}

func checkPlant(p Plant) string {
	if !p.Present() {
		if p != (Plant{}) {
			return "empty cell carries plant fields"
		}
		return ""
	}
	if p.Kind > PlantFlower {
		return fmt.Sprintf("unknown kind %d", p.Kind)
	}
	if !p.Kind.Allows(p.Stage) {
		return fmt.Sprintf("%s cannot be in stage %s", p.Kind, p.Stage)
	}
	if badYears(p.Age) || badYears(p.VineExposure) || badYears(p.DeadAge) || badYears(p.FireAge) {
		return "negative or undefined age field"
	}
	if p.HasBees && !p.Meadow() {
		return "bees on a plant that is not a meadow"
	}
	if !p.OnFire && p.FireAge != 0 {
		return "fire age without fire"
	}
	return ""
}

func checkVine(v Vine) string {
	if !v.Present {
		if v != (Vine{}) {
			return "empty cell carries vine fields"
		}
		return ""
	}
	if badYears(v.Age) || badYears(v.FireAge) {
		return "negative or undefined age field"
	}
	if !v.OnFire && v.FireAge != 0 {
		return "fire age without fire"
	}
	return ""
}

func badYears(v float64) bool {
	return v < 0 || math.IsNaN(v) || math.IsInf(v, 0)
}

package ecosystem

import (
	"math"

	rng "wildgrid/pkg/core"
)

// The plant sweeps below update cells in place, column by column. A cell
// written earlier in a sweep (a dropped seed, a spread flower) is seen, and
// aged, by later iterations of the same sweep.

func (w *World) sproutPlants(u float64) {
	for x := 0; x < w.w; x++ {
		for y := 0; y < w.h; y++ {
			if w.terrainCurr.At(x, y) != TerrainGrass || w.plants.At(x, y).Present() {
				continue
			}
			if !w.chance(sproutRate * u) {
				continue
			}
			if w.chance(0.5) {
				w.plants.Set(x, y, newPlant(PlantTree, StageSeed))
			} else {
				w.plants.Set(x, y, newPlant(PlantFlower, StageSeed))
			}
		}
	}
}

func (w *World) growPlants(u float64) {
	for x := 0; x < w.w; x++ {
		for y := 0; y < w.h; y++ {
			p := w.plants.Ptr(x, y)
			if !p.Present() {
				continue
			}
			p.Age += u
			switch p.Kind {
			case PlantTree:
				w.growTree(x, y, p, u)
			case PlantFlower:
				w.growFlower(x, y, p, u)
			}
		}
	}
}

func (w *World) growTree(x, y int, p *Plant, u float64) {
	switch {
	case p.Stage == StageSeed && p.Age >= treeSaplingAge:
		p.Stage = StageSapling
	case p.Stage == StageSapling && p.Age >= treeMatureAge:
		p.Stage = StageMature
		w.dropSeed(x, y, u)
	}

	if p.Stage == StageMature {
		if w.vines.At(x, y).Present {
			p.VineExposure += u
			if p.VineExposure >= vineDeathExposure {
				p.Stage = StageDead
				p.DeadAge = 0
			}
		} else {
			p.VineExposure = 0
		}
	}

	if p.Stage == StageDead {
		p.DeadAge += u
		if p.DeadAge >= deadTreeDecayYears {
			*p = newPlant(PlantFlower, StageMeadow)
		}
	}
}

// dropSeed is the one-off seed throw of a tree that just matured. The target
// must be empty Grass, yet the bonus chance is keyed on Dirt or Rock
// terrain, so on the committed grid the throw never lands. The draw is
// still taken to keep the random stream aligned.
func (w *World) dropSeed(x, y int, u float64) {
	tx := x + rng.IntRange(w.rng, -seedDropRadius, seedDropRadius)
	ty := y + rng.IntRange(w.rng, -seedDropRadius, seedDropRadius)
	if !w.terrainCurr.InBounds(tx, ty) {
		return
	}
	terrain := w.terrainCurr.At(tx, ty)
	if terrain != TerrainGrass || w.plants.At(tx, ty).Present() {
		return
	}
	dist := max(absInt(tx-x), absInt(ty-y))
	if w.chance(seedDropChance(terrain, dist, u)) {
		w.plants.Set(tx, ty, newPlant(PlantTree, StageSeed))
	}
}

func seedDropChance(terrain Terrain, dist int, u float64) float64 {
	switch terrain {
	case TerrainDirt:
		return seedDropDirtRate * u
	case TerrainRock:
		if dist <= 0 {
			return 0
		}
		return u / (seedDropRockDivisor * float64(dist))
	default:
		return 0
	}
}

func (w *World) growFlower(x, y int, p *Plant, u float64) {
	if p.Stage == StageSeed && p.Age >= flowerBloomAge {
		p.Stage = StageMeadow
		p.Bees = meadowBeesYears
		p.HasBees = true
		w.spreadFlowers(x, y, u)
	}
	if p.Stage != StageMeadow {
		return
	}

	if p.HasBees {
		p.Bees -= u
		if p.Bees <= 0 {
			p.Bees = 0
			p.HasBees = false
		}
		return
	}

	trees := w.plants.CountMoore(x, y, Plant.MatureTree)
	if trees >= meadowReclaimTrees && w.chance(meadowReclaimRate*u) {
		*p = newPlant(PlantTree, StageSeed)
	}
}

// spreadFlowers seeds empty Grass around a fresh meadow. Each mature tree in
// a target's 3x3 block halves the chance.
func (w *World) spreadFlowers(x, y int, u float64) {
	w.plants.Moore(x, y, func(nx, ny int) {
		if w.terrainCurr.At(nx, ny) != TerrainGrass || w.plants.At(nx, ny).Present() {
			return
		}
		shade := w.plants.CountMoore(nx, ny, Plant.MatureTree)
		rate := meadowSpreadRate * u / math.Pow(2, float64(shade))
		if w.chance(rate) {
			w.plants.Set(nx, ny, newPlant(PlantFlower, StageSeed))
		}
	})
}

// overtakeSaplings lets meadows smother neighbouring saplings.
func (w *World) overtakeSaplings(u float64) {
	for x := 0; x < w.w; x++ {
		for y := 0; y < w.h; y++ {
			if !w.plants.At(x, y).Is(PlantTree, StageSapling) {
				continue
			}
			if w.plants.CountMoore(x, y, Plant.Meadow) < 1 {
				continue
			}
			if w.chance(saplingOvertakeRate * u) {
				w.plants.Set(x, y, newPlant(PlantFlower, StageSeed))
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package ecosystem

import "testing"

func TestVinesSpawnOnlyOnMatureTreesOnGrass(t *testing.T) {
	world := testWorld(t, 4, 1, 1, TerrainGrass, alwaysHits)
	world.putPlant(0, 0, PlantTree, StageMature, 20)
	world.putPlant(1, 0, PlantTree, StageSapling, 5)
	world.putPlant(2, 0, PlantFlower, StageMeadow, 2)
	world.putPlant(3, 0, PlantTree, StageMature, 20)
	world.terrainCurr.Set(3, 0, TerrainDirt)

	world.updateVines(1)

	if v := world.vines.At(0, 0); !v.Present || v.Age != 0 {
		t.Fatalf("mature tree on grass should gain a fresh vine, got %+v", v)
	}
	for x := 1; x < 4; x++ {
		if v := world.vines.At(x, 0); v.Present {
			t.Fatalf("vine spawned at column %d", x)
		}
	}
}

func TestVineSpreadsToNeighbouringTree(t *testing.T) {
	src := &scriptSource{floats: []float64{0.9, 0}, fallback: 0.999999}
	world := testWorld(t, 2, 1, 0.5, TerrainGrass, src)
	world.putPlant(0, 0, PlantTree, StageMature, 20)
	world.putPlant(1, 0, PlantTree, StageMature, 20)
	world.putVine(0, 0, 1.5)

	world.updateVines(0.5)

	if v := world.vines.At(0, 0); !v.Present || v.Age != 2 {
		t.Fatalf("source vine = %+v, want age 2", v)
	}
	// The new vine sits later in the sweep, so it ages in the same tick.
	if v := world.vines.At(1, 0); !v.Present || v.Age != 0.5 {
		t.Fatalf("spread vine = %+v, want age 0.5", v)
	}
}

func TestYoungVineDoesNotSpread(t *testing.T) {
	world := testWorld(t, 2, 1, 0.5, TerrainGrass, &scriptSource{floats: []float64{0.9}, fallback: 0.999999})
	world.putPlant(0, 0, PlantTree, StageMature, 20)
	world.putPlant(1, 0, PlantTree, StageMature, 20)
	world.putVine(0, 0, 1)

	world.updateVines(0.5)

	if v := world.vines.At(1, 0); v.Present {
		t.Fatalf("vine younger than %v years spread", vineSpreadAge)
	}
}

func TestVineRemovedFromMeadow(t *testing.T) {
	world := testWorld(t, 1, 1, 1, TerrainGrass, alwaysHits)
	world.putPlant(0, 0, PlantFlower, StageMeadow, 2)
	world.putVine(0, 0, 0)

	world.updateVines(1)

	if v := world.vines.At(0, 0); v != (Vine{}) {
		t.Fatalf("vine on meadow = %+v, want removed", v)
	}
}

func TestRemovedVineStillSpreads(t *testing.T) {
	src := &scriptSource{floats: []float64{0, 0}, fallback: 0.999999}
	world := testWorld(t, 2, 1, 1, TerrainGrass, src)
	world.putPlant(0, 0, PlantTree, StageMature, 20)
	world.putPlant(1, 0, PlantTree, StageMature, 20)
	world.putVine(0, 0, 5)

	world.updateVines(1)

	if v := world.vines.At(0, 0); v.Present {
		t.Fatalf("vine should have been removed, got %+v", v)
	}
	if v := world.vines.At(1, 0); !v.Present || v.Age != 1 {
		t.Fatalf("neighbour vine = %+v, want present with age 1", v)
	}
}

func TestVineSpreadSkipsCoveredTrees(t *testing.T) {
	src := &countingSource{fixedSource: alwaysHits}
	world := testWorld(t, 2, 1, 1, TerrainGrass, src)
	world.putPlant(0, 0, PlantTree, StageMature, 20)
	world.putPlant(1, 0, PlantTree, StageMature, 20)
	world.putVine(0, 0, 5)
	world.putVine(1, 0, 0.5)

	world.spreadVine(0, 0, 1)

	if v := world.vines.At(1, 0); v.Age != 0.5 {
		t.Fatalf("covered tree got a new vine: %+v", v)
	}
	if src.ints != 1 || src.floats != 0 {
		t.Fatalf("drew %d ints and %d floats, want only the direction", src.ints, src.floats)
	}
}

package ecosystem

import (
	"slices"
	"testing"
)

func TestErosionConvertsRockWithinThreeSteps(t *testing.T) {
	world := testWorld(t, 9, 3, 1, TerrainRock, neverHits)
	world.terrainCurr.Set(0, 1, TerrainWater)

	world.Step()

	for y := 0; y < 3; y++ {
		for x := 1; x < 9; x++ {
			got := world.terrainCurr.At(x, y)
			want := TerrainRock
			if x <= erosionRadius {
				want = TerrainDirt
			}
			if got != want {
				t.Fatalf("cell (%d,%d) at distance %d = %v, want %v", x, y, x, got, want)
			}
		}
	}
}

func TestErosionFollowsDiagonals(t *testing.T) {
	world := testWorld(t, 6, 6, 1, TerrainRock, neverHits)
	world.terrainCurr.Set(0, 0, TerrainWater)

	world.erodeRockNearWater()

	if got := world.terrainCurr.At(3, 3); got != TerrainDirt {
		t.Fatalf("diagonal distance 3 should erode, got %v", got)
	}
	if got := world.terrainCurr.At(4, 4); got != TerrainRock {
		t.Fatalf("diagonal distance 4 should stay rock, got %v", got)
	}
	if got := world.terrainCurr.At(1, 4); got != TerrainRock {
		t.Fatalf("mixed offset with Chebyshev distance 4 should stay rock, got %v", got)
	}
}

func TestGrassSpreadRates(t *testing.T) {
	cases := []struct {
		name string
		row  []Terrain
		want Terrain
	}{
		{
			name: "dry dirt keeps base rate",
			row:  []Terrain{TerrainGrass, TerrainDirt, TerrainDirt},
			want: TerrainDirt,
		},
		{
			name: "dirt beside water spreads faster",
			row:  []Terrain{TerrainGrass, TerrainDirt, TerrainWater},
			want: TerrainGrass,
		},
		{
			name: "no grass neighbour never spreads",
			row:  []Terrain{TerrainDirt, TerrainDirt, TerrainWater},
			want: TerrainDirt,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// 0.1 sits between the dry (0.05) and wet (0.20) yearly rates.
			world := testWorld(t, len(tc.row), 1, 1, TerrainDirt, fixedSource{f: 0.1})
			for x, terrain := range tc.row {
				world.terrainCurr.Set(x, 0, terrain)
			}
			world.applyTerrainRules(1)
			if got := world.terrainCurr.At(1, 0); got != tc.want {
				t.Fatalf("middle cell = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGrassSpreadIsStaged(t *testing.T) {
	world := testWorld(t, 5, 1, 1, TerrainDirt, alwaysHits)
	world.terrainCurr.Set(0, 0, TerrainGrass)

	world.applyTerrainRules(1)

	want := []Terrain{TerrainGrass, TerrainGrass, TerrainDirt, TerrainDirt, TerrainDirt}
	if got := world.terrainRow(0); !slices.Equal(got, want) {
		t.Fatalf("grass spread cascaded within one tick: got %v, want %v", got, want)
	}
}

func TestRockBreakdownNeedsThreeMatureTrees(t *testing.T) {
	const unit = 5.0
	world := testWorld(t, 3, 3, unit, TerrainGrass, neverHits)
	world.terrainCurr.Set(1, 1, TerrainRock)
	world.putPlant(0, 0, PlantTree, StageMature, 20)
	world.putPlant(1, 0, PlantTree, StageMature, 20)
	world.putPlant(2, 0, PlantTree, StageMature, 20)

	for tick := 1; tick < 5; tick++ {
		world.Step()
		if got := world.terrainCurr.At(1, 1); got != TerrainRock {
			t.Fatalf("rock cracked early at tick %d", tick)
		}
		if got := world.rockTrees.At(1, 1); got != unit*float64(tick) {
			t.Fatalf("counter at tick %d = %v, want %v", tick, got, unit*float64(tick))
		}
	}
	world.Step()
	if got := world.terrainCurr.At(1, 1); got != TerrainDirt {
		t.Fatalf("rock should crack after %v years, got %v", rockBreakdownYears, got)
	}
	if got := world.rockTrees.At(1, 1); got != 0 {
		t.Fatalf("counter should reset on conversion, got %v", got)
	}
}

func TestRockBreakdownCounterResets(t *testing.T) {
	world := testWorld(t, 3, 3, 5, TerrainGrass, neverHits)
	world.terrainCurr.Set(1, 1, TerrainRock)
	world.putPlant(0, 0, PlantTree, StageMature, 20)
	world.putPlant(1, 0, PlantTree, StageMature, 20)
	world.putPlant(2, 0, PlantTree, StageSapling, 5)
	world.rockTrees.Set(1, 1, 20)

	world.Step()

	if got := world.rockTrees.At(1, 1); got != 0 {
		t.Fatalf("two mature trees should reset the counter, got %v", got)
	}
}

func TestDirtConsolidatesOnlyInInterior(t *testing.T) {
	world := testWorld(t, 4, 4, 1, TerrainDirt, alwaysHits)

	world.applyTerrainRules(1)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := TerrainDirt
			if x >= 1 && x <= 2 && y >= 1 && y <= 2 {
				want = TerrainRock
			}
			if got := world.terrainCurr.At(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRiverMeander(t *testing.T) {
	const (
		D = TerrainDirt
		W = TerrainWater
	)
	cases := []struct {
		name  string
		row   []Terrain
		draws []float64
		want  []Terrain
	}{
		{
			name:  "shift left",
			row:   []Terrain{D, D, W, W, W, D, D},
			draws: []float64{0, 0.1},
			want:  []Terrain{D, W, W, W, D, D, D},
		},
		{
			name:  "shift right",
			row:   []Terrain{D, D, W, W, W, D, D},
			draws: []float64{0, 0.9},
			want:  []Terrain{D, D, D, W, W, W, D},
		},
		{
			name:  "left blocked at border column falls back right",
			row:   []Terrain{D, W, W, W, D, D, D},
			draws: []float64{0, 0.1},
			want:  []Terrain{D, D, W, W, W, D, D},
		},
		{
			name:  "failed roll leaves river",
			row:   []Terrain{D, D, W, W, W, D, D},
			draws: []float64{0.5},
			want:  []Terrain{D, D, W, W, W, D, D},
		},
		{
			name:  "runs longer than three are ignored",
			row:   []Terrain{D, W, W, W, W, D, D},
			draws: nil,
			want:  []Terrain{D, W, W, W, W, D, D},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := &scriptSource{floats: tc.draws, fallback: 0.999999}
			world := testWorld(t, len(tc.row), 3, 1, TerrainDirt, src)
			for x, terrain := range tc.row {
				world.terrainCurr.Set(x, 1, terrain)
			}
			world.terrainNext.CopyFrom(world.terrainCurr)
			world.meanderRivers(1)
			world.terrainCurr.CopyFrom(world.terrainNext)
			if got := world.terrainRow(1); !slices.Equal(got, tc.want) {
				t.Fatalf("row after meander = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMeanderProcessesOneRunPerRow(t *testing.T) {
	const (
		D = TerrainDirt
		W = TerrainWater
	)
	row := []Terrain{D, D, W, W, W, D, D, W, W, W, D, D}
	world := testWorld(t, len(row), 3, 1, TerrainDirt, alwaysHits)
	for x, terrain := range row {
		world.terrainCurr.Set(x, 1, terrain)
	}
	world.terrainNext.CopyFrom(world.terrainCurr)

	world.meanderRivers(1)

	want := []Terrain{D, W, W, W, D, D, D, W, W, W, D, D}
	world.terrainCurr.CopyFrom(world.terrainNext)
	if got := world.terrainRow(1); !slices.Equal(got, want) {
		t.Fatalf("row after meander = %v, want %v", got, want)
	}
}

package ecosystem

// Terrain enumerates the ground layer values.
type Terrain uint8

const (
	TerrainWater Terrain = iota
	TerrainDirt
	TerrainRock
	TerrainGrass

	terrainCount
)

func (t Terrain) String() string {
	switch t {
	case TerrainWater:
		return "water"
	case TerrainDirt:
		return "dirt"
	case TerrainRock:
		return "rock"
	case TerrainGrass:
		return "grass"
	default:
		return "invalid"
	}
}

// PlantKind tags the plant layer. PlantNone marks an empty cell.
type PlantKind uint8

const (
	PlantNone PlantKind = iota
	PlantTree
	PlantFlower
)

func (k PlantKind) String() string {
	switch k {
	case PlantNone:
		return "none"
	case PlantTree:
		return "tree"
	case PlantFlower:
		return "flower"
	default:
		return "invalid"
	}
}

// Stage is a plant's lifecycle stage. Trees use Seed, Sapling, Mature and
// Dead; flowers use Seed and Meadow.
type Stage uint8

const (
	StageSeed Stage = iota
	StageSapling
	StageMature
	StageDead
	StageMeadow
)

func (s Stage) String() string {
	switch s {
	case StageSeed:
		return "seed"
	case StageSapling:
		return "sapling"
	case StageMature:
		return "mature"
	case StageDead:
		return "dead"
	case StageMeadow:
		return "meadow"
	default:
		return "invalid"
	}
}

// Allows reports whether stage s belongs to kind k.
func (k PlantKind) Allows(s Stage) bool {
	switch k {
	case PlantTree:
		return s == StageSeed || s == StageSapling || s == StageMature || s == StageDead
	case PlantFlower:
		return s == StageSeed || s == StageMeadow
	default:
		return false
	}
}

// Plant is the optional occupant of a cell's plant layer. The zero value is
// an empty cell.
type Plant struct {
	Kind  PlantKind
	Stage Stage
	// Age is measured in simulated years.
	Age float64

	// VineExposure accumulates years a mature tree has spent under a vine.
	VineExposure float64
	// DeadAge counts years since a tree died.
	DeadAge float64

	// Bees counts down while HasBees is set on a freshly bloomed meadow.
	Bees    float64
	HasBees bool

	OnFire  bool
	FireAge float64
}

// Present reports whether the cell holds a plant.
func (p Plant) Present() bool { return p.Kind != PlantNone }

// Is reports whether the plant has the given kind and stage.
func (p Plant) Is(kind PlantKind, stage Stage) bool {
	return p.Kind == kind && p.Stage == stage
}

// MatureTree reports whether the plant is a fully grown, living tree.
func (p Plant) MatureTree() bool { return p.Is(PlantTree, StageMature) }

// Meadow reports whether the plant is a bloomed flower.
func (p Plant) Meadow() bool { return p.Is(PlantFlower, StageMeadow) }

func newPlant(kind PlantKind, stage Stage) Plant {
	return Plant{Kind: kind, Stage: stage}
}

// Vine is the optional occupant of a cell's vine layer.
type Vine struct {
	Present bool
	Age     float64
	OnFire  bool
	FireAge float64
}

func newVine() Vine { return Vine{Present: true} }

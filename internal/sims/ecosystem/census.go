package ecosystem

// CategoryStats holds the population and mean age of one census category.
type CategoryStats struct {
	Count  int
	AvgAge float64

	sum float64
}

func (s *CategoryStats) add(age float64) {
	s.Count++
	s.sum += age
}

func (s *CategoryStats) finish() {
	if s.Count == 0 {
		s.AvgAge = 0
		return
	}
	s.AvgAge = s.sum / float64(s.Count)
}

// Census aggregates the plant and vine layers. Dead trees are not counted.
type Census struct {
	Years float64
	Ticks int

	TreeSeed   CategoryStats
	Sapling    CategoryStats
	MatureTree CategoryStats
	FlowerSeed CategoryStats
	Meadow     CategoryStats
	Vine       CategoryStats
}

// Categories returns the census rows in display order.
func (c Census) Categories() []NamedStats {
	return []NamedStats{
		{Name: "tree seeds", Stats: c.TreeSeed},
		{Name: "saplings", Stats: c.Sapling},
		{Name: "mature trees", Stats: c.MatureTree},
		{Name: "flower seeds", Stats: c.FlowerSeed},
		{Name: "meadows", Stats: c.Meadow},
		{Name: "vines", Stats: c.Vine},
	}
}

// NamedStats pairs a census category with its label.
type NamedStats struct {
	Name  string
	Stats CategoryStats
}

// Census scans every cell and reports population counts and mean ages.
func (w *World) Census() Census {
	c := Census{Years: w.years, Ticks: w.ticks}
	for _, p := range w.plants.Cells() {
		switch {
		case p.Is(PlantTree, StageSeed):
			c.TreeSeed.add(p.Age)
		case p.Is(PlantTree, StageSapling):
			c.Sapling.add(p.Age)
		case p.Is(PlantTree, StageMature):
			c.MatureTree.add(p.Age)
		case p.Is(PlantFlower, StageSeed):
			c.FlowerSeed.add(p.Age)
		case p.Is(PlantFlower, StageMeadow):
			c.Meadow.add(p.Age)
		}
	}
	for _, v := range w.vines.Cells() {
		if v.Present {
			c.Vine.add(v.Age)
		}
	}
	for _, s := range []*CategoryStats{&c.TreeSeed, &c.Sapling, &c.MatureTree, &c.FlowerSeed, &c.Meadow, &c.Vine} {
		s.finish()
	}
	return c
}

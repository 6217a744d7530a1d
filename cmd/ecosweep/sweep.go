package main

import (
	"math"
	"sort"
	"sync"
	"time"

	"wildgrid/internal/sims/ecosystem"
)

type runResult struct {
	seed    int64
	census  ecosystem.Census
	err     error
	elapsed time.Duration
}

// ticksFor converts a span of simulated years into whole ticks, rounding up.
func ticksFor(years, unit float64) int {
	if years <= 0 || unit <= 0 {
		return 0
	}
	return int(math.Ceil(years/unit - 1e-9))
}

func seedRange(base int64, n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = base + int64(i)
	}
	return seeds
}

// runSweep simulates one world per seed on a pool of workers. Each worker
// owns the world it builds; results come back sorted by seed.
func runSweep(base ecosystem.Config, seeds []int64, ticks, workers int, check bool) []runResult {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan int64)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(base, seed, ticks, check)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	var all []runResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })
	return all
}

func runSeed(base ecosystem.Config, seed int64, ticks int, check bool) runResult {
	start := time.Now()
	cfg := base
	cfg.Seed = seed
	world, err := ecosystem.NewWithConfig(cfg)
	if err != nil {
		return runResult{seed: seed, err: err}
	}
	census := world.Tick(ticks)
	if check {
		err = world.CheckInvariants()
	}
	return runResult{seed: seed, census: census, err: err, elapsed: time.Since(start)}
}

// meanCensus averages counts and ages over the successful runs.
func meanCensus(results []runResult) ecosystem.Census {
	var mean ecosystem.Census
	n := 0
	for _, res := range results {
		if res.err != nil {
			continue
		}
		n++
		mean.Years += res.census.Years
		mean.Ticks += res.census.Ticks
		for i, dst := range categoryFields(&mean) {
			src := categoryFields(&res.census)[i]
			dst.Count += src.Count
			dst.AvgAge += src.AvgAge
		}
	}
	if n == 0 {
		return mean
	}
	mean.Years /= float64(n)
	mean.Ticks /= n
	for _, dst := range categoryFields(&mean) {
		dst.Count = int(math.Round(float64(dst.Count) / float64(n)))
		dst.AvgAge /= float64(n)
	}
	return mean
}

func categoryFields(c *ecosystem.Census) []*ecosystem.CategoryStats {
	return []*ecosystem.CategoryStats{&c.TreeSeed, &c.Sapling, &c.MatureTree, &c.FlowerSeed, &c.Meadow, &c.Vine}
}

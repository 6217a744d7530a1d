package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"wildgrid/internal/sims/ecosystem"
	"wildgrid/internal/ui"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ecosweep: ")

	configPath := flag.String("config", "", "YAML world config file")
	years := flag.Float64("years", 50, "simulated years per run")
	seeds := flag.Int("seeds", 4, "number of consecutive seeds to run, starting at the config seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	showParams := flag.Bool("params", false, "print the rule constants before running")
	check := flag.Bool("check", true, "verify world invariants after each run")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	cfg := ecosystem.DefaultConfig()
	if *configPath != "" {
		loaded, err := ecosystem.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Fatalf("override %q is not in key=value form", kv)
		}
		if err := ecosystem.ApplyOverride(&cfg, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			log.Fatal(err)
		}
	}
	if *seeds <= 0 {
		log.Fatalf("-seeds must be positive, got %d", *seeds)
	}

	ticks := ticksFor(*years, cfg.TickUnit)
	if *showParams {
		probe, err := ecosystem.NewWithConfig(cfg)
		if err != nil {
			log.Fatal(err)
		}
		for _, line := range ui.ParameterLines(probe.Parameters()) {
			fmt.Println(line)
		}
		fmt.Println()
	}

	fmt.Printf("Running %d seeds on a %dx%d grid for %d ticks (%.2f years, %d workers)\n",
		*seeds, cfg.Width, cfg.Height, ticks, *years, *workers)

	start := time.Now()
	results := runSweep(cfg, seedRange(cfg.Seed, *seeds), ticks, *workers, *check)
	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			log.Printf("seed %d: %v", res.seed, res.err)
			continue
		}
		fmt.Printf("\nseed %d (%s)\n", res.seed, res.elapsed.Round(time.Millisecond))
		fmt.Println("  " + ui.StatusLine(res.census, false))
		for _, line := range ui.CensusLines(res.census) {
			fmt.Println("  " + line)
		}
	}

	if len(results)-failed > 1 {
		fmt.Println("\nmean over seeds")
		for _, line := range ui.CensusLines(meanCensus(results)) {
			fmt.Println("  " + line)
		}
	}
	fmt.Printf("\nDone in %s\n", time.Since(start).Round(time.Millisecond))
	if failed > 0 {
		log.Fatalf("%d of %d runs failed", failed, len(results))
	}
}

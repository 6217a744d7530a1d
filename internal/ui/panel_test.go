package ui

import (
	"strings"
	"testing"

	"wildgrid/internal/core"
	"wildgrid/internal/sims/ecosystem"
)

func TestCensusLinesAlignCategories(t *testing.T) {
	c := ecosystem.Census{}
	c.MatureTree.Count = 12
	c.MatureTree.AvgAge = 14.5

	lines := CensusLines(c)
	if len(lines) != len(c.Categories()) {
		t.Fatalf("got %d lines, want %d", len(lines), len(c.Categories()))
	}
	if !strings.HasPrefix(lines[2], "mature trees") || !strings.Contains(lines[2], "12  avg  14.50") {
		t.Fatalf("mature tree line = %q", lines[2])
	}
	width := strings.Index(lines[0], "avg")
	for _, line := range lines {
		if strings.Index(line, "avg") != width {
			t.Fatalf("census columns are not aligned: %q", lines)
		}
	}
}

func TestStatusLine(t *testing.T) {
	c := ecosystem.Census{Years: 1.5, Ticks: 78}
	if got := StatusLine(c, true); got != "Year 1.50  tick 78  (paused)" {
		t.Fatalf("status = %q", got)
	}
}

func TestParameterLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "World", Params: []core.Parameter{core.IntParam("seed", "Seed", 7)}},
		{Name: "Fire", Summary: "per year", Params: []core.Parameter{core.FloatParam("burn", "Burn", 2)}},
	}}
	want := []string{"World", "  Seed: 7", "Fire (per year)", "  Burn: 2"}
	got := ParameterLines(snap)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("lines = %q, want %q", got, want)
	}
}

func TestTooltipLines(t *testing.T) {
	cell := ecosystem.Cell{X: 3, Y: 4, Terrain: ecosystem.TerrainRock}
	got := TooltipLines(cell)
	if len(got) != 2 || got[0] != "Cell 3,4" || got[1] != "Terrain: rock" {
		t.Fatalf("tooltip = %q", got)
	}
}

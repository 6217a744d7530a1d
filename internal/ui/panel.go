package ui

import (
	"fmt"
	"strings"

	"wildgrid/internal/core"
	"wildgrid/internal/sims/ecosystem"
)

// Inspector looks up a cell snapshot by grid position.
type Inspector interface {
	CellAt(x, y int) (ecosystem.Cell, bool)
}

// StatusLine summarises the clock and run state for the panel header.
func StatusLine(c ecosystem.Census, paused bool) string {
	state := "running"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("Year %.2f  tick %d  (%s)", c.Years, c.Ticks, state)
}

// CensusLines renders one line per census category with count and mean age.
func CensusLines(c ecosystem.Census) []string {
	rows := c.Categories()
	width := 0
	for _, row := range rows {
		width = max(width, len(row.Name))
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-*s %5d  avg %6.2f", width, row.Name, row.Stats.Count, row.Stats.AvgAge))
	}
	return lines
}

// ParameterLines flattens a snapshot into group headers and indented
// "Label: value" rows.
func ParameterLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, group := range snap.Groups {
		header := group.Name
		if group.Summary != "" {
			header += " (" + group.Summary + ")"
		}
		lines = append(lines, header)
		for _, p := range group.Params {
			lines = append(lines, "  "+p.Label+": "+p.Value)
		}
	}
	return lines
}

// TooltipLines splits a cell description into lines and prefixes the cell
// position.
func TooltipLines(cell ecosystem.Cell) []string {
	lines := []string{fmt.Sprintf("Cell %d,%d", cell.X, cell.Y)}
	return append(lines, strings.Split(cell.Describe(), "\n")...)
}

// HelpLines lists the viewer key bindings.
func HelpLines() []string {
	return []string{
		"Space pause  N step  R reset  S new seed",
		"Click/F ignite  Tab panel  Q quit",
	}
}

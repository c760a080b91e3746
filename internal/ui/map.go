package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"manas-planner/internal/planner"
)

// renderMap plots the last known drone positions on an ASCII lat/lon grid.
// Until a position arrives it shows a plain placeholder pane.
func (m model) renderMap(width, height int) string {
	plotHeight := height - 2
	if plotHeight < 1 {
		plotHeight = 1
	}

	var known []planner.DroneID
	for _, id := range planner.Drones() {
		if m.snapshot.Drones[id].LastSeen != nil {
			known = append(known, id)
		}
	}
	if len(known) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			mapLabelStyle.Render("Map"))
	}

	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLon, maxLon := math.Inf(1), math.Inf(-1)
	for _, id := range known {
		p := m.snapshot.Drones[id].LastSeen
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
		minLon = math.Min(minLon, p.Lon)
		maxLon = math.Max(maxLon, p.Lon)
	}
	// pad the bounds so single points and tight clusters stay readable
	latPad := (maxLat - minLat) * 0.2
	lonPad := (maxLon - minLon) * 0.2
	if latPad < 0.001 {
		latPad = 0.001
	}
	if lonPad < 0.001 {
		lonPad = 0.001
	}
	minLat -= latPad
	maxLat += latPad
	minLon -= lonPad
	maxLon += lonPad

	grid := make([][]string, plotHeight)
	for i := range grid {
		row := make([]string, width)
		for j := range row {
			row[j] = "."
		}
		grid[i] = row
	}

	// overlay simple lat/lon gridlines
	const divisions = 4
	for i := 1; i < divisions; i++ {
		x := int(float64(width-1) * float64(i) / divisions)
		for y := 0; y < plotHeight; y++ {
			if grid[y][x] == "-" {
				grid[y][x] = "+"
			} else if grid[y][x] == "." {
				grid[y][x] = "|"
			}
		}
		y := int(float64(plotHeight-1) * float64(i) / divisions)
		for x2 := 0; x2 < width; x2++ {
			if grid[y][x2] == "|" {
				grid[y][x2] = "+"
			} else if grid[y][x2] == "." {
				grid[y][x2] = "-"
			}
		}
	}

	for _, id := range known {
		snap := m.snapshot.Drones[id]
		p := snap.LastSeen
		x := int((p.Lon - minLon) / (maxLon - minLon) * float64(width-1))
		y := int((maxLat - p.Lat) / (maxLat - minLat) * float64(plotHeight-1))
		if y < 0 || y >= plotHeight || x < 0 || x >= width {
			continue
		}
		marker := strings.ToUpper(id.String()[:1])
		if snap.Card.Live {
			grid[y][x] = liveStyle.Render(marker)
		} else {
			grid[y][x] = offlineStyle.Render(marker)
		}
	}

	var b strings.Builder
	b.WriteString(mapLabelStyle.Render(
		fmt.Sprintf("lat %.5f..%.5f lon %.5f..%.5f N↑", maxLat, minLat, minLon, maxLon)))
	b.WriteByte('\n')
	for _, row := range grid {
		b.WriteString(strings.Join(row, ""))
		b.WriteByte('\n')
	}
	return b.String()
}

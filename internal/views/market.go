package views

import (
	"math"
	"sort"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

// Movers mode constants
const (
	MoversGainers = "gainers"
	MoversLosers  = "losers"
)

// Heatmap intensity saturates at a 3% absolute sector move.
const heatmapCeiling = 3.0

// TopMovers sorts instruments by percent change, descending for gainers and
// ascending for losers, and returns the top n. The sort is stable so ties
// keep the original list order.
func TopMovers(instruments []models.Instrument, mode string, n int) []models.Instrument {
	sorted := make([]models.Instrument, len(instruments))
	copy(sorted, instruments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if mode == MoversLosers {
			return sorted[i].ChangePct < sorted[j].ChangePct
		}
		return sorted[i].ChangePct > sorted[j].ChangePct
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// HeatmapCell is one sector tile: mean percent change and a 0..1 intensity.
type HeatmapCell struct {
	Sector    string  `json:"sector"`
	MeanPct   float64 `json:"meanPct"`
	Intensity float64 `json:"intensity"`
	Count     int     `json:"count"`
}

// Heatmap groups instruments by sector and scores each sector by the
// arithmetic mean of its percent changes. Intensity is |mean|/3 capped at 1.
// Cells preserve first-seen sector order.
func Heatmap(instruments []models.Instrument) []HeatmapCell {
	order := make([]string, 0)
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, inst := range instruments {
		if _, seen := sums[inst.Sector]; !seen {
			order = append(order, inst.Sector)
		}
		sums[inst.Sector] += inst.ChangePct
		counts[inst.Sector]++
	}

	cells := make([]HeatmapCell, 0, len(order))
	for _, sector := range order {
		mean := sums[sector] / float64(counts[sector])
		cells = append(cells, HeatmapCell{
			Sector:    sector,
			MeanPct:   mean,
			Intensity: math.Min(math.Abs(mean)/heatmapCeiling, 1),
			Count:     counts[sector],
		})
	}
	return cells
}

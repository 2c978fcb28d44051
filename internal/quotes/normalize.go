package quotes

import (
	"fmt"
	"math"
)

// Market-cap bucket thresholds in rupees.
const (
	lakhCrore = 1e12
	kCrore    = 1e10
	crore     = 1e7
)

// FormatMarketCap buckets a raw market capitalization into the human-readable
// magnitude suffixes used across the terminal. Values below one crore are
// returned empty, leaving the caller's existing descriptor untouched.
func FormatMarketCap(cap float64) string {
	switch {
	case cap >= lakhCrore:
		return fmt.Sprintf("%.1fL Cr", cap/lakhCrore)
	case cap >= kCrore:
		return fmt.Sprintf("%.0fK Cr", cap/kCrore)
	case cap >= crore:
		return fmt.Sprintf("%.0f Cr", cap/crore)
	default:
		return ""
	}
}

// RoundPE rounds a trailing price/earnings ratio to one decimal.
func RoundPE(pe float64) float64 {
	return math.Round(pe*10) / 10
}

// Round52Week rounds a 52-week bound to the nearest whole rupee.
func Round52Week(v float64) float64 {
	return math.Round(v)
}

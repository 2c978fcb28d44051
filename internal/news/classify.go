// Package news fetches the terminal's article feed and classifies articles
// that arrive without an impact or category label.
package news

import (
	"strings"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

var positiveKeywords = []string{
	"surge", "jump", "rally", "gain", "rise", "soar", "boom", "bullish",
	"record", "high", "profit", "growth", "upgrade", "beat", "strong",
	"inflow", "optimis", "positive", "bull run",
}

var negativeKeywords = []string{
	"crash", "fall", "drop", "slump", "plunge", "decline", "loss", "bearish",
	"low", "cut", "downgrade", "miss", "weak", "outflow", "recession",
	"fear", "warning", "negative", "sell-off", "selloff",
}

// ClassifyImpact scores title+summary by keyword counts and returns
// positive/negative/neutral.
func ClassifyImpact(title, summary string) string {
	text := strings.ToLower(title + " " + summary)

	var pos, neg int
	for _, kw := range positiveKeywords {
		if strings.Contains(text, kw) {
			pos++
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(text, kw) {
			neg++
		}
	}

	switch {
	case pos > neg:
		return models.ImpactPositive
	case neg > pos:
		return models.ImpactNegative
	default:
		return models.ImpactNeutral
	}
}

// ClassifyCategory buckets an article into Earnings/Policy/Global/Sector,
// falling back to the source's own category.
func ClassifyCategory(title, summary, sourceCategory string) string {
	text := strings.ToLower(title + " " + summary)

	contains := func(kws ...string) bool {
		for _, kw := range kws {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("earnings", "quarter", "profit", "revenue", "result", "q1", "q2", "q3", "q4", "fy"):
		return models.CategoryEarnings
	case contains("rbi", "sebi", "policy", "regulation", "tax", "government", "budget", "reform"):
		return models.CategoryPolicy
	case contains("global", "us ", "china", "fed ", "dollar", "world", "international", "europe"):
		return models.CategoryGlobal
	case contains("sector", "industry", "auto", "pharma", "bank", "it ", "fmcg", "metal", "oil", "energy"):
		return models.CategorySector
	}
	if sourceCategory != "" {
		return sourceCategory
	}
	return models.CategoryEconomy
}

// DetectAffected scans title+summary for instrument symbols and names from
// the given universe, returning at most five matched terminal symbols.
func DetectAffected(title, summary string, universe []models.Instrument) []string {
	text := strings.ToUpper(title + " " + summary)

	var affected []string
	for _, inst := range universe {
		if strings.Contains(text, inst.Symbol) ||
			(inst.Name != "" && strings.Contains(text, strings.ToUpper(inst.Name))) {
			affected = append(affected, inst.Symbol)
			if len(affected) == 5 {
				break
			}
		}
	}
	return affected
}

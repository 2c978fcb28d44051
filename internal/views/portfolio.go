// Package views computes display-ready aggregates from store snapshots. Every
// function here is pure: snapshots in, view data out, no store mutation.
package views

import (
	"github.com/shopspring/decimal"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

var hundred = decimal.NewFromInt(100)

// PortfolioSummary holds the headline portfolio figures. Percentages are 0,
// never NaN, when the corresponding denominator is 0.
type PortfolioSummary struct {
	Invested    decimal.Decimal `json:"invested"`
	Current     decimal.Decimal `json:"current"`
	TotalPnL    decimal.Decimal `json:"totalPnl"`
	TotalPnLPct float64         `json:"totalPnlPct"`
	DayPnL      decimal.Decimal `json:"dayPnl"`
	DayPnLPct   float64         `json:"dayPnlPct"`
	Count       int             `json:"count"`
}

// Summarize computes the portfolio summary over a holdings snapshot.
func Summarize(holdings []models.Holding) PortfolioSummary {
	sum := PortfolioSummary{
		Invested: decimal.Zero,
		Current:  decimal.Zero,
		TotalPnL: decimal.Zero,
		DayPnL:   decimal.Zero,
		Count:    len(holdings),
	}
	for _, h := range holdings {
		sum.Invested = sum.Invested.Add(h.Invested())
		sum.Current = sum.Current.Add(h.CurrentValue())
		day := h.CurrentValue().Mul(decimal.NewFromFloat(h.DayChangePct)).Div(hundred)
		sum.DayPnL = sum.DayPnL.Add(day)
	}
	sum.TotalPnL = sum.Current.Sub(sum.Invested)
	if sum.Invested.IsPositive() {
		sum.TotalPnLPct, _ = sum.TotalPnL.Div(sum.Invested).Mul(hundred).Float64()
	}
	if sum.Current.IsPositive() {
		sum.DayPnLPct, _ = sum.DayPnL.Div(sum.Current).Mul(hundred).Float64()
	}
	return sum
}

// SectorSlice is one sector's share of the portfolio's current value.
type SectorSlice struct {
	Sector string          `json:"sector"`
	Value  decimal.Decimal `json:"value"`
	Pct    float64         `json:"pct"`
}

// Allocation groups holdings' current value by sector. An empty portfolio
// yields an empty slice so callers render an explicit "no data" state.
// Slices preserve first-seen sector order.
func Allocation(holdings []models.Holding) []SectorSlice {
	if len(holdings) == 0 {
		return nil
	}

	total := decimal.Zero
	order := make([]string, 0)
	bySector := make(map[string]decimal.Decimal)
	for _, h := range holdings {
		v := h.CurrentValue()
		total = total.Add(v)
		if _, seen := bySector[h.Sector]; !seen {
			order = append(order, h.Sector)
		}
		bySector[h.Sector] = bySector[h.Sector].Add(v)
	}

	slices := make([]SectorSlice, 0, len(order))
	for _, sector := range order {
		sl := SectorSlice{Sector: sector, Value: bySector[sector]}
		if total.IsPositive() {
			sl.Pct, _ = bySector[sector].Div(total).Mul(hundred).Float64()
		}
		slices = append(slices, sl)
	}
	return slices
}

// HoldingReturn names a holding together with its overall return percentage.
type HoldingReturn struct {
	Symbol string  `json:"symbol"`
	Pct    float64 `json:"pct"`
}

// BestReturn returns the holding with the maximum (ltp-avg)/avg return, or
// ok=false when the portfolio is empty (rendered as "—").
func BestReturn(holdings []models.Holding) (HoldingReturn, bool) {
	return extremeReturn(holdings, func(a, b float64) bool { return a > b })
}

// WorstReturn returns the holding with the minimum return, or ok=false when
// the portfolio is empty.
func WorstReturn(holdings []models.Holding) (HoldingReturn, bool) {
	return extremeReturn(holdings, func(a, b float64) bool { return a < b })
}

func extremeReturn(holdings []models.Holding, better func(a, b float64) bool) (HoldingReturn, bool) {
	if len(holdings) == 0 {
		return HoldingReturn{}, false
	}
	best := HoldingReturn{Symbol: holdings[0].Symbol, Pct: holdings[0].ReturnPct()}
	for _, h := range holdings[1:] {
		if pct := h.ReturnPct(); better(pct, best.Pct) {
			best = HoldingReturn{Symbol: h.Symbol, Pct: pct}
		}
	}
	return best, true
}

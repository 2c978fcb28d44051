package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Holding represents a portfolio position. Quantity and AvgPrice are fixed at
// entry (or by explicit edit); LastPrice and DayChangePct are refreshed from
// instrument updates on every refresh cycle.
type Holding struct {
	Symbol       string          `json:"symbol"`
	Sector       string          `json:"sector"`
	Quantity     decimal.Decimal `json:"qty"`
	AvgPrice     decimal.Decimal `json:"avg"`
	LastPrice    decimal.Decimal `json:"ltp"`
	DayChangePct float64         `json:"daychg"`
}

// Validate rejects holdings that cannot be saved: missing symbol, unknown
// sector, non-positive quantity or prices.
func (h *Holding) Validate() error {
	if h.Symbol == "" {
		return fmt.Errorf("holding symbol is required")
	}
	if !ValidSector(h.Sector) {
		return fmt.Errorf("unknown sector: %s", h.Sector)
	}
	if !h.Quantity.IsPositive() {
		return fmt.Errorf("holding quantity must be positive")
	}
	if !h.AvgPrice.IsPositive() {
		return fmt.Errorf("holding average price must be positive")
	}
	if h.LastPrice.IsNegative() {
		return fmt.Errorf("holding last price cannot be negative")
	}
	return nil
}

// Invested returns quantity x average acquisition price.
func (h *Holding) Invested() decimal.Decimal {
	return h.Quantity.Mul(h.AvgPrice)
}

// CurrentValue returns quantity x last traded price.
func (h *Holding) CurrentValue() decimal.Decimal {
	return h.Quantity.Mul(h.LastPrice)
}

// PnL returns current value minus invested.
func (h *Holding) PnL() decimal.Decimal {
	return h.CurrentValue().Sub(h.Invested())
}

// ReturnPct returns (ltp-avg)/avg*100, or 0 when the average price is zero.
func (h *Holding) ReturnPct() float64 {
	if h.AvgPrice.IsZero() {
		return 0
	}
	pct, _ := h.LastPrice.Sub(h.AvgPrice).Div(h.AvgPrice).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

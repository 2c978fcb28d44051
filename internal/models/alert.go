package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Alert direction constants
const (
	DirectionAbove = "above"
	DirectionBelow = "below"
)

// Alert is a user-defined price alert. It fires non-destructively: the alert
// stays in place and re-notifies every evaluation cycle the condition holds.
type Alert struct {
	ID        int             `json:"id"`
	Symbol    string          `json:"sym"`
	Price     decimal.Decimal `json:"price"`
	Direction string          `json:"dir"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
}

// Validate rejects alerts with a missing symbol, non-positive threshold or an
// unknown direction.
func (a *Alert) Validate() error {
	if a.Symbol == "" {
		return fmt.Errorf("alert symbol is required")
	}
	if !a.Price.IsPositive() {
		return fmt.Errorf("alert price must be positive")
	}
	if a.Direction != DirectionAbove && a.Direction != DirectionBelow {
		return fmt.Errorf("invalid alert direction: %s", a.Direction)
	}
	return nil
}

// Triggered reports whether the alert condition holds at the given price.
func (a *Alert) Triggered(price decimal.Decimal) bool {
	if a.Direction == DirectionAbove {
		return price.GreaterThanOrEqual(a.Price)
	}
	return price.LessThanOrEqual(a.Price)
}

// AlertHistory records a single alert firing.
type AlertHistory struct {
	ID          int             `json:"id"`
	AlertID     int             `json:"alert_id,omitempty"`
	Symbol      string          `json:"symbol"`
	Direction   string          `json:"direction"`
	Threshold   decimal.Decimal `json:"threshold"`
	Price       decimal.Decimal `json:"price"`
	Message     string          `json:"message,omitempty"`
	TriggeredAt time.Time       `json:"triggered_at"`
}

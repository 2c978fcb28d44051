package models

import "time"

// Event type constants for the terminal event stream
const (
	EventAlertTriggered   = "ALERT_TRIGGERED"
	EventRefreshCompleted = "REFRESH_COMPLETED"
	EventRefreshFailed    = "REFRESH_FAILED"
	EventHoldingsSynced   = "HOLDINGS_SYNCED"
	EventHoldingsSnapshot = "HOLDINGS_SNAPSHOT"
)

// TerminalEvent is the envelope published to the event topic for alert firings
// and refresh-cycle outcomes.
type TerminalEvent struct {
	EventType string    `json:"event_type"`
	Symbol    string    `json:"symbol,omitempty"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status,omitempty"`
	Count     int       `json:"count,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HoldingsEvent is a broker holdings snapshot received from the sync feed.
// Numeric fields arrive as strings and are parsed when converted to holdings.
type HoldingsEvent struct {
	EventType string            `json:"event_type"`
	Source    string            `json:"source"`
	Timestamp string            `json:"timestamp"`
	Data      HoldingsEventData `json:"data"`
}

// HoldingsEventData carries the snapshot payload.
type HoldingsEventData struct {
	Holdings []HoldingData `json:"holdings"`
}

// HoldingData is a single holding as sent by the broker feed.
type HoldingData struct {
	Symbol        string `json:"symbol"`
	Quantity      string `json:"quantity"`
	AveragePrice  string `json:"average_price"`
	LastPrice     string `json:"last_price,omitempty"`
	DayChangePct  string `json:"day_change_pct,omitempty"`
}

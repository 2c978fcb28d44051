// Package alerts evaluates user price alerts against the live quote state.
package alerts

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

const defaultCheckInterval = 10 * time.Second

// Store is the slice of store behaviour the evaluator needs.
type Store interface {
	Alerts() []models.Alert
	InstrumentBySymbol(symbol string) (models.Instrument, bool)
}

// EventPublisher publishes alert firings to the event stream.
type EventPublisher interface {
	PublishAlertTriggered(ctx context.Context, symbol, message string) error
}

// HistoryRepository records alert firings.
type HistoryRepository interface {
	CreateAlertHistory(h *models.AlertHistory) error
}

// Evaluator periodically checks every alert against the current price.
// Alerts are level-triggered: an alert whose condition still holds fires
// again on the next cycle, and firing never removes the alert.
type Evaluator struct {
	store     Store
	publisher EventPublisher
	history   HistoryRepository
	interval  time.Duration
}

// NewEvaluator creates an alert evaluator. publisher and history may be nil;
// firings are always logged.
func NewEvaluator(store Store, publisher EventPublisher, history HistoryRepository) *Evaluator {
	return &Evaluator{
		store:     store,
		publisher: publisher,
		history:   history,
		interval:  defaultCheckInterval,
	}
}

// Run checks alerts on a fixed interval until ctx is cancelled.
func (e *Evaluator) Run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.CheckAll(ctx)
		}
	}
}

// CheckAll evaluates every alert once and returns the number that fired.
// Alerts whose symbol is not in the instrument universe are skipped.
func (e *Evaluator) CheckAll(ctx context.Context) int {
	fired := 0
	for _, alert := range e.store.Alerts() {
		inst, ok := e.store.InstrumentBySymbol(alert.Symbol)
		if !ok {
			continue
		}

		price := decimal.NewFromFloat(inst.LastPrice)
		if !alert.Triggered(price) {
			continue
		}

		fired++
		e.notify(ctx, alert, price)
	}
	return fired
}

// notify fans a firing out to the log, the event stream and the history
// table. Sink failures are independent; one failing never blocks the others.
func (e *Evaluator) notify(ctx context.Context, alert models.Alert, price decimal.Decimal) {
	message := fmt.Sprintf("%s is %s %s (last price %s)",
		alert.Symbol, alert.Direction, alert.Price.StringFixed(2), price.StringFixed(2))

	log.Printf("ALERT: %s", message)

	if e.publisher != nil {
		if err := e.publisher.PublishAlertTriggered(ctx, alert.Symbol, message); err != nil {
			log.Printf("Failed to publish alert event for %s: %v", alert.Symbol, err)
		}
	}

	if e.history != nil {
		record := &models.AlertHistory{
			AlertID:     alert.ID,
			Symbol:      alert.Symbol,
			Direction:   alert.Direction,
			Threshold:   alert.Price,
			Price:       price,
			Message:     message,
			TriggeredAt: time.Now(),
		}
		if err := e.history.CreateAlertHistory(record); err != nil {
			log.Printf("Failed to record alert history for %s: %v", alert.Symbol, err)
		}
	}
}

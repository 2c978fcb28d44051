package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

// HoldingsRepository defines the interface for replacing the holdings set
type HoldingsRepository interface {
	ReplaceAllHoldings(holdings []*models.Holding) error
}

// messageReader abstracts the kafka reader for testing
type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
	Config() kafka.ReaderConfig
}

// HoldingsConsumer ingests broker holdings snapshots from Kafka.
// Each snapshot replaces the full holdings set; there is no incremental
// merge, so a missed message is corrected by the next snapshot.
type HoldingsConsumer struct {
	reader messageReader
	repo   HoldingsRepository
}

// NewHoldingsConsumer creates a new Kafka consumer for holdings snapshots
func NewHoldingsConsumer(brokers []string, topic, groupID string, repo HoldingsRepository) *HoldingsConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		MaxWait:        1 * time.Second,
		StartOffset:    kafka.LastOffset,
		CommitInterval: time.Second,
	})

	return &HoldingsConsumer{
		reader: reader,
		repo:   repo,
	}
}

// Start begins consuming messages from Kafka
func (c *HoldingsConsumer) Start(ctx context.Context) error {
	log.Printf("Starting holdings consumer for topic: %s", c.reader.Config().Topic)

	for {
		select {
		case <-ctx.Done():
			log.Println("Holdings consumer shutting down...")
			return c.reader.Close()
		default:
			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil // Context cancelled, normal shutdown
				}
				log.Printf("Error reading message: %v", err)
				continue
			}

			if err := c.processMessage(msg); err != nil {
				log.Printf("Error processing message: %v", err)
				// Continue processing other messages
			}
		}
	}
}

// processMessage handles a single Kafka message
func (c *HoldingsConsumer) processMessage(msg kafka.Message) error {
	var event models.HoldingsEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal holdings event: %w", err)
	}

	if event.EventType != models.EventHoldingsSnapshot {
		log.Printf("Ignoring event type: %s", event.EventType)
		return nil
	}

	holdings, err := c.convertEvent(event)
	if err != nil {
		return fmt.Errorf("failed to convert holdings event: %w", err)
	}

	if err := c.repo.ReplaceAllHoldings(holdings); err != nil {
		return fmt.Errorf("failed to replace holdings: %w", err)
	}

	log.Printf("Applied holdings snapshot from %s: %d holdings", event.Source, len(holdings))
	return nil
}

// convertEvent maps a HoldingsEvent to holding models
func (c *HoldingsConsumer) convertEvent(event models.HoldingsEvent) ([]*models.Holding, error) {
	holdings := make([]*models.Holding, 0, len(event.Data.Holdings))

	for _, h := range event.Data.Holdings {
		quantity, err := decimal.NewFromString(h.Quantity)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %s for %s: %w", h.Quantity, h.Symbol, err)
		}

		avgPrice, err := decimal.NewFromString(h.AveragePrice)
		if err != nil {
			return nil, fmt.Errorf("invalid average price %s for %s: %w", h.AveragePrice, h.Symbol, err)
		}

		lastPrice := decimal.Zero
		if h.LastPrice != "" {
			lastPrice, err = decimal.NewFromString(h.LastPrice)
			if err != nil {
				return nil, fmt.Errorf("invalid last price %s for %s: %w", h.LastPrice, h.Symbol, err)
			}
		}

		dayChange := 0.0
		if h.DayChangePct != "" {
			dayChange, err = strconv.ParseFloat(h.DayChangePct, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid day change %s for %s: %w", h.DayChangePct, h.Symbol, err)
			}
		}

		holdings = append(holdings, &models.Holding{
			Symbol:       h.Symbol,
			Sector:       models.SectorOthers,
			Quantity:     quantity,
			AvgPrice:     avgPrice,
			LastPrice:    lastPrice,
			DayChangePct: dayChange,
		})
	}

	return holdings, nil
}

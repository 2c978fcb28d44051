package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

// Producer handles publishing terminal events to Kafka
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer creates a new Kafka producer
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

// PublishAlertTriggered publishes a price alert firing
func (p *Producer) PublishAlertTriggered(ctx context.Context, symbol, message string) error {
	event := models.TerminalEvent{
		EventType: models.EventAlertTriggered,
		Symbol:    symbol,
		Message:   message,
		Timestamp: time.Now(),
	}
	return p.publish(ctx, symbol, event)
}

// PublishRefreshCompleted publishes a successful quote refresh cycle
func (p *Producer) PublishRefreshCompleted(ctx context.Context, status string, count int) error {
	event := models.TerminalEvent{
		EventType: models.EventRefreshCompleted,
		Status:    status,
		Count:     count,
		Timestamp: time.Now(),
	}
	return p.publish(ctx, "refresh", event)
}

// PublishRefreshFailed publishes a refresh cycle that exhausted all sources
func (p *Producer) PublishRefreshFailed(ctx context.Context, message string) error {
	event := models.TerminalEvent{
		EventType: models.EventRefreshFailed,
		Message:   message,
		Timestamp: time.Now(),
	}
	return p.publish(ctx, "refresh", event)
}

// PublishHoldingsSynced publishes a completed broker portfolio sync
func (p *Producer) PublishHoldingsSynced(ctx context.Context, count int) error {
	event := models.TerminalEvent{
		EventType: models.EventHoldingsSynced,
		Count:     count,
		Timestamp: time.Now(),
	}
	return p.publish(ctx, "holdings", event)
}

func (p *Producer) publish(ctx context.Context, key string, event models.TerminalEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}

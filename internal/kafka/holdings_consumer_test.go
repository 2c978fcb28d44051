package kafka

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

type mockHoldingsRepo struct {
	mu     sync.Mutex
	calls  int
	last   []*models.Holding
	called chan struct{}
}

func (m *mockHoldingsRepo) ReplaceAllHoldings(holdings []*models.Holding) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	m.last = holdings
	if m.called != nil {
		select {
		case m.called <- struct{}{}:
		default:
		}
	}
	return nil
}

func (m *mockHoldingsRepo) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockHoldingsRepo) LastHoldings() []*models.Holding {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

type mockHoldingsReader struct {
	cfg  kafka.ReaderConfig
	msgs chan kafka.Message

	mu         sync.Mutex
	closeCalls int
}

func newMockHoldingsReader(topic string, buffer int) *mockHoldingsReader {
	return &mockHoldingsReader{
		cfg:  kafka.ReaderConfig{Topic: topic},
		msgs: make(chan kafka.Message, buffer),
	}
}

func (r *mockHoldingsReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case msg := <-r.msgs:
		return msg, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (r *mockHoldingsReader) Close() error {
	r.mu.Lock()
	r.closeCalls++
	r.mu.Unlock()
	return nil
}

func (r *mockHoldingsReader) Config() kafka.ReaderConfig {
	return r.cfg
}

func TestHoldingsConsumer_processMessage_ignoresOtherEventTypes(t *testing.T) {
	repo := &mockHoldingsRepo{}
	consumer := &HoldingsConsumer{repo: repo}

	event := models.HoldingsEvent{
		EventType: "SOMETHING_ELSE",
		Source:    "groww",
		Timestamp: time.Now().Format(time.RFC3339),
		Data:      models.HoldingsEventData{},
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	err = consumer.processMessage(kafka.Message{Value: payload})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.Calls())
}

func TestHoldingsConsumer_processMessage_parsesSnapshot(t *testing.T) {
	repo := &mockHoldingsRepo{}
	consumer := &HoldingsConsumer{repo: repo}

	event := models.HoldingsEvent{
		EventType: models.EventHoldingsSnapshot,
		Source:    "groww",
		Timestamp: time.Now().Format(time.RFC3339),
		Data: models.HoldingsEventData{
			Holdings: []models.HoldingData{
				{Symbol: "RELIANCE", Quantity: "10", AveragePrice: "2450.50", LastPrice: "2892.50", DayChangePct: "1.2"},
				{Symbol: "TCS", Quantity: "5", AveragePrice: "3300"},
			},
		},
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	err = consumer.processMessage(kafka.Message{Value: payload})
	require.NoError(t, err)
	require.Equal(t, 1, repo.Calls())

	holdings := repo.LastHoldings()
	require.Len(t, holdings, 2)

	assert.Equal(t, "RELIANCE", holdings[0].Symbol)
	assert.True(t, holdings[0].Quantity.Equal(decimal.NewFromInt(10)))
	assert.True(t, holdings[0].AvgPrice.Equal(decimal.RequireFromString("2450.50")))
	assert.True(t, holdings[0].LastPrice.Equal(decimal.RequireFromString("2892.50")))
	assert.InDelta(t, 1.2, holdings[0].DayChangePct, 0.0001)

	assert.Equal(t, "TCS", holdings[1].Symbol)
	assert.True(t, holdings[1].LastPrice.IsZero())
	assert.Zero(t, holdings[1].DayChangePct)
}

func TestHoldingsConsumer_processMessage_rejectsBadQuantity(t *testing.T) {
	repo := &mockHoldingsRepo{}
	consumer := &HoldingsConsumer{repo: repo}

	event := models.HoldingsEvent{
		EventType: models.EventHoldingsSnapshot,
		Source:    "groww",
		Data: models.HoldingsEventData{
			Holdings: []models.HoldingData{
				{Symbol: "RELIANCE", Quantity: "not-a-number", AveragePrice: "2450.50"},
			},
		},
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	err = consumer.processMessage(kafka.Message{Value: payload})
	require.Error(t, err)
	assert.Equal(t, 0, repo.Calls())
}

func TestHoldingsConsumer_Start_consumesAndProcessesMessages(t *testing.T) {
	repo := &mockHoldingsRepo{called: make(chan struct{}, 1)}
	reader := newMockHoldingsReader("holdings-topic", 1)
	consumer := &HoldingsConsumer{reader: reader, repo: repo}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- consumer.Start(ctx)
	}()

	event := models.HoldingsEvent{
		EventType: models.EventHoldingsSnapshot,
		Source:    "groww",
		Timestamp: time.Now().Format(time.RFC3339),
		Data: models.HoldingsEventData{
			Holdings: []models.HoldingData{
				{Symbol: "INFY", Quantity: "12", AveragePrice: "1500"},
			},
		},
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	reader.msgs <- kafka.Message{Value: payload}

	select {
	case <-repo.called:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot to be processed")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for consumer shutdown")
	}

	require.Equal(t, 1, repo.Calls())
	assert.Equal(t, "INFY", repo.LastHoldings()[0].Symbol)
}

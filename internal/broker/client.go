// Package broker syncs the user's portfolio from an external broker account.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

// Client fetches holdings from a broker HTTP endpoint.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// NewClient creates a broker client. authToken may be empty.
func NewClient(baseURL, authToken string) *Client {
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type holdingsResponse struct {
	Holdings []brokerHolding `json:"holdings"`
}

type brokerHolding struct {
	TradingSymbol string  `json:"trading_symbol"`
	Quantity      float64 `json:"quantity"`
	AveragePrice  float64 `json:"average_price"`
	LastPrice     float64 `json:"last_price"`
	DayChangePct  float64 `json:"day_change_pct"`
}

// FetchHoldings retrieves the broker's holdings snapshot. Sectors are
// resolved against the given instrument universe; symbols outside it fall
// back to Others.
func (c *Client) FetchHoldings(ctx context.Context, universe []models.Instrument) ([]models.Holding, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/holdings", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("broker request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("broker returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read broker response: %w", err)
	}

	var payload holdingsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode broker response: %w", err)
	}

	sectors := make(map[string]string, len(universe))
	for _, inst := range universe {
		sectors[inst.Symbol] = inst.Sector
	}

	holdings := make([]models.Holding, 0, len(payload.Holdings))
	for _, bh := range payload.Holdings {
		if bh.TradingSymbol == "" || bh.Quantity <= 0 {
			continue
		}
		sector, ok := sectors[bh.TradingSymbol]
		if !ok {
			sector = models.SectorOthers
		}
		holdings = append(holdings, models.Holding{
			Symbol:       bh.TradingSymbol,
			Sector:       sector,
			Quantity:     decimal.NewFromFloat(bh.Quantity),
			AvgPrice:     decimal.NewFromFloat(bh.AveragePrice),
			LastPrice:    decimal.NewFromFloat(bh.LastPrice),
			DayChangePct: bh.DayChangePct,
		})
	}

	return holdings, nil
}

// SyncResult summarizes a completed portfolio sync. Invested goes out as a
// JSON number, not decimal's default quoted string.
type SyncResult struct {
	Holdings int     `json:"holdings"`
	Invested float64 `json:"invested"`
}

// Summarize computes the sync response figures for a fetched snapshot.
func Summarize(holdings []models.Holding) SyncResult {
	invested := decimal.Zero
	for _, h := range holdings {
		invested = invested.Add(h.Invested())
	}
	f, _ := invested.Float64()
	return SyncResult{Holdings: len(holdings), Invested: f}
}

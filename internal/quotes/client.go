// Package quotes fetches batches of symbol quotes from an ordered list of
// upstream sources, falling through source by source until one answers.
package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrAllSourcesFailed is returned when every source failed for every batch.
var ErrAllSourcesFailed = errors.New("all quote sources failed")

const (
	defaultBatchSize  = 20
	defaultBatchDelay = 200 * time.Millisecond
)

// QuoteRecord is the normalized upstream quote shape. Pointer fields
// distinguish "absent from the response" from a legitimate zero so the merge
// can skip fields the source did not provide.
type QuoteRecord struct {
	Symbol                     string   `json:"symbol"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice,omitempty"`
	RegularMarketPreviousClose *float64 `json:"regularMarketPreviousClose,omitempty"`
	RegularMarketChange        *float64 `json:"regularMarketChange,omitempty"`
	RegularMarketChangePercent *float64 `json:"regularMarketChangePercent,omitempty"`
	FiftyTwoWeekHigh           *float64 `json:"fiftyTwoWeekHigh,omitempty"`
	FiftyTwoWeekLow            *float64 `json:"fiftyTwoWeekLow,omitempty"`
	MarketCap                  *float64 `json:"marketCap,omitempty"`
	TrailingPE                 *float64 `json:"trailingPE,omitempty"`
	ShortName                  string   `json:"shortName,omitempty"`
}

// QuoteEnvelope is the wire shape of the quote endpoint, both upstream and
// as served back by the relay.
type QuoteEnvelope struct {
	QuoteResponse QuoteResult `json:"quoteResponse"`
}

// QuoteResult carries the records or an upstream error string.
type QuoteResult struct {
	Result []QuoteRecord `json:"result"`
	Error  *string       `json:"error"`
}

// Source is one upstream quote endpoint, tried in priority order.
type Source struct {
	Name    string
	BaseURL string
}

// Client batches symbols against the configured sources.
type Client struct {
	sources    []Source
	httpClient *http.Client
	batchSize  int
	batchDelay time.Duration
}

// NewClient creates a Client over the given sources, highest priority first.
func NewClient(sources []Source) *Client {
	return &Client{
		sources:    sources,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		batchSize:  defaultBatchSize,
		batchDelay: defaultBatchDelay,
	}
}

// FetchAll fetches quotes for the full symbol set, partitioned into bounded
// batches with a short inter-batch delay. A batch for which every source fails
// contributes nothing; FetchAll only errors when no batch produced any record.
func (c *Client) FetchAll(ctx context.Context, symbols []string) ([]QuoteRecord, error) {
	if len(symbols) == 0 {
		return nil, nil
	}

	var all []QuoteRecord
	for i := 0; i < len(symbols); i += c.batchSize {
		end := i + c.batchSize
		if end > len(symbols) {
			end = len(symbols)
		}

		records, err := c.fetchBatch(ctx, symbols[i:end])
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("quote batch %d-%d failed: %v", i, end, err)
		} else {
			all = append(all, records...)
		}

		if end < len(symbols) {
			select {
			case <-time.After(c.batchDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	if len(all) == 0 {
		return nil, ErrAllSourcesFailed
	}
	return all, nil
}

// fetchBatch tries each source in priority order and returns the first
// non-empty result. Individual source failures are swallowed; only exhaustion
// of all sources is an error.
func (c *Client) fetchBatch(ctx context.Context, symbols []string) ([]QuoteRecord, error) {
	for _, src := range c.sources {
		records, err := c.fetchFromSource(ctx, src, symbols)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		if len(records) > 0 {
			return records, nil
		}
	}
	return nil, ErrAllSourcesFailed
}

func (c *Client) fetchFromSource(ctx context.Context, src Source, symbols []string) ([]QuoteRecord, error) {
	endpoint := strings.TrimRight(src.BaseURL, "/") + "/api/quote?symbols=" +
		url.QueryEscape(strings.Join(symbols, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build quote request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote source %s unreachable: %w", src.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote source %s returned status %d", src.Name, resp.StatusCode)
	}

	var payload QuoteEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode quote response from %s: %w", src.Name, err)
	}
	if payload.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("quote source %s error: %s", src.Name, *payload.QuoteResponse.Error)
	}

	return payload.QuoteResponse.Result, nil
}

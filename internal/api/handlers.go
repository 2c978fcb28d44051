// Package api serves the dashboard REST surface and the upstream proxy relay.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nkhandel/bharat-terminal/internal/broker"
	"github.com/nkhandel/bharat-terminal/internal/kafka"
	"github.com/nkhandel/bharat-terminal/internal/persist"
	"github.com/nkhandel/bharat-terminal/internal/quotes"
	"github.com/nkhandel/bharat-terminal/internal/store"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	store    *store.Store
	saver    *persist.Saver
	producer *kafka.Producer
	broker   *broker.Client

	chartBaseURL string
	httpClient   *http.Client
}

// NewHandler creates a new Handler. saver, producer and broker may be nil.
func NewHandler(st *store.Store, saver *persist.Saver, producer *kafka.Producer, brokerClient *broker.Client, chartBaseURL string) *Handler {
	return &Handler{
		store:        st,
		saver:        saver,
		producer:     producer,
		broker:       brokerClient,
		chartBaseURL: strings.TrimRight(chartBaseURL, "/"),
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

// GetQuotes handles GET /api/quote?symbols=A,B,C, the relay endpoint the
// dashboard polls. It serves the stored universe in the upstream response
// shape; unknown symbols are silently omitted.
func (h *Handler) GetQuotes(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("symbols")
	if raw == "" {
		http.Error(w, "symbols parameter is required", http.StatusBadRequest)
		return
	}

	lookup := h.buildQuoteLookup()
	var result []quotes.QuoteRecord
	for _, sym := range strings.Split(raw, ",") {
		sym = strings.TrimSpace(sym)
		if rec, ok := lookup[sym]; ok {
			result = append(result, rec)
		}
	}
	if result == nil {
		result = []quotes.QuoteRecord{}
	}

	respondJSON(w, http.StatusOK, quotes.QuoteEnvelope{
		QuoteResponse: quotes.QuoteResult{Result: result},
	})
}

func (h *Handler) buildQuoteLookup() map[string]quotes.QuoteRecord {
	lookup := make(map[string]quotes.QuoteRecord)

	for _, idx := range h.store.Indices() {
		value := idx.Value
		baseline := idx.Baseline
		change := value - baseline
		var changePct float64
		if baseline != 0 {
			changePct = change / baseline * 100
		}
		lookup[idx.UpstreamSymbol] = quotes.QuoteRecord{
			Symbol:                     idx.UpstreamSymbol,
			ShortName:                  idx.Name,
			RegularMarketPrice:         &value,
			RegularMarketPreviousClose: &baseline,
			RegularMarketChange:        &change,
			RegularMarketChangePercent: &changePct,
		}
	}

	for _, c := range h.store.Commodities() {
		price := c.Price
		changePct := c.ChangePct
		lookup[c.Symbol] = quotes.QuoteRecord{
			Symbol:                     c.Symbol,
			ShortName:                  c.Name,
			RegularMarketPrice:         &price,
			RegularMarketChangePercent: &changePct,
		}
	}

	for _, inst := range h.store.Instruments() {
		price := inst.LastPrice
		change := inst.Change
		changePct := inst.ChangePct
		prev := inst.PreviousClose()
		hi := inst.High52
		lo := inst.Low52
		pe := inst.PERatio
		rec := quotes.QuoteRecord{
			Symbol:                     inst.UpstreamSymbol,
			ShortName:                  inst.Name,
			RegularMarketPrice:         &price,
			RegularMarketPreviousClose: &prev,
			RegularMarketChange:        &change,
			RegularMarketChangePercent: &changePct,
			FiftyTwoWeekHigh:           &hi,
			FiftyTwoWeekLow:            &lo,
		}
		if pe > 0 {
			rec.TrailingPE = &pe
		}
		lookup[inst.UpstreamSymbol] = rec
	}

	return lookup
}

// GetChart handles GET /api/chart?symbol=&range=&interval=, a passthrough
// proxy to the upstream chart provider.
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		http.Error(w, "symbol parameter is required", http.StatusBadRequest)
		return
	}
	chartRange := r.URL.Query().Get("range")
	if chartRange == "" {
		chartRange = "1d"
	}
	interval := r.URL.Query().Get("interval")
	if interval == "" {
		interval = "5m"
	}

	url := fmt.Sprintf("%s/%s?range=%s&interval=%s", h.chartBaseURL, symbol, chartRange, interval)
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, url, nil)
	if err != nil {
		http.Error(w, "failed to build upstream request", http.StatusInternalServerError)
		return
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		http.Error(w, "upstream chart fetch failed", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		http.Error(w, "upstream chart fetch failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	io.Copy(w, resp.Body)
}

// GetNews handles GET /api/news with an optional category filter.
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	articles, lastUpdate := h.store.News()

	category := r.URL.Query().Get("category")
	if category != "" {
		filtered := articles[:0:0]
		for _, a := range articles {
			if strings.EqualFold(a.Category, category) {
				filtered = append(filtered, a)
			}
		}
		articles = filtered
	}

	var last interface{}
	if !lastUpdate.IsZero() {
		last = lastUpdate.Format(time.RFC3339)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"articles":   articles,
		"total":      len(articles),
		"lastUpdate": last,
	})
}

// GetStatus handles GET /api/status
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, lastQuote := h.store.Status()
	articles, lastNews := h.store.News()

	payload := map[string]interface{}{
		"status":      status,
		"mode":        h.store.Mode(),
		"instruments": len(h.store.Instruments()),
		"indices":     len(h.store.Indices()),
		"commodities": len(h.store.Commodities()),
		"articles":    len(articles),
	}
	if !lastQuote.IsZero() {
		payload["lastQuoteUpdate"] = lastQuote.Format(time.RFC3339)
	}
	if !lastNews.IsZero() {
		payload["lastNewsUpdate"] = lastNews.Format(time.RFC3339)
	}

	respondJSON(w, http.StatusOK, payload)
}

// GetIndices handles GET /api/indices
func (h *Handler) GetIndices(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Indices())
}

// GetCommodities handles GET /api/commodities
func (h *Handler) GetCommodities(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Commodities())
}

// GetInstruments handles GET /api/v1/instruments
func (h *Handler) GetInstruments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Instruments())
}

// GetMacro handles GET /api/v1/macro
func (h *Handler) GetMacro(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Macro())
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

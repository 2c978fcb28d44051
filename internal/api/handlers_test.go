package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkhandel/bharat-terminal/internal/broker"
	"github.com/nkhandel/bharat-terminal/internal/models"
	"github.com/nkhandel/bharat-terminal/internal/quotes"
	"github.com/nkhandel/bharat-terminal/internal/store"
)

func newTestRouter(t *testing.T, st *store.Store) http.Handler {
	t.Helper()
	handler := NewHandler(st, nil, nil, nil, "http://chart.invalid")
	return SetupRoutes(handler)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetQuotes(t *testing.T) {
	router := newTestRouter(t, store.New())

	t.Run("missing symbols is a bad request", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/quote", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("serves known symbols in upstream shape", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/quote?symbols=%5ENSEI,RELIANCE.NS,UNKNOWN", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var envelope quotes.QuoteEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		require.Len(t, envelope.QuoteResponse.Result, 2, "unknown symbols are omitted")

		bySym := map[string]quotes.QuoteRecord{}
		for _, rec := range envelope.QuoteResponse.Result {
			bySym[rec.Symbol] = rec
		}

		idx, ok := bySym["^NSEI"]
		require.True(t, ok)
		require.NotNil(t, idx.RegularMarketPrice)
		assert.Equal(t, 22500.0, *idx.RegularMarketPrice)

		inst, ok := bySym["RELIANCE.NS"]
		require.True(t, ok)
		require.NotNil(t, inst.RegularMarketPrice)
		assert.Equal(t, 2892.50, *inst.RegularMarketPrice)
		require.NotNil(t, inst.FiftyTwoWeekHigh)
		assert.Equal(t, 3024.0, *inst.FiftyTwoWeekHigh)
	})
}

func TestGetChart_ProxiesUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/NSEI.NS", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("range"))
		assert.Equal(t, "5m", r.URL.Query().Get("interval"))
		w.Write([]byte(`{"chart":{"result":[]}}`))
	}))
	defer upstream.Close()

	handler := NewHandler(store.New(), nil, nil, nil, upstream.URL)
	router := SetupRoutes(handler)

	rec := doRequest(t, router, http.MethodGet, "/api/chart?symbol=NSEI.NS", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"chart":{"result":[]}}`, rec.Body.String())
}

func TestGetChart_UpstreamFailureIsBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	handler := NewHandler(store.New(), nil, nil, nil, upstream.URL)
	router := SetupRoutes(handler)

	rec := doRequest(t, router, http.MethodGet, "/api/chart?symbol=NSEI.NS", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetNews_CategoryFilter(t *testing.T) {
	router := newTestRouter(t, store.New())

	rec := doRequest(t, router, http.MethodGet, "/api/news?category=Economy", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Articles []models.NewsArticle `json:"articles"`
		Total    int                  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, len(payload.Articles), payload.Total)
	for _, a := range payload.Articles {
		assert.Equal(t, models.CategoryEconomy, a.Category)
	}
}

func TestReplaceHoldings(t *testing.T) {
	t.Run("valid bulk replace", func(t *testing.T) {
		router := newTestRouter(t, store.New())

		body := `{"holdings":[{"symbol":"RELIANCE","sector":"Energy","qty":"10","avg":"2450.5"}]}`
		rec := doRequest(t, router, http.MethodPost, "/api/holdings", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var payload struct {
			Holdings []models.Holding `json:"holdings"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		require.Len(t, payload.Holdings, 1)
		assert.Equal(t, "RELIANCE", payload.Holdings[0].Symbol)
	})

	t.Run("get returns the same envelope", func(t *testing.T) {
		st := store.New()
		require.NoError(t, st.UpsertHolding(models.Holding{
			Symbol:   "TCS",
			Sector:   models.SectorIT,
			Quantity: decimal.NewFromInt(5),
			AvgPrice: decimal.NewFromInt(3500),
		}))
		router := newTestRouter(t, st)

		rec := doRequest(t, router, http.MethodGet, "/api/holdings", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var payload struct {
			Holdings []models.Holding `json:"holdings"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		require.Len(t, payload.Holdings, 1)
		assert.Equal(t, "TCS", payload.Holdings[0].Symbol)
	})

	t.Run("bare array body is rejected", func(t *testing.T) {
		router := newTestRouter(t, store.New())

		body := `[{"symbol":"RELIANCE","sector":"Energy","qty":"10","avg":"2450.5"}]`
		rec := doRequest(t, router, http.MethodPost, "/api/holdings", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("one invalid entry rejects the whole batch", func(t *testing.T) {
		st := store.New()
		router := newTestRouter(t, st)

		body := `{"holdings":[
			{"symbol":"RELIANCE","sector":"Energy","qty":"10","avg":"2450.5"},
			{"symbol":"","sector":"Energy","qty":"1","avg":"100"}
		]}`
		rec := doRequest(t, router, http.MethodPost, "/api/holdings", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, st.Holdings())
	})
}

func TestWatchlistEndpoints(t *testing.T) {
	st := store.New()
	router := newTestRouter(t, st)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/watchlist", `{"sym":"reliance"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var entry models.WatchlistEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, "RELIANCE", entry.Symbol)
	assert.Equal(t, 2892.50, entry.LastPrice, "price fields snapshot at add time")

	rec = doRequest(t, router, http.MethodPost, "/api/v1/watchlist", `{"sym":"RELIANCE"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "duplicates rejected")

	rec = doRequest(t, router, http.MethodPost, "/api/v1/watchlist", `{"sym":"NOSUCH"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown symbols rejected")

	rec = doRequest(t, router, http.MethodDelete, "/api/v1/watchlist/RELIANCE", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, st.Watchlist())
}

func TestAlertEndpoints(t *testing.T) {
	st := store.New()
	router := newTestRouter(t, st)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/alerts", `{"sym":"RELIANCE","price":"3000","dir":"above"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var alert models.Alert
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &alert))
	assert.Equal(t, 1, alert.ID)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/alerts", `{"sym":"RELIANCE","price":"3000","dir":"sideways"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/v1/alerts/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/v1/alerts/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMovers_InvalidMode(t *testing.T) {
	router := newTestRouter(t, store.New())

	rec := doRequest(t, router, http.MethodGet, "/api/v1/movers?mode=upwards", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncPortfolio(t *testing.T) {
	t.Run("not configured is a bad gateway", func(t *testing.T) {
		router := newTestRouter(t, store.New())

		rec := doRequest(t, router, http.MethodGet, "/api/portfolio/sync", "")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("replaces holdings from the broker snapshot", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"holdings":[{"trading_symbol":"RELIANCE","quantity":10,"average_price":2450.5}]}`))
		}))
		defer upstream.Close()

		st := store.New()
		handler := NewHandler(st, nil, nil, broker.NewClient(upstream.URL, ""), "http://chart.invalid")
		router := SetupRoutes(handler)

		rec := doRequest(t, router, http.MethodGet, "/api/portfolio/sync", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var result struct {
			Holdings int     `json:"holdings"`
			Invested float64 `json:"invested"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 1, result.Holdings)
		assert.Equal(t, 24505.0, result.Invested)

		require.Len(t, st.Holdings(), 1)
		assert.Equal(t, "RELIANCE", st.Holdings()[0].Symbol)
	})
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, store.New())

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

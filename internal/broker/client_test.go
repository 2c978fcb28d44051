package broker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkhandel/bharat-terminal/internal/models"
	"github.com/nkhandel/bharat-terminal/internal/refdata"
)

func TestClient_FetchHoldings(t *testing.T) {
	t.Run("maps broker holdings and resolves sectors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/holdings", r.URL.Path)
			require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			w.Write([]byte(`{"holdings":[
				{"trading_symbol":"RELIANCE","quantity":10,"average_price":2450.5,"last_price":2892.5,"day_change_pct":1.2},
				{"trading_symbol":"UNLISTED","quantity":3,"average_price":100},
				{"trading_symbol":"","quantity":1,"average_price":50},
				{"trading_symbol":"TCS","quantity":0,"average_price":3300}
			]}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "tok-123")
		holdings, err := client.FetchHoldings(context.Background(), refdata.Instruments())
		require.NoError(t, err)
		require.Len(t, holdings, 2, "blank symbols and zero quantities are dropped")

		assert.Equal(t, "RELIANCE", holdings[0].Symbol)
		assert.Equal(t, models.SectorEnergy, holdings[0].Sector)
		assert.True(t, holdings[0].Quantity.Equal(decimal.NewFromInt(10)))

		assert.Equal(t, "UNLISTED", holdings[1].Symbol)
		assert.Equal(t, models.SectorOthers, holdings[1].Sector)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "")
		_, err := client.FetchHoldings(context.Background(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 502")
	})
}

func TestSummarize(t *testing.T) {
	holdings := []models.Holding{
		{Quantity: decimal.NewFromInt(10), AvgPrice: decimal.NewFromInt(100)},
		{Quantity: decimal.NewFromInt(2), AvgPrice: decimal.NewFromInt(50)},
	}

	res := Summarize(holdings)
	assert.Equal(t, 2, res.Holdings)
	assert.Equal(t, 1100.0, res.Invested)
}

func TestSummarize_Empty(t *testing.T) {
	res := Summarize(nil)
	assert.Zero(t, res.Holdings)
	assert.Zero(t, res.Invested)
}

package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/nkhandel/bharat-terminal/internal/broker"
	"github.com/nkhandel/bharat-terminal/internal/models"
	"github.com/nkhandel/bharat-terminal/internal/views"
)

// holdingsEnvelope is the holdings wire shape: the bulk-replace request body
// and every whole-portfolio response carry the list under a "holdings" key.
type holdingsEnvelope struct {
	Holdings []models.Holding `json:"holdings"`
}

// GetHoldings handles GET /api/holdings
func (h *Handler) GetHoldings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, holdingsEnvelope{Holdings: h.store.Holdings()})
}

// ReplaceHoldings handles POST /api/holdings, a bulk replace of the
// portfolio. Every entry is validated before anything is applied.
func (h *Handler) ReplaceHoldings(w http.ResponseWriter, r *http.Request) {
	var payload holdingsEnvelope
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.store.ReplaceHoldings(payload.Holdings); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.persistHoldings(r)
	respondJSON(w, http.StatusOK, holdingsEnvelope{Holdings: h.store.Holdings()})
}

// UpsertHolding handles POST /api/v1/holdings: create or update one holding.
func (h *Handler) UpsertHolding(w http.ResponseWriter, r *http.Request) {
	var holding models.Holding
	if err := json.NewDecoder(r.Body).Decode(&holding); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.store.UpsertHolding(holding); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.persistHoldings(r)
	respondJSON(w, http.StatusCreated, holdingsEnvelope{Holdings: h.store.Holdings()})
}

// DeleteHolding handles DELETE /api/v1/holdings/{symbol}
func (h *Handler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	if err := h.store.DeleteHolding(symbol); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.persistHoldings(r)
	w.WriteHeader(http.StatusNoContent)
}

// persistHoldings saves the current holdings snapshot. A persistence failure
// is surfaced in the log only; the in-memory update stands.
func (h *Handler) persistHoldings(r *http.Request) {
	if h.saver == nil {
		return
	}
	if err := h.saver.SaveHoldings(r.Context(), h.store.Holdings()); err != nil {
		log.Printf("Failed to persist holdings: %v", err)
	}
}

// SyncPortfolio handles GET /api/portfolio/sync: pulls the broker snapshot,
// replaces the portfolio and reports the count and invested total.
func (h *Handler) SyncPortfolio(w http.ResponseWriter, r *http.Request) {
	if h.broker == nil {
		respondJSON(w, http.StatusBadGateway, map[string]string{"error": "broker sync not configured"})
		return
	}

	holdings, err := h.broker.FetchHoldings(r.Context(), h.store.Instruments())
	if err != nil {
		log.Printf("Broker sync failed: %v", err)
		respondJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}

	if err := h.store.ReplaceHoldings(holdings); err != nil {
		respondJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	h.persistHoldings(r)

	if h.producer != nil {
		if err := h.producer.PublishHoldingsSynced(r.Context(), len(holdings)); err != nil {
			log.Printf("Failed to publish holdings sync event: %v", err)
		}
	}

	respondJSON(w, http.StatusOK, broker.Summarize(holdings))
}

// GetPortfolioSummary handles GET /api/v1/portfolio/summary
func (h *Handler) GetPortfolioSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, views.Summarize(h.store.Holdings()))
}

// GetAllocation handles GET /api/v1/portfolio/allocation
func (h *Handler) GetAllocation(w http.ResponseWriter, r *http.Request) {
	allocation := views.Allocation(h.store.Holdings())
	if allocation == nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{"slices": nil, "noData": true})
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"slices": allocation, "noData": false})
}

// GetReturnExtremes handles GET /api/v1/portfolio/extremes
func (h *Handler) GetReturnExtremes(w http.ResponseWriter, r *http.Request) {
	holdings := h.store.Holdings()

	payload := map[string]interface{}{}
	if best, ok := views.BestReturn(holdings); ok {
		payload["best"] = best
	}
	if worst, ok := views.WorstReturn(holdings); ok {
		payload["worst"] = worst
	}
	respondJSON(w, http.StatusOK, payload)
}

// GetMovers handles GET /api/v1/movers?mode=gainers|losers
func (h *Handler) GetMovers(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = views.MoversGainers
	}
	if mode != views.MoversGainers && mode != views.MoversLosers {
		http.Error(w, "mode must be gainers or losers", http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, views.TopMovers(h.store.Instruments(), mode, 8))
}

// GetHeatmap handles GET /api/v1/heatmap
func (h *Handler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, views.Heatmap(h.store.Instruments()))
}

// GetSentiment handles GET /api/v1/sentiment
func (h *Handler) GetSentiment(w http.ResponseWriter, r *http.Request) {
	articles, _ := h.store.News()
	respondJSON(w, http.StatusOK, views.Sentiment(articles))
}

// GetWatchlist handles GET /api/v1/watchlist
func (h *Handler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Watchlist())
}

// AddWatchlistEntry handles POST /api/v1/watchlist
func (h *Handler) AddWatchlistEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Symbol string `json:"sym"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Symbol == "" {
		http.Error(w, "sym is required", http.StatusBadRequest)
		return
	}

	entry, err := h.store.AddToWatchlist(strings.ToUpper(req.Symbol))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.persistWatchlist(r)
	respondJSON(w, http.StatusCreated, entry)
}

// RemoveWatchlistEntry handles DELETE /api/v1/watchlist/{symbol}
func (h *Handler) RemoveWatchlistEntry(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	if err := h.store.RemoveFromWatchlist(symbol); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.persistWatchlist(r)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) persistWatchlist(r *http.Request) {
	if h.saver == nil {
		return
	}
	if err := h.saver.SaveWatchlist(r.Context(), h.store.Watchlist()); err != nil {
		log.Printf("Failed to persist watchlist: %v", err)
	}
}

// GetAlerts handles GET /api/v1/alerts
func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Alerts())
}

// AddAlert handles POST /api/v1/alerts
func (h *Handler) AddAlert(w http.ResponseWriter, r *http.Request) {
	var alert models.Alert
	if err := json.NewDecoder(r.Body).Decode(&alert); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	alert.Symbol = strings.ToUpper(alert.Symbol)

	created, err := h.store.AddAlert(alert)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.persistAlerts(r)
	respondJSON(w, http.StatusCreated, created)
}

// RemoveAlert handles DELETE /api/v1/alerts/{id}
func (h *Handler) RemoveAlert(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid alert id", http.StatusBadRequest)
		return
	}

	if err := h.store.RemoveAlert(id); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	h.persistAlerts(r)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) persistAlerts(r *http.Request) {
	if h.saver == nil {
		return
	}
	if err := h.saver.SaveAlerts(r.Context(), h.store.Alerts()); err != nil {
		log.Printf("Failed to persist alerts: %v", err)
	}
}

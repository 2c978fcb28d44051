package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes
func SetupRoutes(handler *Handler) *mux.Router {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// Relay + dashboard data
	r.HandleFunc("/api/quote", handler.GetQuotes).Methods("GET")
	r.HandleFunc("/api/chart", handler.GetChart).Methods("GET")
	r.HandleFunc("/api/news", handler.GetNews).Methods("GET")
	r.HandleFunc("/api/status", handler.GetStatus).Methods("GET")
	r.HandleFunc("/api/indices", handler.GetIndices).Methods("GET")
	r.HandleFunc("/api/commodities", handler.GetCommodities).Methods("GET")

	// Portfolio
	r.HandleFunc("/api/holdings", handler.GetHoldings).Methods("GET")
	r.HandleFunc("/api/holdings", handler.ReplaceHoldings).Methods("POST")
	r.HandleFunc("/api/portfolio/sync", handler.SyncPortfolio).Methods("GET")

	// Dashboard views and user data
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/instruments", handler.GetInstruments).Methods("GET")
	api.HandleFunc("/macro", handler.GetMacro).Methods("GET")
	api.HandleFunc("/portfolio/summary", handler.GetPortfolioSummary).Methods("GET")
	api.HandleFunc("/portfolio/allocation", handler.GetAllocation).Methods("GET")
	api.HandleFunc("/portfolio/extremes", handler.GetReturnExtremes).Methods("GET")
	api.HandleFunc("/movers", handler.GetMovers).Methods("GET")
	api.HandleFunc("/heatmap", handler.GetHeatmap).Methods("GET")
	api.HandleFunc("/sentiment", handler.GetSentiment).Methods("GET")
	api.HandleFunc("/holdings", handler.UpsertHolding).Methods("POST")
	api.HandleFunc("/holdings/{symbol}", handler.DeleteHolding).Methods("DELETE")
	api.HandleFunc("/watchlist", handler.GetWatchlist).Methods("GET")
	api.HandleFunc("/watchlist", handler.AddWatchlistEntry).Methods("POST")
	api.HandleFunc("/watchlist/{symbol}", handler.RemoveWatchlistEntry).Methods("DELETE")
	api.HandleFunc("/alerts", handler.GetAlerts).Methods("GET")
	api.HandleFunc("/alerts", handler.AddAlert).Methods("POST")
	api.HandleFunc("/alerts/{id}", handler.RemoveAlert).Methods("DELETE")

	return r
}

// Package store owns the in-memory terminal state: indices, instruments,
// commodities, macro figures, news, holdings, watchlist and alerts. All access
// goes through a single mutex so concurrent timer pipelines observe
// serial-semantics: a refresh merge is applied in full before any reader sees
// it.
package store

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/nkhandel/bharat-terminal/internal/models"
	"github.com/nkhandel/bharat-terminal/internal/refdata"
)

// Data-source mode: the terminal starts simulated and flips to live after the
// first successful upstream batch fetch. It never flips back; last known live
// values persist until overwritten.
const (
	ModeSimulated = "SIMULATED"
	ModeLive      = "LIVE"
)

// Status labels shown on the data-source badge.
const (
	StatusLoading = "LOADING"
	StatusLive    = "LIVE"
	StatusSim     = "SIM"
	StatusClosed  = "CLOSED"
)

// Perturbation factors for the simulation path.
const (
	indexPerturbFactor = 0.0005
	stockPerturbFactor = 0.001
)

// Store is the mutable state snapshot. Zero value is not usable; call New.
type Store struct {
	mu sync.RWMutex

	indices     []models.Index
	instruments []models.Instrument
	commodities []models.Commodity
	macro       []models.MacroIndicator
	news        []models.NewsArticle
	holdings    []models.Holding
	watchlist   []models.WatchlistEntry
	alerts      []models.Alert

	nextAlertID int
	mode        string
	status      string

	lastQuoteUpdate time.Time
	lastNewsUpdate  time.Time
}

// New creates a Store seeded with the static reference universe.
func New() *Store {
	return &Store{
		indices:     refdata.Indices(),
		instruments: refdata.Instruments(),
		commodities: refdata.Commodities(),
		macro:       refdata.Macro(),
		news:        refdata.News(),
		nextAlertID: 1,
		mode:        ModeSimulated,
		status:      StatusLoading,
	}
}

// Indices returns a copy of the index strip.
func (s *Store) Indices() []models.Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Index, len(s.indices))
	copy(out, s.indices)
	return out
}

// Instruments returns a copy of the stock universe.
func (s *Store) Instruments() []models.Instrument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Instrument, len(s.instruments))
	copy(out, s.instruments)
	return out
}

// InstrumentBySymbol looks up a single instrument by terminal symbol.
func (s *Store) InstrumentBySymbol(symbol string) (models.Instrument, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inst := range s.instruments {
		if inst.Symbol == symbol {
			return inst, true
		}
	}
	return models.Instrument{}, false
}

// Commodities returns a copy of the currency/commodity strip.
func (s *Store) Commodities() []models.Commodity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Commodity, len(s.commodities))
	copy(out, s.commodities)
	return out
}

// Macro returns a copy of the macro indicator grid.
func (s *Store) Macro() []models.MacroIndicator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MacroIndicator, len(s.macro))
	copy(out, s.macro)
	return out
}

// News returns a copy of the current article set and its fetch timestamp.
func (s *Store) News() ([]models.NewsArticle, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.NewsArticle, len(s.news))
	copy(out, s.news)
	return out, s.lastNewsUpdate
}

// ReplaceNews swaps the article set wholesale. Empty fetches never reach here;
// the news fetcher only replaces on a non-empty result.
func (s *Store) ReplaceNews(articles []models.NewsArticle, fetchedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.news = articles
	s.lastNewsUpdate = fetchedAt
}

// UniverseSymbols returns the full upstream symbol universe in fetch order:
// indices, then commodities, then instruments.
func (s *Store) UniverseSymbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	symbols := make([]string, 0, len(s.indices)+len(s.commodities)+len(s.instruments))
	for _, idx := range s.indices {
		symbols = append(symbols, idx.UpstreamSymbol)
	}
	for _, c := range s.commodities {
		symbols = append(symbols, c.Symbol)
	}
	for _, inst := range s.instruments {
		if inst.UpstreamSymbol != "" {
			symbols = append(symbols, inst.UpstreamSymbol)
		}
	}
	return symbols
}

// Mode returns the data-source mode.
func (s *Store) Mode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// LiveMode reports whether at least one upstream fetch has succeeded.
func (s *Store) LiveMode() bool {
	return s.Mode() == ModeLive
}

// Status returns the badge label and last quote update time.
func (s *Store) Status() (string, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.lastQuoteUpdate
}

// SetStatus updates the badge label without touching prices or mode.
func (s *Store) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// Holdings returns a copy of the portfolio.
func (s *Store) Holdings() []models.Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Holding, len(s.holdings))
	copy(out, s.holdings)
	return out
}

// ReplaceHoldings swaps the whole portfolio, validating every entry first.
// Nothing is applied when any entry is invalid.
func (s *Store) ReplaceHoldings(holdings []models.Holding) error {
	for i := range holdings {
		if err := holdings[i].Validate(); err != nil {
			return fmt.Errorf("invalid holding %s: %w", holdings[i].Symbol, err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.holdings = holdings
	return nil
}

// UpsertHolding creates or replaces the holding for a symbol.
func (s *Store) UpsertHolding(h models.Holding) error {
	if err := h.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.holdings {
		if s.holdings[i].Symbol == h.Symbol {
			s.holdings[i] = h
			return nil
		}
	}
	s.holdings = append(s.holdings, h)
	return nil
}

// DeleteHolding removes the holding for a symbol.
func (s *Store) DeleteHolding(symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.holdings {
		if s.holdings[i].Symbol == symbol {
			s.holdings = append(s.holdings[:i], s.holdings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("holding not found: %s", symbol)
}

// Watchlist returns the watchlist with each entry opportunistically refreshed
// against current instrument data. The stored snapshot is left untouched.
func (s *Store) Watchlist() []models.WatchlistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WatchlistEntry, len(s.watchlist))
	for i, w := range s.watchlist {
		for _, inst := range s.instruments {
			if inst.Symbol == w.Symbol {
				w.LastPrice = inst.LastPrice
				w.Change = inst.Change
				w.ChangePct = inst.ChangePct
				break
			}
		}
		out[i] = w
	}
	return out
}

// AddToWatchlist snapshots the instrument's current price fields into a new
// watchlist entry. Unknown symbols and duplicates are rejected.
func (s *Store) AddToWatchlist(symbol string) (models.WatchlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.watchlist {
		if w.Symbol == symbol {
			return models.WatchlistEntry{}, fmt.Errorf("%s already in watchlist", symbol)
		}
	}
	for _, inst := range s.instruments {
		if inst.Symbol == symbol {
			entry := models.WatchlistEntry{
				Symbol:    inst.Symbol,
				Sector:    inst.Sector,
				LastPrice: inst.LastPrice,
				Change:    inst.Change,
				ChangePct: inst.ChangePct,
				High52:    inst.High52,
				Low52:     inst.Low52,
				AddedAt:   time.Now(),
			}
			s.watchlist = append(s.watchlist, entry)
			return entry, nil
		}
	}
	return models.WatchlistEntry{}, fmt.Errorf("symbol not found: %s", symbol)
}

// ReplaceWatchlist restores a persisted watchlist at boot.
func (s *Store) ReplaceWatchlist(entries []models.WatchlistEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchlist = entries
}

// RemoveFromWatchlist drops a symbol from the watchlist.
func (s *Store) RemoveFromWatchlist(symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.watchlist {
		if s.watchlist[i].Symbol == symbol {
			s.watchlist = append(s.watchlist[:i], s.watchlist[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s not in watchlist", symbol)
}

// Alerts returns a copy of the configured alerts.
func (s *Store) Alerts() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// AddAlert validates and stores a new alert, assigning its ID.
func (s *Store) AddAlert(a models.Alert) (models.Alert, error) {
	if err := a.Validate(); err != nil {
		return models.Alert{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.nextAlertID
	s.nextAlertID++
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	s.alerts = append(s.alerts, a)
	return a, nil
}

// ReplaceAlerts restores persisted alerts at boot.
func (s *Store) ReplaceAlerts(alerts []models.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = alerts
	next := 1
	for _, a := range alerts {
		if a.ID >= next {
			next = a.ID + 1
		}
	}
	s.nextAlertID = next
}

// RemoveAlert deletes an alert by ID.
func (s *Store) RemoveAlert(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("alert not found: %d", id)
}

// Perturb applies the simulation path: a small multiplicative factor
// 1+(r-0.49)*f to index and instrument prices, keeping chg/chgP consistent
// via the locally tracked previous close. The 0.49 offset biases drift very
// slightly downward. Once live mode has been entered the prices are never
// touched again; Perturb reports whether it changed anything.
func (s *Store) Perturb(rng *rand.Rand) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeLive {
		return false
	}

	for i := range s.indices {
		s.indices[i].Value = perturb(rng, s.indices[i].Value, indexPerturbFactor)
	}
	for i := range s.instruments {
		inst := &s.instruments[i]
		prev := inst.LastPrice - inst.Change
		inst.LastPrice = perturb(rng, inst.LastPrice, stockPerturbFactor)
		inst.Change = inst.LastPrice - prev
		if prev != 0 {
			inst.ChangePct = inst.Change / prev * 100
		}
	}
	return true
}

func perturb(rng *rand.Rand, price, factor float64) float64 {
	return price * (1 + (rng.Float64()-0.49)*factor)
}

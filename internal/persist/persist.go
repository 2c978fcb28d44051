// Package persist layers the two user-data stores: PostgreSQL as the primary
// backend and the Redis localstore as fallback. Saves go to both; a backend
// failure degrades to the fallback instead of losing the write. Loads at boot
// prefer the backend, then the fallback, then empty.
package persist

import (
	"context"
	"fmt"
	"log"

	"github.com/nkhandel/bharat-terminal/internal/database"
	"github.com/nkhandel/bharat-terminal/internal/localstore"
	"github.com/nkhandel/bharat-terminal/internal/models"
)

// Saver persists user data. Either store may be nil; a save fails only when
// no configured store accepted it.
type Saver struct {
	db    *database.DB
	local *localstore.Client
}

func NewSaver(db *database.DB, local *localstore.Client) *Saver {
	return &Saver{db: db, local: local}
}

// SaveHoldings persists the full holdings snapshot.
func (s *Saver) SaveHoldings(ctx context.Context, holdings []models.Holding) error {
	ptrs := make([]*models.Holding, len(holdings))
	for i := range holdings {
		ptrs[i] = &holdings[i]
	}

	var dbErr error
	if s.db != nil {
		if dbErr = s.db.ReplaceAllHoldings(ptrs); dbErr != nil {
			log.Printf("Backend holdings save failed, falling back to localstore: %v", dbErr)
		}
	}

	if s.local != nil {
		if err := s.local.SaveHoldings(ctx, holdings); err != nil {
			if dbErr != nil || s.db == nil {
				return fmt.Errorf("failed to save holdings: %w", err)
			}
			log.Printf("Localstore holdings save failed: %v", err)
		}
		return nil
	}

	if dbErr != nil {
		return fmt.Errorf("failed to save holdings: %w", dbErr)
	}
	if s.db == nil {
		return fmt.Errorf("no store configured for holdings")
	}
	return nil
}

// SaveWatchlist persists the full watchlist.
func (s *Saver) SaveWatchlist(ctx context.Context, entries []models.WatchlistEntry) error {
	ptrs := make([]*models.WatchlistEntry, len(entries))
	for i := range entries {
		ptrs[i] = &entries[i]
	}

	var dbErr error
	if s.db != nil {
		if dbErr = s.db.ReplaceAllWatchlist(ptrs); dbErr != nil {
			log.Printf("Backend watchlist save failed, falling back to localstore: %v", dbErr)
		}
	}

	if s.local != nil {
		if err := s.local.SaveWatchlist(ctx, entries); err != nil {
			if dbErr != nil || s.db == nil {
				return fmt.Errorf("failed to save watchlist: %w", err)
			}
			log.Printf("Localstore watchlist save failed: %v", err)
		}
		return nil
	}

	if dbErr != nil {
		return fmt.Errorf("failed to save watchlist: %w", dbErr)
	}
	if s.db == nil {
		return fmt.Errorf("no store configured for watchlist")
	}
	return nil
}

// SaveAlerts persists the full alert set. Alert ids are assigned by the
// in-memory store and written through verbatim, so the backend is diffed by
// id instead of rewritten wholesale and alert_history references stay valid.
func (s *Saver) SaveAlerts(ctx context.Context, alerts []models.Alert) error {
	var dbErr error
	if s.db != nil {
		if dbErr = s.replaceAlertsDB(alerts); dbErr != nil {
			log.Printf("Backend alerts save failed, falling back to localstore: %v", dbErr)
		}
	}

	if s.local != nil {
		if err := s.local.SaveAlerts(ctx, alerts); err != nil {
			if dbErr != nil || s.db == nil {
				return fmt.Errorf("failed to save alerts: %w", err)
			}
			log.Printf("Localstore alerts save failed: %v", err)
		}
		return nil
	}

	if dbErr != nil {
		return fmt.Errorf("failed to save alerts: %w", dbErr)
	}
	if s.db == nil {
		return fmt.Errorf("no store configured for alerts")
	}
	return nil
}

func (s *Saver) replaceAlertsDB(alerts []models.Alert) error {
	existing, err := s.db.GetAllAlerts()
	if err != nil {
		return err
	}
	keep := make(map[int]bool, len(alerts))
	for _, a := range alerts {
		keep[a.ID] = true
	}
	for _, e := range existing {
		if !keep[e.ID] {
			if err := s.db.DeleteAlert(e.ID); err != nil {
				return err
			}
		}
	}
	known := make(map[int]bool, len(existing))
	for _, e := range existing {
		known[e.ID] = true
	}
	for i := range alerts {
		if !known[alerts[i].ID] {
			if err := s.db.CreateAlert(&alerts[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadedState is the persisted user data restored at boot.
type LoadedState struct {
	Holdings  []models.Holding
	Watchlist []models.WatchlistEntry
	Alerts    []models.Alert
}

// Load restores user data, preferring the backend over the localstore.
func (s *Saver) Load(ctx context.Context) LoadedState {
	var state LoadedState

	if s.db != nil {
		loaded := true
		if holdings, err := s.db.GetAllHoldings(); err == nil {
			for _, h := range holdings {
				state.Holdings = append(state.Holdings, *h)
			}
		} else {
			log.Printf("Failed to load holdings from backend: %v", err)
			loaded = false
		}
		if entries, err := s.db.GetAllWatchlist(); err == nil {
			for _, w := range entries {
				state.Watchlist = append(state.Watchlist, *w)
			}
		} else {
			log.Printf("Failed to load watchlist from backend: %v", err)
			loaded = false
		}
		if alerts, err := s.db.GetAllAlerts(); err == nil {
			for _, a := range alerts {
				state.Alerts = append(state.Alerts, *a)
			}
		} else {
			log.Printf("Failed to load alerts from backend: %v", err)
			loaded = false
		}
		if loaded {
			return state
		}
	}

	if s.local != nil {
		if holdings, err := s.local.LoadHoldings(ctx); err == nil && len(state.Holdings) == 0 {
			state.Holdings = holdings
		}
		if entries, err := s.local.LoadWatchlist(ctx); err == nil && len(state.Watchlist) == 0 {
			state.Watchlist = entries
		}
		if alerts, err := s.local.LoadAlerts(ctx); err == nil && len(state.Alerts) == 0 {
			state.Alerts = alerts
		}
	}

	return state
}

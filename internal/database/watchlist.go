package database

import (
	"fmt"
	"time"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

// CreateWatchlistEntry adds a symbol to the watchlist, refreshing the
// snapshot fields if it already exists
func (db *DB) CreateWatchlistEntry(w *models.WatchlistEntry) error {
	query := `
		INSERT INTO watchlist (
			symbol, sector, last_price, change, change_pct, high_52w, low_52w, added_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (symbol) DO UPDATE SET
			sector = EXCLUDED.sector,
			last_price = EXCLUDED.last_price,
			change = EXCLUDED.change,
			change_pct = EXCLUDED.change_pct,
			high_52w = EXCLUDED.high_52w,
			low_52w = EXCLUDED.low_52w
	`
	if w.AddedAt.IsZero() {
		w.AddedAt = time.Now()
	}

	_, err := db.conn.Exec(query,
		w.Symbol, w.Sector, w.LastPrice, w.Change, w.ChangePct,
		w.High52, w.Low52, w.AddedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create watchlist entry: %w", err)
	}
	return nil
}

// GetAllWatchlist retrieves the watchlist in insertion order
func (db *DB) GetAllWatchlist() ([]*models.WatchlistEntry, error) {
	query := `
		SELECT symbol, sector, last_price, change, change_pct, high_52w, low_52w, added_at
		FROM watchlist
		ORDER BY added_at ASC
	`
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist: %w", err)
	}
	defer rows.Close()

	var entries []*models.WatchlistEntry
	for rows.Next() {
		var w models.WatchlistEntry
		if err := rows.Scan(
			&w.Symbol, &w.Sector, &w.LastPrice, &w.Change, &w.ChangePct,
			&w.High52, &w.Low52, &w.AddedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist entry: %w", err)
		}
		entries = append(entries, &w)
	}

	return entries, nil
}

// ReplaceAllWatchlist atomically replaces the watchlist with the given set
func (db *DB) ReplaceAllWatchlist(entries []*models.WatchlistEntry) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM watchlist`); err != nil {
		return fmt.Errorf("failed to delete existing watchlist: %w", err)
	}

	query := `
		INSERT INTO watchlist (
			symbol, sector, last_price, change, change_pct, high_52w, low_52w, added_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, w := range entries {
		addedAt := w.AddedAt
		if addedAt.IsZero() {
			addedAt = time.Now()
		}
		_, err := tx.Exec(query,
			w.Symbol, w.Sector, w.LastPrice, w.Change, w.ChangePct,
			w.High52, w.Low52, addedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert watchlist entry %s: %w", w.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteWatchlistEntry removes a symbol from the watchlist
func (db *DB) DeleteWatchlistEntry(symbol string) error {
	result, err := db.conn.Exec(`DELETE FROM watchlist WHERE symbol = $1`, symbol)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist entry: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("watchlist entry not found: %s", symbol)
	}
	return nil
}

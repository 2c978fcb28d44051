package database

import (
	"fmt"
	"time"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

// ReplaceAllHoldings atomically replaces the holdings table with the given
// snapshot. Used after each refresh cycle and when a broker snapshot arrives.
func (db *DB) ReplaceAllHoldings(holdings []*models.Holding) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM holdings`); err != nil {
		return fmt.Errorf("failed to delete existing holdings: %w", err)
	}

	query := `
		INSERT INTO holdings (
			symbol, sector, quantity, avg_price, last_price, day_change_pct,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	now := time.Now()
	for _, h := range holdings {
		_, err := tx.Exec(query,
			h.Symbol, h.Sector, h.Quantity, h.AvgPrice, h.LastPrice,
			h.DayChangePct, now, now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert holding %s: %w", h.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetAllHoldings retrieves every holding ordered by symbol
func (db *DB) GetAllHoldings() ([]*models.Holding, error) {
	query := `
		SELECT symbol, sector, quantity, avg_price, last_price, day_change_pct
		FROM holdings
		ORDER BY symbol ASC
	`
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	var holdings []*models.Holding
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(
			&h.Symbol, &h.Sector, &h.Quantity, &h.AvgPrice, &h.LastPrice,
			&h.DayChangePct,
		); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		holdings = append(holdings, &h)
	}

	return holdings, nil
}

// UpsertHolding inserts or updates a single holding by symbol
func (db *DB) UpsertHolding(h *models.Holding) error {
	query := `
		INSERT INTO holdings (
			symbol, sector, quantity, avg_price, last_price, day_change_pct,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (symbol) DO UPDATE SET
			sector = EXCLUDED.sector,
			quantity = EXCLUDED.quantity,
			avg_price = EXCLUDED.avg_price,
			last_price = EXCLUDED.last_price,
			day_change_pct = EXCLUDED.day_change_pct,
			updated_at = EXCLUDED.updated_at
	`
	_, err := db.conn.Exec(query,
		h.Symbol, h.Sector, h.Quantity, h.AvgPrice, h.LastPrice,
		h.DayChangePct, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert holding %s: %w", h.Symbol, err)
	}
	return nil
}

// DeleteHolding removes a holding by symbol
func (db *DB) DeleteHolding(symbol string) error {
	result, err := db.conn.Exec(`DELETE FROM holdings WHERE symbol = $1`, symbol)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("holding not found: %s", symbol)
	}
	return nil
}

package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

// CreateAlert inserts a price alert under its caller-assigned id. Ids are
// allocated by the in-memory store, never by the database, so a row always
// matches its in-memory alert and any alert_history references to it.
func (db *DB) CreateAlert(a *models.Alert) error {
	query := `
		INSERT INTO alerts (id, symbol, price, direction, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET symbol = EXCLUDED.symbol,
		    price = EXCLUDED.price,
		    direction = EXCLUDED.direction
	`
	if a.ID <= 0 {
		return fmt.Errorf("alert id must be assigned before saving")
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	if _, err := db.conn.Exec(query, a.ID, a.Symbol, a.Price, a.Direction, a.CreatedAt); err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetAllAlerts retrieves every alert ordered by creation time
func (db *DB) GetAllAlerts() ([]*models.Alert, error) {
	query := `
		SELECT id, symbol, price, direction, created_at
		FROM alerts
		ORDER BY created_at ASC
	`
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*models.Alert
	for rows.Next() {
		var a models.Alert
		if err := rows.Scan(&a.ID, &a.Symbol, &a.Price, &a.Direction, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, &a)
	}

	return alerts, nil
}

// DeleteAlert removes an alert by ID
func (db *DB) DeleteAlert(id int) error {
	result, err := db.conn.Exec(`DELETE FROM alerts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("alert not found: %d", id)
	}
	return nil
}

// --- Alert History ---

// CreateAlertHistory records a triggered alert
func (db *DB) CreateAlertHistory(h *models.AlertHistory) error {
	query := `
		INSERT INTO alert_history (
			alert_id, symbol, direction, threshold, price, message, triggered_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var alertID interface{}
	if h.AlertID > 0 {
		alertID = h.AlertID
	}
	if h.TriggeredAt.IsZero() {
		h.TriggeredAt = time.Now()
	}

	err := db.conn.QueryRow(query,
		alertID, h.Symbol, h.Direction, h.Threshold, h.Price, h.Message, h.TriggeredAt,
	).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("failed to create alert history: %w", err)
	}
	return nil
}

// GetRecentAlertHistory retrieves recent firings across all symbols
func (db *DB) GetRecentAlertHistory(limit int) ([]*models.AlertHistory, error) {
	query := `
		SELECT id, alert_id, symbol, direction, threshold, price, message, triggered_at
		FROM alert_history
		ORDER BY triggered_at DESC
		LIMIT $1
	`
	rows, err := db.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query alert history: %w", err)
	}
	defer rows.Close()

	var history []*models.AlertHistory
	for rows.Next() {
		var h models.AlertHistory
		var alertID sql.NullInt64
		var message sql.NullString

		if err := rows.Scan(
			&h.ID, &alertID, &h.Symbol, &h.Direction, &h.Threshold,
			&h.Price, &message, &h.TriggeredAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan alert history: %w", err)
		}

		if alertID.Valid {
			h.AlertID = int(alertID.Int64)
		}
		if message.Valid {
			h.Message = message.String
		}

		history = append(history, &h)
	}

	return history, nil
}

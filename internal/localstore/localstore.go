// Package localstore is the Redis-backed key-value fallback for user data.
// Each collection is stored whole as one JSON array under a fixed key, so a
// save always replaces the full snapshot.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nkhandel/bharat-terminal/internal/models"
)

const (
	holdingsKey  = "bt:holdings"
	watchlistKey = "bt:watchlist"
	alertsKey    = "bt:alerts"
)

// Client wraps a Redis connection for user-data persistence.
type Client struct {
	rdb *redis.Client
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// SaveHoldings stores the full holdings set.
func (c *Client) SaveHoldings(ctx context.Context, holdings []models.Holding) error {
	return c.saveJSON(ctx, holdingsKey, holdings)
}

// LoadHoldings retrieves the holdings set. A missing key yields an empty
// slice, not an error.
func (c *Client) LoadHoldings(ctx context.Context) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := c.loadJSON(ctx, holdingsKey, &holdings); err != nil {
		return nil, err
	}
	return holdings, nil
}

// SaveWatchlist stores the full watchlist.
func (c *Client) SaveWatchlist(ctx context.Context, entries []models.WatchlistEntry) error {
	return c.saveJSON(ctx, watchlistKey, entries)
}

// LoadWatchlist retrieves the watchlist.
func (c *Client) LoadWatchlist(ctx context.Context) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	if err := c.loadJSON(ctx, watchlistKey, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SaveAlerts stores the full alert set.
func (c *Client) SaveAlerts(ctx context.Context, alerts []models.Alert) error {
	return c.saveJSON(ctx, alertsKey, alerts)
}

// LoadAlerts retrieves the alert set.
func (c *Client) LoadAlerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := c.loadJSON(ctx, alertsKey, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (c *Client) saveJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (c *Client) loadJSON(ctx context.Context, key string, v interface{}) error {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

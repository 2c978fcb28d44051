// Package scheduler drives the terminal's refresh pipeline: an adaptive
// quote poller whose cadence follows the market clock, plus the short-period
// simulation ticker that animates prices until live data arrives.
package scheduler

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/nkhandel/bharat-terminal/internal/models"
	"github.com/nkhandel/bharat-terminal/internal/quotes"
	"github.com/nkhandel/bharat-terminal/internal/store"
)

// Cadence modes for the refresh timer.
const (
	CadenceFast = "FAST"
	CadenceSlow = "SLOW"
)

const (
	defaultFastInterval = 30 * time.Second
	defaultSlowInterval = 300 * time.Second
	defaultSimInterval  = 4 * time.Second
)

// MarketClock reports whether the exchange is trading right now.
type MarketClock interface {
	IsOpenNow() bool
}

// Quoter fetches quote records for a symbol universe.
type Quoter interface {
	FetchAll(ctx context.Context, symbols []string) ([]quotes.QuoteRecord, error)
}

// Persister saves the refreshed holdings after each successful merge.
type Persister interface {
	SaveHoldings(ctx context.Context, holdings []models.Holding) error
}

// EventPublisher publishes refresh-cycle outcomes to the event stream.
type EventPublisher interface {
	PublishRefreshCompleted(ctx context.Context, status string, count int) error
	PublishRefreshFailed(ctx context.Context, message string) error
}

// Scheduler owns the refresh and simulation timers. Exactly one refresh timer
// exists at any point; cadence changes reset it rather than stacking a second
// one.
type Scheduler struct {
	clock     MarketClock
	quoter    Quoter
	store     *store.Store
	persister Persister
	publisher EventPublisher

	fastInterval time.Duration
	slowInterval time.Duration
	simInterval  time.Duration
	rng          *rand.Rand
}

// New creates a scheduler. persister and publisher may be nil.
func New(clock MarketClock, quoter Quoter, st *store.Store, persister Persister, publisher EventPublisher) *Scheduler {
	return &Scheduler{
		clock:        clock,
		quoter:       quoter,
		store:        st,
		persister:    persister,
		publisher:    publisher,
		fastInterval: defaultFastInterval,
		slowInterval: defaultSlowInterval,
		simInterval:  defaultSimInterval,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Cadence returns the cadence mode implied by the market clock right now.
func (s *Scheduler) Cadence() string {
	if s.clock.IsOpenNow() {
		return CadenceFast
	}
	return CadenceSlow
}

func (s *Scheduler) interval(cadence string) time.Duration {
	if cadence == CadenceFast {
		return s.fastInterval
	}
	return s.slowInterval
}

// Run polls quotes until ctx is cancelled. The first refresh happens
// immediately; after every tick the cadence is re-evaluated against the
// market clock and the timer restarted if it changed.
func (s *Scheduler) Run(ctx context.Context) {
	s.RefreshOnce(ctx)

	cadence := s.Cadence()
	timer := time.NewTimer(s.interval(cadence))
	defer timer.Stop()

	log.Printf("Refresh scheduler started in %s cadence", cadence)

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.RefreshOnce(ctx)

			next := s.Cadence()
			if next != cadence {
				log.Printf("Refresh cadence %s -> %s", cadence, next)
				cadence = next
			}
			timer.Reset(s.interval(cadence))
		}
	}
}

// RefreshOnce runs one fetch cycle under the market-hours policy:
// when the market is closed no network call is made at all; the status badge
// shows CLOSED and the last data (live snapshot or simulated state) stands.
func (s *Scheduler) RefreshOnce(ctx context.Context) {
	if !s.clock.IsOpenNow() {
		s.store.SetStatus(store.StatusClosed)
		return
	}

	records, err := s.quoter.FetchAll(ctx, s.store.UniverseSymbols())
	if err != nil {
		// Store untouched: previously fetched live values remain displayed.
		s.store.SetStatus(store.StatusSim)
		log.Printf("Quote refresh failed: %v", err)
		if s.publisher != nil {
			if perr := s.publisher.PublishRefreshFailed(ctx, err.Error()); perr != nil {
				log.Printf("Failed to publish refresh failure: %v", perr)
			}
		}
		return
	}

	res := s.store.ApplyQuotes(records, time.Now())
	updated := res.IndicesUpdated + res.InstrumentsUpdated + res.CommoditiesUpdated
	log.Printf("Quote refresh applied: %d indices, %d instruments, %d commodities",
		res.IndicesUpdated, res.InstrumentsUpdated, res.CommoditiesUpdated)

	if s.persister != nil && len(res.Holdings) > 0 {
		if err := s.persister.SaveHoldings(ctx, res.Holdings); err != nil {
			// Surfaced, never rolled back: in-memory holdings stay refreshed.
			log.Printf("Failed to persist refreshed holdings: %v", err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishRefreshCompleted(ctx, store.StatusLive, updated); err != nil {
			log.Printf("Failed to publish refresh event: %v", err)
		}
	}
}

// RunSimulation perturbs prices on a short fixed period until ctx is
// cancelled. Once live mode is entered the store refuses the perturbation and
// prices are never touched again.
func (s *Scheduler) RunSimulation(ctx context.Context) {
	ticker := time.NewTicker(s.simInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.store.Perturb(s.rng)
		}
	}
}

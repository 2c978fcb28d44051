package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nkhandel/bharat-terminal/internal/alerts"
	"github.com/nkhandel/bharat-terminal/internal/api"
	"github.com/nkhandel/bharat-terminal/internal/broker"
	"github.com/nkhandel/bharat-terminal/internal/config"
	"github.com/nkhandel/bharat-terminal/internal/database"
	"github.com/nkhandel/bharat-terminal/internal/kafka"
	"github.com/nkhandel/bharat-terminal/internal/localstore"
	"github.com/nkhandel/bharat-terminal/internal/marketclock"
	"github.com/nkhandel/bharat-terminal/internal/news"
	"github.com/nkhandel/bharat-terminal/internal/persist"
	"github.com/nkhandel/bharat-terminal/internal/quotes"
	"github.com/nkhandel/bharat-terminal/internal/scheduler"
	"github.com/nkhandel/bharat-terminal/internal/store"
)

func main() {
	cfg := config.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	clock, err := marketclock.New(cfg.Market.Timezone)
	if err != nil {
		log.Fatalf("Failed to load market timezone: %v", err)
	}

	st := store.New()

	// Persistence: Postgres primary, Redis localstore fallback. Either may be
	// unavailable; the terminal still serves from memory.
	var db *database.DB
	if db, err = database.New(cfg.Database.ConnectionString()); err != nil {
		log.Printf("PostgreSQL unavailable, continuing without backend store: %v", err)
		db = nil
	} else {
		defer db.Close()
	}

	var local *localstore.Client
	if local, err = localstore.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Printf("Redis unavailable, continuing without localstore: %v", err)
		local = nil
	} else {
		defer local.Close()
	}

	saver := persist.NewSaver(db, local)
	restoreUserData(ctx, saver, st)

	var producer *kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.EventTopic)
		defer producer.Close()
	}

	var sources []quotes.Source
	for i, base := range cfg.Market.QuoteSources {
		sources = append(sources, quotes.Source{Name: quoteSourceName(i), BaseURL: base})
	}
	quoteClient := quotes.NewClient(sources)

	var refreshPublisher scheduler.EventPublisher
	var alertPublisher alerts.EventPublisher
	if producer != nil {
		refreshPublisher = producer
		alertPublisher = producer
	}
	var history alerts.HistoryRepository
	if db != nil {
		history = db
	}

	sched := scheduler.New(clock, quoteClient, st, saver, refreshPublisher)
	go sched.Run(ctx)
	go sched.RunSimulation(ctx)

	evaluator := alerts.NewEvaluator(st, alertPublisher, history)
	go evaluator.Run(ctx)

	if len(cfg.Market.NewsSources) > 0 {
		fetcher := news.NewFetcher(cfg.Market.NewsSources, st)
		go fetcher.Run(ctx)
	}

	if len(cfg.Kafka.Brokers) > 0 {
		sink := persist.NewHoldingsSink(st, saver)
		consumer := kafka.NewHoldingsConsumer(cfg.Kafka.Brokers, cfg.Kafka.HoldingsTopic, cfg.Kafka.GroupID, sink)
		go func() {
			if err := consumer.Start(ctx); err != nil {
				log.Printf("Holdings consumer stopped: %v", err)
			}
		}()
	}

	var brokerClient *broker.Client
	if cfg.Broker.BaseURL != "" {
		brokerClient = broker.NewClient(cfg.Broker.BaseURL, cfg.Broker.AuthToken)
	}

	handler := api.NewHandler(st, saver, producer, brokerClient, cfg.Market.ChartBaseURL)
	router := api.SetupRoutes(handler)

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Bharat Terminal listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}

// restoreUserData loads persisted holdings, watchlist and alerts into the
// store at boot.
func restoreUserData(ctx context.Context, saver *persist.Saver, st *store.Store) {
	state := saver.Load(ctx)

	if len(state.Holdings) > 0 {
		if err := st.ReplaceHoldings(state.Holdings); err != nil {
			log.Printf("Failed to restore holdings: %v", err)
		} else {
			log.Printf("Restored %d holdings", len(state.Holdings))
		}
	}
	if len(state.Watchlist) > 0 {
		st.ReplaceWatchlist(state.Watchlist)
		log.Printf("Restored %d watchlist entries", len(state.Watchlist))
	}
	if len(state.Alerts) > 0 {
		st.ReplaceAlerts(state.Alerts)
		log.Printf("Restored %d alerts", len(state.Alerts))
	}
}

func quoteSourceName(i int) string {
	names := []string{"primary", "secondary", "tertiary"}
	if i < len(names) {
		return names[i]
	}
	return "fallback"
}

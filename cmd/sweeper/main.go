package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ordimint/mint-engine/internal/adapter"
	"github.com/ordimint/mint-engine/internal/config"
	"github.com/ordimint/mint-engine/internal/eligibility"
	"github.com/ordimint/mint-engine/internal/logger"
	"github.com/ordimint/mint-engine/internal/order"
	"github.com/ordimint/mint-engine/internal/payment"
	"github.com/ordimint/mint-engine/internal/progression"
	"github.com/ordimint/mint-engine/internal/providers/jetstream"
	"github.com/ordimint/mint-engine/internal/providers/mempool"
	"github.com/ordimint/mint-engine/internal/ratelimit"
	"github.com/ordimint/mint-engine/internal/store"
	"github.com/ordimint/mint-engine/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.Info("Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Mempool.HTTPTimeout)

	// Initialize mempool indexer client
	limiter := ratelimit.NewLimiter(cfg.Mempool.RateLimitRPS, cfg.Mempool.RateLimitBurst)
	txSource := mempool.NewClient(cfg.Mempool.APIURL, httpClient, limiter, clock)

	// Connect to NATS JetStream for sale events
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream())
	if err != nil {
		logger.Fatal("Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.Info("Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	// Wire the sale engine components
	resolver := eligibility.NewResolver(dataStore)
	orders := order.NewService(dataStore, resolver, clock, cfg.Sale.OrderTTL)
	verifier := payment.NewVerifier(dataStore, txSource, publisher, clock)
	cooldowns := progression.NewStoreCooldowns(dataStore, cfg.Sale.DefaultCooldown)
	controller := progression.NewController(dataStore, cooldowns, publisher, clock, cfg.Sale.PriorityBuffer)

	// Initialize sweepers
	sweepers := []sweeper.Sweeper{
		sweeper.NewPaymentSweeper(&sweeper.PaymentSweeperConfig{
			BatchSize:      cfg.PaymentSweeper.BatchSize,
			WorkerPoolSize: cfg.PaymentSweeper.Worker.PoolSize,
			PollInterval:   cfg.PaymentSweeper.Interval,
		}, dataStore, verifier, clock),
		sweeper.NewProgressionSweeper(&sweeper.ProgressionSweeperConfig{
			TickInterval: cfg.CooldownInterval,
		}, controller, clock),
		sweeper.NewExpirySweeper(&sweeper.ExpirySweeperConfig{
			SweepInterval: cfg.ExpiryInterval,
		}, orders, clock),
	}

	// Start the sweepers, each in its own goroutine
	errChan := make(chan error, len(sweepers))
	for _, sw := range sweepers {
		go func() {
			logger.Info("Starting sweeper loop", zap.String("sweeper", sw.Name()))
			if err := sw.Start(ctx); err != nil {
				errChan <- fmt.Errorf("%s: %w", sw.Name(), err)
			}
		}()
	}

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.Error(err)
	}

	// Cancel context to stop the sweepers
	cancel()

	// Give the sweepers time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	for _, sw := range sweepers {
		if err := sw.Stop(shutdownCtx); err != nil {
			logger.Error(err, zap.String("sweeper", sw.Name()))
		}
	}

	logger.Info("Sweeper stopped")
}

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
	"github.com/ordimint/mint-engine/internal/api/server"
	"github.com/ordimint/mint-engine/internal/config"
	"github.com/ordimint/mint-engine/internal/logger"
	"github.com/ordimint/mint-engine/internal/providers/jetstream"
	"github.com/ordimint/mint-engine/internal/providers/mempool"
	"github.com/ordimint/mint-engine/internal/ratelimit"
	"github.com/ordimint/mint-engine/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	migrate    = flag.Bool("migrate", false, "Run database migrations and exit")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting API server")

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

	if *migrate {
		if err := store.AutoMigrate(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		logger.Info("Migrations applied")
		return
	}

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

	// Create API server
	srv := server.New(server.Config{
		Debug:           cfg.Debug,
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:    time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:     time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AdminKeys:       cfg.Auth.AdminKeys,
		JWTSecret:       cfg.Auth.JWTSecret,
		DefaultCooldown: cfg.Sale.DefaultCooldown,
		PriorityBuffer:  cfg.Sale.PriorityBuffer,
		OrderTTL:        cfg.Sale.OrderTTL,
	}, dataStore, txSource, publisher, clock)

	// Start the server in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.Error(err)
	}

	// Give the server time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err)
	}

	logger.Info("API server stopped")
}

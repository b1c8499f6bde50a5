package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ordimint/mint-engine/internal/adapter"
	"github.com/ordimint/mint-engine/internal/api/middleware"
	"github.com/ordimint/mint-engine/internal/api/rest"
	"github.com/ordimint/mint-engine/internal/eligibility"
	"github.com/ordimint/mint-engine/internal/logger"
	"github.com/ordimint/mint-engine/internal/messaging"
	"github.com/ordimint/mint-engine/internal/order"
	"github.com/ordimint/mint-engine/internal/payment"
	"github.com/ordimint/mint-engine/internal/progression"
	"github.com/ordimint/mint-engine/internal/reconcile"
	"github.com/ordimint/mint-engine/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug           bool
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	AdminKeys       []string
	JWTSecret       string
	DefaultCooldown time.Duration
	PriorityBuffer  time.Duration
	OrderTTL        time.Duration
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	txSource   payment.TxSource
	publisher  messaging.Publisher
	clock      adapter.Clock
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, st store.Store, txSource payment.TxSource, publisher messaging.Publisher, clock adapter.Clock) *Server {
	return &Server{
		config:    cfg,
		store:     st,
		txSource:  txSource,
		publisher: publisher,
		clock:     clock,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Wire the sale engine components
	resolver := eligibility.NewResolver(s.store)
	orders := order.NewService(s.store, resolver, s.clock, s.config.OrderTTL)
	verifier := payment.NewVerifier(s.store, s.txSource, s.publisher, s.clock)
	cooldowns := progression.NewStoreCooldowns(s.store, s.config.DefaultCooldown)
	controller := progression.NewController(s.store, cooldowns, s.publisher, s.clock, s.config.PriorityBuffer)
	reconciler := reconcile.NewReconciler(s.store, s.clock)

	authCfg := middleware.AuthConfig{
		AdminKeys: s.config.AdminKeys,
		JWTSecret: s.config.JWTSecret,
	}

	// Create REST handler
	restHandler := rest.NewHandler(s.store, orders, resolver, verifier, controller, reconciler, authCfg)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler, authCfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}

package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ordimint/mint-engine/internal/adapter"
	"github.com/ordimint/mint-engine/internal/logger"
	"github.com/ordimint/mint-engine/internal/order"
)

// ExpirySweeperConfig holds configuration for the order expiry sweeper
type ExpirySweeperConfig struct {
	SweepInterval time.Duration // Time between expiry sweeps
}

// expirySweeper times out pending orders that have outlived their TTL so
// their payment addresses do not stay reserved forever.
type expirySweeper struct {
	config    *ExpirySweeperConfig
	orders    *order.Service
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewExpirySweeper creates a new order expiry sweeper
func NewExpirySweeper(config *ExpirySweeperConfig, orders *order.Service, clock adapter.Clock) Sweeper {
	return &expirySweeper{
		config:    config,
		orders:    orders,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *expirySweeper) Name() string {
	return "expiry-sweeper"
}

// Start begins the sweeper's main loop
func (s *expirySweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.Info("Starting expiry sweeper",
		zap.Duration("sweep_interval", s.config.SweepInterval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Expiry sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.Info("Expiry sweeper stop requested")
			return nil
		case <-s.clock.After(s.config.SweepInterval):
			if _, err := s.orders.ExpireStale(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.Error(err)
				}
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *expirySweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.Info("Stopping expiry sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.Info("Expiry sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.Warn("Expiry sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/ordimint/mint-engine/internal/adapter"
	"github.com/ordimint/mint-engine/internal/domain"
	"github.com/ordimint/mint-engine/internal/logger"
	"github.com/ordimint/mint-engine/internal/payment"
	"github.com/ordimint/mint-engine/internal/store"
)

// PaymentSweeperConfig holds configuration for the payment sweeper
type PaymentSweeperConfig struct {
	BatchSize      int           // Pending orders to verify per cycle
	WorkerPoolSize int           // Concurrent verifications
	PollInterval   time.Duration // Time to sleep between cycles
}

// paymentSweeper polls pending orders and runs payment verification against
// the mempool indexer. Verification is idempotent, so overlapping checks of
// the same order across cycles are harmless.
type paymentSweeper struct {
	config    *PaymentSweeperConfig
	store     store.Store
	verifier  *payment.Verifier
	pool      pond.Pool
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewPaymentSweeper creates a new payment sweeper
func NewPaymentSweeper(
	config *PaymentSweeperConfig,
	st store.Store,
	verifier *payment.Verifier,
	clock adapter.Clock,
) Sweeper {
	return &paymentSweeper{
		config:    config,
		store:     st,
		verifier:  verifier,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *paymentSweeper) Name() string {
	return "payment-sweeper"
}

// Start begins the sweeper's main loop
func (s *paymentSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.Info("Starting payment sweeper",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Duration("poll_interval", s.config.PollInterval),
	)

	// Create worker pool
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Payment sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.Info("Payment sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.Error(err)
				}
			}
			if !s.sleep(ctx, s.config.PollInterval) {
				s.cleanup()
				return nil
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *paymentSweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *paymentSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.Info("Stopping payment sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.Info("Payment sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.Warn("Payment sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle verifies one batch of pending orders
func (s *paymentSweeper) runSweepCycle(ctx context.Context) error {
	orders, err := s.store.ListOrdersByStatus(ctx, domain.OrderStatusPending, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list pending orders: %w", err)
	}

	if len(orders) == 0 {
		return nil
	}

	logger.Debug("Found pending orders to verify", zap.Int("count", len(orders)))

	var paidCount atomic.Int32

	group := s.pool.NewGroup()
	for _, o := range orders {
		orderID := o.ID
		group.Submit(func() {
			result, err := s.verifier.VerifyPayment(ctx, orderID)
			if err != nil {
				logger.Error(err, zap.String("order_id", orderID))
				return
			}
			if result.Verified {
				paidCount.Add(1)
			}
		})
	}
	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(err)
	}

	if n := paidCount.Load(); n > 0 {
		logger.Info("Payment sweep cycle credited orders", zap.Int32("paid", n))
	}

	return nil
}

// sleep waits for the given duration, returning false when interrupted by
// context cancellation or a stop request
func (s *paymentSweeper) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-s.clock.After(d):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}

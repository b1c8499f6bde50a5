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
	"github.com/ordimint/mint-engine/internal/progression"
)

// ProgressionSweeperConfig holds configuration for the progression sweeper
type ProgressionSweeperConfig struct {
	TickInterval time.Duration // Time between cooldown ticks
}

// progressionSweeper ticks the batch-progression controller on an interval.
// The controller's compare-and-set makes concurrent ticks from the API and
// from multiple sweeper replicas safe.
type progressionSweeper struct {
	config     *ProgressionSweeperConfig
	controller *progression.Controller
	clock      adapter.Clock
	running    atomic.Bool
	stopChan   chan struct{}
	stoppedCh  chan struct{}
}

// NewProgressionSweeper creates a new progression sweeper
func NewProgressionSweeper(config *ProgressionSweeperConfig, controller *progression.Controller, clock adapter.Clock) Sweeper {
	return &progressionSweeper{
		config:     config,
		controller: controller,
		clock:      clock,
		stopChan:   make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *progressionSweeper) Name() string {
	return "progression-sweeper"
}

// Start begins the sweeper's main loop
func (s *progressionSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.Info("Starting progression sweeper",
		zap.Duration("tick_interval", s.config.TickInterval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Progression sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.Info("Progression sweeper stop requested")
			return nil
		case <-s.clock.After(s.config.TickInterval):
			result, err := s.controller.TickCooldown(ctx, progression.TickOptions{})
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.Error(err)
				}
				continue
			}
			if result.Advanced {
				logger.Info("Progression sweeper advanced batch",
					zap.Int("previous_batch", result.PreviousBatch),
					zap.Int("new_batch", result.NewBatch),
				)
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *progressionSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.Info("Stopping progression sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.Info("Progression sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.Warn("Progression sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

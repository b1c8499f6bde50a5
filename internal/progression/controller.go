package progression

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ordimint/mint-engine/internal/adapter"
	"github.com/ordimint/mint-engine/internal/domain"
	"github.com/ordimint/mint-engine/internal/logger"
	"github.com/ordimint/mint-engine/internal/messaging"
	"github.com/ordimint/mint-engine/internal/store"
)

// CooldownProvider resolves the cooldown for a batch
//
//go:generate mockgen -source=controller.go -destination=../mocks/cooldowns.go -package=mocks -mock_names=CooldownProvider=MockCooldownProvider
type CooldownProvider interface {
	// Cooldown returns the mandatory delay after the batch sells out
	Cooldown(ctx context.Context, batchID int) (time.Duration, error)
}

// storeCooldowns resolves cooldowns from per-batch overrides with a
// process-wide default
type storeCooldowns struct {
	store      store.Store
	defaultVal time.Duration
}

// NewStoreCooldowns creates a cooldown provider backed by store overrides
func NewStoreCooldowns(st store.Store, defaultCooldown time.Duration) CooldownProvider {
	return &storeCooldowns{store: st, defaultVal: defaultCooldown}
}

func (p *storeCooldowns) Cooldown(ctx context.Context, batchID int) (time.Duration, error) {
	override, err := p.store.GetCooldownOverride(ctx, batchID)
	if err != nil {
		return 0, err
	}
	if override != nil {
		return *override, nil
	}
	return p.defaultVal, nil
}

// TickOptions control a single progression tick
type TickOptions struct {
	// Force bypasses the elapsed-time check but not the sold-out selection
	Force bool
	// Priority narrows the required elapsed time by the configured buffer to
	// tolerate polling jitter; it never advances earlier than cooldown minus
	// that buffer
	Priority bool
}

// Controller advances the current-batch pointer once the active batch has
// sold out and its cooldown has elapsed. TickCooldown is idempotent and
// safely callable on any schedule; correctness does not depend on call
// frequency.
type Controller struct {
	store          store.Store
	cooldowns      CooldownProvider
	publisher      messaging.Publisher
	clock          adapter.Clock
	priorityBuffer time.Duration
}

// NewController creates a new batch progression controller
func NewController(st store.Store, cooldowns CooldownProvider, publisher messaging.Publisher, clock adapter.Clock, priorityBuffer time.Duration) *Controller {
	return &Controller{
		store:          st,
		cooldowns:      cooldowns,
		publisher:      publisher,
		clock:          clock,
		priorityBuffer: priorityBuffer,
	}
}

// TickCooldown evaluates the cooldown window and advances to the first
// not-sold-out later batch once it has elapsed
func (c *Controller) TickCooldown(ctx context.Context, opts TickOptions) (*domain.TickResult, error) {
	state, err := c.store.GetCurrentBatchState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load current batch state: %w", err)
	}
	if state == nil {
		return nil, fmt.Errorf("current batch state not initialized")
	}

	if state.SoldOutAt == nil {
		return &domain.TickResult{
			Status:        domain.ProgressionActive,
			PreviousBatch: state.CurrentBatch,
			NewBatch:      state.CurrentBatch,
		}, nil
	}

	cooldown, err := c.cooldowns.Cooldown(ctx, state.CurrentBatch)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cooldown: %w", err)
	}

	required := cooldown
	if opts.Priority {
		required -= c.priorityBuffer
		if required < 0 {
			required = 0
		}
	}

	elapsed := c.clock.Now().Sub(*state.SoldOutAt)
	if !opts.Force && elapsed < required {
		return &domain.TickResult{
			Status:        domain.ProgressionCooldown,
			PreviousBatch: state.CurrentBatch,
			NewBatch:      state.CurrentBatch,
			TimeLeft:      required - elapsed,
		}, nil
	}

	batches, err := c.store.ListBatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	next := 0
	for _, b := range batches {
		if b.ID > state.CurrentBatch && !b.IsSoldOut {
			next = b.ID
			break
		}
	}
	if next == 0 {
		// Terminal until an admin intervenes.
		return &domain.TickResult{
			Status:        domain.ProgressionNoNextBatch,
			PreviousBatch: state.CurrentBatch,
			NewBatch:      state.CurrentBatch,
		}, nil
	}

	advanced, err := c.store.AdvanceCurrentBatch(ctx, state.CurrentBatch, next, state.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to advance current batch: %w", err)
	}
	if !advanced {
		// Lost the compare-and-set; report the post-state without side effects.
		fresh, err := c.store.GetCurrentBatchState(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to reload current batch state: %w", err)
		}
		status := domain.ProgressionActive
		if fresh.SoldOutAt != nil {
			status = domain.ProgressionCooldown
		}
		return &domain.TickResult{
			Status:        status,
			PreviousBatch: state.CurrentBatch,
			NewBatch:      fresh.CurrentBatch,
		}, nil
	}

	logger.Info("advanced to next batch",
		zap.Int("previous_batch", state.CurrentBatch),
		zap.Int("new_batch", next),
		zap.Bool("forced", opts.Force),
	)

	if c.publisher != nil {
		event := &domain.SaleEvent{
			EventType: domain.EventTypeBatchAdvanced,
			BatchID:   next,
			Timestamp: c.clock.Now(),
		}
		if err := c.publisher.PublishEvent(ctx, event); err != nil {
			logger.Error(err, zap.String("event_type", string(event.EventType)))
		}
	}

	return &domain.TickResult{
		Advanced:      true,
		Status:        domain.ProgressionAdvanced,
		PreviousBatch: state.CurrentBatch,
		NewBatch:      next,
	}, nil
}

package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ordimint/mint-engine/internal/adapter"
	"github.com/ordimint/mint-engine/internal/logger"
	"github.com/ordimint/mint-engine/internal/store"
)

// Reconciler repairs batch bookkeeping from the minted-wallet ledger: the
// minted counter, the sold-out flag and a cooldown stamp left behind by a
// partial-failure write. The operation is idempotent; a consistent batch is
// left untouched.
type Reconciler struct {
	store store.Store
	clock adapter.Clock
}

// NewReconciler creates a new reconciler
func NewReconciler(st store.Store, clock adapter.Clock) *Reconciler {
	return &Reconciler{store: st, clock: clock}
}

// Reconcile recomputes one batch's counters from the ledger
func (r *Reconciler) Reconcile(ctx context.Context, batchID int) (*store.ReconcileResult, error) {
	result, err := r.store.RecomputeBatch(ctx, batchID, r.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile batch %d: %w", batchID, err)
	}

	if result.WasSoldOut != result.IsSoldOut || result.CooldownCleared {
		logger.Warn("repaired batch state",
			zap.Int("batch_id", batchID),
			zap.Int("minted_wallets", result.MintedWallets),
			zap.Bool("was_sold_out", result.WasSoldOut),
			zap.Bool("is_sold_out", result.IsSoldOut),
			zap.Bool("cooldown_cleared", result.CooldownCleared),
		)
	}

	return result, nil
}

// ReconcileAll recomputes every batch, returning the per-batch results
func (r *Reconciler) ReconcileAll(ctx context.Context) ([]*store.ReconcileResult, error) {
	batches, err := r.store.ListBatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	results := make([]*store.ReconcileResult, 0, len(batches))
	for _, b := range batches {
		result, err := r.Reconcile(ctx, b.ID)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

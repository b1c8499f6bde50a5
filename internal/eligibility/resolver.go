package eligibility

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ordimint/mint-engine/internal/domain"
	"github.com/ordimint/mint-engine/internal/logger"
	"github.com/ordimint/mint-engine/internal/store"
)

// Resolver decides whether an address may mint from a requested batch.
// CheckEligibility is a pure function of current store state: repeated calls
// without intervening writes return identical results. The only write it can
// trigger is the stale sold-out flag correction, which the store applies
// transactionally with the read.
type Resolver struct {
	store store.Store
}

// NewResolver creates a new eligibility resolver
func NewResolver(st store.Store) *Resolver {
	return &Resolver{store: st}
}

// CheckEligibility resolves an address against a requested batch
func (r *Resolver) CheckEligibility(ctx context.Context, address string, requestedBatchID int) (*domain.Eligibility, error) {
	entry, err := r.store.GetWhitelistEntry(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve whitelist entry: %w", err)
	}
	if entry == nil {
		return &domain.Eligibility{Reason: domain.ReasonNotWhitelisted}, nil
	}

	batch, corrected, err := r.store.GetBatchCorrectingStale(ctx, requestedBatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve batch: %w", err)
	}
	if batch == nil {
		return &domain.Eligibility{Reason: domain.ReasonInvalidBatch, WhitelistedBatch: entry.BatchID}, nil
	}
	if corrected {
		logger.Warn("corrected stale sold-out flag",
			zap.Int("batch_id", batch.ID),
		)
	}

	// The caller's own mint record wins over the sold-out rejection: an
	// address that filled the last slot itself is reported as already
	// minted, not as locked out by a full batch.
	minted, err := r.store.GetMintedWallet(ctx, address, requestedBatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve minted wallet: %w", err)
	}
	if minted != nil {
		return &domain.Eligibility{Reason: domain.ReasonAlreadyMinted, WhitelistedBatch: entry.BatchID}, nil
	}

	if batch.IsSoldOut {
		return &domain.Eligibility{Reason: domain.ReasonBatchSoldOut, WhitelistedBatch: entry.BatchID}, nil
	}

	if entry.BatchID == requestedBatchID {
		return &domain.Eligibility{Eligible: true, Reason: domain.ReasonEligible, WhitelistedBatch: entry.BatchID}, nil
	}

	// A first-come-first-served batch is open to any whitelisted address.
	if batch.IsFCFS {
		return &domain.Eligibility{Eligible: true, Reason: domain.ReasonEligible, WhitelistedBatch: entry.BatchID}, nil
	}

	// Upgrade path: an address whitelisted on an exhausted batch may roll
	// forward into a later one.
	wlBatch, err := r.store.GetBatch(ctx, entry.BatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve whitelisted batch: %w", err)
	}
	if wlBatch != nil && wlBatch.IsSoldOut && requestedBatchID > entry.BatchID {
		return &domain.Eligibility{Eligible: true, Reason: domain.ReasonEligible, WhitelistedBatch: entry.BatchID}, nil
	}

	return &domain.Eligibility{Reason: domain.ReasonNotWhitelistedForBatch, WhitelistedBatch: entry.BatchID}, nil
}

package store

import (
	"context"
	"time"

	"github.com/ordimint/mint-engine/internal/domain"
	"github.com/ordimint/mint-engine/internal/store/schema"
)

// CreditResult describes the outcome of crediting an order as paid
type CreditResult struct {
	Order *schema.Order
	Batch *schema.Batch
	// NewlyPaid is false when the order was already in a terminal payment state
	NewlyPaid bool
	// SoldOut reflects the batch's sold-out state after the credit
	SoldOut bool
	// NewlySoldOut is true when this credit flipped the sold-out flag
	NewlySoldOut bool
	// CooldownStarted is true when this credit set sold_out_at on the
	// current-batch pointer
	CooldownStarted bool
	// CapacityExhausted is true when the batch had no room left for a new
	// wallet; nothing was written and the order stays pending for an
	// administrative decision
	CapacityExhausted bool
}

// ReconcileResult describes the counter repair performed by RecomputeBatch
type ReconcileResult struct {
	BatchID         int
	MintedWallets   int
	WasSoldOut      bool
	IsSoldOut       bool
	CooldownCleared bool
}

// Store defines the interface for database operations.
// Every read-modify-write sequence of the sale engine is exposed here as a
// single atomic operation; components never compose their own critical
// sections out of separate reads and writes.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// InitBatches seeds the batch sequence and the current-batch pointer.
	// It is a no-op when batches already exist.
	InitBatches(ctx context.Context, batches []schema.Batch) error
	// GetBatch retrieves a batch by id
	GetBatch(ctx context.Context, batchID int) (*schema.Batch, error)
	// ListBatches retrieves all batches ordered by id
	ListBatches(ctx context.Context) ([]schema.Batch, error)
	// GetBatchCorrectingStale retrieves a batch and, in the same transaction,
	// clears a sold-out flag that contradicts a zero minted counter. The
	// second return value reports whether a correction was applied.
	GetBatchCorrectingStale(ctx context.Context, batchID int) (*schema.Batch, bool, error)
	// UpdateBatchAdmin applies an administrative override to batch capacity,
	// price or counters, audited in the same transaction
	UpdateBatchAdmin(ctx context.Context, batch schema.Batch, actor string) error

	// GetWhitelistEntry retrieves the whitelist entry for an address
	GetWhitelistEntry(ctx context.Context, address string) (*schema.WhitelistEntry, error)
	// UpsertWhitelistEntry creates or reassigns a whitelist entry, audited
	UpsertWhitelistEntry(ctx context.Context, entry schema.WhitelistEntry, actor string) error

	// CreateOrder persists a new order and claims a free payment address for
	// it in the same transaction. The claimed address is written back into
	// the order. Returns domain.ErrNoPaymentAddress when the pool is empty.
	CreateOrder(ctx context.Context, order *schema.Order) error
	// GetOrder retrieves an order by id
	GetOrder(ctx context.Context, orderID string) (*schema.Order, error)
	// ListOrdersByStatus retrieves up to limit orders in the given status,
	// oldest first
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus, limit int) ([]schema.Order, error)
	// TransitionOrder conditionally moves an order from one status to
	// another. Returns false without error when the order was not in the
	// expected source status.
	TransitionOrder(ctx context.Context, orderID string, from, to domain.OrderStatus) (bool, error)
	// SetOrderStatusAdmin forces an order status, audited in the same transaction
	SetOrderStatusAdmin(ctx context.Context, orderID string, to domain.OrderStatus, actor, note string) error
	// ExpireOrdersBefore moves pending orders created before the cutoff to
	// expired and returns the number of orders affected
	ExpireOrdersBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// GetMintedWallet retrieves the minted-wallet record for an address and batch
	GetMintedWallet(ctx context.Context, address string, batchID int) (*schema.MintedWallet, error)

	// IsTransactionUsed checks whether a transaction id is already in the ledger
	IsTransactionUsed(ctx context.Context, txID string) (bool, error)
	// ClaimTransaction inserts a used-transaction record keyed on tx_id.
	// Returns false when another verifier already claimed the transaction;
	// the insert is the compare-and-set that prevents double-crediting.
	ClaimTransaction(ctx context.Context, txID, orderID string, amountSats int64, ts time.Time) (bool, error)
	// SumCreditedForOrder sums ledger amounts claimed for an order
	SumCreditedForOrder(ctx context.Context, orderID string) (int64, error)

	// CreditOrderPaid transitions a pending order to paid, upserts its
	// minted-wallet record, increments the batch counter, flips the sold-out
	// flag at capacity and stamps sold_out_at on the current-batch pointer -
	// all in one transaction. Calling it on an already-paid order is a no-op
	// with NewlyPaid=false.
	CreditOrderPaid(ctx context.Context, orderID string, now time.Time) (*CreditResult, error)

	// GetCurrentBatchState retrieves the singleton current-batch pointer
	GetCurrentBatchState(ctx context.Context) (*schema.CurrentBatchState, error)
	// AdvanceCurrentBatch moves the pointer from one batch to another and
	// clears sold_out_at, conditional on the pointer version. Returns false
	// when the compare-and-set lost.
	AdvanceCurrentBatch(ctx context.Context, fromBatch, toBatch int, version int64) (bool, error)

	// RecomputeBatch recounts minted wallets from the minted_wallets table,
	// repairs the counter and the sold-out flag, and clears a cooldown that
	// no longer has a sold-out current batch behind it
	RecomputeBatch(ctx context.Context, batchID int, now time.Time) (*ReconcileResult, error)

	// AddPaymentAddresses seeds the payment address pool, skipping duplicates
	AddPaymentAddresses(ctx context.Context, addresses []string) error

	// GetCooldownOverride retrieves the per-batch cooldown override, nil when unset
	GetCooldownOverride(ctx context.Context, batchID int) (*time.Duration, error)
	// SetCooldownOverride sets the per-batch cooldown override, audited
	SetCooldownOverride(ctx context.Context, batchID int, cooldown time.Duration, actor string) error
}

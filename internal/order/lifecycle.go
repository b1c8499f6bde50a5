package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/ordimint/mint-engine/internal/adapter"
	"github.com/ordimint/mint-engine/internal/domain"
	"github.com/ordimint/mint-engine/internal/eligibility"
	"github.com/ordimint/mint-engine/internal/logger"
	"github.com/ordimint/mint-engine/internal/store"
	"github.com/ordimint/mint-engine/internal/store/schema"
)

// CreateInput holds the parameters for a new mint order
type CreateInput struct {
	BTCAddress string
	BatchID    int
	// Quantity defaults to the batch's ordinals-per-wallet when zero
	Quantity int
}

// Service owns the order state machine. Orders move pending -> paid ->
// completed, with pending -> failed and pending -> expired as the failure
// exits. Status writes happen only through this service, the payment
// verifier and audited administrative overrides.
type Service struct {
	store       store.Store
	eligibility *eligibility.Resolver
	clock       adapter.Clock
	orderTTL    time.Duration
}

// NewService creates a new order lifecycle service
func NewService(st store.Store, resolver *eligibility.Resolver, clock adapter.Clock, orderTTL time.Duration) *Service {
	return &Service{
		store:       st,
		eligibility: resolver,
		clock:       clock,
		orderTTL:    orderTTL,
	}
}

// Create validates the request, re-checks eligibility and persists a pending
// order with a payment address claimed from the pool. The expected amount is
// derived from the batch price exactly once, here.
func (s *Service) Create(ctx context.Context, input CreateInput) (*schema.Order, error) {
	if !domain.IsValidBTCAddress(input.BTCAddress) {
		return nil, domain.NewValidationError("btc_address", "malformed address")
	}
	if input.BatchID <= 0 {
		return nil, domain.NewValidationError("batch_id", "must be positive")
	}
	if input.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "must not be negative")
	}

	elig, err := s.eligibility.CheckEligibility(ctx, input.BTCAddress, input.BatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to check eligibility: %w", err)
	}
	if !elig.Eligible {
		return nil, &domain.NotEligibleError{Reason: elig.Reason, WhitelistedBatch: elig.WhitelistedBatch}
	}

	batch, err := s.store.GetBatch(ctx, input.BatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch: %w", err)
	}
	if batch == nil {
		return nil, domain.ErrBatchNotFound
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = batch.OrdinalsPerBatch
	}
	if quantity > batch.OrdinalsPerBatch {
		return nil, domain.NewValidationError("quantity", fmt.Sprintf("at most %d per wallet", batch.OrdinalsPerBatch))
	}

	now := s.clock.Now()
	order := &schema.Order{
		ID:               uuid.NewString(),
		BTCAddress:       input.BTCAddress,
		Quantity:         quantity,
		TotalSats:        batch.PriceSats * int64(quantity),
		PaymentReference: ulid.Make().String(),
		BatchID:          input.BatchID,
		Status:           domain.OrderStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("created order",
		zap.String("order_id", order.ID),
		zap.String("btc_address", order.BTCAddress),
		zap.Int("batch_id", order.BatchID),
		zap.Int64("total_sats", order.TotalSats),
	)

	return order, nil
}

// Get retrieves an order by id
func (s *Service) Get(ctx context.Context, orderID string) (*schema.Order, error) {
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// Complete marks a paid order as completed once fulfilment has finished
func (s *Service) Complete(ctx context.Context, orderID string) error {
	ok, err := s.store.TransitionOrder(ctx, orderID, domain.OrderStatusPaid, domain.OrderStatusCompleted)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidTransition
	}
	return nil
}

// Fail marks a pending order as failed
func (s *Service) Fail(ctx context.Context, orderID string) error {
	ok, err := s.store.TransitionOrder(ctx, orderID, domain.OrderStatusPending, domain.OrderStatusFailed)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidTransition
	}
	return nil
}

// ExpireStale times out pending orders older than the configured TTL and
// returns the number of orders expired
func (s *Service) ExpireStale(ctx context.Context) (int64, error) {
	cutoff := s.clock.Now().Add(-s.orderTTL)
	expired, err := s.store.ExpireOrdersBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		logger.Info("expired stale orders", zap.Int64("count", expired))
	}
	return expired, nil
}

// AdminSetStatus forces an order status on behalf of an administrator. The
// override is audited by the store in the same transaction.
func (s *Service) AdminSetStatus(ctx context.Context, orderID string, to domain.OrderStatus, actor, note string) error {
	if !domain.IsValidOrderStatus(to) {
		return domain.NewValidationError("status", "unknown order status")
	}
	return s.store.SetOrderStatusAdmin(ctx, orderID, to, actor, note)
}

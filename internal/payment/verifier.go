package payment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ordimint/mint-engine/internal/adapter"
	"github.com/ordimint/mint-engine/internal/domain"
	"github.com/ordimint/mint-engine/internal/logger"
	"github.com/ordimint/mint-engine/internal/messaging"
	"github.com/ordimint/mint-engine/internal/store"
)

// TxSource defines the external transaction source consumed by the verifier.
// It is best-effort: results may be stale, empty, duplicated or out of order.
//
//go:generate mockgen -source=verifier.go -destination=../mocks/tx_source.go -package=mocks -mock_names=TxSource=MockTxSource
type TxSource interface {
	// FetchTransactions retrieves transactions observed at an address
	FetchTransactions(ctx context.Context, address string) ([]domain.Transaction, error)
}

// Result is the outcome of a verification attempt
type Result struct {
	Verified     bool               `json:"verified"`
	Status       domain.OrderStatus `json:"status"`
	CreditedSats int64              `json:"credited_sats"`
	ExpectedSats int64              `json:"expected_sats"`
}

// Verifier credits incoming payments to orders exactly once. It is safe to
// call on any schedule: every transaction is claimed through the
// used-transaction ledger before it counts toward an order, so replaying the
// same external transactions never credits twice. The external fetch happens
// before any store write; no lock is held across the indexer call.
type Verifier struct {
	store     store.Store
	source    TxSource
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewVerifier creates a new payment verifier
func NewVerifier(st store.Store, source TxSource, publisher messaging.Publisher, clock adapter.Clock) *Verifier {
	return &Verifier{
		store:     st,
		source:    source,
		publisher: publisher,
		clock:     clock,
	}
}

// VerifyPayment checks the order's payment address for sufficient payment and
// credits the order when found. An indexer failure is reported as an
// unverified result, not an error, so polling can retry later.
func (v *Verifier) VerifyPayment(ctx context.Context, orderID string) (*Result, error) {
	order, err := v.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}

	// Idempotent short-circuit: a paid or completed order stays verified.
	if order.Status.Terminal() {
		return &Result{Verified: true, Status: order.Status, ExpectedSats: order.TotalSats}, nil
	}
	if order.Status != domain.OrderStatusPending {
		return &Result{Verified: false, Status: order.Status, ExpectedSats: order.TotalSats}, nil
	}

	txs, err := v.source.FetchTransactions(ctx, order.PaymentAddress)
	if err != nil {
		logger.Warn("transaction source unavailable",
			zap.String("order_id", order.ID),
			zap.String("payment_address", order.PaymentAddress),
			zap.Error(err),
		)
		return &Result{Verified: false, Status: order.Status, ExpectedSats: order.TotalSats}, nil
	}

	for _, tx := range txs {
		// Payments observed before the order existed belong to someone else.
		if tx.Timestamp.Before(order.CreatedAt) {
			continue
		}

		amount := tx.PaidTo(order.PaymentAddress)
		if amount == 0 {
			continue
		}

		// The insert is the compare-and-set: losing it means another
		// verifier already claimed this transaction, possibly for another
		// order, and it must not count here.
		claimed, err := v.store.ClaimTransaction(ctx, tx.TxID, order.ID, amount, tx.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to claim transaction %s: %w", tx.TxID, err)
		}
		if claimed {
			logger.Info("claimed payment transaction",
				zap.String("order_id", order.ID),
				zap.String("tx_id", tx.TxID),
				zap.Int64("amount_sats", amount),
			)
		}
	}

	// Accumulate from the ledger rather than this call's claims so partial
	// payments credited by earlier calls still count.
	credited, err := v.store.SumCreditedForOrder(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum credited amount: %w", err)
	}

	if credited < order.TotalSats {
		return &Result{
			Verified:     false,
			Status:       order.Status,
			CreditedSats: credited,
			ExpectedSats: order.TotalSats,
		}, nil
	}

	credit, err := v.store.CreditOrderPaid(ctx, order.ID, v.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to credit order: %w", err)
	}

	// The batch filled up before this payment landed. The order keeps its
	// credited ledger entries but stays pending until an administrator
	// refunds or reassigns it.
	if credit.CapacityExhausted {
		logger.Warn("payment received for a full batch",
			zap.String("order_id", order.ID),
			zap.Int("batch_id", order.BatchID),
			zap.Int64("credited_sats", credited),
		)
		return &Result{
			Verified:     false,
			Status:       order.Status,
			CreditedSats: credited,
			ExpectedSats: order.TotalSats,
		}, nil
	}

	if credit.NewlyPaid {
		v.publish(ctx, &domain.SaleEvent{
			EventType: domain.EventTypeOrderPaid,
			OrderID:   order.ID,
			Address:   order.BTCAddress,
			BatchID:   order.BatchID,
			Timestamp: v.clock.Now(),
		})
	}
	if credit.NewlySoldOut {
		v.publish(ctx, &domain.SaleEvent{
			EventType: domain.EventTypeBatchSoldOut,
			BatchID:   order.BatchID,
			Timestamp: v.clock.Now(),
		})
	}

	return &Result{
		Verified:     true,
		Status:       credit.Order.Status,
		CreditedSats: credited,
		ExpectedSats: order.TotalSats,
	}, nil
}

// publish sends a sale event, logging failures without failing the credit
func (v *Verifier) publish(ctx context.Context, event *domain.SaleEvent) {
	if v.publisher == nil {
		return
	}
	if err := v.publisher.PublishEvent(ctx, event); err != nil {
		logger.Error(err, zap.String("event_type", string(event.EventType)))
	}
}

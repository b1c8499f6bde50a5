package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ordimint/mint-engine/internal/domain"
	"github.com/ordimint/mint-engine/internal/store/schema"
)

// errBatchFull aborts a credit transaction when the batch has no capacity
// left for a new wallet, rolling back the minted-wallet insert.
var errBatchFull = errors.New("batch has no capacity for a new wallet")

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// AutoMigrate creates or updates the sale engine tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Batch{},
		&schema.WhitelistEntry{},
		&schema.Order{},
		&schema.MintedWallet{},
		&schema.UsedTransaction{},
		&schema.CurrentBatchState{},
		&schema.PaymentAddress{},
		&schema.CooldownSetting{},
		&schema.AdminAudit{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults: 20 open, 5 idle,
// 5m lifetime, 10m idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// InitBatches seeds the batch sequence and the current-batch pointer.
// It is a no-op when batches already exist.
func (s *pgStore) InitBatches(ctx context.Context, batches []schema.Batch) error {
	if len(batches) == 0 {
		return errors.New("no batches to initialize")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.Batch{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count batches: %w", err)
		}
		if count > 0 {
			return nil
		}

		if err := tx.Create(&batches).Error; err != nil {
			return fmt.Errorf("failed to create batches: %w", err)
		}

		state := schema.CurrentBatchState{
			ID:           schema.CurrentBatchStateID,
			CurrentBatch: batches[0].ID,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&state).Error; err != nil {
			return fmt.Errorf("failed to create current batch state: %w", err)
		}

		return nil
	})
}

// GetBatch retrieves a batch by id
func (s *pgStore) GetBatch(ctx context.Context, batchID int) (*schema.Batch, error) {
	var batch schema.Batch
	err := s.db.WithContext(ctx).Where("id = ?", batchID).First(&batch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get batch: %w", err)
	}
	return &batch, nil
}

// ListBatches retrieves all batches ordered by id
func (s *pgStore) ListBatches(ctx context.Context) ([]schema.Batch, error) {
	var batches []schema.Batch
	err := s.db.WithContext(ctx).Order("id ASC").Find(&batches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	return batches, nil
}

// GetBatchCorrectingStale retrieves a batch, clearing a sold-out flag that
// contradicts a zero minted counter. The row is locked so two concurrent
// callers observe the same corrected snapshot.
func (s *pgStore) GetBatchCorrectingStale(ctx context.Context, batchID int) (*schema.Batch, bool, error) {
	var batch schema.Batch
	var corrected bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", batchID).
			First(&batch).Error
		if err != nil {
			return err
		}

		if batch.IsSoldOut && batch.MintedWallets == 0 {
			batch.IsSoldOut = false
			corrected = true
			if err := tx.Model(&schema.Batch{}).
				Where("id = ?", batchID).
				Update("is_sold_out", false).Error; err != nil {
				return fmt.Errorf("failed to clear stale sold-out flag: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get batch: %w", err)
	}

	return &batch, corrected, nil
}

// UpdateBatchAdmin applies an administrative override to a batch, audited in
// the same transaction
func (s *pgStore) UpdateBatchAdmin(ctx context.Context, batch schema.Batch, actor string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing schema.Batch
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", batch.ID).
			First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBatchNotFound
			}
			return fmt.Errorf("failed to lock batch: %w", err)
		}

		updates := map[string]interface{}{
			"price_sats":         batch.PriceSats,
			"max_wallets":        batch.MaxWallets,
			"minted_wallets":     batch.MintedWallets,
			"ordinals_per_batch": batch.OrdinalsPerBatch,
			"is_sold_out":        batch.MintedWallets >= batch.MaxWallets,
			"is_fcfs":            batch.IsFCFS,
			"updated_at":         time.Now(),
		}
		if err := tx.Model(&schema.Batch{}).Where("id = ?", batch.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update batch: %w", err)
		}

		return createAudit(tx, actor, "batch_override", strconv.Itoa(batch.ID), map[string]interface{}{
			"old": existing,
			"new": batch,
		})
	})
}

// GetWhitelistEntry retrieves the whitelist entry for an address
func (s *pgStore) GetWhitelistEntry(ctx context.Context, address string) (*schema.WhitelistEntry, error) {
	var entry schema.WhitelistEntry
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get whitelist entry: %w", err)
	}
	return &entry, nil
}

// UpsertWhitelistEntry creates or reassigns a whitelist entry, audited in the
// same transaction
func (s *pgStore) UpsertWhitelistEntry(ctx context.Context, entry schema.WhitelistEntry, actor string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoUpdates: clause.AssignmentColumns([]string{"batch_id", "updated_at"}),
		}).Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to upsert whitelist entry: %w", err)
		}

		return createAudit(tx, actor, "whitelist_upsert", entry.Address, map[string]interface{}{
			"batch_id": entry.BatchID,
		})
	})
}

// CreateOrder persists a new order, claiming a free payment address from the
// pool in the same transaction. The claim is an atomic conditional update so
// two concurrent orders never share an address.
func (s *pgStore) CreateOrder(ctx context.Context, order *schema.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pa schema.PaymentAddress
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("order_id IS NULL").
			Order("created_at ASC").
			First(&pa).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoPaymentAddress
			}
			return fmt.Errorf("failed to claim payment address: %w", err)
		}

		if err := tx.Model(&schema.PaymentAddress{}).
			Where("address = ?", pa.Address).
			Update("order_id", order.ID).Error; err != nil {
			return fmt.Errorf("failed to assign payment address: %w", err)
		}

		order.PaymentAddress = pa.Address
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		return nil
	})
}

// GetOrder retrieves an order by id
func (s *pgStore) GetOrder(ctx context.Context, orderID string) (*schema.Order, error) {
	var order schema.Order
	err := s.db.WithContext(ctx).Where("id = ?", orderID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// ListOrdersByStatus retrieves up to limit orders in the given status, oldest first
func (s *pgStore) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus, limit int) ([]schema.Order, error) {
	var orders []schema.Order
	q := s.db.WithContext(ctx).Where("status = ?", status).Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// TransitionOrder conditionally moves an order between statuses. The WHERE
// clause on the source status is the compare-and-set; a lost race returns
// false with no side effects.
func (s *pgStore) TransitionOrder(ctx context.Context, orderID string, from, to domain.OrderStatus) (bool, error) {
	res := s.db.WithContext(ctx).Model(&schema.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, fmt.Errorf("failed to transition order: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// SetOrderStatusAdmin forces an order status, audited in the same transaction
func (s *pgStore) SetOrderStatusAdmin(ctx context.Context, orderID string, to domain.OrderStatus, actor, note string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order schema.Order
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", orderID).
			First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderNotFound
			}
			return fmt.Errorf("failed to lock order: %w", err)
		}

		if err := tx.Model(&schema.Order{}).
			Where("id = ?", orderID).
			Updates(map[string]interface{}{
				"status":     to,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to set order status: %w", err)
		}

		return createAudit(tx, actor, "order_status_override", orderID, map[string]interface{}{
			"from": order.Status,
			"to":   to,
			"note": note,
		})
	})
}

// ExpireOrdersBefore moves pending orders created before the cutoff to expired
func (s *pgStore) ExpireOrdersBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Model(&schema.Order{}).
		Where("status = ? AND created_at < ?", domain.OrderStatusPending, cutoff).
		Updates(map[string]interface{}{
			"status":     domain.OrderStatusExpired,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to expire orders: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// GetMintedWallet retrieves the minted-wallet record for an address and batch
func (s *pgStore) GetMintedWallet(ctx context.Context, address string, batchID int) (*schema.MintedWallet, error) {
	var record schema.MintedWallet
	err := s.db.WithContext(ctx).
		Where("address = ? AND batch_id = ?", address, batchID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get minted wallet: %w", err)
	}
	return &record, nil
}

// IsTransactionUsed checks whether a transaction id is already in the ledger
func (s *pgStore) IsTransactionUsed(ctx context.Context, txID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.UsedTransaction{}).
		Where("tx_id = ?", txID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check used transaction: %w", err)
	}
	return count > 0, nil
}

// ClaimTransaction inserts a used-transaction record keyed on tx_id.
// ON CONFLICT DO NOTHING makes the insert the compare-and-set: exactly one
// caller wins, everyone else sees false.
func (s *pgStore) ClaimTransaction(ctx context.Context, txID, orderID string, amountSats int64, ts time.Time) (bool, error) {
	record := schema.UsedTransaction{
		TxID:       txID,
		OrderID:    orderID,
		AmountSats: amountSats,
		Timestamp:  ts,
	}

	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tx_id"}},
		DoNothing: true,
	}).Create(&record)
	if res.Error != nil {
		return false, fmt.Errorf("failed to claim transaction: %w", res.Error)
	}

	return res.RowsAffected == 1, nil
}

// SumCreditedForOrder sums ledger amounts claimed for an order
func (s *pgStore) SumCreditedForOrder(ctx context.Context, orderID string) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&schema.UsedTransaction{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(amount_sats), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum credited amounts: %w", err)
	}
	return total, nil
}

// CreditOrderPaid transitions a pending order to paid and applies every
// side effect of the credit in one transaction: minted-wallet upsert, batch
// counter increment, sold-out flip at capacity and the cooldown stamp on the
// current-batch pointer. Row locks on the order and batch serialize
// concurrent credits; the loser of a race observes the post-state and exits
// without side effects. A new wallet crediting into a full batch is rejected
// with CapacityExhausted set and no writes; the order stays pending so an
// administrator can refund or reassign it.
func (s *pgStore) CreditOrderPaid(ctx context.Context, orderID string, now time.Time) (*CreditResult, error) {
	result := &CreditResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order schema.Order
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", orderID).
			First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderNotFound
			}
			return fmt.Errorf("failed to lock order: %w", err)
		}
		result.Order = &order

		if order.Status.Terminal() {
			return nil
		}
		if order.Status != domain.OrderStatusPending {
			return domain.ErrInvalidTransition
		}

		var batch schema.Batch
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", order.BatchID).
			First(&batch).Error
		if err != nil {
			return fmt.Errorf("failed to lock batch: %w", err)
		}

		record := schema.MintedWallet{
			Address:   order.BTCAddress,
			BatchID:   order.BatchID,
			Quantity:  order.Quantity,
			Timestamp: now,
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}, {Name: "batch_id"}},
			DoNothing: true,
		}).Create(&record)
		if res.Error != nil {
			return fmt.Errorf("failed to create minted wallet record: %w", res.Error)
		}

		// The counter only moves when this order contributed a new wallet;
		// an address already minted in this batch must not count twice.
		if res.RowsAffected == 1 {
			// A new wallet needs remaining capacity. A credit that lands
			// after the batch filled up must not push the counter past
			// max_wallets; the order stays pending instead.
			if batch.MintedWallets >= batch.MaxWallets {
				result.Batch = &batch
				result.SoldOut = batch.IsSoldOut
				result.CapacityExhausted = true
				return errBatchFull
			}
			batch.MintedWallets++
			updates := map[string]interface{}{
				"minted_wallets": batch.MintedWallets,
				"updated_at":     now,
			}
			if batch.MintedWallets >= batch.MaxWallets && !batch.IsSoldOut {
				batch.IsSoldOut = true
				updates["is_sold_out"] = true
				result.NewlySoldOut = true
			}
			if err := tx.Model(&schema.Batch{}).Where("id = ?", batch.ID).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update batch counter: %w", err)
			}
		}

		if err := tx.Model(&schema.Order{}).
			Where("id = ?", orderID).
			Updates(map[string]interface{}{
				"status":     domain.OrderStatusPaid,
				"updated_at": now,
			}).Error; err != nil {
			return fmt.Errorf("failed to mark order paid: %w", err)
		}
		order.Status = domain.OrderStatusPaid

		result.NewlyPaid = true
		result.Batch = &batch
		result.SoldOut = batch.IsSoldOut

		// Start the cooldown clock when the batch that just sold out is the
		// active one and the clock is not already running.
		if batch.IsSoldOut {
			res := tx.Model(&schema.CurrentBatchState{}).
				Where("id = ? AND current_batch = ? AND sold_out_at IS NULL", schema.CurrentBatchStateID, batch.ID).
				Updates(map[string]interface{}{
					"sold_out_at": now,
					"version":     gorm.Expr("version + 1"),
					"updated_at":  now,
				})
			if res.Error != nil {
				return fmt.Errorf("failed to stamp sold-out time: %w", res.Error)
			}
			result.CooldownStarted = res.RowsAffected == 1
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, errBatchFull) {
			return result, nil
		}
		return nil, err
	}

	return result, nil
}

// GetCurrentBatchState retrieves the singleton current-batch pointer
func (s *pgStore) GetCurrentBatchState(ctx context.Context) (*schema.CurrentBatchState, error) {
	var state schema.CurrentBatchState
	err := s.db.WithContext(ctx).Where("id = ?", schema.CurrentBatchStateID).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current batch state: %w", err)
	}
	return &state, nil
}

// AdvanceCurrentBatch moves the pointer forward conditional on its version.
// Progression only ever increases the pointer.
func (s *pgStore) AdvanceCurrentBatch(ctx context.Context, fromBatch, toBatch int, version int64) (bool, error) {
	if toBatch <= fromBatch {
		return false, fmt.Errorf("batch progression must move forward: %d -> %d", fromBatch, toBatch)
	}

	res := s.db.WithContext(ctx).Model(&schema.CurrentBatchState{}).
		Where("id = ? AND current_batch = ? AND version = ?", schema.CurrentBatchStateID, fromBatch, version).
		Updates(map[string]interface{}{
			"current_batch": toBatch,
			"sold_out_at":   nil,
			"version":       gorm.Expr("version + 1"),
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return false, fmt.Errorf("failed to advance current batch: %w", res.Error)
	}

	return res.RowsAffected == 1, nil
}

// RecomputeBatch recounts minted wallets from the ledger table and repairs
// the batch counter, the sold-out flag and a stale cooldown stamp. Safe to
// call repeatedly; a consistent batch is left untouched.
func (s *pgStore) RecomputeBatch(ctx context.Context, batchID int, now time.Time) (*ReconcileResult, error) {
	result := &ReconcileResult{BatchID: batchID}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var batch schema.Batch
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", batchID).
			First(&batch).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBatchNotFound
			}
			return fmt.Errorf("failed to lock batch: %w", err)
		}
		result.WasSoldOut = batch.IsSoldOut

		var minted int64
		if err := tx.Model(&schema.MintedWallet{}).
			Where("batch_id = ?", batchID).
			Count(&minted).Error; err != nil {
			return fmt.Errorf("failed to count minted wallets: %w", err)
		}

		soldOut := int(minted) >= batch.MaxWallets
		result.MintedWallets = int(minted)
		result.IsSoldOut = soldOut

		if int(minted) != batch.MintedWallets || soldOut != batch.IsSoldOut {
			if err := tx.Model(&schema.Batch{}).
				Where("id = ?", batchID).
				Updates(map[string]interface{}{
					"minted_wallets": int(minted),
					"is_sold_out":    soldOut,
					"updated_at":     now,
				}).Error; err != nil {
				return fmt.Errorf("failed to repair batch counters: %w", err)
			}
		}

		// A cooldown stamped for this batch is stale once the recount shows
		// the batch is not actually sold out.
		if !soldOut {
			res := tx.Model(&schema.CurrentBatchState{}).
				Where("id = ? AND current_batch = ? AND sold_out_at IS NOT NULL", schema.CurrentBatchStateID, batchID).
				Updates(map[string]interface{}{
					"sold_out_at": nil,
					"version":     gorm.Expr("version + 1"),
					"updated_at":  now,
				})
			if res.Error != nil {
				return fmt.Errorf("failed to clear stale cooldown: %w", res.Error)
			}
			result.CooldownCleared = res.RowsAffected == 1
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// AddPaymentAddresses seeds the payment address pool, skipping duplicates
func (s *pgStore) AddPaymentAddresses(ctx context.Context, addresses []string) error {
	if len(addresses) == 0 {
		return nil
	}

	records := make([]schema.PaymentAddress, 0, len(addresses))
	for _, addr := range addresses {
		records = append(records, schema.PaymentAddress{Address: addr})
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoNothing: true,
	}).Create(&records).Error
	if err != nil {
		return fmt.Errorf("failed to add payment addresses: %w", err)
	}

	return nil
}

// GetCooldownOverride retrieves the per-batch cooldown override, nil when unset
func (s *pgStore) GetCooldownOverride(ctx context.Context, batchID int) (*time.Duration, error) {
	var setting schema.CooldownSetting
	err := s.db.WithContext(ctx).Where("batch_id = ?", batchID).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cooldown setting: %w", err)
	}

	cooldown := time.Duration(setting.Seconds) * time.Second
	return &cooldown, nil
}

// SetCooldownOverride sets the per-batch cooldown override, audited in the
// same transaction
func (s *pgStore) SetCooldownOverride(ctx context.Context, batchID int, cooldown time.Duration, actor string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		setting := schema.CooldownSetting{
			BatchID:   batchID,
			Seconds:   int64(cooldown / time.Second),
			UpdatedAt: time.Now(),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "batch_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"seconds", "updated_at"}),
		}).Create(&setting).Error; err != nil {
			return fmt.Errorf("failed to set cooldown: %w", err)
		}

		return createAudit(tx, actor, "cooldown_override", strconv.Itoa(batchID), map[string]interface{}{
			"seconds": setting.Seconds,
		})
	})
}

// createAudit writes one admin audit row inside the caller's transaction
func createAudit(tx *gorm.DB, actor, action, subject string, detail map[string]interface{}) error {
	detailJSON, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to marshal audit detail: %w", err)
	}

	audit := schema.AdminAudit{
		Actor:   actor,
		Action:  action,
		Subject: subject,
		Detail:  datatypes.JSON(detailJSON),
	}
	if err := tx.Create(&audit).Error; err != nil {
		return fmt.Errorf("failed to create audit record: %w", err)
	}

	return nil
}

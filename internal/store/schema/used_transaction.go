package schema

import "time"

// UsedTransaction represents the used_transactions table - the idempotency
// ledger for payment crediting. A given external transaction id is credited
// to exactly one order, exactly once; the primary key on tx_id is the anchor.
type UsedTransaction struct {
	TxID       string    `gorm:"column:tx_id;primaryKey;type:text"`
	OrderID    string    `gorm:"column:order_id;not null;type:uuid;index"`
	AmountSats int64     `gorm:"column:amount_sats;not null"`
	Timestamp  time.Time `gorm:"column:timestamp;not null"`
}

// TableName specifies the table name for the UsedTransaction model
func (UsedTransaction) TableName() string {
	return "used_transactions"
}

package schema

import (
	"time"

	"github.com/ordimint/mint-engine/internal/domain"
)

// Order represents the orders table. Orders are created on mint request,
// mutated only through defined lifecycle transitions, and retained
// indefinitely as the audit trail of the sale.
type Order struct {
	// ID is a UUID assigned at creation
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// BTCAddress is the buyer's receiving address
	BTCAddress string `gorm:"column:btc_address;not null;type:text;index"`
	// Quantity is the number of ordinals covered by the order
	Quantity int `gorm:"column:quantity;not null"`
	// TotalSats is the expected payment in satoshis, derived once from the
	// batch price at creation time and never re-derived during verification
	TotalSats int64 `gorm:"column:total_sats;not null"`
	// PaymentAddress is the address the buyer pays to, claimed from the pool
	PaymentAddress string `gorm:"column:payment_address;not null;type:text;index"`
	// PaymentReference is a ULID shown to the buyer for support lookups
	PaymentReference string             `gorm:"column:payment_reference;not null;uniqueIndex;type:text"`
	BatchID          int                `gorm:"column:batch_id;not null;index"`
	Status           domain.OrderStatus `gorm:"column:status;not null;type:text;index"`
	CreatedAt        time.Time          `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt        time.Time          `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

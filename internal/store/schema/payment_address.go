package schema

import "time"

// PaymentAddress represents the payment_addresses table - the operator-seeded
// pool of receiving addresses. An address with a non-null order_id has been
// claimed and is never reused.
type PaymentAddress struct {
	Address   string    `gorm:"column:address;primaryKey;type:text"`
	OrderID   *string   `gorm:"column:order_id;type:uuid;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the PaymentAddress model
func (PaymentAddress) TableName() string {
	return "payment_addresses"
}

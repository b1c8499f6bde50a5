package schema

import (
	"time"
)

// Batch represents the batches table - one ordered tranche of the sale with
// its own price and wallet capacity. Batches are created once at
// initialization and never deleted; counters are mutated only through the
// store's atomic operations.
type Batch struct {
	// ID is the batch position in the sale sequence; progression only moves forward
	ID int `gorm:"column:id;primaryKey"`
	// PriceSats is the price per ordinal in satoshis, fixed at initialization
	PriceSats int64 `gorm:"column:price_sats;not null"`
	// MaxWallets is the wallet capacity of the batch
	MaxWallets int `gorm:"column:max_wallets;not null"`
	// MintedWallets counts wallets that have paid; invariant: minted_wallets <= max_wallets
	MintedWallets int `gorm:"column:minted_wallets;not null;default:0"`
	// OrdinalsPerBatch is the number of ordinals a single wallet mints from this batch
	OrdinalsPerBatch int `gorm:"column:ordinals_per_batch;not null;default:1"`
	// IsSoldOut is set when minted_wallets reaches max_wallets
	IsSoldOut bool `gorm:"column:is_sold_out;not null;default:false"`
	// IsFCFS marks a first-come-first-served batch open to any whitelisted address
	IsFCFS    bool      `gorm:"column:is_fcfs;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Batch model
func (Batch) TableName() string {
	return "batches"
}

// Full reports whether the batch has reached its wallet capacity
func (b *Batch) Full() bool {
	return b.MintedWallets >= b.MaxWallets
}

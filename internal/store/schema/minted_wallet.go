package schema

import "time"

// MintedWallet represents the minted_wallets table. At most one record per
// address per batch; its existence is what blocks double-minting.
type MintedWallet struct {
	Address   string    `gorm:"column:address;primaryKey;type:text"`
	BatchID   int       `gorm:"column:batch_id;primaryKey"`
	Quantity  int       `gorm:"column:quantity;not null"`
	Timestamp time.Time `gorm:"column:timestamp;not null"`
}

// TableName specifies the table name for the MintedWallet model
func (MintedWallet) TableName() string {
	return "minted_wallets"
}

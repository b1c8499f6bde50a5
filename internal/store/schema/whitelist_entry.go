package schema

import "time"

// WhitelistEntry represents the whitelist_entries table - the single batch an
// address is pre-authorized to mint from. Address is the natural key;
// reassigning batch_id supersedes the prior assignment.
type WhitelistEntry struct {
	Address   string    `gorm:"column:address;primaryKey;type:text"`
	BatchID   int       `gorm:"column:batch_id;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the WhitelistEntry model
func (WhitelistEntry) TableName() string {
	return "whitelist_entries"
}

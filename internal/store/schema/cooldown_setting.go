package schema

import "time"

// CooldownSetting represents the cooldown_settings table - a per-batch
// override of the process-wide cooldown default.
type CooldownSetting struct {
	BatchID   int       `gorm:"column:batch_id;primaryKey"`
	Seconds   int64     `gorm:"column:seconds;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the CooldownSetting model
func (CooldownSetting) TableName() string {
	return "cooldown_settings"
}

package schema

import "time"

// CurrentBatchStateID is the primary key of the singleton row
const CurrentBatchStateID = 1

// CurrentBatchState represents the current_batch_state table - a single
// versioned row holding the active batch pointer. A non-null sold_out_at
// marks the start of the cooldown window. All writes are conditional on the
// version column.
type CurrentBatchState struct {
	ID           int        `gorm:"column:id;primaryKey"`
	CurrentBatch int        `gorm:"column:current_batch;not null"`
	SoldOutAt    *time.Time `gorm:"column:sold_out_at"`
	Version      int64      `gorm:"column:version;not null;default:0"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the CurrentBatchState model
func (CurrentBatchState) TableName() string {
	return "current_batch_state"
}

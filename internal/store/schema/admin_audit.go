package schema

import (
	"time"

	"gorm.io/datatypes"
)

// AdminAudit represents the admin_audits table. Every administrative override
// writes one row here in the same transaction as the override itself.
type AdminAudit struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Actor     string         `gorm:"column:actor;not null;type:text"`
	Action    string         `gorm:"column:action;not null;type:text;index"`
	Subject   string         `gorm:"column:subject;not null;type:text"`
	Detail    datatypes.JSON `gorm:"column:detail;type:jsonb"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the AdminAudit model
func (AdminAudit) TableName() string {
	return "admin_audits"
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditEntryModel is the GORM model for the audit_entries table
type AuditEntryModel struct {
	ID         uint           `gorm:"primaryKey;autoIncrement"`
	SID        string         `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	TenantSID  string         `gorm:"column:tenant_sid;type:varchar(50);not null;index"`
	Action     string         `gorm:"column:action;type:varchar(50);not null;index"`
	EntityType string         `gorm:"column:entity_type;type:varchar(50)"`
	EntityID   string         `gorm:"column:entity_id;type:varchar(100)"`
	Actor      string         `gorm:"column:actor;type:varchar(100)"`
	Meta       datatypes.JSON `gorm:"column:meta"`
	Timestamp  time.Time      `gorm:"column:timestamp;not null;index"`
}

// TableName returns the table name for GORM
func (AuditEntryModel) TableName() string {
	return "audit_entries"
}

package models

import "time"

// DeviceModel is the GORM model for the devices table
type DeviceModel struct {
	ID              uint       `gorm:"primaryKey;autoIncrement"`
	SID             string     `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	TenantSID       string     `gorm:"column:tenant_sid;type:varchar(50);not null;index;uniqueIndex:idx_tenant_serial"`
	Serial          string     `gorm:"column:serial;type:varchar(100);not null"`
	SerialNorm      string     `gorm:"column:serial_norm;type:varchar(100);not null;uniqueIndex:idx_tenant_serial"`
	Type            string     `gorm:"column:type;type:varchar(50);not null"`
	Status          string     `gorm:"column:status;type:varchar(20);not null;index"`
	FirmwareVersion string     `gorm:"column:firmware_version;type:varchar(50)"`
	Notes           string     `gorm:"column:notes;type:text"`
	LastSeenAt      *time.Time `gorm:"column:last_seen_at"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (DeviceModel) TableName() string {
	return "devices"
}

package models

import "time"

// ModuleEntitlementModel is the GORM model for the module_entitlements table
type ModuleEntitlementModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	TenantSID string    `gorm:"column:tenant_sid;type:varchar(50);not null;uniqueIndex:idx_tenant_module"`
	ModuleID  string    `gorm:"column:module_id;type:varchar(50);not null;uniqueIndex:idx_tenant_module"`
	Enabled   bool      `gorm:"column:enabled;default:false"`
	Tier      string    `gorm:"column:tier;type:varchar(20);not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (ModuleEntitlementModel) TableName() string {
	return "module_entitlements"
}

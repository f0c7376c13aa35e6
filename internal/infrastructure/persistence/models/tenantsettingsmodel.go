package models

import (
	"time"

	"gorm.io/datatypes"
)

// TenantSettingsModel is the GORM model for the tenant_settings table
type TenantSettingsModel struct {
	ID                   uint           `gorm:"primaryKey;autoIncrement"`
	TenantSID            string         `gorm:"column:tenant_sid;type:varchar(50);not null;uniqueIndex"`
	Region               string         `gorm:"column:region;type:varchar(10);not null"`
	DPPReadiness         bool           `gorm:"column:dpp_readiness;default:false"`
	RetentionDays        int            `gorm:"column:retention_days;default:90"`
	SamplingProfile      string         `gorm:"column:sampling_profile;type:varchar(20)"`
	NotificationChannels datatypes.JSON `gorm:"column:notification_channels"`
	WebhookURL           string         `gorm:"column:webhook_url;type:varchar(500)"`
	RequireMFAAdmins     bool           `gorm:"column:require_mfa_admins;default:false"`
	IPAllowlistEnabled   bool           `gorm:"column:ip_allowlist_enabled;default:false"`
	IPAllowlist          datatypes.JSON `gorm:"column:ip_allowlist"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (TenantSettingsModel) TableName() string {
	return "tenant_settings"
}

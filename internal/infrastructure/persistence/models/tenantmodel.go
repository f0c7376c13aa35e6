package models

import (
	"time"

	"gorm.io/datatypes"
)

// TenantModel is the GORM model for the tenants table
type TenantModel struct {
	ID               uint           `gorm:"primaryKey;autoIncrement"`
	SID              string         `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Name             string         `gorm:"column:name;type:varchar(255);not null"`
	LegalName        string         `gorm:"column:legal_name;type:varchar(255)"`
	Slug             string         `gorm:"column:slug;type:varchar(100);index"`
	CustomerType     string         `gorm:"column:customer_type;type:varchar(50);not null"`
	IndustryTags     datatypes.JSON `gorm:"column:industry_tags"`
	ContactEmail     string         `gorm:"column:contact_email;type:varchar(255)"`
	Modules          datatypes.JSON `gorm:"column:modules"`
	MVPFeatures      datatypes.JSON `gorm:"column:mvp_features"`
	Status           string         `gorm:"column:status;type:varchar(20);not null;index"`
	Region           string         `gorm:"column:region;type:varchar(10);not null"`
	RetentionDays    int            `gorm:"column:retention_days;default:90"`
	SLATier          string         `gorm:"column:sla_tier;type:varchar(20)"`
	IdentityScheme   string         `gorm:"column:identity_scheme;type:varchar(10)"`
	TrustMode        string         `gorm:"column:trust_mode;type:varchar(10)"`
	ProvisioningMode string         `gorm:"column:provisioning_mode;type:varchar(10)"`
	IngestModes      datatypes.JSON `gorm:"column:ingest_modes"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (TenantModel) TableName() string {
	return "tenants"
}

package models

import "time"

// UserModel is the GORM model for the users table
type UserModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	SID       string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	TenantSID string    `gorm:"column:tenant_sid;type:varchar(50);not null;index;uniqueIndex:idx_tenant_email"`
	FullName  string    `gorm:"column:full_name;type:varchar(255)"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_tenant_email"`
	Role      string    `gorm:"column:role;type:varchar(50);not null"`
	Status    string    `gorm:"column:status;type:varchar(20);not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

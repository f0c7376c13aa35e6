package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aayatana/internal/domain/setting"
	"aayatana/internal/infrastructure/persistence/models"
	"aayatana/internal/shared/logger"
)

// TenantSettingsRepositoryImpl implements the setting.Repository interface
type TenantSettingsRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewTenantSettingsRepository creates a new tenant settings repository instance
func NewTenantSettingsRepository(db *gorm.DB, logger logger.Interface) setting.Repository {
	return &TenantSettingsRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// GetByTenant returns a tenant's settings, nil when never saved
func (r *TenantSettingsRepositoryImpl) GetByTenant(ctx context.Context, tenantSID string) (*setting.TenantSettings, error) {
	var model models.TenantSettingsModel
	if err := r.db.WithContext(ctx).Where("tenant_sid = ?", tenantSID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get tenant settings", "tenant_sid", tenantSID, "error", err)
		return nil, fmt.Errorf("failed to get tenant settings: %w", err)
	}

	var channels []setting.NotificationChannel
	if err := fromJSON(model.NotificationChannels, &channels); err != nil {
		return nil, err
	}
	var allowlist []string
	if err := fromJSON(model.IPAllowlist, &allowlist); err != nil {
		return nil, err
	}

	return setting.Reconstruct(
		model.TenantSID,
		setting.DataRegion(model.Region),
		model.DPPReadiness,
		model.RetentionDays,
		setting.SamplingProfile(model.SamplingProfile),
		channels,
		model.WebhookURL,
		model.RequireMFAAdmins,
		model.IPAllowlistEnabled,
		allowlist,
		model.UpdatedAt,
	)
}

// Save upserts a tenant's settings
func (r *TenantSettingsRepositoryImpl) Save(ctx context.Context, s *setting.TenantSettings) error {
	channels, err := toJSON(s.NotificationChannels())
	if err != nil {
		return fmt.Errorf("failed to map notification channels: %w", err)
	}
	allowlist, err := toJSON(s.IPAllowlist())
	if err != nil {
		return fmt.Errorf("failed to map IP allowlist: %w", err)
	}

	model := &models.TenantSettingsModel{
		TenantSID:            s.TenantSID(),
		Region:               s.Region().String(),
		DPPReadiness:         s.DPPReadiness(),
		RetentionDays:        s.RetentionDays(),
		SamplingProfile:      s.SamplingProfile().String(),
		NotificationChannels: channels,
		WebhookURL:           s.WebhookURL(),
		RequireMFAAdmins:     s.RequireMFAAdmins(),
		IPAllowlistEnabled:   s.IPAllowlistEnabled(),
		IPAllowlist:          allowlist,
		UpdatedAt:            s.UpdatedAt(),
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_sid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"region", "dpp_readiness", "retention_days", "sampling_profile",
			"notification_channels", "webhook_url", "require_mfa_admins",
			"ip_allowlist_enabled", "ip_allowlist", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to save tenant settings", "tenant_sid", s.TenantSID(), "error", err)
		return fmt.Errorf("failed to save tenant settings: %w", err)
	}

	r.logger.Infow("tenant settings saved", "tenant_sid", s.TenantSID())
	return nil
}

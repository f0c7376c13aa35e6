// Package setting wires the tenant settings use cases.
package setting

import (
	"context"

	"aayatana/internal/application/setting/dto"
	"aayatana/internal/application/setting/usecases"
	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/setting"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/logger"
)

// Service exposes the per-tenant settings page.
type Service struct {
	get  *usecases.GetSettingsUseCase
	save *usecases.SaveSettingsUseCase
}

// NewService creates a new setting service
func NewService(
	settingRepo setting.Repository,
	tenantRepo tenant.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		get:  usecases.NewGetSettingsUseCase(settingRepo, tenantRepo, logger),
		save: usecases.NewSaveSettingsUseCase(settingRepo, tenantRepo, auditRepo, logger),
	}
}

// GetSettings returns the tenant's settings, defaults included.
func (s *Service) GetSettings(ctx context.Context, tenantSID string) (*dto.SettingsResponse, error) {
	return s.get.Execute(ctx, tenantSID)
}

// SaveSettings applies one settings changeset.
func (s *Service) SaveSettings(ctx context.Context, tenantSID, actor string, req dto.SaveSettingsRequest) (*dto.SettingsResponse, error) {
	return s.save.Execute(ctx, tenantSID, actor, req)
}

package usecases

import (
	"context"

	"aayatana/internal/application/setting/dto"
	"aayatana/internal/domain/setting"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/logger"
)

// GetSettingsUseCase reads a tenant's settings page, falling back to the
// defaults when nothing has been saved yet.
type GetSettingsUseCase struct {
	settingRepo setting.Repository
	tenantRepo  tenant.Repository
	logger      logger.Interface
}

// NewGetSettingsUseCase creates a new get settings use case
func NewGetSettingsUseCase(settingRepo setting.Repository, tenantRepo tenant.Repository, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingRepo: settingRepo, tenantRepo: tenantRepo, logger: logger}
}

// Execute returns the tenant's settings.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, tenantSID string) (*dto.SettingsResponse, error) {
	if _, err := uc.tenantRepo.GetBySID(ctx, tenantSID); err != nil {
		return nil, err
	}

	stored, err := uc.settingRepo.GetByTenant(ctx, tenantSID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		stored = setting.Defaults(tenantSID)
	}
	resp := dto.FromDomain(stored)
	return &resp, nil
}

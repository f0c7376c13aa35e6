package usecases

import (
	"context"

	"aayatana/internal/application/setting/dto"
	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/setting"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/constants"
	"aayatana/internal/shared/logger"
)

// SaveSettingsUseCase applies one settings changeset. The audit entry
// listing the changed keys is written only when something actually changed.
type SaveSettingsUseCase struct {
	settingRepo setting.Repository
	tenantRepo  tenant.Repository
	auditRepo   audit.Repository
	logger      logger.Interface
}

// NewSaveSettingsUseCase creates a new save settings use case
func NewSaveSettingsUseCase(
	settingRepo setting.Repository,
	tenantRepo tenant.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *SaveSettingsUseCase {
	return &SaveSettingsUseCase{
		settingRepo: settingRepo,
		tenantRepo:  tenantRepo,
		auditRepo:   auditRepo,
		logger:      logger,
	}
}

// Execute validates and stores the changeset, returning the stored state.
func (uc *SaveSettingsUseCase) Execute(ctx context.Context, tenantSID, actor string, req dto.SaveSettingsRequest) (*dto.SettingsResponse, error) {
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

	changed, err := stored.Apply(req.ToDomain())
	if err != nil {
		return nil, err
	}

	if len(changed) > 0 {
		if err := uc.settingRepo.Save(ctx, stored); err != nil {
			uc.logger.Errorw("failed to save settings", "tenant_sid", tenantSID, "error", err)
			return nil, err
		}

		entry, err := audit.NewEntry(tenantSID, constants.AuditActionSettingsUpdated,
			constants.AuditEntitySettings, tenantSID, actor, map[string]any{"changedKeys": changed})
		if err == nil {
			err = uc.auditRepo.Create(ctx, entry)
		}
		if err != nil {
			uc.logger.Errorw("failed to write settings audit entry", "tenant_sid", tenantSID, "error", err)
		}
	}

	resp := dto.FromDomain(stored)
	return &resp, nil
}

package usecases

import (
	"context"

	"aayatana/internal/application/tenant/dto"
	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/constants"
	"aayatana/internal/shared/logger"
)

// SuspendTenantUseCase pauses an active tenant.
type SuspendTenantUseCase struct {
	tenantRepo tenant.Repository
	auditRepo  audit.Repository
	logger     logger.Interface
}

// NewSuspendTenantUseCase creates a new suspend tenant use case
func NewSuspendTenantUseCase(tenantRepo tenant.Repository, auditRepo audit.Repository, logger logger.Interface) *SuspendTenantUseCase {
	return &SuspendTenantUseCase{tenantRepo: tenantRepo, auditRepo: auditRepo, logger: logger}
}

// Execute suspends the tenant and records the action.
func (uc *SuspendTenantUseCase) Execute(ctx context.Context, sid, actor string) (*dto.TenantResponse, error) {
	t, err := uc.tenantRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if err := t.Suspend(); err != nil {
		return nil, err
	}
	if err := uc.tenantRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to suspend tenant", "tenant_sid", sid, "error", err)
		return nil, err
	}

	writeAudit(ctx, uc.auditRepo, uc.logger, t.SID(),
		constants.AuditActionTenantSuspended, constants.AuditEntityTenant, t.SID(), actor, nil)

	uc.logger.Infow("tenant suspended", "tenant_sid", sid)
	resp := dto.FromDomain(t)
	return &resp, nil
}

package usecases

import (
	"context"

	"aayatana/internal/application/tenant/dto"
	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/constants"
	"aayatana/internal/shared/logger"
)

// ResumeTenantUseCase re-activates a suspended tenant.
type ResumeTenantUseCase struct {
	tenantRepo tenant.Repository
	auditRepo  audit.Repository
	logger     logger.Interface
}

// NewResumeTenantUseCase creates a new resume tenant use case
func NewResumeTenantUseCase(tenantRepo tenant.Repository, auditRepo audit.Repository, logger logger.Interface) *ResumeTenantUseCase {
	return &ResumeTenantUseCase{tenantRepo: tenantRepo, auditRepo: auditRepo, logger: logger}
}

// Execute resumes the tenant and records the action.
func (uc *ResumeTenantUseCase) Execute(ctx context.Context, sid, actor string) (*dto.TenantResponse, error) {
	t, err := uc.tenantRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if err := t.Resume(); err != nil {
		return nil, err
	}
	if err := uc.tenantRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to resume tenant", "tenant_sid", sid, "error", err)
		return nil, err
	}

	writeAudit(ctx, uc.auditRepo, uc.logger, t.SID(),
		constants.AuditActionTenantResumed, constants.AuditEntityTenant, t.SID(), actor, nil)

	uc.logger.Infow("tenant resumed", "tenant_sid", sid)
	resp := dto.FromDomain(t)
	return &resp, nil
}

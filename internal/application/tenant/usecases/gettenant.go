package usecases

import (
	"context"

	"aayatana/internal/application/tenant/dto"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/logger"
)

// GetTenantUseCase fetches a single tenant by public ID.
type GetTenantUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

// NewGetTenantUseCase creates a new get tenant use case
func NewGetTenantUseCase(tenantRepo tenant.Repository, logger logger.Interface) *GetTenantUseCase {
	return &GetTenantUseCase{tenantRepo: tenantRepo, logger: logger}
}

// Execute returns the tenant identified by sid.
func (uc *GetTenantUseCase) Execute(ctx context.Context, sid string) (*dto.TenantResponse, error) {
	t, err := uc.tenantRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}
	resp := dto.FromDomain(t)
	return &resp, nil
}

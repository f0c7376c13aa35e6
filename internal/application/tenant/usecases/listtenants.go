package usecases

import (
	"context"

	"aayatana/internal/application/tenant/dto"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/logger"
	"aayatana/internal/shared/utils"
)

// ListTenantsUseCase lists tenants with filtering and pagination.
type ListTenantsUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

// NewListTenantsUseCase creates a new list tenants use case
func NewListTenantsUseCase(tenantRepo tenant.Repository, logger logger.Interface) *ListTenantsUseCase {
	return &ListTenantsUseCase{tenantRepo: tenantRepo, logger: logger}
}

// Execute returns a page of tenants matching the filters.
func (uc *ListTenantsUseCase) Execute(ctx context.Context, req dto.ListTenantsRequest) (*dto.ListTenantsResponse, error) {
	p := utils.ValidatePagination(req.Page, req.PageSize)

	filters := tenant.ListFilters{Search: req.Search}
	if req.Status != "" {
		status := tenant.Status(req.Status)
		if !status.IsValid() {
			return nil, tenant.ErrInvalidStatus
		}
		filters.Status = &status
	}
	if req.CustomerType != "" {
		ct := tenant.CustomerType(req.CustomerType)
		if !ct.IsValid() {
			return nil, tenant.ErrInvalidCustomerType
		}
		filters.CustomerType = &ct
	}
	if req.Region != "" {
		region := tenant.Region(req.Region)
		if !region.IsValid() {
			return nil, tenant.ErrInvalidRegion
		}
		filters.Region = &region
	}

	tenants, total, err := uc.tenantRepo.List(ctx, filters, p.Offset(), p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list tenants", "error", err)
		return nil, err
	}

	items := make([]dto.TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		items = append(items, dto.FromDomain(t))
	}
	return &dto.ListTenantsResponse{
		Tenants:  items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

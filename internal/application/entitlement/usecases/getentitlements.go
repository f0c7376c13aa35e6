package usecases

import (
	"context"

	"aayatana/internal/application/entitlement/dto"
	"aayatana/internal/domain/catalog"
	"aayatana/internal/domain/entitlement"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/logger"
)

// GetEntitlementsUseCase reads a tenant's entitlement matrix. On the first
// read the default set is materialized; later reads backfill rows for
// modules added to the catalog since the set was stored.
type GetEntitlementsUseCase struct {
	catalog         *catalog.Catalog
	entitlementRepo entitlement.Repository
	tenantRepo      tenant.Repository
	logger          logger.Interface
}

// NewGetEntitlementsUseCase creates a new get entitlements use case
func NewGetEntitlementsUseCase(
	cat *catalog.Catalog,
	entitlementRepo entitlement.Repository,
	tenantRepo tenant.Repository,
	logger logger.Interface,
) *GetEntitlementsUseCase {
	return &GetEntitlementsUseCase{
		catalog:         cat,
		entitlementRepo: entitlementRepo,
		tenantRepo:      tenantRepo,
		logger:          logger,
	}
}

// Execute returns the tenant's entitlements, materializing defaults when
// nothing is stored yet.
func (uc *GetEntitlementsUseCase) Execute(ctx context.Context, tenantSID string) (*dto.EntitlementsResponse, error) {
	if _, err := uc.tenantRepo.GetBySID(ctx, tenantSID); err != nil {
		return nil, err
	}

	stored, err := uc.entitlementRepo.GetByTenant(ctx, tenantSID)
	if err != nil {
		return nil, err
	}

	var set []entitlement.ModuleEntitlement
	if len(stored) == 0 {
		set = entitlement.DefaultSet(uc.catalog)
		if err := uc.entitlementRepo.ReplaceForTenant(ctx, tenantSID, set); err != nil {
			uc.logger.Errorw("failed to materialize default entitlements", "tenant_sid", tenantSID, "error", err)
			return nil, err
		}
	} else {
		set = entitlement.MergeMissing(uc.catalog, stored)
		if len(set) != len(stored) {
			if err := uc.entitlementRepo.ReplaceForTenant(ctx, tenantSID, set); err != nil {
				uc.logger.Errorw("failed to backfill entitlements", "tenant_sid", tenantSID, "error", err)
				return nil, err
			}
		}
	}

	resp := dto.FromDomain(uc.catalog, tenantSID, set)
	return &resp, nil
}

package usecases

import (
	"context"

	"aayatana/internal/application/entitlement/dto"
	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/catalog"
	"aayatana/internal/domain/entitlement"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/constants"
	"aayatana/internal/shared/logger"
)

// SaveEntitlementsUseCase replaces a tenant's entitlement set. An audit
// entry listing the changed modules is written only when something actually
// changed.
type SaveEntitlementsUseCase struct {
	catalog         *catalog.Catalog
	entitlementRepo entitlement.Repository
	tenantRepo      tenant.Repository
	auditRepo       audit.Repository
	logger          logger.Interface
}

// NewSaveEntitlementsUseCase creates a new save entitlements use case
func NewSaveEntitlementsUseCase(
	cat *catalog.Catalog,
	entitlementRepo entitlement.Repository,
	tenantRepo tenant.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *SaveEntitlementsUseCase {
	return &SaveEntitlementsUseCase{
		catalog:         cat,
		entitlementRepo: entitlementRepo,
		tenantRepo:      tenantRepo,
		auditRepo:       auditRepo,
		logger:          logger,
	}
}

// Execute validates and stores the new set, returning the stored state.
func (uc *SaveEntitlementsUseCase) Execute(ctx context.Context, tenantSID, actor string, req dto.SaveEntitlementsRequest) (*dto.EntitlementsResponse, error) {
	if _, err := uc.tenantRepo.GetBySID(ctx, tenantSID); err != nil {
		return nil, err
	}

	next := req.ToDomain()
	if err := entitlement.Validate(uc.catalog, next); err != nil {
		return nil, err
	}

	stored, err := uc.entitlementRepo.GetByTenant(ctx, tenantSID)
	if err != nil {
		return nil, err
	}
	changed := entitlement.ChangedModules(stored, next)

	if err := uc.entitlementRepo.ReplaceForTenant(ctx, tenantSID, next); err != nil {
		uc.logger.Errorw("failed to save entitlements", "tenant_sid", tenantSID, "error", err)
		return nil, err
	}

	if len(changed) > 0 {
		names := make([]string, 0, len(changed))
		for _, id := range changed {
			names = append(names, string(id))
		}
		entry, err := audit.NewEntry(tenantSID, constants.AuditActionModulesUpdated,
			constants.AuditEntityEntitlements, tenantSID, actor, map[string]any{"changed": names})
		if err == nil {
			err = uc.auditRepo.Create(ctx, entry)
		}
		if err != nil {
			uc.logger.Errorw("failed to write entitlement audit entry", "tenant_sid", tenantSID, "error", err)
		}
	}

	resp := dto.FromDomain(uc.catalog, tenantSID, next)
	return &resp, nil
}

// Package entitlement wires the module entitlement use cases.
package entitlement

import (
	"context"

	"aayatana/internal/application/entitlement/dto"
	"aayatana/internal/application/entitlement/usecases"
	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/catalog"
	"aayatana/internal/domain/entitlement"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/logger"
)

// Service exposes the entitlement matrix of a tenant.
type Service struct {
	get  *usecases.GetEntitlementsUseCase
	save *usecases.SaveEntitlementsUseCase
}

// NewService creates a new entitlement service
func NewService(
	cat *catalog.Catalog,
	entitlementRepo entitlement.Repository,
	tenantRepo tenant.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		get:  usecases.NewGetEntitlementsUseCase(cat, entitlementRepo, tenantRepo, logger),
		save: usecases.NewSaveEntitlementsUseCase(cat, entitlementRepo, tenantRepo, auditRepo, logger),
	}
}

// GetEntitlements returns the tenant's entitlements, materializing the
// default set on first read.
func (s *Service) GetEntitlements(ctx context.Context, tenantSID string) (*dto.EntitlementsResponse, error) {
	return s.get.Execute(ctx, tenantSID)
}

// SaveEntitlements replaces the tenant's entitlement set.
func (s *Service) SaveEntitlements(ctx context.Context, tenantSID, actor string, req dto.SaveEntitlementsRequest) (*dto.EntitlementsResponse, error) {
	return s.save.Execute(ctx, tenantSID, actor, req)
}

// Package tenant wires the tenant management use cases.
package tenant

import (
	"context"

	"aayatana/internal/application/tenant/dto"
	"aayatana/internal/application/tenant/usecases"
	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/logger"
)

// Service exposes tenant listing and lifecycle operations.
type Service struct {
	list    *usecases.ListTenantsUseCase
	get     *usecases.GetTenantUseCase
	suspend *usecases.SuspendTenantUseCase
	resume  *usecases.ResumeTenantUseCase
}

// NewService creates a new tenant service
func NewService(tenantRepo tenant.Repository, auditRepo audit.Repository, logger logger.Interface) *Service {
	return &Service{
		list:    usecases.NewListTenantsUseCase(tenantRepo, logger),
		get:     usecases.NewGetTenantUseCase(tenantRepo, logger),
		suspend: usecases.NewSuspendTenantUseCase(tenantRepo, auditRepo, logger),
		resume:  usecases.NewResumeTenantUseCase(tenantRepo, auditRepo, logger),
	}
}

// ListTenants returns a filtered page of tenants.
func (s *Service) ListTenants(ctx context.Context, req dto.ListTenantsRequest) (*dto.ListTenantsResponse, error) {
	return s.list.Execute(ctx, req)
}

// GetTenant returns a tenant by public ID.
func (s *Service) GetTenant(ctx context.Context, sid string) (*dto.TenantResponse, error) {
	return s.get.Execute(ctx, sid)
}

// SuspendTenant pauses an active tenant.
func (s *Service) SuspendTenant(ctx context.Context, sid, actor string) (*dto.TenantResponse, error) {
	return s.suspend.Execute(ctx, sid, actor)
}

// ResumeTenant re-activates a suspended tenant.
func (s *Service) ResumeTenant(ctx context.Context, sid, actor string) (*dto.TenantResponse, error) {
	return s.resume.Execute(ctx, sid, actor)
}

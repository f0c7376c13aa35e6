// Package audit wires the audit trail use cases.
package audit

import (
	"context"
	"io"

	"aayatana/internal/application/audit/dto"
	"aayatana/internal/application/audit/usecases"
	"aayatana/internal/domain/audit"
	sharedConfig "aayatana/internal/shared/config"
	"aayatana/internal/shared/logger"
)

// Service exposes the tenant audit trail.
type Service struct {
	list   *usecases.ListAuditEntriesUseCase
	export *usecases.ExportAuditCSVUseCase
}

// NewService creates a new audit service
func NewService(auditRepo audit.Repository, cfg sharedConfig.AuditConfig, logger logger.Interface) *Service {
	return &Service{
		list:   usecases.NewListAuditEntriesUseCase(auditRepo, logger),
		export: usecases.NewExportAuditCSVUseCase(auditRepo, cfg.ExportPageSize, logger),
	}
}

// ListEntries returns a filtered page of the tenant's audit trail.
func (s *Service) ListEntries(ctx context.Context, tenantSID string, req dto.ListAuditRequest) (*dto.ListAuditResponse, error) {
	return s.list.Execute(ctx, tenantSID, req)
}

// ExportCSV streams the tenant's audit trail as CSV to w.
func (s *Service) ExportCSV(ctx context.Context, tenantSID string, req dto.ListAuditRequest, w io.Writer) error {
	return s.export.Execute(ctx, tenantSID, req, w)
}

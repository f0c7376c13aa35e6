package usecases

import (
	"context"

	"aayatana/internal/application/audit/dto"
	"aayatana/internal/domain/audit"
	"aayatana/internal/shared/logger"
	"aayatana/internal/shared/utils"
)

// ListAuditEntriesUseCase lists a tenant's audit trail, newest first.
type ListAuditEntriesUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

// NewListAuditEntriesUseCase creates a new list audit entries use case
func NewListAuditEntriesUseCase(auditRepo audit.Repository, logger logger.Interface) *ListAuditEntriesUseCase {
	return &ListAuditEntriesUseCase{auditRepo: auditRepo, logger: logger}
}

// Execute returns a filtered page of the tenant's audit entries.
func (uc *ListAuditEntriesUseCase) Execute(ctx context.Context, tenantSID string, req dto.ListAuditRequest) (*dto.ListAuditResponse, error) {
	p := utils.ValidatePagination(req.Page, req.PageSize)

	filters := audit.Filters{
		Action:     req.Action,
		EntityType: req.EntityType,
		Actor:      req.Actor,
	}
	entries, total, err := uc.auditRepo.ListByTenant(ctx, tenantSID, filters, p.Offset(), p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list audit entries", "tenant_sid", tenantSID, "error", err)
		return nil, err
	}

	items := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.FromDomain(e))
	}
	return &dto.ListAuditResponse{
		Entries:  items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

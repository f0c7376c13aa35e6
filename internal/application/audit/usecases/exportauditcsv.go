package usecases

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"aayatana/internal/application/audit/dto"
	"aayatana/internal/domain/audit"
	"aayatana/internal/shared/logger"
)

// ExportAuditCSVUseCase streams a tenant's full audit trail as CSV,
// paging through the store so an export never loads everything at once.
type ExportAuditCSVUseCase struct {
	auditRepo audit.Repository
	pageSize  int
	logger    logger.Interface
}

// NewExportAuditCSVUseCase creates a new export audit CSV use case
func NewExportAuditCSVUseCase(auditRepo audit.Repository, pageSize int, logger logger.Interface) *ExportAuditCSVUseCase {
	if pageSize < 1 {
		pageSize = 1000
	}
	return &ExportAuditCSVUseCase{auditRepo: auditRepo, pageSize: pageSize, logger: logger}
}

// Execute writes the CSV to w, newest entries first.
func (uc *ExportAuditCSVUseCase) Execute(ctx context.Context, tenantSID string, req dto.ListAuditRequest, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "action", "entity_type", "entity_id", "actor", "meta"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	filters := audit.Filters{
		Action:     req.Action,
		EntityType: req.EntityType,
		Actor:      req.Actor,
	}
	for offset := 0; ; offset += uc.pageSize {
		entries, _, err := uc.auditRepo.ListByTenant(ctx, tenantSID, filters, offset, uc.pageSize)
		if err != nil {
			uc.logger.Errorw("failed to read audit page for export", "tenant_sid", tenantSID, "offset", offset, "error", err)
			return err
		}
		if len(entries) == 0 {
			break
		}
		for _, e := range entries {
			meta := ""
			if len(e.Meta()) > 0 {
				raw, err := json.Marshal(e.Meta())
				if err == nil {
					meta = string(raw)
				}
			}
			record := []string{
				e.Timestamp().Format(time.RFC3339),
				e.Action(),
				e.EntityType(),
				e.EntityID(),
				e.Actor(),
				meta,
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		if len(entries) < uc.pageSize {
			break
		}
	}

	cw.Flush()
	return cw.Error()
}

package usecases

import (
	"context"

	"aayatana/internal/domain/audit"
	"aayatana/internal/shared/logger"
)

// writeAudit records an audit entry on a best effort basis. The state
// change already committed; a failed audit write is logged, not surfaced.
func writeAudit(ctx context.Context, repo audit.Repository, log logger.Interface, tenantSID, action, entityType, entityID, actor string, meta map[string]any) {
	entry, err := audit.NewEntry(tenantSID, action, entityType, entityID, actor, meta)
	if err != nil {
		log.Errorw("failed to build audit entry", "action", action, "error", err)
		return
	}
	if err := repo.Create(ctx, entry); err != nil {
		log.Errorw("failed to write audit entry", "action", action, "error", err)
	}
}

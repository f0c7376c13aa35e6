package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"aayatana/internal/domain/audit"
	"aayatana/internal/infrastructure/persistence/models"
	"aayatana/internal/shared/logger"
)

// AuditRepositoryImpl implements the audit.Repository interface
type AuditRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewAuditRepository creates a new audit repository instance
func NewAuditRepository(db *gorm.DB, logger logger.Interface) audit.Repository {
	return &AuditRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// Create appends an audit entry
func (r *AuditRepositoryImpl) Create(ctx context.Context, e *audit.Entry) error {
	meta, err := toJSON(e.Meta())
	if err != nil {
		return fmt.Errorf("failed to map audit meta: %w", err)
	}

	model := &models.AuditEntryModel{
		SID:        e.SID(),
		TenantSID:  e.TenantSID(),
		Action:     e.Action(),
		EntityType: e.EntityType(),
		EntityID:   e.EntityID(),
		Actor:      e.Actor(),
		Meta:       meta,
		Timestamp:  e.Timestamp(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create audit entry",
			"tenant_sid", e.TenantSID(),
			"action", e.Action(),
			"error", err)
		return fmt.Errorf("failed to create audit entry: %w", err)
	}

	if err := e.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set audit entry ID: %w", err)
	}
	return nil
}

// ListByTenant returns entries for a tenant, newest first, with total count
func (r *AuditRepositoryImpl) ListByTenant(ctx context.Context, tenantSID string, filters audit.Filters, offset, limit int) ([]*audit.Entry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditEntryModel{}).Where("tenant_sid = ?", tenantSID)

	if filters.Action != "" {
		query = query.Where("action = ?", filters.Action)
	}
	if filters.EntityType != "" {
		query = query.Where("entity_type = ?", filters.EntityType)
	}
	if filters.Actor != "" {
		query = query.Where("actor = ?", filters.Actor)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	var modelList []models.AuditEntryModel
	if err := query.Order("timestamp DESC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list audit entries", "tenant_sid", tenantSID, "error", err)
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*audit.Entry, 0, len(modelList))
	for i := range modelList {
		m := &modelList[i]
		var meta map[string]any
		if err := fromJSON(m.Meta, &meta); err != nil {
			r.logger.Warnw("skipping audit row with bad meta", "sid", m.SID, "error", err)
			continue
		}
		entries = append(entries, audit.Reconstruct(
			m.ID, m.SID, m.TenantSID, m.Action, m.EntityType, m.EntityID, m.Actor, meta, m.Timestamp,
		))
	}
	return entries, total, nil
}

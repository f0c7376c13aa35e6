package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"aayatana/internal/domain/catalog"
	"aayatana/internal/domain/entitlement"
	"aayatana/internal/infrastructure/persistence/models"
	"aayatana/internal/shared/logger"
)

// ModuleEntitlementRepositoryImpl implements the entitlement.Repository interface
type ModuleEntitlementRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewModuleEntitlementRepository creates a new module entitlement repository instance
func NewModuleEntitlementRepository(db *gorm.DB, logger logger.Interface) entitlement.Repository {
	return &ModuleEntitlementRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// GetByTenant returns the stored entitlements for a tenant
func (r *ModuleEntitlementRepositoryImpl) GetByTenant(ctx context.Context, tenantSID string) ([]entitlement.ModuleEntitlement, error) {
	var modelList []models.ModuleEntitlementModel
	if err := r.db.WithContext(ctx).
		Where("tenant_sid = ?", tenantSID).
		Order("module_id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get entitlements", "tenant_sid", tenantSID, "error", err)
		return nil, fmt.Errorf("failed to get entitlements: %w", err)
	}

	set := make([]entitlement.ModuleEntitlement, 0, len(modelList))
	for _, m := range modelList {
		set = append(set, entitlement.ModuleEntitlement{
			ModuleID:  catalog.ModuleID(m.ModuleID),
			Enabled:   m.Enabled,
			Tier:      entitlement.Tier(m.Tier),
			UpdatedAt: m.UpdatedAt,
		})
	}
	return set, nil
}

// ReplaceForTenant atomically replaces the tenant's entitlement set
func (r *ModuleEntitlementRepositoryImpl) ReplaceForTenant(ctx context.Context, tenantSID string, set []entitlement.ModuleEntitlement) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_sid = ?", tenantSID).
			Delete(&models.ModuleEntitlementModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear entitlements: %w", err)
		}

		for _, e := range set {
			model := models.ModuleEntitlementModel{
				TenantSID: tenantSID,
				ModuleID:  e.ModuleID.String(),
				Enabled:   e.Enabled,
				Tier:      e.Tier.String(),
			}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to store entitlement for %s: %w", e.ModuleID, err)
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to replace entitlements", "tenant_sid", tenantSID, "error", err)
		return err
	}

	r.logger.Infow("entitlements replaced", "tenant_sid", tenantSID, "count", len(set))
	return nil
}

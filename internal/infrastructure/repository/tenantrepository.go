package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"aayatana/internal/domain/catalog"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/infrastructure/persistence/models"
	"aayatana/internal/shared/errors"
	"aayatana/internal/shared/logger"
)

// TenantRepositoryImpl implements the tenant.Repository interface
type TenantRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewTenantRepository creates a new tenant repository instance
func NewTenantRepository(db *gorm.DB, logger logger.Interface) tenant.Repository {
	return &TenantRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// Create persists a new tenant
func (r *TenantRepositoryImpl) Create(ctx context.Context, t *tenant.Tenant) error {
	model, err := tenantToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map tenant: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return tenant.ErrSlugTaken
		}
		r.logger.Errorw("failed to create tenant", "sid", t.SID(), "error", err)
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set tenant ID: %w", err)
	}

	r.logger.Infow("tenant created", "sid", t.SID(), "status", t.Status().String())
	return nil
}

// Update persists changes to an existing tenant
func (r *TenantRepositoryImpl) Update(ctx context.Context, t *tenant.Tenant) error {
	model, err := tenantToModel(t)
	if err != nil {
		return fmt.Errorf("failed to map tenant: %w", err)
	}
	model.ID = t.ID()

	result := r.db.WithContext(ctx).Model(&models.TenantModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]any{
			"name":              model.Name,
			"legal_name":        model.LegalName,
			"slug":              model.Slug,
			"customer_type":     model.CustomerType,
			"industry_tags":     model.IndustryTags,
			"contact_email":     model.ContactEmail,
			"modules":           model.Modules,
			"mvp_features":      model.MVPFeatures,
			"status":            model.Status,
			"region":            model.Region,
			"retention_days":    model.RetentionDays,
			"sla_tier":          model.SLATier,
			"identity_scheme":   model.IdentityScheme,
			"trust_mode":        model.TrustMode,
			"provisioning_mode": model.ProvisioningMode,
			"ingest_modes":      model.IngestModes,
		})
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return tenant.ErrSlugTaken
		}
		r.logger.Errorw("failed to update tenant", "sid", t.SID(), "error", result.Error)
		return fmt.Errorf("failed to update tenant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return tenant.ErrTenantNotFound
	}

	return nil
}

// GetBySID finds a tenant by its public ID
func (r *TenantRepositoryImpl) GetBySID(ctx context.Context, sid string) (*tenant.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, tenant.ErrTenantNotFound
		}
		r.logger.Errorw("failed to get tenant", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return tenantToDomain(&model)
}

// GetBySlug finds a tenant by its URL slug
func (r *TenantRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	var model models.TenantModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, tenant.ErrTenantNotFound
		}
		r.logger.Errorw("failed to get tenant by slug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get tenant by slug: %w", err)
	}
	return tenantToDomain(&model)
}

// List returns tenants matching the filters with total count
func (r *TenantRepositoryImpl) List(ctx context.Context, filters tenant.ListFilters, offset, limit int) ([]*tenant.Tenant, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TenantModel{})

	if filters.Status != nil {
		query = query.Where("status = ?", filters.Status.String())
	}
	if filters.CustomerType != nil {
		query = query.Where("customer_type = ?", filters.CustomerType.String())
	}
	if filters.Region != nil {
		query = query.Where("region = ?", filters.Region.String())
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("name LIKE ? OR slug LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tenants: %w", err)
	}

	var modelList []models.TenantModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list tenants", "error", err)
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}

	tenants := make([]*tenant.Tenant, 0, len(modelList))
	for i := range modelList {
		t, err := tenantToDomain(&modelList[i])
		if err != nil {
			r.logger.Warnw("skipping unmappable tenant row", "sid", modelList[i].SID, "error", err)
			continue
		}
		tenants = append(tenants, t)
	}

	return tenants, total, nil
}

// SlugExists reports whether another tenant already holds the slug
func (r *TenantRepositoryImpl) SlugExists(ctx context.Context, slug string, excludeSID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.TenantModel{}).Where("slug = ?", slug)
	if excludeSID != "" {
		query = query.Where("sid != ?", excludeSID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check slug", "slug", slug, "error", err)
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

func tenantToModel(t *tenant.Tenant) (*models.TenantModel, error) {
	tags, err := toJSON(t.IndustryTags())
	if err != nil {
		return nil, err
	}
	mods, err := toJSON(t.Modules())
	if err != nil {
		return nil, err
	}
	mvps, err := toJSON(t.MVPFeatures())
	if err != nil {
		return nil, err
	}
	settings := t.Settings()
	ingest, err := toJSON(settings.IngestModes)
	if err != nil {
		return nil, err
	}

	return &models.TenantModel{
		SID:              t.SID(),
		Name:             t.Name(),
		LegalName:        t.LegalName(),
		Slug:             t.Slug(),
		CustomerType:     t.CustomerType().String(),
		IndustryTags:     tags,
		ContactEmail:     t.ContactEmail(),
		Modules:          mods,
		MVPFeatures:      mvps,
		Status:           t.Status().String(),
		Region:           t.Region().String(),
		RetentionDays:    settings.RetentionDays,
		SLATier:          settings.SLATier.String(),
		IdentityScheme:   settings.IdentityScheme.String(),
		TrustMode:        settings.TrustMode.String(),
		ProvisioningMode: settings.ProvisioningMode.String(),
		IngestModes:      ingest,
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
	}, nil
}

func tenantToDomain(m *models.TenantModel) (*tenant.Tenant, error) {
	var tags []tenant.IndustryTag
	if err := fromJSON(m.IndustryTags, &tags); err != nil {
		return nil, err
	}
	var mods []catalog.ModuleID
	if err := fromJSON(m.Modules, &mods); err != nil {
		return nil, err
	}
	var mvps []catalog.MVPID
	if err := fromJSON(m.MVPFeatures, &mvps); err != nil {
		return nil, err
	}
	var ingest []tenant.IngestMode
	if err := fromJSON(m.IngestModes, &ingest); err != nil {
		return nil, err
	}

	return tenant.Reconstruct(
		m.ID,
		m.SID,
		m.Name,
		m.LegalName,
		m.Slug,
		tenant.CustomerType(m.CustomerType),
		tags,
		m.ContactEmail,
		mods,
		mvps,
		tenant.Status(m.Status),
		tenant.Region(m.Region),
		tenant.Settings{
			RetentionDays:    m.RetentionDays,
			SLATier:          tenant.SLATier(m.SLATier),
			IdentityScheme:   tenant.IdentityScheme(m.IdentityScheme),
			TrustMode:        tenant.TrustMode(m.TrustMode),
			ProvisioningMode: tenant.ProvisioningMode(m.ProvisioningMode),
			IngestModes:      ingest,
		},
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func toJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return datatypes.JSON("null"), nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON column: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func fromJSON(raw datatypes.JSON, out any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to unmarshal JSON column: %w", err)
	}
	return nil
}

package setting

import "context"

// Repository defines the persistence contract for tenant settings.
type Repository interface {
	// GetByTenant returns a tenant's settings, or nil when nothing has
	// been saved yet.
	GetByTenant(ctx context.Context, tenantSID string) (*TenantSettings, error)

	// Save upserts a tenant's settings.
	Save(ctx context.Context, s *TenantSettings) error
}

package entitlement

import "context"

// Repository defines the persistence contract for module entitlements.
type Repository interface {
	// GetByTenant returns the stored entitlements for a tenant. An empty
	// slice means nothing has been materialized yet.
	GetByTenant(ctx context.Context, tenantSID string) ([]ModuleEntitlement, error)

	// ReplaceForTenant atomically replaces the tenant's entitlement set.
	ReplaceForTenant(ctx context.Context, tenantSID string, set []ModuleEntitlement) error
}

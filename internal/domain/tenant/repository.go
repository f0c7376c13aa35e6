package tenant

import "context"

// ListFilters narrows tenant listings.
type ListFilters struct {
	Status       *Status
	CustomerType *CustomerType
	Region       *Region
	Search       string // matches name or slug
}

// Repository defines the persistence contract for tenants.
type Repository interface {
	// Create persists a new tenant and assigns its database ID.
	Create(ctx context.Context, t *Tenant) error

	// Update persists changes to an existing tenant.
	Update(ctx context.Context, t *Tenant) error

	// GetBySID finds a tenant by its public ID (tnt_xxx).
	GetBySID(ctx context.Context, sid string) (*Tenant, error)

	// GetBySlug finds a tenant by its URL slug.
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)

	// List returns tenants matching the filters with total count.
	List(ctx context.Context, filters ListFilters, offset, limit int) ([]*Tenant, int64, error)

	// SlugExists reports whether any tenant other than excludeSID already
	// holds the slug.
	SlugExists(ctx context.Context, slug string, excludeSID string) (bool, error)
}

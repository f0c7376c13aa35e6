package audit

import "context"

// Filters narrows audit listings.
type Filters struct {
	Action     string
	EntityType string
	Actor      string
}

// Repository defines the persistence contract for audit entries.
type Repository interface {
	// Create appends an entry.
	Create(ctx context.Context, e *Entry) error

	// ListByTenant returns entries for a tenant, newest first, with total
	// count.
	ListByTenant(ctx context.Context, tenantSID string, filters Filters, offset, limit int) ([]*Entry, int64, error)
}

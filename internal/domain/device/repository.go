package device

import "context"

// ListFilters narrows device listings.
type ListFilters struct {
	Status *Status
	Type   *Type
	Search string // matches serial
}

// Repository defines the persistence contract for devices.
type Repository interface {
	// Create persists a new device and assigns its database ID.
	Create(ctx context.Context, d *Device) error

	// Update persists changes to an existing device.
	Update(ctx context.Context, d *Device) error

	// Delete removes a device.
	Delete(ctx context.Context, sid string) error

	// GetBySID finds a device by its public ID (dev_xxx).
	GetBySID(ctx context.Context, sid string) (*Device, error)

	// ListByTenant returns a tenant's devices, newest first, with total count.
	ListByTenant(ctx context.Context, tenantSID string, filters ListFilters, offset, limit int) ([]*Device, int64, error)

	// SerialExists reports whether the normalized serial is already
	// registered within the tenant.
	SerialExists(ctx context.Context, tenantSID, serial string) (bool, error)
}

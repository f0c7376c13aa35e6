package user

import "context"

// Repository defines the persistence contract for console users.
type Repository interface {
	// Create persists a new user and assigns its database ID.
	Create(ctx context.Context, u *User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *User) error

	// Delete removes a user.
	Delete(ctx context.Context, sid string) error

	// GetBySID finds a user by its public ID (usr_xxx).
	GetBySID(ctx context.Context, sid string) (*User, error)

	// ListByTenant returns a tenant's users with total count.
	ListByTenant(ctx context.Context, tenantSID string, offset, limit int) ([]*User, int64, error)

	// EmailExists reports whether the email is already used within the tenant.
	EmailExists(ctx context.Context, tenantSID, email string) (bool, error)
}

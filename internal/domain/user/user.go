// Package user holds the console user aggregate. Users belong to exactly
// one tenant and start life as a pending invitation.
package user

import (
	"fmt"
	"strings"
	"time"

	"aayatana/internal/shared/id"
)

// User is a tenant-scoped console user.
type User struct {
	id        uint
	sid       string // usr_xxx
	tenantSID string
	fullName  string
	email     string
	role      Role
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewUser invites a user into a tenant. Invited users are Pending until
// they accept.
func NewUser(tenantSID, fullName, email string, role Role) (*User, error) {
	if tenantSID == "" {
		return nil, fmt.Errorf("tenant SID is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	sid, err := id.NewUserID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	now := time.Now().UTC()
	return &User{
		sid:       sid,
		tenantSID: tenantSID,
		fullName:  strings.TrimSpace(fullName),
		email:     email,
		role:      role,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a user from persistence.
func Reconstruct(dbID uint, sid, tenantSID, fullName, email string, role Role, status Status, createdAt, updatedAt time.Time) (*User, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid user status: %s", status)
	}
	return &User{
		id:        dbID,
		sid:       sid,
		tenantSID: tenantSID,
		fullName:  fullName,
		email:     email,
		role:      role,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ID returns the database ID
func (u *User) ID() uint { return u.id }

// SID returns the public ID (usr_xxx)
func (u *User) SID() string { return u.sid }

// TenantSID returns the owning tenant's public ID
func (u *User) TenantSID() string { return u.tenantSID }

// FullName returns the display name
func (u *User) FullName() string { return u.fullName }

// Email returns the normalized email
func (u *User) Email() string { return u.email }

// Role returns the user's role
func (u *User) Role() Role { return u.role }

// Status returns the lifecycle status
func (u *User) Status() Status { return u.status }

// CreatedAt returns when the user was invited
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns when the user was last changed
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID sets the database ID (only for persistence layer use)
func (u *User) SetID(dbID uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if dbID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = dbID
	return nil
}

// Activate moves a pending or disabled user to Active.
func (u *User) Activate() error {
	if u.status == StatusActive {
		return ErrAlreadyActive
	}
	u.status = StatusActive
	u.updatedAt = time.Now().UTC()
	return nil
}

// Disable blocks the user from the console.
func (u *User) Disable() error {
	if u.status == StatusDisabled {
		return ErrAlreadyDisabled
	}
	u.status = StatusDisabled
	u.updatedAt = time.Now().UTC()
	return nil
}

// ChangeRole reassigns the user's role.
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}
	u.role = role
	u.updatedAt = time.Now().UTC()
	return nil
}

// Rename updates the display name.
func (u *User) Rename(fullName string) {
	u.fullName = strings.TrimSpace(fullName)
	u.updatedAt = time.Now().UTC()
}

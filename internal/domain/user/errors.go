package user

import "errors"

var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailRequired is returned when the email is missing
	ErrEmailRequired = errors.New("email is required")

	// ErrEmailTaken is returned when the email is already used within the tenant
	ErrEmailTaken = errors.New("email already in use for this tenant")

	// ErrInvalidRole is returned for an unknown role
	ErrInvalidRole = errors.New("invalid user role")

	// ErrInvalidStatus is returned for an unknown or unreachable status
	ErrInvalidStatus = errors.New("invalid user status")

	// ErrAlreadyDisabled is returned when disabling a disabled user
	ErrAlreadyDisabled = errors.New("user is already disabled")

	// ErrAlreadyActive is returned when activating an active user
	ErrAlreadyActive = errors.New("user is already active")
)

package device

import "errors"

var (
	// ErrDeviceNotFound is returned when a device is not found
	ErrDeviceNotFound = errors.New("device not found")

	// ErrSerialRequired is returned when the serial number is missing
	ErrSerialRequired = errors.New("device serial is required")

	// ErrSerialTaken is returned when the serial collides within the tenant
	ErrSerialTaken = errors.New("device serial already registered for this tenant")

	// ErrInvalidType is returned for an unknown device type
	ErrInvalidType = errors.New("invalid device type")

	// ErrInvalidStatus is returned for an unknown device status
	ErrInvalidStatus = errors.New("invalid device status")

	// ErrRevoked is returned when operating on a revoked device
	ErrRevoked = errors.New("device is revoked")
)

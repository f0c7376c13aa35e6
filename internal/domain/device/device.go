// Package device tracks the hardware fleet registered against a tenant:
// BMS units, gateways, swap station readers and telematics adapters.
package device

import (
	"fmt"
	"strings"
	"time"

	"aayatana/internal/shared/id"
)

// Device is a single piece of registered hardware. Serials are unique
// within a tenant, compared case-insensitively.
type Device struct {
	id              uint
	sid             string // dev_xxx
	tenantSID       string
	serial          string
	deviceType      Type
	status          Status
	firmwareVersion string
	notes           string
	lastSeenAt      *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewDevice registers a device. Fresh devices are Provisioned and have
// never been seen.
func NewDevice(tenantSID, serial string, deviceType Type, firmwareVersion, notes string) (*Device, error) {
	if tenantSID == "" {
		return nil, fmt.Errorf("tenant SID is required")
	}
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return nil, ErrSerialRequired
	}
	if !deviceType.IsValid() {
		return nil, ErrInvalidType
	}

	sid, err := id.NewDeviceID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate device ID: %w", err)
	}

	now := time.Now().UTC()
	return &Device{
		sid:             sid,
		tenantSID:       tenantSID,
		serial:          serial,
		deviceType:      deviceType,
		status:          StatusProvisioned,
		firmwareVersion: firmwareVersion,
		notes:           notes,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// Reconstruct rebuilds a device from persistence.
func Reconstruct(dbID uint, sid, tenantSID, serial string, deviceType Type, status Status, firmwareVersion, notes string, lastSeenAt *time.Time, createdAt, updatedAt time.Time) (*Device, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("device ID cannot be zero")
	}
	if !deviceType.IsValid() {
		return nil, ErrInvalidType
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid device status: %s", status)
	}
	return &Device{
		id:              dbID,
		sid:             sid,
		tenantSID:       tenantSID,
		serial:          serial,
		deviceType:      deviceType,
		status:          status,
		firmwareVersion: firmwareVersion,
		notes:           notes,
		lastSeenAt:      lastSeenAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

// ID returns the database ID
func (d *Device) ID() uint { return d.id }

// SID returns the public ID (dev_xxx)
func (d *Device) SID() string { return d.sid }

// TenantSID returns the owning tenant's public ID
func (d *Device) TenantSID() string { return d.tenantSID }

// Serial returns the hardware serial number
func (d *Device) Serial() string { return d.serial }

// DeviceType returns the hardware classification
func (d *Device) DeviceType() Type { return d.deviceType }

// Status returns the lifecycle status
func (d *Device) Status() Status { return d.status }

// FirmwareVersion returns the reported firmware version
func (d *Device) FirmwareVersion() string { return d.firmwareVersion }

// Notes returns free-form operator notes
func (d *Device) Notes() string { return d.notes }

// LastSeenAt returns the last telemetry contact, nil if never seen
func (d *Device) LastSeenAt() *time.Time { return d.lastSeenAt }

// CreatedAt returns when the device was registered
func (d *Device) CreatedAt() time.Time { return d.createdAt }

// UpdatedAt returns when the device was last changed
func (d *Device) UpdatedAt() time.Time { return d.updatedAt }

// SetID sets the database ID (only for persistence layer use)
func (d *Device) SetID(dbID uint) error {
	if d.id != 0 {
		return fmt.Errorf("device ID is already set")
	}
	if dbID == 0 {
		return fmt.Errorf("device ID cannot be zero")
	}
	d.id = dbID
	return nil
}

// Seen records telemetry contact and flips the device to Active. Revoked
// devices stay revoked even if they keep talking.
func (d *Device) Seen(at time.Time) error {
	if d.status == StatusRevoked {
		return ErrRevoked
	}
	at = at.UTC()
	d.lastSeenAt = &at
	d.status = StatusActive
	d.updatedAt = time.Now().UTC()
	return nil
}

// MarkOffline flags a device that stopped reporting.
func (d *Device) MarkOffline() error {
	if d.status == StatusRevoked {
		return ErrRevoked
	}
	d.status = StatusOffline
	d.updatedAt = time.Now().UTC()
	return nil
}

// Revoke permanently removes the device's trust. Revocation is terminal.
func (d *Device) Revoke() {
	d.status = StatusRevoked
	d.updatedAt = time.Now().UTC()
}

// UpdateFirmware records a new firmware version.
func (d *Device) UpdateFirmware(version string) {
	d.firmwareVersion = version
	d.updatedAt = time.Now().UTC()
}

// UpdateNotes replaces the operator notes.
func (d *Device) UpdateNotes(notes string) {
	d.notes = notes
	d.updatedAt = time.Now().UTC()
}

// NormalizeSerial is the canonical form used for uniqueness checks.
func NormalizeSerial(serial string) string {
	return strings.ToLower(strings.TrimSpace(serial))
}

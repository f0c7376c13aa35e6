// Package dto defines request and response shapes for tenant devices.
package dto

import (
	"time"

	"aayatana/internal/domain/device"
)

// DeviceResponse is the API shape of a registered device.
type DeviceResponse struct {
	SID             string     `json:"sid"`
	TenantSID       string     `json:"tenant_sid"`
	Serial          string     `json:"serial"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	FirmwareVersion string     `json:"firmware_version,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	LastSeenAt      *time.Time `json:"last_seen_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// RegisterDeviceRequest registers hardware against a tenant.
type RegisterDeviceRequest struct {
	Serial          string `json:"serial" validate:"required"`
	Type            string `json:"type" validate:"required"`
	FirmwareVersion string `json:"firmware_version"`
	Notes           string `json:"notes"`
}

// UpdateDeviceRequest edits an existing device. Status accepts Active,
// Offline, or Revoked; revocation is terminal.
type UpdateDeviceRequest struct {
	Status          *string `json:"status"`
	FirmwareVersion *string `json:"firmware_version"`
	Notes           *string `json:"notes"`
}

// ListDevicesRequest carries listing filters.
type ListDevicesRequest struct {
	Status   string `form:"status"`
	Type     string `form:"type"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ListDevicesResponse is a page of devices.
type ListDevicesResponse struct {
	Devices  []DeviceResponse `json:"devices"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// FromDomain maps a device aggregate to its API shape.
func FromDomain(d *device.Device) DeviceResponse {
	return DeviceResponse{
		SID:             d.SID(),
		TenantSID:       d.TenantSID(),
		Serial:          d.Serial(),
		Type:            d.DeviceType().String(),
		Status:          d.Status().String(),
		FirmwareVersion: d.FirmwareVersion(),
		Notes:           d.Notes(),
		LastSeenAt:      d.LastSeenAt(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

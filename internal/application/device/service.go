// Package device wires the device registry use cases.
package device

import (
	"context"

	"aayatana/internal/application/device/dto"
	"aayatana/internal/application/device/usecases"
	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/device"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/logger"
)

// Service exposes tenant-scoped device management.
type Service struct {
	register *usecases.RegisterDeviceUseCase
	list     *usecases.ListDevicesUseCase
	update   *usecases.UpdateDeviceUseCase
	delete   *usecases.DeleteDeviceUseCase
}

// NewService creates a new device service
func NewService(
	deviceRepo device.Repository,
	tenantRepo tenant.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		register: usecases.NewRegisterDeviceUseCase(deviceRepo, tenantRepo, auditRepo, logger),
		list:     usecases.NewListDevicesUseCase(deviceRepo, logger),
		update:   usecases.NewUpdateDeviceUseCase(deviceRepo, logger),
		delete:   usecases.NewDeleteDeviceUseCase(deviceRepo, logger),
	}
}

// RegisterDevice registers hardware against the tenant.
func (s *Service) RegisterDevice(ctx context.Context, tenantSID, actor string, req dto.RegisterDeviceRequest) (*dto.DeviceResponse, error) {
	return s.register.Execute(ctx, tenantSID, actor, req)
}

// ListDevices returns a filtered page of the tenant's devices.
func (s *Service) ListDevices(ctx context.Context, tenantSID string, req dto.ListDevicesRequest) (*dto.ListDevicesResponse, error) {
	return s.list.Execute(ctx, tenantSID, req)
}

// UpdateDevice edits a device's status, firmware, or notes.
func (s *Service) UpdateDevice(ctx context.Context, sid string, req dto.UpdateDeviceRequest) (*dto.DeviceResponse, error) {
	return s.update.Execute(ctx, sid, req)
}

// DeleteDevice removes a device registration.
func (s *Service) DeleteDevice(ctx context.Context, sid string) error {
	return s.delete.Execute(ctx, sid)
}

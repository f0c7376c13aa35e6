package usecases

import (
	"context"

	"aayatana/internal/application/device/dto"
	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/device"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/constants"
	"aayatana/internal/shared/logger"
)

// RegisterDeviceUseCase registers hardware against a tenant. Serials are
// unique per tenant regardless of case.
type RegisterDeviceUseCase struct {
	deviceRepo device.Repository
	tenantRepo tenant.Repository
	auditRepo  audit.Repository
	logger     logger.Interface
}

// NewRegisterDeviceUseCase creates a new register device use case
func NewRegisterDeviceUseCase(
	deviceRepo device.Repository,
	tenantRepo tenant.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *RegisterDeviceUseCase {
	return &RegisterDeviceUseCase{
		deviceRepo: deviceRepo,
		tenantRepo: tenantRepo,
		auditRepo:  auditRepo,
		logger:     logger,
	}
}

// Execute registers the device and records the action.
func (uc *RegisterDeviceUseCase) Execute(ctx context.Context, tenantSID, actor string, req dto.RegisterDeviceRequest) (*dto.DeviceResponse, error) {
	if _, err := uc.tenantRepo.GetBySID(ctx, tenantSID); err != nil {
		return nil, err
	}

	d, err := device.NewDevice(tenantSID, req.Serial, device.Type(req.Type), req.FirmwareVersion, req.Notes)
	if err != nil {
		return nil, err
	}

	exists, err := uc.deviceRepo.SerialExists(ctx, tenantSID, d.Serial())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, device.ErrSerialTaken
	}

	if err := uc.deviceRepo.Create(ctx, d); err != nil {
		uc.logger.Errorw("failed to register device", "tenant_sid", tenantSID, "serial", d.Serial(), "error", err)
		return nil, err
	}

	entry, err := audit.NewEntry(tenantSID, constants.AuditActionDeviceRegistered,
		constants.AuditEntityDevice, d.SID(), actor, map[string]any{"serial": d.Serial(), "type": d.DeviceType().String()})
	if err == nil {
		err = uc.auditRepo.Create(ctx, entry)
	}
	if err != nil {
		uc.logger.Errorw("failed to write device audit entry", "tenant_sid", tenantSID, "error", err)
	}

	uc.logger.Infow("device registered", "tenant_sid", tenantSID, "device_sid", d.SID())
	resp := dto.FromDomain(d)
	return &resp, nil
}

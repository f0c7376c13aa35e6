package usecases

import (
	"context"
	"time"

	"aayatana/internal/application/device/dto"
	"aayatana/internal/domain/device"
	"aayatana/internal/shared/logger"
)

// UpdateDeviceUseCase edits a device's status, firmware, or notes.
type UpdateDeviceUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

// NewUpdateDeviceUseCase creates a new update device use case
func NewUpdateDeviceUseCase(deviceRepo device.Repository, logger logger.Interface) *UpdateDeviceUseCase {
	return &UpdateDeviceUseCase{deviceRepo: deviceRepo, logger: logger}
}

// Execute applies the requested edits and persists them.
func (uc *UpdateDeviceUseCase) Execute(ctx context.Context, sid string, req dto.UpdateDeviceRequest) (*dto.DeviceResponse, error) {
	d, err := uc.deviceRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		switch device.Status(*req.Status) {
		case device.StatusActive:
			err = d.Seen(time.Now().UTC())
		case device.StatusOffline:
			err = d.MarkOffline()
		case device.StatusRevoked:
			d.Revoke()
		default:
			err = device.ErrInvalidStatus
		}
		if err != nil {
			return nil, err
		}
	}
	if req.FirmwareVersion != nil {
		d.UpdateFirmware(*req.FirmwareVersion)
	}
	if req.Notes != nil {
		d.UpdateNotes(*req.Notes)
	}

	if err := uc.deviceRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update device", "device_sid", sid, "error", err)
		return nil, err
	}
	resp := dto.FromDomain(d)
	return &resp, nil
}

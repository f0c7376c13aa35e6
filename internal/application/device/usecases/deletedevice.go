package usecases

import (
	"context"

	"aayatana/internal/domain/device"
	"aayatana/internal/shared/logger"
)

// DeleteDeviceUseCase removes a device registration.
type DeleteDeviceUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

// NewDeleteDeviceUseCase creates a new delete device use case
func NewDeleteDeviceUseCase(deviceRepo device.Repository, logger logger.Interface) *DeleteDeviceUseCase {
	return &DeleteDeviceUseCase{deviceRepo: deviceRepo, logger: logger}
}

// Execute deletes the device identified by sid.
func (uc *DeleteDeviceUseCase) Execute(ctx context.Context, sid string) error {
	if _, err := uc.deviceRepo.GetBySID(ctx, sid); err != nil {
		return err
	}
	if err := uc.deviceRepo.Delete(ctx, sid); err != nil {
		uc.logger.Errorw("failed to delete device", "device_sid", sid, "error", err)
		return err
	}
	uc.logger.Infow("device deleted", "device_sid", sid)
	return nil
}

package usecases

import (
	"context"

	"aayatana/internal/application/device/dto"
	"aayatana/internal/domain/device"
	"aayatana/internal/shared/logger"
	"aayatana/internal/shared/utils"
)

// ListDevicesUseCase lists a tenant's devices with filtering.
type ListDevicesUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

// NewListDevicesUseCase creates a new list devices use case
func NewListDevicesUseCase(deviceRepo device.Repository, logger logger.Interface) *ListDevicesUseCase {
	return &ListDevicesUseCase{deviceRepo: deviceRepo, logger: logger}
}

// Execute returns a page of the tenant's devices, newest first.
func (uc *ListDevicesUseCase) Execute(ctx context.Context, tenantSID string, req dto.ListDevicesRequest) (*dto.ListDevicesResponse, error) {
	p := utils.ValidatePagination(req.Page, req.PageSize)

	filters := device.ListFilters{Search: req.Search}
	if req.Status != "" {
		status := device.Status(req.Status)
		if !status.IsValid() {
			return nil, device.ErrInvalidStatus
		}
		filters.Status = &status
	}
	if req.Type != "" {
		dt := device.Type(req.Type)
		if !dt.IsValid() {
			return nil, device.ErrInvalidType
		}
		filters.Type = &dt
	}

	devices, total, err := uc.deviceRepo.ListByTenant(ctx, tenantSID, filters, p.Offset(), p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list devices", "tenant_sid", tenantSID, "error", err)
		return nil, err
	}

	items := make([]dto.DeviceResponse, 0, len(devices))
	for _, d := range devices {
		items = append(items, dto.FromDomain(d))
	}
	return &dto.ListDevicesResponse{
		Devices:  items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

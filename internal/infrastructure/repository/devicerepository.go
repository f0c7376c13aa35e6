package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"aayatana/internal/domain/device"
	"aayatana/internal/infrastructure/persistence/models"
	"aayatana/internal/shared/errors"
	"aayatana/internal/shared/logger"
)

// DeviceRepositoryImpl implements the device.Repository interface
type DeviceRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewDeviceRepository creates a new device repository instance
func NewDeviceRepository(db *gorm.DB, logger logger.Interface) device.Repository {
	return &DeviceRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// Create persists a new device
func (r *DeviceRepositoryImpl) Create(ctx context.Context, d *device.Device) error {
	model := deviceToModel(d)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return device.ErrSerialTaken
		}
		r.logger.Errorw("failed to create device", "sid", d.SID(), "error", err)
		return fmt.Errorf("failed to create device: %w", err)
	}

	if err := d.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set device ID: %w", err)
	}

	r.logger.Infow("device registered",
		"sid", d.SID(),
		"tenant_sid", d.TenantSID(),
		"serial", d.Serial(),
		"type", d.DeviceType().String())
	return nil
}

// Update persists changes to an existing device
func (r *DeviceRepositoryImpl) Update(ctx context.Context, d *device.Device) error {
	result := r.db.WithContext(ctx).Model(&models.DeviceModel{}).
		Where("id = ?", d.ID()).
		Updates(map[string]any{
			"status":           d.Status().String(),
			"firmware_version": d.FirmwareVersion(),
			"notes":            d.Notes(),
			"last_seen_at":     d.LastSeenAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update device", "sid", d.SID(), "error", result.Error)
		return fmt.Errorf("failed to update device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return device.ErrDeviceNotFound
	}
	return nil
}

// Delete removes a device
func (r *DeviceRepositoryImpl) Delete(ctx context.Context, sid string) error {
	result := r.db.WithContext(ctx).Where("sid = ?", sid).Delete(&models.DeviceModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete device", "sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return device.ErrDeviceNotFound
	}

	r.logger.Infow("device deleted", "sid", sid)
	return nil
}

// GetBySID finds a device by its public ID
func (r *DeviceRepositoryImpl) GetBySID(ctx context.Context, sid string) (*device.Device, error) {
	var model models.DeviceModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, device.ErrDeviceNotFound
		}
		r.logger.Errorw("failed to get device", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	return deviceToDomain(&model)
}

// ListByTenant returns a tenant's devices, newest first, with total count
func (r *DeviceRepositoryImpl) ListByTenant(ctx context.Context, tenantSID string, filters device.ListFilters, offset, limit int) ([]*device.Device, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.DeviceModel{}).Where("tenant_sid = ?", tenantSID)

	if filters.Status != nil {
		query = query.Where("status = ?", filters.Status.String())
	}
	if filters.Type != nil {
		query = query.Where("type = ?", filters.Type.String())
	}
	if filters.Search != "" {
		query = query.Where("serial_norm LIKE ?", "%"+device.NormalizeSerial(filters.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count devices: %w", err)
	}

	var modelList []models.DeviceModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list devices", "tenant_sid", tenantSID, "error", err)
		return nil, 0, fmt.Errorf("failed to list devices: %w", err)
	}

	devices := make([]*device.Device, 0, len(modelList))
	for i := range modelList {
		d, err := deviceToDomain(&modelList[i])
		if err != nil {
			r.logger.Warnw("skipping unmappable device row", "sid", modelList[i].SID, "error", err)
			continue
		}
		devices = append(devices, d)
	}
	return devices, total, nil
}

// SerialExists reports whether the normalized serial is already registered
// within the tenant
func (r *DeviceRepositoryImpl) SerialExists(ctx context.Context, tenantSID, serial string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.DeviceModel{}).
		Where("tenant_sid = ? AND serial_norm = ?", tenantSID, device.NormalizeSerial(serial)).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check serial", "tenant_sid", tenantSID, "error", err)
		return false, fmt.Errorf("failed to check serial: %w", err)
	}
	return count > 0, nil
}

func deviceToModel(d *device.Device) *models.DeviceModel {
	return &models.DeviceModel{
		SID:             d.SID(),
		TenantSID:       d.TenantSID(),
		Serial:          d.Serial(),
		SerialNorm:      device.NormalizeSerial(d.Serial()),
		Type:            d.DeviceType().String(),
		Status:          d.Status().String(),
		FirmwareVersion: d.FirmwareVersion(),
		Notes:           d.Notes(),
		LastSeenAt:      d.LastSeenAt(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func deviceToDomain(m *models.DeviceModel) (*device.Device, error) {
	return device.Reconstruct(
		m.ID,
		m.SID,
		m.TenantSID,
		m.Serial,
		device.Type(m.Type),
		device.Status(m.Status),
		m.FirmwareVersion,
		m.Notes,
		m.LastSeenAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

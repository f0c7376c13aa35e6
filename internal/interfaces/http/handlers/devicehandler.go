package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aayatana/internal/application/device"
	"aayatana/internal/application/device/dto"
	"aayatana/internal/interfaces/http/middleware"
	"aayatana/internal/shared/logger"
	"aayatana/internal/shared/utils"
)

// DeviceHandler serves the tenant device registry.
type DeviceHandler struct {
	deviceService *device.Service
	logger        logger.Interface
}

// NewDeviceHandler creates a new device handler
func NewDeviceHandler(deviceService *device.Service) *DeviceHandler {
	return &DeviceHandler{
		deviceService: deviceService,
		logger:        logger.NewLogger(),
	}
}

// RegisterDevice registers hardware against the tenant.
func (h *DeviceHandler) RegisterDevice(c *gin.Context) {
	var req dto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register device", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	resp, err := h.deviceService.RegisterDevice(c.Request.Context(), c.Param("tenantSID"), middleware.ActorFrom(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.CreatedResponse(c, resp, "Device registered")
}

// ListDevices returns a filtered page of the tenant's devices.
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	p := utils.ParsePagination(c)
	req := dto.ListDevicesRequest{
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		Search:   c.Query("search"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	resp, err := h.deviceService.ListDevices(c.Request.Context(), c.Param("tenantSID"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.ListSuccessResponse(c, resp.Devices, resp.Total, resp.Page, resp.PageSize)
}

// UpdateDevice edits a device's status, firmware, or notes.
func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	var req dto.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update device", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	resp, err := h.deviceService.UpdateDevice(c.Request.Context(), c.Param("deviceSID"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Device updated", resp)
}

// DeleteDevice removes a device registration.
func (h *DeviceHandler) DeleteDevice(c *gin.Context) {
	if err := h.deviceService.DeleteDevice(c.Request.Context(), c.Param("deviceSID")); err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.NoContentResponse(c)
}

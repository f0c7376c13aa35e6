package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aayatana/internal/application/setting"
	"aayatana/internal/application/setting/dto"
	"aayatana/internal/interfaces/http/middleware"
	"aayatana/internal/shared/logger"
	"aayatana/internal/shared/utils"
)

// SettingHandler serves the per-tenant settings page.
type SettingHandler struct {
	settingService *setting.Service
	logger         logger.Interface
}

// NewSettingHandler creates a new setting handler
func NewSettingHandler(settingService *setting.Service) *SettingHandler {
	return &SettingHandler{
		settingService: settingService,
		logger:         logger.NewLogger(),
	}
}

// GetSettings returns the tenant's settings, defaults included.
func (h *SettingHandler) GetSettings(c *gin.Context) {
	resp, err := h.settingService.GetSettings(c.Request.Context(), c.Param("tenantSID"))
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// SaveSettings applies one settings changeset.
func (h *SettingHandler) SaveSettings(c *gin.Context) {
	var req dto.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for save settings", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	resp, err := h.settingService.SaveSettings(c.Request.Context(), c.Param("tenantSID"), middleware.ActorFrom(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Settings saved", resp)
}

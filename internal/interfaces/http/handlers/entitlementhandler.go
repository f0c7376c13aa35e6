package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aayatana/internal/application/entitlement"
	"aayatana/internal/application/entitlement/dto"
	"aayatana/internal/interfaces/http/middleware"
	"aayatana/internal/shared/logger"
	"aayatana/internal/shared/utils"
)

// EntitlementHandler serves the per-tenant module entitlement matrix.
type EntitlementHandler struct {
	entitlementService *entitlement.Service
	logger             logger.Interface
}

// NewEntitlementHandler creates a new entitlement handler
func NewEntitlementHandler(entitlementService *entitlement.Service) *EntitlementHandler {
	return &EntitlementHandler{
		entitlementService: entitlementService,
		logger:             logger.NewLogger(),
	}
}

// GetEntitlements returns the tenant's entitlements, materializing
// defaults on first read.
func (h *EntitlementHandler) GetEntitlements(c *gin.Context) {
	resp, err := h.entitlementService.GetEntitlements(c.Request.Context(), c.Param("tenantSID"))
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// SaveEntitlements replaces the tenant's entitlement set.
func (h *EntitlementHandler) SaveEntitlements(c *gin.Context) {
	var req dto.SaveEntitlementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for save entitlements", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	resp, err := h.entitlementService.SaveEntitlements(c.Request.Context(), c.Param("tenantSID"), middleware.ActorFrom(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Entitlements saved", resp)
}

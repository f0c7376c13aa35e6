package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aayatana/internal/application/tenant"
	"aayatana/internal/application/tenant/dto"
	"aayatana/internal/interfaces/http/middleware"
	"aayatana/internal/shared/utils"
)

// TenantHandler serves tenant listing and lifecycle operations.
type TenantHandler struct {
	tenantService *tenant.Service
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService *tenant.Service) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// ListTenants returns a filtered page of tenants.
func (h *TenantHandler) ListTenants(c *gin.Context) {
	p := utils.ParsePagination(c)
	req := dto.ListTenantsRequest{
		Status:       c.Query("status"),
		CustomerType: c.Query("customer_type"),
		Region:       c.Query("region"),
		Search:       c.Query("search"),
		Page:         p.Page,
		PageSize:     p.PageSize,
	}
	resp, err := h.tenantService.ListTenants(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.ListSuccessResponse(c, resp.Tenants, resp.Total, resp.Page, resp.PageSize)
}

// GetTenant returns a tenant by public ID.
func (h *TenantHandler) GetTenant(c *gin.Context) {
	resp, err := h.tenantService.GetTenant(c.Request.Context(), c.Param("tenantSID"))
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// SuspendTenant pauses an active tenant.
func (h *TenantHandler) SuspendTenant(c *gin.Context) {
	resp, err := h.tenantService.SuspendTenant(c.Request.Context(), c.Param("tenantSID"), middleware.ActorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Tenant suspended", resp)
}

// ResumeTenant re-activates a suspended tenant.
func (h *TenantHandler) ResumeTenant(c *gin.Context) {
	resp, err := h.tenantService.ResumeTenant(c.Request.Context(), c.Param("tenantSID"), middleware.ActorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Tenant resumed", resp)
}

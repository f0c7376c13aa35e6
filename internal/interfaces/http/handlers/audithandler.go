package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aayatana/internal/application/audit"
	"aayatana/internal/application/audit/dto"
	"aayatana/internal/shared/logger"
	"aayatana/internal/shared/utils"
)

// AuditHandler serves the tenant audit trail.
type AuditHandler struct {
	auditService *audit.Service
	logger       logger.Interface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *audit.Service) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
		logger:       logger.NewLogger(),
	}
}

// ListEntries returns a filtered page of audit entries, newest first.
func (h *AuditHandler) ListEntries(c *gin.Context) {
	p := utils.ParsePagination(c)
	req := dto.ListAuditRequest{
		Action:     c.Query("action"),
		EntityType: c.Query("entity_type"),
		Actor:      c.Query("actor"),
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
	resp, err := h.auditService.ListEntries(c.Request.Context(), c.Param("tenantSID"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, translateError(err))
		return
	}
	utils.ListSuccessResponse(c, resp.Entries, resp.Total, resp.Page, resp.PageSize)
}

// ExportCSV streams the audit trail as a CSV download.
func (h *AuditHandler) ExportCSV(c *gin.Context) {
	tenantSID := c.Param("tenantSID")
	req := dto.ListAuditRequest{
		Action:     c.Query("action"),
		EntityType: c.Query("entity_type"),
		Actor:      c.Query("actor"),
	}

	filename := fmt.Sprintf("audit-%s-%s.csv", tenantSID, time.Now().UTC().Format("20060102"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := h.auditService.ExportCSV(c.Request.Context(), tenantSID, req, c.Writer); err != nil {
		// Headers are already out; all that is left is logging.
		h.logger.Errorw("audit CSV export failed", "tenant_sid", tenantSID, "error", err)
	}
}

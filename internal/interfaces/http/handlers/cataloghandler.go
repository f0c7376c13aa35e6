package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aayatana/internal/application/catalog"
	"aayatana/internal/shared/utils"
)

// CatalogHandler serves the static product catalog.
type CatalogHandler struct {
	catalogService *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCatalog returns every module and MVP feature pack.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.catalogService.GetCatalog())
}

// Package catalog exposes the static product catalog to the API.
package catalog

import (
	"aayatana/internal/application/catalog/dto"
	"aayatana/internal/domain/catalog"
)

// Service serves the immutable module and feature pack catalog.
type Service struct {
	catalog *catalog.Catalog
}

// NewService creates a new catalog service
func NewService(cat *catalog.Catalog) *Service {
	return &Service{catalog: cat}
}

// GetCatalog returns every module and MVP feature pack.
func (s *Service) GetCatalog() dto.CatalogResponse {
	return dto.FromDomain(s.catalog)
}

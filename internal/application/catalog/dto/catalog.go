// Package dto defines the API shape of the product catalog.
package dto

import "aayatana/internal/domain/catalog"

// ModuleItem is one catalog module.
type ModuleItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MVPItem is one MVP feature pack with its module dependencies.
type MVPItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	RequiredModules []string `json:"required_modules"`
	DataVolume      string   `json:"data_volume"`
}

// CatalogResponse is the full static catalog.
type CatalogResponse struct {
	Modules []ModuleItem `json:"modules"`
	MVPs    []MVPItem    `json:"mvps"`
}

// FromDomain maps the catalog to its API shape.
func FromDomain(cat *catalog.Catalog) CatalogResponse {
	modules := make([]ModuleItem, 0, len(cat.Modules()))
	for _, m := range cat.Modules() {
		modules = append(modules, ModuleItem{
			ID:          string(m.ID),
			Name:        m.Name,
			Description: m.Description,
			Icon:        string(m.Icon),
		})
	}
	mvps := make([]MVPItem, 0, len(cat.MVPs()))
	for _, m := range cat.MVPs() {
		required := make([]string, 0, len(m.RequiredModules))
		for _, r := range m.RequiredModules {
			required = append(required, string(r))
		}
		mvps = append(mvps, MVPItem{
			ID:              string(m.ID),
			Name:            m.Name,
			Description:     m.Description,
			RequiredModules: required,
			DataVolume:      string(m.DataVolume),
		})
	}
	return CatalogResponse{Modules: modules, MVPs: mvps}
}

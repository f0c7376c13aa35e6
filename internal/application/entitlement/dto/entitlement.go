// Package dto defines request and response shapes for module entitlements.
package dto

import (
	"time"

	"aayatana/internal/domain/catalog"
	"aayatana/internal/domain/entitlement"
)

// EntitlementItem is one module's entitlement row.
type EntitlementItem struct {
	ModuleID   string    `json:"module_id"`
	ModuleName string    `json:"module_name"`
	Enabled    bool      `json:"enabled"`
	Tier       string    `json:"tier"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EntitlementsResponse is the full entitlement set of a tenant.
type EntitlementsResponse struct {
	TenantSID    string            `json:"tenant_sid"`
	Entitlements []EntitlementItem `json:"entitlements"`
}

// SaveEntitlementsRequest replaces a tenant's entitlement set.
type SaveEntitlementsRequest struct {
	Entitlements []SaveEntitlementItem `json:"entitlements" validate:"required,dive"`
}

// SaveEntitlementItem is one row of a save request.
type SaveEntitlementItem struct {
	ModuleID string `json:"module_id" validate:"required"`
	Enabled  bool   `json:"enabled"`
	Tier     string `json:"tier" validate:"required"`
}

// FromDomain maps an entitlement set to the API shape, resolving module
// display names from the catalog.
func FromDomain(cat *catalog.Catalog, tenantSID string, set []entitlement.ModuleEntitlement) EntitlementsResponse {
	items := make([]EntitlementItem, 0, len(set))
	for _, e := range set {
		name := string(e.ModuleID)
		if mod, ok := cat.Module(e.ModuleID); ok {
			name = mod.Name
		}
		items = append(items, EntitlementItem{
			ModuleID:   string(e.ModuleID),
			ModuleName: name,
			Enabled:    e.Enabled,
			Tier:       e.Tier.String(),
			UpdatedAt:  e.UpdatedAt,
		})
	}
	return EntitlementsResponse{TenantSID: tenantSID, Entitlements: items}
}

// ToDomain maps a save request into the domain shape.
func (r SaveEntitlementsRequest) ToDomain() []entitlement.ModuleEntitlement {
	now := time.Now().UTC()
	set := make([]entitlement.ModuleEntitlement, 0, len(r.Entitlements))
	for _, item := range r.Entitlements {
		set = append(set, entitlement.ModuleEntitlement{
			ModuleID:  catalog.ModuleID(item.ModuleID),
			Enabled:   item.Enabled,
			Tier:      entitlement.Tier(item.Tier),
			UpdatedAt: now,
		})
	}
	return set
}

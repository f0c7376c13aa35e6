package onboarding

import (
	"aayatana/internal/domain/catalog"
	"aayatana/internal/domain/tenant"
)

// VolumeTier buckets the projected telemetry volume.
type VolumeTier string

const (
	VolumeTierLow    VolumeTier = "Low"
	VolumeTierMedium VolumeTier = "Medium"
	VolumeTierHigh   VolumeTier = "High"
)

// String returns the string representation of the volume tier.
func (v VolumeTier) String() string { return string(v) }

// Pricing policy for the monthly estimate, in USD.
const (
	baseMonthlyCost = 199
	perModuleCost   = 50
	perFeaturePack  = 20
	highTierFloor   = 8
	mediumTierFloor = 4
)

// Impact summarizes the resource footprint of the current selection: a
// storage tier, a monthly cost estimate, the integrations the tenant will
// need, and the roles worth provisioning.
type Impact struct {
	VolumeScore      int
	VolumeTier       VolumeTier
	MonthlyEstimate  int
	Integrations     []string
	RecommendedRoles []string
	Warnings         []string
}

// EstimateImpact recomputes the impact panel from the wizard state. The
// result is a pure function of the state, so callers recompute on every
// change rather than caching.
func EstimateImpact(cat *catalog.Catalog, s *State) Impact {
	sel := s.Selection()

	score := 0
	for _, id := range sel.MVPs() {
		if def, ok := cat.MVP(id); ok {
			score += def.DataVolume.Weight()
		}
	}

	tier := VolumeTierLow
	switch {
	case score > highTierFloor:
		tier = VolumeTierHigh
	case score > mediumTierFloor:
		tier = VolumeTierMedium
	}

	roles := []string{"Tenant Admin"}
	if sel.HasModule(catalog.ModuleEcoTrace360) {
		roles = append(roles, "Ops Manager")
	}
	if sel.HasModule(catalog.ModuleEcoSense360) {
		roles = append(roles, "Data Analyst")
	}
	if s.ProvisioningMode() != tenant.ProvisioningAPI && s.TrustMode() != tenant.TrustExternal {
		roles = append(roles, "Technician")
	}

	var integrations []string
	if s.TrustMode() == tenant.TrustExternal {
		// External trust makes device-level integrations moot; the tenant
		// pushes through the generic ingest channels instead.
		integrations = append(integrations, "API/MQTT/File")
	} else if sel.HasMVP(catalog.MVPLocationGeofence) {
		integrations = append(integrations, "GPS/Telematics")
	}
	if sel.HasMVP(catalog.MVPSwapAuthHandshake) {
		integrations = append(integrations, "Swap Network")
	}

	var warnings []string
	if s.TrustMode() == tenant.TrustExternal && sel.HasMVP(catalog.MVPSwapAuthHandshake) {
		warnings = append(warnings, "Swap Auth & Handshake needs device-level identity, which external trust mode does not provide")
	}

	return Impact{
		VolumeScore:      score,
		VolumeTier:       tier,
		MonthlyEstimate:  baseMonthlyCost + sel.ModuleCount()*perModuleCost + sel.MVPCount()*perFeaturePack,
		Integrations:     integrations,
		RecommendedRoles: roles,
		Warnings:         warnings,
	}
}

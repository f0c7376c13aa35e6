// Package entitlement manages which platform modules a tenant may use and
// at which commercial tier.
package entitlement

import (
	"time"

	"aayatana/internal/domain/catalog"
)

// Tier is the commercial tier a module is sold at.
type Tier string

const (
	TierBasic      Tier = "Basic"
	TierPro        Tier = "Pro"
	TierEnterprise Tier = "Enterprise"
)

// IsValid checks whether the tier is known
func (t Tier) IsValid() bool {
	switch t {
	case TierBasic, TierPro, TierEnterprise:
		return true
	}
	return false
}

// String returns the string representation
func (t Tier) String() string { return string(t) }

// ModuleEntitlement records whether a tenant may use a module and at which
// tier.
type ModuleEntitlement struct {
	ModuleID  catalog.ModuleID
	Enabled   bool
	Tier      Tier
	UpdatedAt time.Time
}

// DefaultSet returns the entitlements a tenant starts with: every catalog
// module present, only EcoTrace360 enabled, everything at Basic.
func DefaultSet(cat *catalog.Catalog) []ModuleEntitlement {
	now := time.Now().UTC()
	mods := cat.Modules()
	out := make([]ModuleEntitlement, 0, len(mods))
	for _, m := range mods {
		out = append(out, ModuleEntitlement{
			ModuleID:  m.ID,
			Enabled:   m.ID == catalog.ModuleEcoTrace360,
			Tier:      TierBasic,
			UpdatedAt: now,
		})
	}
	return out
}

// MergeMissing appends disabled Basic entries for catalog modules the
// stored set predates, so new modules show up without a migration.
func MergeMissing(cat *catalog.Catalog, stored []ModuleEntitlement) []ModuleEntitlement {
	existing := make(map[catalog.ModuleID]struct{}, len(stored))
	for _, e := range stored {
		existing[e.ModuleID] = struct{}{}
	}
	now := time.Now().UTC()
	out := stored
	for _, m := range cat.Modules() {
		if _, ok := existing[m.ID]; ok {
			continue
		}
		out = append(out, ModuleEntitlement{
			ModuleID:  m.ID,
			Enabled:   false,
			Tier:      TierBasic,
			UpdatedAt: now,
		})
	}
	return out
}

// ChangedModules compares an incoming set against the stored one and
// returns the module ids whose enabled flag or tier differ. Modules with no
// stored counterpart count as changed.
func ChangedModules(stored, next []ModuleEntitlement) []catalog.ModuleID {
	old := make(map[catalog.ModuleID]ModuleEntitlement, len(stored))
	for _, e := range stored {
		old[e.ModuleID] = e
	}

	var changed []catalog.ModuleID
	for _, n := range next {
		o, ok := old[n.ModuleID]
		if !ok || o.Enabled != n.Enabled || o.Tier != n.Tier {
			changed = append(changed, n.ModuleID)
		}
	}
	return changed
}

// Validate rejects unknown modules, duplicate modules and unknown tiers.
func Validate(cat *catalog.Catalog, set []ModuleEntitlement) error {
	seen := make(map[catalog.ModuleID]struct{}, len(set))
	for _, e := range set {
		if !cat.HasModule(e.ModuleID) {
			return ErrUnknownModule
		}
		if _, dup := seen[e.ModuleID]; dup {
			return ErrDuplicateModule
		}
		seen[e.ModuleID] = struct{}{}
		if !e.Tier.IsValid() {
			return ErrInvalidTier
		}
	}
	return nil
}

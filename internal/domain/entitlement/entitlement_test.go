package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aayatana/internal/domain/catalog"
)

func TestDefaultSet(t *testing.T) {
	set := DefaultSet(catalog.Default())
	require.Len(t, set, 6)

	for _, e := range set {
		assert.Equal(t, TierBasic, e.Tier)
		if e.ModuleID == catalog.ModuleEcoTrace360 {
			assert.True(t, e.Enabled, "EcoTrace360 should be enabled by default")
		} else {
			assert.False(t, e.Enabled, "%s should be disabled by default", e.ModuleID)
		}
	}
}

func TestMergeMissing(t *testing.T) {
	cat := catalog.Default()
	partial := []ModuleEntitlement{
		{ModuleID: catalog.ModuleVoltEdge, Enabled: true, Tier: TierPro},
	}

	merged := MergeMissing(cat, partial)
	require.Len(t, merged, 6)
	assert.Equal(t, catalog.ModuleVoltEdge, merged[0].ModuleID)
	assert.True(t, merged[0].Enabled)
	assert.Equal(t, TierPro, merged[0].Tier)

	for _, e := range merged[1:] {
		assert.False(t, e.Enabled)
		assert.Equal(t, TierBasic, e.Tier)
	}
}

func TestChangedModules(t *testing.T) {
	stored := []ModuleEntitlement{
		{ModuleID: catalog.ModuleVoltEdge, Enabled: true, Tier: TierBasic},
		{ModuleID: catalog.ModuleEcoTrace360, Enabled: true, Tier: TierBasic},
	}

	tests := []struct {
		name string
		next []ModuleEntitlement
		want []catalog.ModuleID
	}{
		{
			name: "identical set reports nothing",
			next: stored,
			want: nil,
		},
		{
			name: "enabled flip",
			next: []ModuleEntitlement{
				{ModuleID: catalog.ModuleVoltEdge, Enabled: false, Tier: TierBasic},
				{ModuleID: catalog.ModuleEcoTrace360, Enabled: true, Tier: TierBasic},
			},
			want: []catalog.ModuleID{catalog.ModuleVoltEdge},
		},
		{
			name: "tier change",
			next: []ModuleEntitlement{
				{ModuleID: catalog.ModuleVoltEdge, Enabled: true, Tier: TierEnterprise},
				{ModuleID: catalog.ModuleEcoTrace360, Enabled: true, Tier: TierBasic},
			},
			want: []catalog.ModuleID{catalog.ModuleVoltEdge},
		},
		{
			name: "new module counts as changed",
			next: []ModuleEntitlement{
				{ModuleID: catalog.ModuleVoltEdge, Enabled: true, Tier: TierBasic},
				{ModuleID: catalog.ModuleEcoTrace360, Enabled: true, Tier: TierBasic},
				{ModuleID: catalog.ModuleVoltPack, Enabled: true, Tier: TierBasic},
			},
			want: []catalog.ModuleID{catalog.ModuleVoltPack},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChangedModules(stored, tt.next))
		})
	}
}

func TestValidate(t *testing.T) {
	cat := catalog.Default()

	assert.NoError(t, Validate(cat, DefaultSet(cat)))

	assert.ErrorIs(t, Validate(cat, []ModuleEntitlement{
		{ModuleID: "NotAModule", Tier: TierBasic},
	}), ErrUnknownModule)

	assert.ErrorIs(t, Validate(cat, []ModuleEntitlement{
		{ModuleID: catalog.ModuleVoltEdge, Tier: TierBasic},
		{ModuleID: catalog.ModuleVoltEdge, Tier: TierBasic},
	}), ErrDuplicateModule)

	assert.ErrorIs(t, Validate(cat, []ModuleEntitlement{
		{ModuleID: catalog.ModuleVoltEdge, Tier: Tier("Platinum")},
	}), ErrInvalidTier)
}

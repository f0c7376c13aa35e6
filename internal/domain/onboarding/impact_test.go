package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aayatana/internal/domain/catalog"
	"aayatana/internal/domain/tenant"
)

func TestEstimateImpactCost(t *testing.T) {
	cat := catalog.Default()

	t.Run("empty selection is base price", func(t *testing.T) {
		s := NewState(cat)
		impact := EstimateImpact(cat, s)
		assert.Equal(t, 199, impact.MonthlyEstimate)
	})

	t.Run("two modules three packs", func(t *testing.T) {
		s := NewState(cat)
		s.Selection().ToggleMVP(catalog.MVPRealtimeMonitoring) // pulls VoltEdge + EcoTrace360
		s.Selection().ToggleMVP(catalog.MVPAbuseTamperAlerts)
		s.Selection().ToggleMVP(catalog.MVPLineageViewer)
		require.Equal(t, 2, s.Selection().ModuleCount())
		require.Equal(t, 3, s.Selection().MVPCount())

		impact := EstimateImpact(cat, s)
		assert.Equal(t, 199+2*50+3*20, impact.MonthlyEstimate)
		assert.Equal(t, 359, impact.MonthlyEstimate)
	})
}

func TestEstimateImpactVolumeTier(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name  string
		mvps  []catalog.MVPID
		score int
		tier  VolumeTier
	}{
		{"no packs", nil, 0, VolumeTierLow},
		{"one low pack", []catalog.MVPID{catalog.MVPSwapAuthHandshake}, 1, VolumeTierLow},
		{"exactly four stays low", []catalog.MVPID{catalog.MVPRealtimeMonitoring, catalog.MVPSwapAuthHandshake}, 4, VolumeTierLow},
		{"five is medium", []catalog.MVPID{catalog.MVPRealtimeMonitoring, catalog.MVPAbuseTamperAlerts}, 5, VolumeTierMedium},
		{"exactly eight stays medium", []catalog.MVPID{catalog.MVPRealtimeMonitoring, catalog.MVPLocationGeofence, catalog.MVPAbuseTamperAlerts}, 8, VolumeTierMedium},
		{"nine is high", []catalog.MVPID{catalog.MVPRealtimeMonitoring, catalog.MVPLocationGeofence, catalog.MVPAbuseTamperAlerts, catalog.MVPSwapAuthHandshake}, 9, VolumeTierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(cat)
			for _, id := range tt.mvps {
				s.Selection().ToggleMVP(id)
			}
			impact := EstimateImpact(cat, s)
			assert.Equal(t, tt.score, impact.VolumeScore)
			assert.Equal(t, tt.tier, impact.VolumeTier)
		})
	}
}

func TestEstimateImpactRoles(t *testing.T) {
	cat := catalog.Default()

	t.Run("tenant admin is always recommended", func(t *testing.T) {
		s := NewState(cat)
		impact := EstimateImpact(cat, s)
		assert.Equal(t, []string{"Tenant Admin"}, impact.RecommendedRoles)
	})

	t.Run("module driven roles", func(t *testing.T) {
		s := NewState(cat)
		s.Selection().ToggleModule(catalog.ModuleEcoTrace360)
		s.Selection().ToggleModule(catalog.ModuleEcoSense360)
		impact := EstimateImpact(cat, s)
		assert.Contains(t, impact.RecommendedRoles, "Ops Manager")
		assert.Contains(t, impact.RecommendedRoles, "Data Analyst")
	})

	t.Run("technician needs managed trust and non-API provisioning", func(t *testing.T) {
		s := NewState(cat)
		require.NoError(t, s.SetTrustMode(tenant.TrustAayatana))
		impact := EstimateImpact(cat, s)
		assert.Contains(t, impact.RecommendedRoles, "Technician")

		require.NoError(t, s.SetProvisioningMode(tenant.ProvisioningAPI))
		impact = EstimateImpact(cat, s)
		assert.NotContains(t, impact.RecommendedRoles, "Technician")

		require.NoError(t, s.SetTrustMode(tenant.TrustExternal))
		impact = EstimateImpact(cat, s)
		assert.NotContains(t, impact.RecommendedRoles, "Technician")
	})
}

func TestEstimateImpactIntegrations(t *testing.T) {
	cat := catalog.Default()

	t.Run("external trust collapses to generic ingest", func(t *testing.T) {
		s := NewState(cat)
		require.NoError(t, s.SetTrustMode(tenant.TrustExternal))
		s.Selection().ToggleMVP(catalog.MVPLocationGeofence)
		impact := EstimateImpact(cat, s)
		assert.Equal(t, []string{"API/MQTT/File"}, impact.Integrations)
	})

	t.Run("managed trust surfaces telematics", func(t *testing.T) {
		s := NewState(cat)
		require.NoError(t, s.SetTrustMode(tenant.TrustHybrid))
		s.Selection().ToggleMVP(catalog.MVPLocationGeofence)
		impact := EstimateImpact(cat, s)
		assert.Equal(t, []string{"GPS/Telematics"}, impact.Integrations)
	})

	t.Run("swap network rides along", func(t *testing.T) {
		s := NewState(cat)
		require.NoError(t, s.SetTrustMode(tenant.TrustExternal))
		s.Selection().ToggleMVP(catalog.MVPSwapAuthHandshake)
		impact := EstimateImpact(cat, s)
		assert.Equal(t, []string{"API/MQTT/File", "Swap Network"}, impact.Integrations)
	})

	t.Run("nothing specific", func(t *testing.T) {
		s := NewState(cat)
		require.NoError(t, s.SetTrustMode(tenant.TrustAayatana))
		impact := EstimateImpact(cat, s)
		assert.Empty(t, impact.Integrations)
	})
}

func TestEstimateImpactWarnings(t *testing.T) {
	cat := catalog.Default()

	s := NewState(cat)
	require.NoError(t, s.SetTrustMode(tenant.TrustExternal))
	s.Selection().ToggleMVP(catalog.MVPSwapAuthHandshake)
	assert.Len(t, EstimateImpact(cat, s).Warnings, 1)

	// Managed trust provides device identity, so the warning clears.
	require.NoError(t, s.SetTrustMode(tenant.TrustHybrid))
	assert.Empty(t, EstimateImpact(cat, s).Warnings)
}

func TestSlugCheckStaleness(t *testing.T) {
	c := NewSlugCheck()
	assert.Equal(t, SlugUnknown, c.Result())

	seq1 := c.Begin("acme")
	seq2 := c.Begin("acme-batteries")

	// The older check resolving late must not clobber the newer one.
	assert.False(t, c.Complete(seq1, false))
	assert.Equal(t, SlugUnknown, c.Result())

	assert.True(t, c.Complete(seq2, true))
	assert.Equal(t, SlugAvailable, c.Result())
	assert.Equal(t, "acme-batteries", c.Slug())

	seq3 := c.Begin("taken-slug")
	assert.True(t, c.Complete(seq3, false))
	assert.Equal(t, SlugTaken, c.Result())
}

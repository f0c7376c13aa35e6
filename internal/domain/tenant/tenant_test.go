package tenant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aayatana/internal/domain/catalog"
)

func TestNewStub(t *testing.T) {
	stub, err := NewStub()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stub.SID(), "tnt_"))
	assert.Equal(t, "New Tenant", stub.Name())
	assert.Equal(t, StatusDraft, stub.Status())
	assert.Equal(t, RegionIndia, stub.Region())
	assert.True(t, stub.IsDraft())
	assert.Equal(t, 90, stub.Settings().RetentionDays)
	assert.Equal(t, SLABasic, stub.Settings().SLATier)
}

func TestCompleteOnboarding(t *testing.T) {
	fields := CommitFields{
		Name:         "Acme Batteries",
		LegalName:    "Acme Batteries Pvt Ltd",
		Slug:         "acme-batteries",
		CustomerType: CustomerTypeBatteryManufacturer,
		IndustryTags: []IndustryTag{IndustryEV2W},
		ContactEmail: "ops@acme.example",
		Modules:      []catalog.ModuleID{catalog.ModuleEcoTrace360},
		MVPFeatures:  []catalog.MVPID{catalog.MVPRealtimeMonitoring},
		Region:       RegionIndia,
		Settings:     DefaultSettings(),
	}

	t.Run("activates a draft", func(t *testing.T) {
		stub, err := NewStub()
		require.NoError(t, err)

		require.NoError(t, stub.CompleteOnboarding(fields))
		assert.Equal(t, StatusActive, stub.Status())
		assert.Equal(t, "Acme Batteries", stub.Name())
		assert.Equal(t, "acme-batteries", stub.Slug())
		assert.Equal(t, []catalog.ModuleID{catalog.ModuleEcoTrace360}, stub.Modules())
	})

	t.Run("rejects a non-draft", func(t *testing.T) {
		stub, err := NewStub()
		require.NoError(t, err)
		require.NoError(t, stub.CompleteOnboarding(fields))

		err = stub.CompleteOnboarding(fields)
		assert.ErrorIs(t, err, ErrNotDraft)
	})

	t.Run("requires a name", func(t *testing.T) {
		stub, err := NewStub()
		require.NoError(t, err)

		bad := fields
		bad.Name = "   "
		err = stub.CompleteOnboarding(bad)
		assert.ErrorIs(t, err, ErrNameRequired)
		assert.Equal(t, StatusDraft, stub.Status())
	})
}

func TestSuspendResume(t *testing.T) {
	active := func(t *testing.T) *Tenant {
		t.Helper()
		stub, err := NewStub()
		require.NoError(t, err)
		require.NoError(t, stub.CompleteOnboarding(CommitFields{Name: "T", Settings: DefaultSettings()}))
		return stub
	}

	t.Run("suspend then resume", func(t *testing.T) {
		tn := active(t)
		require.NoError(t, tn.Suspend())
		assert.Equal(t, StatusSuspended, tn.Status())
		require.NoError(t, tn.Resume())
		assert.Equal(t, StatusActive, tn.Status())
	})

	t.Run("cannot suspend a draft", func(t *testing.T) {
		stub, err := NewStub()
		require.NoError(t, err)
		assert.ErrorIs(t, stub.Suspend(), ErrNotActive)
	})

	t.Run("cannot resume an active tenant", func(t *testing.T) {
		tn := active(t)
		assert.ErrorIs(t, tn.Resume(), ErrNotSuspended)
	})
}

func TestUpdateSettings(t *testing.T) {
	stub, err := NewStub()
	require.NoError(t, err)
	require.NoError(t, stub.CompleteOnboarding(CommitFields{Name: "T", Settings: DefaultSettings()}))

	t.Run("reports changed keys", func(t *testing.T) {
		next := stub.Settings()
		next.RetentionDays = 365
		next.SLATier = SLAPro

		changed, err := stub.UpdateSettings(next)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"retentionDays", "slaTier"}, changed)
		assert.Equal(t, 365, stub.Settings().RetentionDays)
	})

	t.Run("no-op when nothing changed", func(t *testing.T) {
		changed, err := stub.UpdateSettings(stub.Settings())
		require.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("rejects invalid retention", func(t *testing.T) {
		next := stub.Settings()
		next.RetentionDays = 45
		_, err := stub.UpdateSettings(next)
		assert.Error(t, err)
	})
}

func TestSettingsValidate(t *testing.T) {
	t.Run("external trust needs an ingest mode", func(t *testing.T) {
		s := DefaultSettings()
		s.IngestModes = nil
		assert.Error(t, s.Validate())
	})

	t.Run("platform trust needs a provisioning mode", func(t *testing.T) {
		s := DefaultSettings()
		s.TrustMode = TrustHybrid
		s.ProvisioningMode = ProvisioningMode("DRONE_DROP")
		assert.Error(t, s.Validate())
	})

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, DefaultSettings().Validate())
	})
}

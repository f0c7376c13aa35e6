package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aayatana/internal/domain/catalog"
	"aayatana/internal/domain/tenant"
)

func newWizard(t *testing.T) *Wizard {
	t.Helper()
	return NewWizard(catalog.Default())
}

func TestWizardNavigation(t *testing.T) {
	t.Run("next requires a name", func(t *testing.T) {
		w := newWizard(t)
		assert.ErrorIs(t, w.Next(), ErrNameRequired)
		assert.Equal(t, StepProfile, w.Step())

		w.State().SetName("Acme Batteries")
		require.NoError(t, w.Next())
		assert.Equal(t, StepModules, w.Step())
	})

	t.Run("back stops at the first step", func(t *testing.T) {
		w := newWizard(t)
		require.NoError(t, w.Back())
		assert.Equal(t, StepProfile, w.Step())
	})

	t.Run("next stops at review", func(t *testing.T) {
		w := newWizard(t)
		w.State().SetName("Acme")
		for i := 0; i < 6; i++ {
			require.NoError(t, w.Next())
		}
		assert.Equal(t, StepReview, w.Step())
		assert.ErrorIs(t, w.Next(), ErrInvalidStep)
	})

	t.Run("jump bounds", func(t *testing.T) {
		w := newWizard(t)
		assert.ErrorIs(t, w.Jump(0), ErrInvalidStep)
		assert.ErrorIs(t, w.Jump(8), ErrInvalidStep)
		require.NoError(t, w.Jump(StepReview))
		assert.Equal(t, StepReview, w.Step())
	})
}

func TestSlugAutoDerivation(t *testing.T) {
	t.Run("derived while slug empty", func(t *testing.T) {
		w := newWizard(t)
		w.State().SetName("Acme Batteries!")
		assert.Equal(t, "acme-batteries", w.State().Slug())
	})

	t.Run("manual slug survives name edits", func(t *testing.T) {
		w := newWizard(t)
		w.State().SetSlug("custom-slug")
		w.State().SetName("Acme Batteries")
		assert.Equal(t, "custom-slug", w.State().Slug())
	})

	t.Run("clearing the slug re-arms derivation", func(t *testing.T) {
		w := newWizard(t)
		w.State().SetName("Acme")
		w.State().SetSlug("")
		w.State().SetName("Bolt Mobility")
		assert.Equal(t, "bolt-mobility", w.State().Slug())
	})
}

func TestTrustStepDefault(t *testing.T) {
	toTrustStep := func(t *testing.T, w *Wizard) {
		t.Helper()
		require.NoError(t, w.Jump(StepTrust))
	}

	t.Run("manufacturer gets HYBRID on first visit", func(t *testing.T) {
		w := newWizard(t)
		w.State().SetName("Acme")
		require.NoError(t, w.State().SetCustomerType(tenant.CustomerTypeBatteryManufacturer))

		toTrustStep(t, w)
		assert.Equal(t, tenant.TrustHybrid, w.State().TrustMode())
	})

	t.Run("OEM gets HYBRID on first visit", func(t *testing.T) {
		w := newWizard(t)
		w.State().SetName("Acme")
		require.NoError(t, w.State().SetCustomerType(tenant.CustomerTypeOEM))

		toTrustStep(t, w)
		assert.Equal(t, tenant.TrustHybrid, w.State().TrustMode())
	})

	t.Run("fleet operator keeps EXTERNAL", func(t *testing.T) {
		w := newWizard(t)
		w.State().SetName("Acme")
		require.NoError(t, w.State().SetCustomerType(tenant.CustomerTypeFleetOperator))

		toTrustStep(t, w)
		assert.Equal(t, tenant.TrustExternal, w.State().TrustMode())
	})

	t.Run("override fires only once", func(t *testing.T) {
		w := newWizard(t)
		w.State().SetName("Acme")
		require.NoError(t, w.State().SetCustomerType(tenant.CustomerTypeBatteryManufacturer))

		toTrustStep(t, w)
		require.NoError(t, w.State().SetTrustMode(tenant.TrustExternal))
		require.NoError(t, w.Jump(StepProfile))

		toTrustStep(t, w)
		assert.Equal(t, tenant.TrustExternal, w.State().TrustMode())
	})

	t.Run("touched ingest modes block the override", func(t *testing.T) {
		w := newWizard(t)
		w.State().SetName("Acme")
		require.NoError(t, w.State().ToggleIngestMode(tenant.IngestMQTT))
		require.NoError(t, w.State().SetCustomerType(tenant.CustomerTypeOEM))

		toTrustStep(t, w)
		assert.Equal(t, tenant.TrustExternal, w.State().TrustMode())
	})
}

func TestTrustModeSwitchResets(t *testing.T) {
	w := newWizard(t)

	require.NoError(t, w.State().SetTrustMode(tenant.TrustExternal))
	assert.Equal(t, []tenant.IngestMode{tenant.IngestRESTAPI}, w.State().IngestModes())

	require.NoError(t, w.State().ToggleIngestMode(tenant.IngestMQTT))
	require.NoError(t, w.State().SetProvisioningMode(tenant.ProvisioningAPI))

	require.NoError(t, w.State().SetTrustMode(tenant.TrustHybrid))
	assert.Equal(t, tenant.ProvisioningManual, w.State().ProvisioningMode())

	require.NoError(t, w.State().SetTrustMode(tenant.TrustExternal))
	assert.Equal(t, []tenant.IngestMode{tenant.IngestRESTAPI}, w.State().IngestModes())
}

func TestWizardSubmit(t *testing.T) {
	t.Run("only from the review step", func(t *testing.T) {
		w := newWizard(t)
		w.State().SetName("Acme")
		_, err := w.Submit()
		assert.ErrorIs(t, err, ErrNotOnReviewStep)
	})

	t.Run("requires a name", func(t *testing.T) {
		w := newWizard(t)
		require.NoError(t, w.Jump(StepReview))
		_, err := w.Submit()
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("produces the commit payload", func(t *testing.T) {
		w := newWizard(t)
		w.State().SetName("Acme Batteries")
		require.NoError(t, w.State().SetCustomerType(tenant.CustomerTypeBatteryManufacturer))
		w.State().Selection().ToggleMVP(catalog.MVPSwapAuthHandshake)
		require.NoError(t, w.Jump(StepReview))

		fields, err := w.Submit()
		require.NoError(t, err)
		assert.Equal(t, "Acme Batteries", fields.Name)
		assert.Equal(t, "acme-batteries", fields.Slug)
		assert.ElementsMatch(t,
			[]catalog.ModuleID{catalog.ModuleVoltEdge, catalog.ModuleEcoTrace360},
			fields.Modules)
		assert.Equal(t, []catalog.MVPID{catalog.MVPSwapAuthHandshake}, fields.MVPFeatures)
		assert.Equal(t, 90, fields.Settings.RetentionDays)
	})

	t.Run("resubmittable until marked", func(t *testing.T) {
		w := newWizard(t)
		w.State().SetName("Acme")
		require.NoError(t, w.Jump(StepReview))

		_, err := w.Submit()
		require.NoError(t, err)
		_, err = w.Submit()
		require.NoError(t, err)

		w.MarkSubmitted()
		_, err = w.Submit()
		assert.ErrorIs(t, err, ErrAlreadySubmitted)
		assert.ErrorIs(t, w.Next(), ErrAlreadySubmitted)
	})
}

func TestToggleIndustryTag(t *testing.T) {
	w := newWizard(t)
	s := w.State()

	require.NoError(t, s.ToggleIndustryTag(tenant.IndustryEV2W))
	require.NoError(t, s.ToggleIndustryTag(tenant.IndustryDrones))
	assert.Equal(t, []tenant.IndustryTag{tenant.IndustryEV2W, tenant.IndustryDrones}, s.IndustryTags())

	require.NoError(t, s.ToggleIndustryTag(tenant.IndustryEV2W))
	assert.Equal(t, []tenant.IndustryTag{tenant.IndustryDrones}, s.IndustryTags())

	assert.Error(t, s.ToggleIndustryTag(tenant.IndustryTag("EV_5W")))
}

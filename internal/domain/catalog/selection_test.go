package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleModule_SelectAndDeselect(t *testing.T) {
	s := NewSelection(Default())

	s.ToggleModule(ModuleVoltEdge)
	assert.True(t, s.HasModule(ModuleVoltEdge))
	assert.Equal(t, 1, s.ModuleCount())

	s.ToggleModule(ModuleVoltEdge)
	assert.False(t, s.HasModule(ModuleVoltEdge))
	assert.Equal(t, 0, s.ModuleCount())
}

func TestToggleModule_UnknownIDIsNoop(t *testing.T) {
	s := NewSelection(Default())
	s.ToggleModule(ModuleID("NoSuchModule"))
	assert.Equal(t, 0, s.ModuleCount())
	assert.True(t, s.Satisfied())
}

func TestToggleMVP_AutoSelectsRequiredModules(t *testing.T) {
	s := NewSelection(Default())

	s.ToggleMVP(MVPSwapAuthHandshake)

	require.True(t, s.HasMVP(MVPSwapAuthHandshake))
	assert.True(t, s.HasModule(ModuleVoltEdge))
	assert.True(t, s.HasModule(ModuleEcoTrace360))
	assert.True(t, s.Satisfied())
}

func TestToggleModule_DeselectCascadesToDependentMVPs(t *testing.T) {
	s := NewSelection(Default())

	s.ToggleMVP(MVPSwapAuthHandshake)
	require.True(t, s.HasModule(ModuleVoltEdge))

	s.ToggleModule(ModuleVoltEdge)

	assert.False(t, s.HasMVP(MVPSwapAuthHandshake))
	// EcoTrace360 survives: deselecting an MVP's prerequisite only removes
	// the MVP, never sibling modules.
	assert.True(t, s.HasModule(ModuleEcoTrace360))
	assert.True(t, s.Satisfied())
}

func TestToggleModule_CascadeRemovesAllDependents(t *testing.T) {
	s := NewSelection(Default())

	s.ToggleMVP(MVPRealtimeMonitoring) // VoltEdge, EcoTrace360
	s.ToggleMVP(MVPCycleAnalytics)     // VoltEdge, EcoSense360
	s.ToggleMVP(MVPPredictiveHealth)   // EcoSense360 only

	s.ToggleModule(ModuleVoltEdge)

	assert.False(t, s.HasMVP(MVPRealtimeMonitoring))
	assert.False(t, s.HasMVP(MVPCycleAnalytics))
	assert.True(t, s.HasMVP(MVPPredictiveHealth))
	assert.True(t, s.Satisfied())
}

func TestToggleMVP_DeselectKeepsModules(t *testing.T) {
	s := NewSelection(Default())

	s.ToggleMVP(MVPRealtimeMonitoring)
	s.ToggleMVP(MVPRealtimeMonitoring)

	assert.False(t, s.HasMVP(MVPRealtimeMonitoring))
	// Intentionally non-reversible: implicitly-added modules stay selected.
	assert.True(t, s.HasModule(ModuleVoltEdge))
	assert.True(t, s.HasModule(ModuleEcoTrace360))
}

func TestToggleModule_DoubleToggleRestoresModules(t *testing.T) {
	s := NewSelection(Default())
	s.ToggleModule(ModuleVoltEdge)
	s.ToggleModule(ModuleEcoSense360)

	before := s.Modules()
	s.ToggleModule(ModuleVoltEdge)
	s.ToggleModule(ModuleVoltEdge)

	// Module set matches; cascaded MVP removal (none here) is not restored.
	got := s.Modules()
	assert.ElementsMatch(t, before, got)
}

func TestSelection_InvariantUnderRandomToggles(t *testing.T) {
	c := Default()
	moduleIDs := make([]ModuleID, 0, len(c.Modules()))
	for _, m := range c.Modules() {
		moduleIDs = append(moduleIDs, m.ID)
	}
	mvpIDs := make([]MVPID, 0, len(c.MVPs()))
	for _, m := range c.MVPs() {
		mvpIDs = append(mvpIDs, m.ID)
	}

	rng := rand.New(rand.NewSource(42))
	s := NewSelection(c)
	for i := 0; i < 2000; i++ {
		if rng.Intn(2) == 0 {
			s.ToggleModule(moduleIDs[rng.Intn(len(moduleIDs))])
		} else {
			s.ToggleMVP(mvpIDs[rng.Intn(len(mvpIDs))])
		}
		require.True(t, s.Satisfied(), "invariant broken after %d toggles", i+1)
	}
}

func TestSelection_PreservesInsertionOrder(t *testing.T) {
	s := NewSelection(Default())
	s.ToggleModule(ModuleEcoSense360)
	s.ToggleModule(ModuleVoltEdge)
	s.ToggleModule(ModuleVoltPack)

	assert.Equal(t, []ModuleID{ModuleEcoSense360, ModuleVoltEdge, ModuleVoltPack}, s.Modules())
}

func TestReconstructSelection_RepairsInvariant(t *testing.T) {
	// Persisted state missing an MVP prerequisite: reconstruction adds it.
	s := ReconstructSelection(Default(),
		[]ModuleID{ModuleEcoTrace360},
		[]MVPID{MVPRealtimeMonitoring})

	assert.True(t, s.HasModule(ModuleVoltEdge))
	assert.True(t, s.Satisfied())
}

func TestReconstructSelection_DropsUnknownIDs(t *testing.T) {
	s := ReconstructSelection(Default(),
		[]ModuleID{ModuleVoltEdge, ModuleID("Bogus")},
		[]MVPID{MVPID("MVP-99")})

	assert.Equal(t, []ModuleID{ModuleVoltEdge}, s.Modules())
	assert.Empty(t, s.MVPs())
}

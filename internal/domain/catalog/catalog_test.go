package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CatalogShape(t *testing.T) {
	c := Default()

	assert.Len(t, c.Modules(), 6)
	assert.Len(t, c.MVPs(), 10)

	for _, mvp := range c.MVPs() {
		require.NotEmpty(t, mvp.RequiredModules, "MVP %s has no required modules", mvp.ID)
		require.True(t, mvp.DataVolume.IsValid(), "MVP %s has invalid data volume", mvp.ID)
		for _, req := range mvp.RequiredModules {
			assert.True(t, c.HasModule(req), "MVP %s requires unknown module %s", mvp.ID, req)
		}
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := Default()

	mod, ok := c.Module(ModuleVoltEdge)
	require.True(t, ok)
	assert.Equal(t, "VoltEdge", mod.Name)

	mvp, ok := c.MVP(MVPSwapAuthHandshake)
	require.True(t, ok)
	assert.Equal(t, []ModuleID{ModuleVoltEdge, ModuleEcoTrace360}, mvp.RequiredModules)
	assert.Equal(t, DataVolumeLow, mvp.DataVolume)

	_, ok = c.Module(ModuleID("Unknown"))
	assert.False(t, ok)
	_, ok = c.MVP(MVPID("MVP-0"))
	assert.False(t, ok)
}

func TestDataVolume_Weight(t *testing.T) {
	tests := []struct {
		name   string
		volume DataVolume
		weight int
	}{
		{"high", DataVolumeHigh, 3},
		{"medium", DataVolumeMedium, 2},
		{"low", DataVolumeLow, 1},
		{"invalid", DataVolume("Massive"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.weight, tt.volume.Weight())
		})
	}
}

func TestIcon_Resolve(t *testing.T) {
	assert.Equal(t, IconCPU, IconCPU.Resolve())
	assert.Equal(t, IconFallback, Icon("sparkles").Resolve())
	assert.Equal(t, IconFallback, Icon("").Resolve())
}

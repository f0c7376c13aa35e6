package device

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDevice(t *testing.T) {
	t.Run("fresh devices are provisioned and unseen", func(t *testing.T) {
		d, err := NewDevice("tnt_abc", "BMS-2024-X99", TypeSmartBMS, "1.2.4", "Prototype pack #1")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(d.SID(), "dev_"))
		assert.Equal(t, StatusProvisioned, d.Status())
		assert.Nil(t, d.LastSeenAt())
	})

	t.Run("requires a serial", func(t *testing.T) {
		_, err := NewDevice("tnt_abc", "   ", TypeSmartBMS, "", "")
		assert.ErrorIs(t, err, ErrSerialRequired)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewDevice("tnt_abc", "X", Type("Flux Capacitor"), "", "")
		assert.ErrorIs(t, err, ErrInvalidType)
	})
}

func TestDeviceLifecycle(t *testing.T) {
	register := func(t *testing.T) *Device {
		t.Helper()
		d, err := NewDevice("tnt_abc", "IOT-GW-7721", TypeIoTGateway, "2.0.1", "")
		require.NoError(t, err)
		return d
	}

	t.Run("seen activates", func(t *testing.T) {
		d := register(t)
		at := time.Now().Add(-5 * time.Minute)
		require.NoError(t, d.Seen(at))
		assert.Equal(t, StatusActive, d.Status())
		require.NotNil(t, d.LastSeenAt())
		assert.WithinDuration(t, at, *d.LastSeenAt(), time.Second)
	})

	t.Run("offline keeps last seen", func(t *testing.T) {
		d := register(t)
		require.NoError(t, d.Seen(time.Now()))
		require.NoError(t, d.MarkOffline())
		assert.Equal(t, StatusOffline, d.Status())
		assert.NotNil(t, d.LastSeenAt())
	})

	t.Run("revocation is terminal", func(t *testing.T) {
		d := register(t)
		d.Revoke()
		assert.Equal(t, StatusRevoked, d.Status())
		assert.ErrorIs(t, d.Seen(time.Now()), ErrRevoked)
		assert.ErrorIs(t, d.MarkOffline(), ErrRevoked)
	})
}

func TestNormalizeSerial(t *testing.T) {
	assert.Equal(t, "bms-2024-x99", NormalizeSerial("  BMS-2024-X99 "))
}

package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultUpdate() Update {
	return Update{
		Region:               DataRegionIndia,
		RetentionDays:        90,
		SamplingProfile:      SamplingBalanced5S,
		NotificationChannels: []NotificationChannel{ChannelEmail},
	}
}

func TestDefaults(t *testing.T) {
	s := Defaults("tnt_abc")
	assert.Equal(t, DataRegionIndia, s.Region())
	assert.Equal(t, 90, s.RetentionDays())
	assert.Equal(t, SamplingBalanced5S, s.SamplingProfile())
	assert.Equal(t, []NotificationChannel{ChannelEmail}, s.NotificationChannels())
	assert.False(t, s.RequireMFAAdmins())
}

func TestApply(t *testing.T) {
	t.Run("reports changed keys", func(t *testing.T) {
		s := Defaults("tnt_abc")
		u := defaultUpdate()
		u.RetentionDays = 365
		u.Region = DataRegionEU
		u.RequireMFAAdmins = true

		changed, err := s.Apply(u)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"retentionDays", "region", "requireMfaAdmins"}, changed)
		assert.Equal(t, 365, s.RetentionDays())
	})

	t.Run("no-op update", func(t *testing.T) {
		s := Defaults("tnt_abc")
		changed, err := s.Apply(defaultUpdate())
		require.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("webhook channel requires a URL", func(t *testing.T) {
		s := Defaults("tnt_abc")
		u := defaultUpdate()
		u.NotificationChannels = []NotificationChannel{ChannelEmail, ChannelWhatsAppWebhook}

		_, err := s.Apply(u)
		assert.Error(t, err)

		u.WebhookURL = "https://hooks.example.com/wa"
		changed, err := s.Apply(u)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"notificationChannels", "webhookUrl"}, changed)
	})

	t.Run("rejects invalid retention", func(t *testing.T) {
		s := Defaults("tnt_abc")
		u := defaultUpdate()
		u.RetentionDays = 42
		_, err := s.Apply(u)
		assert.Error(t, err)
	})

	t.Run("ip allowlist change is tracked", func(t *testing.T) {
		s := Defaults("tnt_abc")
		u := defaultUpdate()
		u.IPAllowlistEnabled = true
		u.IPAllowlist = []string{"10.0.0.0/24"}

		changed, err := s.Apply(u)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"apiIpAllowlistEnabled", "ipAllowlist"}, changed)
	})
}

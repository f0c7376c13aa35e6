// Package setting holds the per-tenant operational settings edited from the
// settings screen: data residency, retention and sampling, notification
// channels and security policies.
package setting

import (
	"fmt"
	"strings"
	"time"

	"aayatana/internal/domain/tenant"
)

// DataRegion is the data residency choice on the settings screen. Unlike
// the tenant's service region it folds the US into a Global bucket.
type DataRegion string

const (
	DataRegionIndia  DataRegion = "INDIA"
	DataRegionEU     DataRegion = "EU"
	DataRegionGlobal DataRegion = "GLOBAL"
)

// IsValid checks whether the data region is known
func (r DataRegion) IsValid() bool {
	switch r {
	case DataRegionIndia, DataRegionEU, DataRegionGlobal:
		return true
	}
	return false
}

// String returns the string representation
func (r DataRegion) String() string { return string(r) }

// SamplingProfile controls how often devices report telemetry.
type SamplingProfile string

const (
	SamplingHighFreq1S SamplingProfile = "HIGH_FREQ_1S"
	SamplingBalanced5S SamplingProfile = "BALANCED_5S"
	SamplingLowFreq30S SamplingProfile = "LOW_FREQ_30S"
)

// IsValid checks whether the sampling profile is known
func (p SamplingProfile) IsValid() bool {
	switch p {
	case SamplingHighFreq1S, SamplingBalanced5S, SamplingLowFreq30S:
		return true
	}
	return false
}

// String returns the string representation
func (p SamplingProfile) String() string { return string(p) }

// NotificationChannel is a delivery channel for tenant alerts.
type NotificationChannel string

const (
	ChannelEmail           NotificationChannel = "EMAIL"
	ChannelSMS             NotificationChannel = "SMS"
	ChannelWhatsAppWebhook NotificationChannel = "WHATSAPP_WEBHOOK"
)

// IsValid checks whether the channel is known
func (c NotificationChannel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelWhatsAppWebhook:
		return true
	}
	return false
}

// String returns the string representation
func (c NotificationChannel) String() string { return string(c) }

// TenantSettings is the settings-screen aggregate, keyed by tenant.
type TenantSettings struct {
	tenantSID            string
	region               DataRegion
	dppReadiness         bool
	retentionDays        int
	samplingProfile      SamplingProfile
	notificationChannels []NotificationChannel
	webhookURL           string
	requireMFAAdmins     bool
	ipAllowlistEnabled   bool
	ipAllowlist          []string
	updatedAt            time.Time
}

// Defaults returns the settings a tenant gets before anyone touches the
// settings screen.
func Defaults(tenantSID string) *TenantSettings {
	return &TenantSettings{
		tenantSID:            tenantSID,
		region:               DataRegionIndia,
		retentionDays:        90,
		samplingProfile:      SamplingBalanced5S,
		notificationChannels: []NotificationChannel{ChannelEmail},
		updatedAt:            time.Now().UTC(),
	}
}

// Reconstruct rebuilds settings from persistence.
func Reconstruct(
	tenantSID string,
	region DataRegion,
	dppReadiness bool,
	retentionDays int,
	samplingProfile SamplingProfile,
	channels []NotificationChannel,
	webhookURL string,
	requireMFAAdmins bool,
	ipAllowlistEnabled bool,
	ipAllowlist []string,
	updatedAt time.Time,
) (*TenantSettings, error) {
	if tenantSID == "" {
		return nil, fmt.Errorf("tenant SID is required")
	}
	s := &TenantSettings{
		tenantSID:            tenantSID,
		region:               region,
		dppReadiness:         dppReadiness,
		retentionDays:        retentionDays,
		samplingProfile:      samplingProfile,
		notificationChannels: channels,
		webhookURL:           webhookURL,
		requireMFAAdmins:     requireMFAAdmins,
		ipAllowlistEnabled:   ipAllowlistEnabled,
		ipAllowlist:          ipAllowlist,
		updatedAt:            updatedAt,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// TenantSID returns the owning tenant's public ID
func (s *TenantSettings) TenantSID() string { return s.tenantSID }

// Region returns the data residency region
func (s *TenantSettings) Region() DataRegion { return s.region }

// DPPReadiness reports whether Digital Product Passport schemas are enabled
func (s *TenantSettings) DPPReadiness() bool { return s.dppReadiness }

// RetentionDays returns the telemetry retention period
func (s *TenantSettings) RetentionDays() int { return s.retentionDays }

// SamplingProfile returns the device sampling profile
func (s *TenantSettings) SamplingProfile() SamplingProfile { return s.samplingProfile }

// NotificationChannels returns the active alert channels
func (s *TenantSettings) NotificationChannels() []NotificationChannel {
	out := make([]NotificationChannel, len(s.notificationChannels))
	copy(out, s.notificationChannels)
	return out
}

// WebhookURL returns the webhook endpoint for webhook channels
func (s *TenantSettings) WebhookURL() string { return s.webhookURL }

// RequireMFAAdmins reports whether admins must use MFA
func (s *TenantSettings) RequireMFAAdmins() bool { return s.requireMFAAdmins }

// IPAllowlistEnabled reports whether API access is IP-restricted
func (s *TenantSettings) IPAllowlistEnabled() bool { return s.ipAllowlistEnabled }

// IPAllowlist returns the allowed IPs and CIDR blocks
func (s *TenantSettings) IPAllowlist() []string {
	out := make([]string, len(s.ipAllowlist))
	copy(out, s.ipAllowlist)
	return out
}

// UpdatedAt returns when the settings were last saved
func (s *TenantSettings) UpdatedAt() time.Time { return s.updatedAt }

func (s *TenantSettings) validate() error {
	if !s.region.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidDataRegion, s.region)
	}
	if !tenant.IsValidRetentionDays(s.retentionDays) {
		return tenant.ErrInvalidRetentionDays
	}
	if !s.samplingProfile.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidSamplingProfile, s.samplingProfile)
	}
	for _, c := range s.notificationChannels {
		if !c.IsValid() {
			return fmt.Errorf("%w: %s", ErrInvalidNotificationChannel, c)
		}
	}
	if containsChannel(s.notificationChannels, ChannelWhatsAppWebhook) && strings.TrimSpace(s.webhookURL) == "" {
		return ErrWebhookURLRequired
	}
	return nil
}

// Update is the changeset applied from the settings screen.
type Update struct {
	Region               DataRegion
	DPPReadiness         bool
	RetentionDays        int
	SamplingProfile      SamplingProfile
	NotificationChannels []NotificationChannel
	WebhookURL           string
	RequireMFAAdmins     bool
	IPAllowlistEnabled   bool
	IPAllowlist          []string
}

// Apply validates the update, applies it, and returns the keys that
// changed for the audit trail. No change means an empty result and no
// timestamp bump.
func (s *TenantSettings) Apply(u Update) ([]string, error) {
	next := &TenantSettings{
		tenantSID:            s.tenantSID,
		region:               u.Region,
		dppReadiness:         u.DPPReadiness,
		retentionDays:        u.RetentionDays,
		samplingProfile:      u.SamplingProfile,
		notificationChannels: u.NotificationChannels,
		webhookURL:           u.WebhookURL,
		requireMFAAdmins:     u.RequireMFAAdmins,
		ipAllowlistEnabled:   u.IPAllowlistEnabled,
		ipAllowlist:          u.IPAllowlist,
	}
	if err := next.validate(); err != nil {
		return nil, err
	}

	var changed []string
	if s.region != next.region {
		changed = append(changed, "region")
	}
	if s.dppReadiness != next.dppReadiness {
		changed = append(changed, "dppReadiness")
	}
	if s.retentionDays != next.retentionDays {
		changed = append(changed, "retentionDays")
	}
	if s.samplingProfile != next.samplingProfile {
		changed = append(changed, "samplingProfile")
	}
	if !equalChannels(s.notificationChannels, next.notificationChannels) {
		changed = append(changed, "notificationChannels")
	}
	if s.webhookURL != next.webhookURL {
		changed = append(changed, "webhookUrl")
	}
	if s.requireMFAAdmins != next.requireMFAAdmins {
		changed = append(changed, "requireMfaAdmins")
	}
	if s.ipAllowlistEnabled != next.ipAllowlistEnabled {
		changed = append(changed, "apiIpAllowlistEnabled")
	}
	if !equalStrings(s.ipAllowlist, next.ipAllowlist) {
		changed = append(changed, "ipAllowlist")
	}

	if len(changed) == 0 {
		return nil, nil
	}

	next.updatedAt = time.Now().UTC()
	*s = *next
	return changed, nil
}

func containsChannel(channels []NotificationChannel, c NotificationChannel) bool {
	for _, existing := range channels {
		if existing == c {
			return true
		}
	}
	return false
}

func equalChannels(a, b []NotificationChannel) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

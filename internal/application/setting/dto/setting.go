// Package dto defines request and response shapes for tenant settings.
package dto

import (
	"time"

	"aayatana/internal/domain/setting"
)

// SettingsResponse is the API shape of a tenant's settings page.
type SettingsResponse struct {
	TenantSID            string    `json:"tenant_sid"`
	Region               string    `json:"region"`
	DPPReadiness         bool      `json:"dpp_readiness"`
	RetentionDays        int       `json:"retention_days"`
	SamplingProfile      string    `json:"sampling_profile"`
	NotificationChannels []string  `json:"notification_channels"`
	WebhookURL           string    `json:"webhook_url,omitempty"`
	RequireMFAAdmins     bool      `json:"require_mfa_admins"`
	IPAllowlistEnabled   bool      `json:"api_ip_allowlist_enabled"`
	IPAllowlist          []string  `json:"ip_allowlist"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// SaveSettingsRequest replaces the tenant's settings as one changeset.
type SaveSettingsRequest struct {
	Region               string   `json:"region" validate:"required"`
	DPPReadiness         bool     `json:"dpp_readiness"`
	RetentionDays        int      `json:"retention_days" validate:"required"`
	SamplingProfile      string   `json:"sampling_profile" validate:"required"`
	NotificationChannels []string `json:"notification_channels"`
	WebhookURL           string   `json:"webhook_url"`
	RequireMFAAdmins     bool     `json:"require_mfa_admins"`
	IPAllowlistEnabled   bool     `json:"api_ip_allowlist_enabled"`
	IPAllowlist          []string `json:"ip_allowlist"`
}

// ToDomain maps a save request into the domain changeset.
func (r SaveSettingsRequest) ToDomain() setting.Update {
	channels := make([]setting.NotificationChannel, 0, len(r.NotificationChannels))
	for _, c := range r.NotificationChannels {
		channels = append(channels, setting.NotificationChannel(c))
	}
	return setting.Update{
		Region:               setting.DataRegion(r.Region),
		DPPReadiness:         r.DPPReadiness,
		RetentionDays:        r.RetentionDays,
		SamplingProfile:      setting.SamplingProfile(r.SamplingProfile),
		NotificationChannels: channels,
		WebhookURL:           r.WebhookURL,
		RequireMFAAdmins:     r.RequireMFAAdmins,
		IPAllowlistEnabled:   r.IPAllowlistEnabled,
		IPAllowlist:          r.IPAllowlist,
	}
}

// FromDomain maps the settings aggregate to its API shape.
func FromDomain(s *setting.TenantSettings) SettingsResponse {
	channels := make([]string, 0, len(s.NotificationChannels()))
	for _, c := range s.NotificationChannels() {
		channels = append(channels, c.String())
	}
	return SettingsResponse{
		TenantSID:            s.TenantSID(),
		Region:               s.Region().String(),
		DPPReadiness:         s.DPPReadiness(),
		RetentionDays:        s.RetentionDays(),
		SamplingProfile:      s.SamplingProfile().String(),
		NotificationChannels: channels,
		WebhookURL:           s.WebhookURL(),
		RequireMFAAdmins:     s.RequireMFAAdmins(),
		IPAllowlistEnabled:   s.IPAllowlistEnabled(),
		IPAllowlist:          s.IPAllowlist(),
		UpdatedAt:            s.UpdatedAt(),
	}
}

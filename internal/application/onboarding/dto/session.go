// Package dto defines the request and response shapes for onboarding
// wizard sessions.
package dto

import "time"

// SessionResponse is the full wizard state returned after every mutation so
// the client can re-render without tracking deltas.
type SessionResponse struct {
	SessionID string `json:"session_id"`
	Step      int    `json:"step"`
	Submitted bool   `json:"submitted"`

	Profile  ProfileSection  `json:"profile"`
	Modules  ModulesSection  `json:"modules"`
	Settings SettingsSection `json:"settings"`
	Identity IdentitySection `json:"identity"`
	Invites  []InviteItem    `json:"invites"`
	Trust    TrustSection    `json:"trust"`

	Impact     ImpactResponse `json:"impact"`
	SlugStatus string         `json:"slug_status"`
}

// ProfileSection mirrors wizard step 1.
type ProfileSection struct {
	Name         string   `json:"name"`
	LegalName    string   `json:"legal_name"`
	Slug         string   `json:"slug"`
	CustomerType string   `json:"customer_type"`
	IndustryTags []string `json:"industry_tags"`
	ContactEmail string   `json:"contact_email"`
}

// ModulesSection mirrors wizard step 2.
type ModulesSection struct {
	Selected    []string `json:"selected"`
	MVPFeatures []string `json:"mvp_features"`
}

// SettingsSection mirrors wizard step 3.
type SettingsSection struct {
	RetentionDays int    `json:"retention_days"`
	Region        string `json:"region"`
	SLATier       string `json:"sla_tier"`
}

// IdentitySection mirrors wizard step 4.
type IdentitySection struct {
	IdentityScheme  string `json:"identity_scheme"`
	ComplianceReady bool   `json:"compliance_ready"`
}

// InviteItem is a queued wizard invitation.
type InviteItem struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TrustSection mirrors wizard step 6.
type TrustSection struct {
	TrustMode        string   `json:"trust_mode"`
	ProvisioningMode string   `json:"provisioning_mode"`
	IngestModes      []string `json:"ingest_modes"`
}

// ImpactResponse is the recomputed resource impact panel.
type ImpactResponse struct {
	VolumeScore      int      `json:"volume_score"`
	VolumeTier       string   `json:"volume_tier"`
	MonthlyEstimate  int      `json:"monthly_estimate"`
	Integrations     []string `json:"integrations"`
	RecommendedRoles []string `json:"recommended_roles"`
	Warnings         []string `json:"warnings,omitempty"`
}

// UpdateProfileRequest carries step 1 edits. Pointer fields distinguish
// "not sent" from "cleared".
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	LegalName    *string `json:"legal_name"`
	Slug         *string `json:"slug"`
	CustomerType *string `json:"customer_type"`
	ContactEmail *string `json:"contact_email"`
}

// UpdateSettingsRequest carries step 3 edits.
type UpdateSettingsRequest struct {
	RetentionDays *int    `json:"retention_days"`
	Region        *string `json:"region"`
	SLATier       *string `json:"sla_tier"`
}

// UpdateIdentityRequest carries step 4 edits.
type UpdateIdentityRequest struct {
	IdentityScheme  *string `json:"identity_scheme"`
	ComplianceReady *bool   `json:"compliance_ready"`
}

// InviteRequest queues an invitation on step 5.
type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// UpdateTrustRequest carries step 6 edits.
type UpdateTrustRequest struct {
	TrustMode        *string `json:"trust_mode"`
	ProvisioningMode *string `json:"provisioning_mode"`
	ToggleIngestMode *string `json:"toggle_ingest_mode"`
}

// NavigateRequest moves the wizard.
type NavigateRequest struct {
	Direction string `json:"direction" validate:"required,oneof=next back jump"`
	Step      int    `json:"step"`
}

// SubmitResponse is returned once the tenant has been committed.
type SubmitResponse struct {
	TenantSID string    `json:"tenant_sid"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

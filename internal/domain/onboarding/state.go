package onboarding

import (
	"aayatana/internal/domain/catalog"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/utils"
)

// Invite is a pending user invitation collected during the wizard.
type Invite struct {
	Email string
	Role  string
}

// IntegrationFlags are the optional third-party hookups reviewed on the
// final step.
type IntegrationFlags struct {
	Telematics bool
	ERP        bool
	SwapAPI    bool
}

// State holds every field the onboarding wizard collects across its seven
// steps. It is a working draft, not a tenant: nothing here is persisted
// until the wizard commits.
type State struct {
	// step 1: profile
	name         string
	legalName    string
	slug         string
	customerType tenant.CustomerType // empty until chosen
	industryTags []tenant.IndustryTag
	contactEmail string

	// step 2: modules and feature packs
	selection *catalog.Selection

	// step 3: settings
	retentionDays int
	region        tenant.Region
	slaTier       tenant.SLATier

	// step 4: identity and compliance
	identityScheme  tenant.IdentityScheme
	complianceReady bool

	// step 5: invitations
	invites []Invite

	// step 6: telemetry and device trust
	trustMode        tenant.TrustMode
	provisioningMode tenant.ProvisioningMode
	ingestModes      []tenant.IngestMode

	// step 7: integrations
	integrations IntegrationFlags
}

// NewState returns the wizard's initial state.
func NewState(cat *catalog.Catalog) *State {
	return &State{
		selection:        catalog.NewSelection(cat),
		retentionDays:    90,
		region:           tenant.RegionIndia,
		slaTier:          tenant.SLABasic,
		identityScheme:   tenant.IdentityQR,
		trustMode:        tenant.TrustExternal,
		provisioningMode: tenant.ProvisioningManual,
	}
}

// Name returns the organization name
func (s *State) Name() string { return s.name }

// LegalName returns the legal entity name
func (s *State) LegalName() string { return s.legalName }

// Slug returns the tenant URL slug
func (s *State) Slug() string { return s.slug }

// CustomerType returns the chosen customer type, empty if none yet
func (s *State) CustomerType() tenant.CustomerType { return s.customerType }

// IndustryTags returns the selected industry tags
func (s *State) IndustryTags() []tenant.IndustryTag {
	out := make([]tenant.IndustryTag, len(s.industryTags))
	copy(out, s.industryTags)
	return out
}

// ContactEmail returns the primary contact email
func (s *State) ContactEmail() string { return s.contactEmail }

// Selection returns the module and feature pack selection
func (s *State) Selection() *catalog.Selection { return s.selection }

// RetentionDays returns the data retention policy in days
func (s *State) RetentionDays() int { return s.retentionDays }

// Region returns the service region
func (s *State) Region() tenant.Region { return s.region }

// SLATier returns the chosen support tier
func (s *State) SLATier() tenant.SLATier { return s.slaTier }

// IdentityScheme returns the battery identity scheme
func (s *State) IdentityScheme() tenant.IdentityScheme { return s.identityScheme }

// ComplianceReady reports whether DPP readiness is enabled
func (s *State) ComplianceReady() bool { return s.complianceReady }

// Invites returns the pending user invitations
func (s *State) Invites() []Invite {
	out := make([]Invite, len(s.invites))
	copy(out, s.invites)
	return out
}

// TrustMode returns the device trust mode
func (s *State) TrustMode() tenant.TrustMode { return s.trustMode }

// ProvisioningMode returns the provisioning method for managed trust
func (s *State) ProvisioningMode() tenant.ProvisioningMode { return s.provisioningMode }

// IngestModes returns the external ingestion channels
func (s *State) IngestModes() []tenant.IngestMode {
	out := make([]tenant.IngestMode, len(s.ingestModes))
	copy(out, s.ingestModes)
	return out
}

// Integrations returns the integration flags
func (s *State) Integrations() IntegrationFlags { return s.integrations }

// SetName updates the organization name. While the slug is still empty it
// is derived from the name, so an admin who clears the slug gets it
// regenerated on the next name edit.
func (s *State) SetName(name string) {
	s.name = name
	if s.name != "" && s.slug == "" {
		s.slug = utils.Slugify(s.name)
	}
}

// SetLegalName updates the legal entity name
func (s *State) SetLegalName(legalName string) { s.legalName = legalName }

// SetSlug overrides the auto-derived slug.
func (s *State) SetSlug(slug string) { s.slug = slug }

// SetCustomerType updates the customer type. An empty value clears it.
func (s *State) SetCustomerType(ct tenant.CustomerType) error {
	if ct != "" && !ct.IsValid() {
		return tenant.ErrInvalidCustomerType
	}
	s.customerType = ct
	return nil
}

// ToggleIndustryTag adds the tag when absent and removes it when present.
func (s *State) ToggleIndustryTag(tag tenant.IndustryTag) error {
	if !tag.IsValid() {
		return tenant.ErrInvalidIndustryTag
	}
	for i, existing := range s.industryTags {
		if existing == tag {
			s.industryTags = append(s.industryTags[:i], s.industryTags[i+1:]...)
			return nil
		}
	}
	s.industryTags = append(s.industryTags, tag)
	return nil
}

// SetContactEmail updates the contact email
func (s *State) SetContactEmail(email string) { s.contactEmail = email }

// SetRetentionDays updates the retention policy.
func (s *State) SetRetentionDays(days int) error {
	if !tenant.IsValidRetentionDays(days) {
		return tenant.ErrInvalidRetentionDays
	}
	s.retentionDays = days
	return nil
}

// SetRegion updates the service region.
func (s *State) SetRegion(r tenant.Region) error {
	if !r.IsValid() {
		return tenant.ErrInvalidRegion
	}
	s.region = r
	return nil
}

// SetSLATier updates the support tier.
func (s *State) SetSLATier(tier tenant.SLATier) error {
	if !tier.IsValid() {
		return tenant.ErrInvalidSLATier
	}
	s.slaTier = tier
	return nil
}

// SetIdentityScheme updates the battery identity scheme.
func (s *State) SetIdentityScheme(scheme tenant.IdentityScheme) error {
	if !scheme.IsValid() {
		return tenant.ErrInvalidIdentityScheme
	}
	s.identityScheme = scheme
	return nil
}

// SetComplianceReady toggles DPP readiness
func (s *State) SetComplianceReady(ready bool) { s.complianceReady = ready }

// AddInvite queues a user invitation.
func (s *State) AddInvite(email, role string) {
	s.invites = append(s.invites, Invite{Email: email, Role: role})
}

// RemoveInvite drops the invitation for the given email, if any.
func (s *State) RemoveInvite(email string) {
	for i, inv := range s.invites {
		if inv.Email == email {
			s.invites = append(s.invites[:i], s.invites[i+1:]...)
			return
		}
	}
}

// SetTrustMode switches the device trust mode and resets the sub-model of
// the other branch: switching to EXTERNAL seeds the REST API ingest channel,
// switching to a managed mode falls back to manual provisioning.
func (s *State) SetTrustMode(mode tenant.TrustMode) error {
	if !mode.IsValid() {
		return tenant.ErrInvalidTrustMode
	}
	s.trustMode = mode
	if mode == tenant.TrustExternal {
		s.ingestModes = []tenant.IngestMode{tenant.IngestRESTAPI}
	} else {
		s.provisioningMode = tenant.ProvisioningManual
	}
	return nil
}

// SetProvisioningMode updates the provisioning method.
func (s *State) SetProvisioningMode(mode tenant.ProvisioningMode) error {
	if !mode.IsValid() {
		return tenant.ErrInvalidProvisioningMode
	}
	s.provisioningMode = mode
	return nil
}

// ToggleIngestMode adds the ingestion channel when absent and removes it
// when present.
func (s *State) ToggleIngestMode(mode tenant.IngestMode) error {
	if !mode.IsValid() {
		return tenant.ErrInvalidIngestMode
	}
	for i, existing := range s.ingestModes {
		if existing == mode {
			s.ingestModes = append(s.ingestModes[:i], s.ingestModes[i+1:]...)
			return nil
		}
	}
	s.ingestModes = append(s.ingestModes, mode)
	return nil
}

// SetIntegrations replaces the integration flags
func (s *State) SetIntegrations(flags IntegrationFlags) { s.integrations = flags }

// CommitFields builds the tenant commit payload from the collected state.
func (s *State) CommitFields() tenant.CommitFields {
	ct := s.customerType
	if ct == "" {
		ct = tenant.CustomerTypeFleetOperator
	}
	return tenant.CommitFields{
		Name:         s.name,
		LegalName:    s.legalName,
		Slug:         s.slug,
		CustomerType: ct,
		IndustryTags: s.IndustryTags(),
		ContactEmail: s.contactEmail,
		Modules:      s.selection.Modules(),
		MVPFeatures:  s.selection.MVPs(),
		Region:       s.region,
		Settings: tenant.Settings{
			RetentionDays:    s.retentionDays,
			SLATier:          s.slaTier,
			IdentityScheme:   s.identityScheme,
			TrustMode:        s.trustMode,
			ProvisioningMode: s.provisioningMode,
			IngestModes:      s.IngestModes(),
		},
	}
}

package tenant

import (
	"fmt"
	"strings"
	"time"

	"aayatana/internal/domain/catalog"
	"aayatana/internal/shared/id"
)

// Tenant is the aggregate root for a tenant organization. A tenant is born
// as a DRAFT stub when the admin starts the onboarding wizard, is completed
// field-by-field at commit time, and is never hard-deleted.
type Tenant struct {
	id           uint
	sid          string // Stripe-style ID: tnt_xxx
	name         string
	legalName    string
	slug         string
	customerType CustomerType
	industryTags []IndustryTag
	contactEmail string
	modules      []catalog.ModuleID
	mvpFeatures  []catalog.MVPID
	status       Status
	region       Region
	settings     Settings
	createdAt    time.Time
	updatedAt    time.Time
}

// NewStub creates a minimal DRAFT tenant for a new onboarding session.
func NewStub() (*Tenant, error) {
	sid, err := id.NewTenantID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	now := time.Now().UTC()
	return &Tenant{
		sid:          sid,
		name:         "New Tenant",
		customerType: CustomerTypeFleetOperator,
		status:       StatusDraft,
		region:       RegionIndia,
		settings:     DefaultSettings(),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a tenant from persistence.
func Reconstruct(
	dbID uint,
	sid string,
	name string,
	legalName string,
	slug string,
	customerType CustomerType,
	industryTags []IndustryTag,
	contactEmail string,
	modules []catalog.ModuleID,
	mvpFeatures []catalog.MVPID,
	status Status,
	region Region,
	settings Settings,
	createdAt, updatedAt time.Time,
) (*Tenant, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("tenant ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("tenant SID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid tenant status: %s", status)
	}
	if !region.IsValid() {
		return nil, fmt.Errorf("invalid tenant region: %s", region)
	}

	return &Tenant{
		id:           dbID,
		sid:          sid,
		name:         name,
		legalName:    legalName,
		slug:         slug,
		customerType: customerType,
		industryTags: industryTags,
		contactEmail: contactEmail,
		modules:      modules,
		mvpFeatures:  mvpFeatures,
		status:       status,
		region:       region,
		settings:     settings,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ID returns the database ID
func (t *Tenant) ID() uint { return t.id }

// SID returns the public tenant ID (tnt_xxx)
func (t *Tenant) SID() string { return t.sid }

// Name returns the organization display name
func (t *Tenant) Name() string { return t.name }

// LegalName returns the legal entity name
func (t *Tenant) LegalName() string { return t.legalName }

// Slug returns the URL slug
func (t *Tenant) Slug() string { return t.slug }

// CustomerType returns the customer classification
func (t *Tenant) CustomerType() CustomerType { return t.customerType }

// IndustryTags returns the industry tags
func (t *Tenant) IndustryTags() []IndustryTag {
	out := make([]IndustryTag, len(t.industryTags))
	copy(out, t.industryTags)
	return out
}

// ContactEmail returns the primary contact email
func (t *Tenant) ContactEmail() string { return t.contactEmail }

// Modules returns the enabled module ids
func (t *Tenant) Modules() []catalog.ModuleID {
	out := make([]catalog.ModuleID, len(t.modules))
	copy(out, t.modules)
	return out
}

// MVPFeatures returns the enabled MVP feature pack ids
func (t *Tenant) MVPFeatures() []catalog.MVPID {
	out := make([]catalog.MVPID, len(t.mvpFeatures))
	copy(out, t.mvpFeatures)
	return out
}

// Status returns the lifecycle status
func (t *Tenant) Status() Status { return t.status }

// Region returns the service region
func (t *Tenant) Region() Region { return t.region }

// Settings returns the tenant settings
func (t *Tenant) Settings() Settings { return t.settings }

// CreatedAt returns when the tenant was created
func (t *Tenant) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns when the tenant was last updated
func (t *Tenant) UpdatedAt() time.Time { return t.updatedAt }

// IsDraft reports whether the tenant is still a draft stub.
func (t *Tenant) IsDraft() bool { return t.status == StatusDraft }

// SetID sets the database ID (only for persistence layer use)
func (t *Tenant) SetID(dbID uint) error {
	if t.id != 0 {
		return fmt.Errorf("tenant ID is already set")
	}
	if dbID == 0 {
		return fmt.Errorf("tenant ID cannot be zero")
	}
	t.id = dbID
	return nil
}

// CommitFields carries the onboarding wizard output merged into a draft.
type CommitFields struct {
	Name         string
	LegalName    string
	Slug         string
	CustomerType CustomerType
	IndustryTags []IndustryTag
	ContactEmail string
	Modules      []catalog.ModuleID
	MVPFeatures  []catalog.MVPID
	Region       Region
	Settings     Settings
}

// CompleteOnboarding merges wizard output into the draft and activates it.
// Only a DRAFT tenant can be completed; the DRAFT to ACTIVE transition is
// irreversible.
func (t *Tenant) CompleteOnboarding(fields CommitFields) error {
	if t.status != StatusDraft {
		return ErrNotDraft
	}
	if strings.TrimSpace(fields.Name) == "" {
		return ErrNameRequired
	}
	if fields.CustomerType != "" && !fields.CustomerType.IsValid() {
		return fmt.Errorf("invalid customer type: %s", fields.CustomerType)
	}
	if fields.Region != "" && !fields.Region.IsValid() {
		return fmt.Errorf("invalid region: %s", fields.Region)
	}

	t.name = fields.Name
	t.legalName = fields.LegalName
	t.slug = fields.Slug
	if fields.CustomerType != "" {
		t.customerType = fields.CustomerType
	}
	t.industryTags = fields.IndustryTags
	t.contactEmail = fields.ContactEmail
	t.modules = fields.Modules
	t.mvpFeatures = fields.MVPFeatures
	if fields.Region != "" {
		t.region = fields.Region
	}
	t.settings = fields.Settings
	t.status = StatusActive
	t.updatedAt = time.Now().UTC()

	return nil
}

// Suspend pauses an active tenant.
func (t *Tenant) Suspend() error {
	if t.status != StatusActive {
		return ErrNotActive
	}
	t.status = StatusSuspended
	t.updatedAt = time.Now().UTC()
	return nil
}

// Resume reactivates a suspended tenant.
func (t *Tenant) Resume() error {
	if t.status != StatusSuspended {
		return ErrNotSuspended
	}
	t.status = StatusActive
	t.updatedAt = time.Now().UTC()
	return nil
}

// UpdateSettings replaces the tenant settings and returns the keys that
// changed, for audit logging. An empty result means nothing changed.
func (t *Tenant) UpdateSettings(s Settings) ([]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	changed := t.settings.Diff(s)
	if len(changed) == 0 {
		return nil, nil
	}
	t.settings = s
	t.updatedAt = time.Now().UTC()
	return changed, nil
}

package tenant

import "errors"

var (
	// ErrTenantNotFound is returned when a tenant is not found
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrNotDraft is returned when a lifecycle operation requires a DRAFT tenant
	ErrNotDraft = errors.New("tenant is not a draft")

	// ErrNotActive is returned when a lifecycle operation requires an ACTIVE tenant
	ErrNotActive = errors.New("tenant is not active")

	// ErrNotSuspended is returned when resuming a tenant that is not suspended
	ErrNotSuspended = errors.New("tenant is not suspended")

	// ErrNameRequired is returned when the organization name is missing
	ErrNameRequired = errors.New("organization name is required")

	// ErrInvalidSlug is returned when a slug is malformed
	ErrInvalidSlug = errors.New("invalid tenant slug")

	// ErrSlugTaken is returned when a slug collides with another tenant
	ErrSlugTaken = errors.New("tenant slug already taken")

	// ErrInvalidStatus is returned for an unknown tenant status
	ErrInvalidStatus = errors.New("invalid tenant status")

	// ErrInvalidCustomerType is returned for an unknown customer type
	ErrInvalidCustomerType = errors.New("invalid customer type")

	// ErrInvalidIndustryTag is returned for an unknown industry tag
	ErrInvalidIndustryTag = errors.New("invalid industry tag")

	// ErrInvalidRegion is returned for an unknown service region
	ErrInvalidRegion = errors.New("invalid region")

	// ErrInvalidSLATier is returned for an unknown SLA tier
	ErrInvalidSLATier = errors.New("invalid SLA tier")

	// ErrInvalidIdentityScheme is returned for an unknown identity scheme
	ErrInvalidIdentityScheme = errors.New("invalid identity scheme")

	// ErrInvalidRetentionDays is returned for a retention period outside the
	// allowed policy values
	ErrInvalidRetentionDays = errors.New("invalid retention days")

	// ErrInvalidTrustMode is returned for an unknown device trust mode
	ErrInvalidTrustMode = errors.New("invalid device trust mode")

	// ErrInvalidProvisioningMode is returned for an unknown provisioning mode
	ErrInvalidProvisioningMode = errors.New("invalid provisioning mode")

	// ErrInvalidIngestMode is returned for an unknown ingestion channel
	ErrInvalidIngestMode = errors.New("invalid ingest mode")
)

// Package tenant provides the tenant aggregate and its lifecycle rules.
// Tenants are created as DRAFT stubs by the onboarding wizard and flipped to
// ACTIVE exactly once on a successful commit.
package tenant

// Status represents the lifecycle status of a tenant
type Status string

const (
	// StatusDraft is a placeholder record created when onboarding starts
	StatusDraft Status = "DRAFT"
	// StatusActive is an operational tenant
	StatusActive Status = "ACTIVE"
	// StatusSuspended is an active tenant whose access has been paused
	StatusSuspended Status = "SUSPENDED"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusSuspended:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// CustomerType classifies the tenant organization
type CustomerType string

const (
	CustomerTypeBatteryManufacturer CustomerType = "BATTERY_MANUFACTURER"
	CustomerTypeOEM                 CustomerType = "OEM"
	CustomerTypeFleetOperator       CustomerType = "FLEET_OPERATOR"
	CustomerTypeSwappingOperator    CustomerType = "SWAPPING_OPERATOR"
	CustomerTypeFinanceLeasing      CustomerType = "FINANCE_LEASING"
	CustomerTypeRecycler            CustomerType = "RECYCLER"
	CustomerTypeServiceNetwork      CustomerType = "SERVICE_NETWORK"
	CustomerTypeMachineOEM          CustomerType = "MACHINE_OEM"
)

// IsValid checks if the customer type is valid
func (c CustomerType) IsValid() bool {
	switch c {
	case CustomerTypeBatteryManufacturer, CustomerTypeOEM, CustomerTypeFleetOperator,
		CustomerTypeSwappingOperator, CustomerTypeFinanceLeasing, CustomerTypeRecycler,
		CustomerTypeServiceNetwork, CustomerTypeMachineOEM:
		return true
	default:
		return false
	}
}

// String returns the string representation of the customer type
func (c CustomerType) String() string {
	return string(c)
}

// IndustryTag labels the vehicle or device segment a tenant serves
type IndustryTag string

const (
	IndustryEV2W    IndustryTag = "EV_2W"
	IndustryEV3W    IndustryTag = "EV_3W"
	IndustryEV4W    IndustryTag = "EV_4W"
	IndustryEVCV    IndustryTag = "EV_CV"
	IndustryDrones  IndustryTag = "DRONES"
	IndustryDefence IndustryTag = "DEFENCE"
)

// IsValid checks if the industry tag is valid
func (i IndustryTag) IsValid() bool {
	switch i {
	case IndustryEV2W, IndustryEV3W, IndustryEV4W, IndustryEVCV, IndustryDrones, IndustryDefence:
		return true
	default:
		return false
	}
}

// String returns the string representation of the industry tag
func (i IndustryTag) String() string {
	return string(i)
}

// Region identifies the service region a tenant's data lives in
type Region string

const (
	RegionIndia Region = "INDIA"
	RegionEU    Region = "EU"
	RegionUS    Region = "US"
)

// IsValid checks if the region is valid
func (r Region) IsValid() bool {
	switch r {
	case RegionIndia, RegionEU, RegionUS:
		return true
	default:
		return false
	}
}

// String returns the string representation of the region
func (r Region) String() string {
	return string(r)
}

// SLATier is the support tier sold to the tenant
type SLATier string

const (
	SLABasic      SLATier = "Basic"
	SLAPro        SLATier = "Pro"
	SLAEnterprise SLATier = "Enterprise"
)

// IsValid checks if the SLA tier is valid
func (s SLATier) IsValid() bool {
	switch s {
	case SLABasic, SLAPro, SLAEnterprise:
		return true
	default:
		return false
	}
}

// String returns the string representation of the SLA tier
func (s SLATier) String() string {
	return string(s)
}

// IdentityScheme describes how batteries are physically identified
type IdentityScheme string

const (
	IdentityQR    IdentityScheme = "QR"
	IdentityQRNFC IdentityScheme = "QR_NFC"
	IdentityQRSE  IdentityScheme = "QR_SE"
)

// IsValid checks if the identity scheme is valid
func (i IdentityScheme) IsValid() bool {
	switch i {
	case IdentityQR, IdentityQRNFC, IdentityQRSE:
		return true
	default:
		return false
	}
}

// String returns the string representation of the identity scheme
func (i IdentityScheme) String() string {
	return string(i)
}

// ValidRetentionDays are the data retention policies offered in settings.
var ValidRetentionDays = []int{30, 90, 180, 365}

// IsValidRetentionDays reports whether days is an offered retention policy.
func IsValidRetentionDays(days int) bool {
	for _, d := range ValidRetentionDays {
		if d == days {
			return true
		}
	}
	return false
}

package user

// Role is the permission bundle a console user holds within a tenant.
type Role string

const (
	RoleTenantAdmin    Role = "Tenant Admin"
	RoleOpsManager     Role = "Ops Manager"
	RoleTechnician     Role = "Technician"
	RoleDataAnalyst    Role = "Data Analyst"
	RoleFinanceOfficer Role = "Finance Officer"
	RoleViewer         Role = "Viewer"
)

// IsValid checks whether the role is known
func (r Role) IsValid() bool {
	switch r {
	case RoleTenantAdmin, RoleOpsManager, RoleTechnician,
		RoleDataAnalyst, RoleFinanceOfficer, RoleViewer:
		return true
	}
	return false
}

// String returns the string representation
func (r Role) String() string { return string(r) }

// Status is the lifecycle state of a console user.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusActive   Status = "Active"
	StatusDisabled Status = "Disabled"
)

// IsValid checks whether the status is known
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusDisabled:
		return true
	}
	return false
}

// String returns the string representation
func (s Status) String() string { return string(s) }

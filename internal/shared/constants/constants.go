package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyActor     = "actor"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableTenants            = "tenants"
	TableModuleEntitlements = "module_entitlements"
	TableUsers              = "users"
	TableDevices            = "devices"
	TableAuditEntries       = "audit_entries"
	TableTenantSettings     = "tenant_settings"

	// Audit actions
	AuditActionTenantCreated    = "TENANT_CREATED"
	AuditActionTenantSuspended  = "TENANT_SUSPENDED"
	AuditActionTenantResumed    = "TENANT_RESUMED"
	AuditActionModulesUpdated   = "MODULES_UPDATED"
	AuditActionSettingsUpdated  = "SETTINGS_UPDATED"
	AuditActionUserInvited      = "USER_INVITED"
	AuditActionDeviceRegistered = "DEVICE_REGISTERED"

	// Audit entity types
	AuditEntityTenant       = "Tenant"
	AuditEntityUser         = "User"
	AuditEntityDevice       = "Device"
	AuditEntitySettings     = "Settings"
	AuditEntityEntitlements = "Entitlements"

	// Default actor recorded when no admin identity is attached to a request.
	DefaultActor = "Super Admin"
	SystemActor  = "System"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)

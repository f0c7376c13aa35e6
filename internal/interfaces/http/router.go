// Package http assembles the gin router for the administration console API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appAudit "aayatana/internal/application/audit"
	appCatalog "aayatana/internal/application/catalog"
	appDevice "aayatana/internal/application/device"
	appEntitlement "aayatana/internal/application/entitlement"
	appOnboarding "aayatana/internal/application/onboarding"
	appSetting "aayatana/internal/application/setting"
	appTenant "aayatana/internal/application/tenant"
	appUser "aayatana/internal/application/user"
	"aayatana/internal/interfaces/http/handlers"
	"aayatana/internal/interfaces/http/middleware"
	sharedConfig "aayatana/internal/shared/config"
	"aayatana/internal/shared/logger"
)

// Services bundles the application services the router exposes.
type Services struct {
	Catalog     *appCatalog.Service
	Onboarding  *appOnboarding.Service
	Tenant      *appTenant.Service
	Entitlement *appEntitlement.Service
	User        *appUser.Service
	Device      *appDevice.Service
	Audit       *appAudit.Service
	Setting     *appSetting.Service
}

// NewRouter builds the HTTP API.
func NewRouter(cfg *sharedConfig.ServerConfig, services Services, log logger.Interface) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(log))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Actor())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	catalogHandler := handlers.NewCatalogHandler(services.Catalog)
	onboardingHandler := handlers.NewOnboardingHandler(services.Onboarding)
	tenantHandler := handlers.NewTenantHandler(services.Tenant)
	entitlementHandler := handlers.NewEntitlementHandler(services.Entitlement)
	userHandler := handlers.NewUserHandler(services.User)
	deviceHandler := handlers.NewDeviceHandler(services.Device)
	auditHandler := handlers.NewAuditHandler(services.Audit)
	settingHandler := handlers.NewSettingHandler(services.Setting)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/catalog", catalogHandler.GetCatalog)

		sessions := v1.Group("/onboarding/sessions")
		{
			sessions.POST("", onboardingHandler.StartSession)
			sessions.GET("/:sessionID", onboardingHandler.GetSession)
			sessions.DELETE("/:sessionID", onboardingHandler.DiscardSession)
			sessions.PATCH("/:sessionID/profile", onboardingHandler.UpdateProfile)
			sessions.POST("/:sessionID/industry-tags/:tag/toggle", onboardingHandler.ToggleIndustryTag)
			sessions.POST("/:sessionID/modules/:moduleID/toggle", onboardingHandler.ToggleModule)
			sessions.POST("/:sessionID/mvps/:mvpID/toggle", onboardingHandler.ToggleMVP)
			sessions.PATCH("/:sessionID/settings", onboardingHandler.UpdateSettings)
			sessions.PATCH("/:sessionID/identity", onboardingHandler.UpdateIdentity)
			sessions.POST("/:sessionID/invites", onboardingHandler.AddInvite)
			sessions.DELETE("/:sessionID/invites/:email", onboardingHandler.RemoveInvite)
			sessions.PATCH("/:sessionID/trust", onboardingHandler.UpdateTrust)
			sessions.POST("/:sessionID/navigate", onboardingHandler.Navigate)
			sessions.POST("/:sessionID/submit", onboardingHandler.Submit)
		}

		tenants := v1.Group("/tenants")
		{
			tenants.GET("", tenantHandler.ListTenants)
			tenants.GET("/:tenantSID", tenantHandler.GetTenant)
			tenants.POST("/:tenantSID/suspend", tenantHandler.SuspendTenant)
			tenants.POST("/:tenantSID/resume", tenantHandler.ResumeTenant)

			tenants.GET("/:tenantSID/entitlements", entitlementHandler.GetEntitlements)
			tenants.PUT("/:tenantSID/entitlements", entitlementHandler.SaveEntitlements)

			tenants.GET("/:tenantSID/users", userHandler.ListUsers)
			tenants.POST("/:tenantSID/users", userHandler.InviteUser)

			tenants.GET("/:tenantSID/devices", deviceHandler.ListDevices)
			tenants.POST("/:tenantSID/devices", deviceHandler.RegisterDevice)

			tenants.GET("/:tenantSID/audit", auditHandler.ListEntries)
			tenants.GET("/:tenantSID/audit/export", auditHandler.ExportCSV)

			tenants.GET("/:tenantSID/settings", settingHandler.GetSettings)
			tenants.PUT("/:tenantSID/settings", settingHandler.SaveSettings)
		}

		v1.PATCH("/users/:userSID", userHandler.UpdateUser)
		v1.DELETE("/users/:userSID", userHandler.DeleteUser)

		v1.PATCH("/devices/:deviceSID", deviceHandler.UpdateDevice)
		v1.DELETE("/devices/:deviceSID", deviceHandler.DeleteDevice)
	}

	return r
}

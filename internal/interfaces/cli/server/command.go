// Package server implements the CLI command that runs the console API.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	appAudit "aayatana/internal/application/audit"
	appCatalog "aayatana/internal/application/catalog"
	appDevice "aayatana/internal/application/device"
	appEntitlement "aayatana/internal/application/entitlement"
	appOnboarding "aayatana/internal/application/onboarding"
	appSetting "aayatana/internal/application/setting"
	appTenant "aayatana/internal/application/tenant"
	appUser "aayatana/internal/application/user"
	"aayatana/internal/domain/catalog"
	"aayatana/internal/infrastructure/config"
	"aayatana/internal/infrastructure/database"
	"aayatana/internal/infrastructure/repository"
	httpRouter "aayatana/internal/interfaces/http"
	"aayatana/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

// NewCommand creates the server command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Aayatana administration console API with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", true, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if autoMigrate {
		if err := database.Migrate(); err != nil {
			logger.Fatal("auto-migration failed", "error", err)
		}
		logger.Info("auto-migration completed")
	}

	log := logger.NewLogger()
	db := database.Get()

	tenantRepo := repository.NewTenantRepository(db, log)
	entitlementRepo := repository.NewModuleEntitlementRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)
	deviceRepo := repository.NewDeviceRepository(db, log)
	auditRepo := repository.NewAuditRepository(db, log)
	settingRepo := repository.NewTenantSettingsRepository(db, log)

	cat := catalog.Default()

	services := httpRouter.Services{
		Catalog:     appCatalog.NewService(cat),
		Onboarding:  appOnboarding.NewService(cat, tenantRepo, userRepo, auditRepo, cfg.Onboarding, log),
		Tenant:      appTenant.NewService(tenantRepo, auditRepo, log),
		Entitlement: appEntitlement.NewService(cat, entitlementRepo, tenantRepo, auditRepo, log),
		User:        appUser.NewService(userRepo, tenantRepo, auditRepo, log),
		Device:      appDevice.NewService(deviceRepo, tenantRepo, auditRepo, log),
		Audit:       appAudit.NewService(auditRepo, cfg.Audit, log),
		Setting:     appSetting.NewService(settingRepo, tenantRepo, auditRepo, log),
	}

	router := httpRouter.NewRouter(&cfg.Server, services, log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}

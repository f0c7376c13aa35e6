package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/catalog"
	"aayatana/internal/domain/device"
	"aayatana/internal/domain/entitlement"
	"aayatana/internal/domain/setting"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/domain/user"
	"aayatana/internal/infrastructure/persistence/models"
	"aayatana/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.TenantModel{},
		&models.ModuleEntitlementModel{},
		&models.UserModel{},
		&models.DeviceModel{},
		&models.AuditEntryModel{},
		&models.TenantSettingsModel{},
	)
	require.NoError(t, err)
	return db
}

func activeTenant(t *testing.T, name, slug string) *tenant.Tenant {
	t.Helper()
	tn, err := tenant.NewStub()
	require.NoError(t, err)
	require.NoError(t, tn.CompleteOnboarding(tenant.CommitFields{
		Name:         name,
		Slug:         slug,
		CustomerType: tenant.CustomerTypeFleetOperator,
		IndustryTags: []tenant.IndustryTag{tenant.IndustryEV3W},
		Modules:      []catalog.ModuleID{catalog.ModuleVoltEdge, catalog.ModuleEcoTrace360},
		MVPFeatures:  []catalog.MVPID{catalog.MVPRealtimeMonitoring},
		Region:       tenant.RegionIndia,
		Settings:     tenant.DefaultSettings(),
	}))
	return tn
}

func TestTenantRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTenantRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("create and fetch round trip", func(t *testing.T) {
		tn := activeTenant(t, "GreenMotion Logistics", "green-motion")
		require.NoError(t, repo.Create(ctx, tn))
		assert.NotZero(t, tn.ID())

		found, err := repo.GetBySID(ctx, tn.SID())
		require.NoError(t, err)
		assert.Equal(t, "GreenMotion Logistics", found.Name())
		assert.Equal(t, tenant.StatusActive, found.Status())
		assert.Equal(t, []catalog.ModuleID{catalog.ModuleVoltEdge, catalog.ModuleEcoTrace360}, found.Modules())
		assert.Equal(t, tenant.SLABasic, found.Settings().SLATier)
	})

	t.Run("draft stub persists and commits", func(t *testing.T) {
		stub, err := tenant.NewStub()
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, stub))

		loaded, err := repo.GetBySID(ctx, stub.SID())
		require.NoError(t, err)
		assert.True(t, loaded.IsDraft())

		require.NoError(t, loaded.CompleteOnboarding(tenant.CommitFields{
			Name:     "Committed Co",
			Slug:     "committed-co",
			Settings: tenant.DefaultSettings(),
		}))
		require.NoError(t, repo.Update(ctx, loaded))

		reloaded, err := repo.GetBySID(ctx, stub.SID())
		require.NoError(t, err)
		assert.Equal(t, tenant.StatusActive, reloaded.Status())
		assert.Equal(t, "committed-co", reloaded.Slug())
	})

	t.Run("get by slug", func(t *testing.T) {
		found, err := repo.GetBySlug(ctx, "green-motion")
		require.NoError(t, err)
		assert.Equal(t, "GreenMotion Logistics", found.Name())

		_, err = repo.GetBySlug(ctx, "nope")
		assert.ErrorIs(t, err, tenant.ErrTenantNotFound)
	})

	t.Run("slug exists honors exclusion", func(t *testing.T) {
		tn := activeTenant(t, "Bolt Mobility", "bolt-mobility")
		require.NoError(t, repo.Create(ctx, tn))

		taken, err := repo.SlugExists(ctx, "bolt-mobility", "")
		require.NoError(t, err)
		assert.True(t, taken)

		taken, err = repo.SlugExists(ctx, "bolt-mobility", tn.SID())
		require.NoError(t, err)
		assert.False(t, taken, "a tenant does not collide with itself")
	})

	t.Run("list filters by status", func(t *testing.T) {
		status := tenant.StatusActive
		tenants, total, err := repo.List(ctx, tenant.ListFilters{Status: &status}, 0, 10)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, int64(3))
		for _, tn := range tenants {
			assert.Equal(t, tenant.StatusActive, tn.Status())
		}
	})

	t.Run("search by name", func(t *testing.T) {
		_, total, err := repo.List(ctx, tenant.ListFilters{Search: "Bolt"}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}

func TestModuleEntitlementRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewModuleEntitlementRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("empty before materialization", func(t *testing.T) {
		set, err := repo.GetByTenant(ctx, "tnt_a")
		require.NoError(t, err)
		assert.Empty(t, set)
	})

	t.Run("replace and reload", func(t *testing.T) {
		set := entitlement.DefaultSet(catalog.Default())
		require.NoError(t, repo.ReplaceForTenant(ctx, "tnt_a", set))

		loaded, err := repo.GetByTenant(ctx, "tnt_a")
		require.NoError(t, err)
		assert.Len(t, loaded, 6)

		set[0].Enabled = true
		set[0].Tier = entitlement.TierEnterprise
		require.NoError(t, repo.ReplaceForTenant(ctx, "tnt_a", set))

		reloaded, err := repo.GetByTenant(ctx, "tnt_a")
		require.NoError(t, err)
		assert.Len(t, reloaded, 6)
	})

	t.Run("tenants are isolated", func(t *testing.T) {
		other, err := repo.GetByTenant(ctx, "tnt_b")
		require.NoError(t, err)
		assert.Empty(t, other)
	})
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("create and duplicate email", func(t *testing.T) {
		u, err := user.NewUser("tnt_a", "Alice Johnson", "admin@demo.com", user.RoleTenantAdmin)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, u))

		dup, err := user.NewUser("tnt_a", "Impostor", "admin@demo.com", user.RoleViewer)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), user.ErrEmailTaken)

		// same email under another tenant is fine
		elsewhere, err := user.NewUser("tnt_b", "Alice Johnson", "admin@demo.com", user.RoleTenantAdmin)
		require.NoError(t, err)
		assert.NoError(t, repo.Create(ctx, elsewhere))
	})

	t.Run("update lifecycle", func(t *testing.T) {
		u, err := user.NewUser("tnt_a", "Bob Smith", "ops@demo.com", user.RoleOpsManager)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, u))

		require.NoError(t, u.Activate())
		require.NoError(t, repo.Update(ctx, u))

		loaded, err := repo.GetBySID(ctx, u.SID())
		require.NoError(t, err)
		assert.Equal(t, user.StatusActive, loaded.Status())
	})

	t.Run("list by tenant", func(t *testing.T) {
		users, total, err := repo.ListByTenant(ctx, "tnt_a", 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, users, 2)
	})

	t.Run("email exists is tenant scoped", func(t *testing.T) {
		exists, err := repo.EmailExists(ctx, "tnt_a", "ADMIN@demo.com ")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.EmailExists(ctx, "tnt_c", "admin@demo.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("delete", func(t *testing.T) {
		u, err := user.NewUser("tnt_a", "Temp", "temp@demo.com", user.RoleViewer)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, u))
		require.NoError(t, repo.Delete(ctx, u.SID()))
		_, err = repo.GetBySID(ctx, u.SID())
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestDeviceRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDeviceRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("serial uniqueness is case insensitive per tenant", func(t *testing.T) {
		d, err := device.NewDevice("tnt_a", "BMS-2024-X99", device.TypeSmartBMS, "1.2.4", "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, d))

		dup, err := device.NewDevice("tnt_a", "bms-2024-x99", device.TypeSmartBMS, "1.2.4", "")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), device.ErrSerialTaken)

		exists, err := repo.SerialExists(ctx, "tnt_a", "  BMS-2024-x99 ")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.SerialExists(ctx, "tnt_b", "BMS-2024-X99")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("seen round trip", func(t *testing.T) {
		d, err := device.NewDevice("tnt_a", "IOT-GW-7721", device.TypeIoTGateway, "2.0.1", "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, d))

		require.NoError(t, d.Seen(time.Now()))
		require.NoError(t, repo.Update(ctx, d))

		loaded, err := repo.GetBySID(ctx, d.SID())
		require.NoError(t, err)
		assert.Equal(t, device.StatusActive, loaded.Status())
		assert.NotNil(t, loaded.LastSeenAt())
	})

	t.Run("list newest first", func(t *testing.T) {
		devices, total, err := repo.ListByTenant(ctx, "tnt_a", device.ListFilters{}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, devices, 2)
	})
}

func TestAuditRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db, logger.NewLogger())
	ctx := context.Background()

	mkEntry := func(t *testing.T, action string) *audit.Entry {
		t.Helper()
		e, err := audit.NewEntry("tnt_a", action, "Tenant", "tnt_a", "Super Admin", map[string]any{"source": "test"})
		require.NoError(t, err)
		return e
	}

	t.Run("newest first ordering", func(t *testing.T) {
		first := mkEntry(t, "TENANT_CREATED")
		require.NoError(t, repo.Create(ctx, first))
		time.Sleep(5 * time.Millisecond)
		second := mkEntry(t, "MODULES_UPDATED")
		require.NoError(t, repo.Create(ctx, second))

		entries, total, err := repo.ListByTenant(ctx, "tnt_a", audit.Filters{}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, entries, 2)
		assert.Equal(t, "MODULES_UPDATED", entries[0].Action())
		assert.Equal(t, "TENANT_CREATED", entries[1].Action())
	})

	t.Run("filter by action", func(t *testing.T) {
		entries, total, err := repo.ListByTenant(ctx, "tnt_a", audit.Filters{Action: "TENANT_CREATED"}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, entries, 1)
		assert.Equal(t, map[string]any{"source": "test"}, entries[0].Meta())
	})
}

func TestTenantSettingsRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTenantSettingsRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("nil before first save", func(t *testing.T) {
		s, err := repo.GetByTenant(ctx, "tnt_a")
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("save and upsert", func(t *testing.T) {
		s := setting.Defaults("tnt_a")
		require.NoError(t, repo.Save(ctx, s))

		loaded, err := repo.GetByTenant(ctx, "tnt_a")
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, 90, loaded.RetentionDays())

		_, err = loaded.Apply(setting.Update{
			Region:               setting.DataRegionEU,
			RetentionDays:        365,
			SamplingProfile:      setting.SamplingLowFreq30S,
			NotificationChannels: []setting.NotificationChannel{setting.ChannelEmail, setting.ChannelSMS},
		})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, loaded))

		reloaded, err := repo.GetByTenant(ctx, "tnt_a")
		require.NoError(t, err)
		assert.Equal(t, setting.DataRegionEU, reloaded.Region())
		assert.Equal(t, 365, reloaded.RetentionDays())
		assert.Len(t, reloaded.NotificationChannels(), 2)
	})
}

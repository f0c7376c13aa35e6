package onboarding

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"aayatana/internal/application/onboarding/dto"
	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/catalog"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/infrastructure/persistence/models"
	"aayatana/internal/infrastructure/repository"
	sharedConfig "aayatana/internal/shared/config"
	"aayatana/internal/shared/constants"
	"aayatana/internal/shared/logger"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.TenantModel{},
		&models.UserModel{},
		&models.AuditEntryModel{},
	))

	log := logger.NewLogger()
	svc := NewService(
		catalog.Default(),
		repository.NewTenantRepository(db, log),
		repository.NewUserRepository(db, log),
		repository.NewAuditRepository(db, log),
		sharedConfig.OnboardingConfig{SlugCheckDebounceMS: 10},
		log,
	)
	return svc, db
}

func strPtr(s string) *string { return &s }

func TestStartSessionCreatesDraft(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Step)
	assert.Empty(t, resp.Profile.Name)
	assert.Equal(t, string(tenant.TrustExternal), resp.Trust.TrustMode)
	assert.Equal(t, "UNKNOWN", resp.SlugStatus)

	var count int64
	require.NoError(t, db.Model(&models.TenantModel{}).
		Where("sid = ? AND status = ?", resp.SessionID, tenant.StatusDraft.String()).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateProfileDerivesSlug(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)

	resp, err := svc.UpdateProfile(start.SessionID, dto.UpdateProfileRequest{Name: strPtr("Acme Batteries")})
	require.NoError(t, err)
	assert.Equal(t, "acme-batteries", resp.Profile.Slug)

	// A manual slug survives later renames.
	resp, err = svc.UpdateProfile(start.SessionID, dto.UpdateProfileRequest{Slug: strPtr("acme-in")})
	require.NoError(t, err)
	resp, err = svc.UpdateProfile(start.SessionID, dto.UpdateProfileRequest{Name: strPtr("Acme Energy")})
	require.NoError(t, err)
	assert.Equal(t, "acme-in", resp.Profile.Slug)
}

func TestSlugCheckDebounced(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	taken := activeTenantModel(t, "Taken Co", "taken-co")
	require.NoError(t, db.Create(taken).Error)

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)

	resp, err := svc.UpdateProfile(start.SessionID, dto.UpdateProfileRequest{Slug: strPtr("taken-co")})
	require.NoError(t, err)
	assert.Equal(t, "UNKNOWN", resp.SlugStatus)

	require.Eventually(t, func() bool {
		got, err := svc.GetSession(start.SessionID)
		return err == nil && got.SlugStatus == "TAKEN"
	}, time.Second, 10*time.Millisecond)

	_, err = svc.UpdateProfile(start.SessionID, dto.UpdateProfileRequest{Slug: strPtr("free-co")})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		got, err := svc.GetSession(start.SessionID)
		return err == nil && got.SlugStatus == "AVAILABLE"
	}, time.Second, 10*time.Millisecond)
}

func TestNavigationAndTrustDefault(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)
	sid := start.SessionID

	_, err = svc.UpdateProfile(sid, dto.UpdateProfileRequest{
		Name:         strPtr("CellWorks"),
		CustomerType: strPtr(string(tenant.CustomerTypeBatteryManufacturer)),
	})
	require.NoError(t, err)

	resp, err := svc.Navigate(sid, dto.NavigateRequest{Direction: "jump", Step: 6})
	require.NoError(t, err)
	assert.Equal(t, string(tenant.TrustHybrid), resp.Trust.TrustMode)

	// Switching trust modes resets dependents.
	resp, err = svc.UpdateTrust(sid, dto.UpdateTrustRequest{TrustMode: strPtr(string(tenant.TrustExternal))})
	require.NoError(t, err)
	assert.Equal(t, []string{string(tenant.IngestRESTAPI)}, resp.Trust.IngestModes)
}

func TestSubmitCommitsTenantAndInvites(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)
	sid := start.SessionID

	_, err = svc.UpdateProfile(sid, dto.UpdateProfileRequest{Name: strPtr("GridPulse")})
	require.NoError(t, err)
	_, err = svc.ToggleModule(sid, string(catalog.ModuleEcoTrace360))
	require.NoError(t, err)
	_, err = svc.AddInvite(sid, dto.InviteRequest{Email: "ops@gridpulse.io", Role: "Ops Manager"})
	require.NoError(t, err)

	// Submit is only valid from the review step.
	_, err = svc.Submit(ctx, sid, false)
	require.Error(t, err)

	_, err = svc.Navigate(sid, dto.NavigateRequest{Direction: "jump", Step: 7})
	require.NoError(t, err)

	result, err := svc.Submit(ctx, sid, false)
	require.NoError(t, err)
	assert.Equal(t, "GridPulse", result.Name)
	assert.Equal(t, "gridpulse", result.Slug)
	assert.Equal(t, tenant.StatusActive.String(), result.Status)

	// Session is gone after a successful submit.
	_, err = svc.GetSession(sid)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	log := logger.NewLogger()
	users, total, err := repository.NewUserRepository(db, log).ListByTenant(ctx, result.TenantSID, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, "ops@gridpulse.io", users[0].Email())

	entries, _, err := repository.NewAuditRepository(db, log).
		ListByTenant(ctx, result.TenantSID, audit.Filters{}, 0, 10)
	require.NoError(t, err)
	actions := make([]string, 0, len(entries))
	for _, e := range entries {
		actions = append(actions, e.Action())
	}
	assert.Contains(t, actions, constants.AuditActionTenantCreated)
	assert.Contains(t, actions, constants.AuditActionUserInvited)
}

func TestSubmitRetriesAfterSlugCollision(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	taken := activeTenantModel(t, "First Mover", "first-mover")
	require.NoError(t, db.Create(taken).Error)

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)
	sid := start.SessionID

	_, err = svc.UpdateProfile(sid, dto.UpdateProfileRequest{Name: strPtr("First Mover")})
	require.NoError(t, err)
	_, err = svc.Navigate(sid, dto.NavigateRequest{Direction: "jump", Step: 7})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, sid, false)
	assert.ErrorIs(t, err, tenant.ErrSlugTaken)

	// The session survives the failure; fixing the slug makes it commit.
	_, err = svc.UpdateProfile(sid, dto.UpdateProfileRequest{Slug: strPtr("first-mover-in")})
	require.NoError(t, err)
	result, err := svc.Submit(ctx, sid, false)
	require.NoError(t, err)
	assert.Equal(t, "first-mover-in", result.Slug)
}

func TestSubmitMissingDraftRecovery(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	start, err := svc.StartSession(ctx)
	require.NoError(t, err)
	sid := start.SessionID

	_, err = svc.UpdateProfile(sid, dto.UpdateProfileRequest{Name: strPtr("Ghost Draft")})
	require.NoError(t, err)
	_, err = svc.Navigate(sid, dto.NavigateRequest{Direction: "jump", Step: 7})
	require.NoError(t, err)

	// Simulate the draft row disappearing under the session.
	require.NoError(t, db.Where("sid = ?", sid).Delete(&models.TenantModel{}).Error)

	// The plain submit fails loudly and writes nothing.
	_, err = svc.Submit(ctx, sid, false)
	assert.ErrorIs(t, err, tenant.ErrTenantNotFound)
	var count int64
	require.NoError(t, db.Model(&models.TenantModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// Opting into recovery commits into a fresh tenant.
	result, err := svc.Submit(ctx, sid, true)
	require.NoError(t, err)
	assert.NotEqual(t, sid, result.TenantSID)
	assert.Equal(t, tenant.StatusActive.String(), result.Status)
}

func activeTenantModel(t *testing.T, name, slug string) *models.TenantModel {
	t.Helper()
	tn, err := tenant.NewStub()
	require.NoError(t, err)
	require.NoError(t, tn.CompleteOnboarding(tenant.CommitFields{
		Name:     name,
		Slug:     slug,
		Region:   tenant.RegionIndia,
		Settings: tenant.DefaultSettings(),
	}))
	return &models.TenantModel{
		SID:           tn.SID(),
		Name:          tn.Name(),
		Slug:          tn.Slug(),
		CustomerType:  tn.CustomerType().String(),
		Status:        tn.Status().String(),
		Region:        tn.Region().String(),
		RetentionDays: tn.Settings().RetentionDays,
		SLATier:       tn.Settings().SLATier.String(),
	}
}

// Package onboarding hosts the tenant onboarding wizard sessions. A session
// wraps a draft tenant and a wizard state machine held in memory; the draft
// row is created up front so abandoned sessions remain visible as drafts.
package onboarding

import (
	"context"
	"errors"
	"sync"
	"time"

	"aayatana/internal/application/onboarding/dto"
	"aayatana/internal/application/onboarding/usecases"
	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/catalog"
	domainonboarding "aayatana/internal/domain/onboarding"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/domain/user"
	sharedConfig "aayatana/internal/shared/config"
	"aayatana/internal/shared/logger"
)

// ErrSessionNotFound is returned when a wizard session ID is unknown,
// typically because the session was already submitted or discarded.
var ErrSessionNotFound = errors.New("onboarding session not found")

type session struct {
	mu        sync.Mutex
	tenantSID string
	wizard    *domainonboarding.Wizard
	slugCheck *domainonboarding.SlugCheck
	timer     *time.Timer
}

// Service manages wizard sessions keyed by their draft tenant SID.
type Service struct {
	catalog    *catalog.Catalog
	tenantRepo tenant.Repository
	logger     logger.Interface
	debounce   time.Duration

	checkSlug *usecases.CheckSlugUseCase
	submit    *usecases.SubmitOnboardingUseCase

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewService creates a new onboarding service
func NewService(
	cat *catalog.Catalog,
	tenantRepo tenant.Repository,
	userRepo user.Repository,
	auditRepo audit.Repository,
	cfg sharedConfig.OnboardingConfig,
	logger logger.Interface,
) *Service {
	return &Service{
		catalog:    cat,
		tenantRepo: tenantRepo,
		logger:     logger,
		debounce:   time.Duration(cfg.SlugCheckDebounceMS) * time.Millisecond,
		checkSlug:  usecases.NewCheckSlugUseCase(tenantRepo, logger),
		submit:     usecases.NewSubmitOnboardingUseCase(tenantRepo, userRepo, auditRepo, logger),
		sessions:   make(map[string]*session),
	}
}

// StartSession creates a draft tenant and a fresh wizard bound to it.
func (s *Service) StartSession(ctx context.Context) (*dto.SessionResponse, error) {
	t, err := tenant.NewStub()
	if err != nil {
		return nil, err
	}
	if err := s.tenantRepo.Create(ctx, t); err != nil {
		s.logger.Errorw("failed to create draft tenant", "error", err)
		return nil, err
	}

	sess := &session{
		tenantSID: t.SID(),
		wizard:    domainonboarding.NewWizard(s.catalog),
		slugCheck: domainonboarding.NewSlugCheck(),
	}
	s.mu.Lock()
	s.sessions[t.SID()] = sess
	s.mu.Unlock()

	s.logger.Infow("onboarding session started", "tenant_sid", t.SID())
	return s.toResponse(sess), nil
}

// GetSession returns the current wizard state.
func (s *Service) GetSession(sessionID string) (*dto.SessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.toResponse(sess), nil
}

// UpdateProfile applies step 1 edits. Editing the name re-derives the slug
// while the slug has not been set by hand; any slug change re-arms the
// availability check.
func (s *Service) UpdateProfile(sessionID string, req dto.UpdateProfileRequest) (*dto.SessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	state := sess.wizard.State()
	prevSlug := state.Slug()

	if req.Name != nil {
		state.SetName(*req.Name)
	}
	if req.LegalName != nil {
		state.SetLegalName(*req.LegalName)
	}
	if req.Slug != nil {
		state.SetSlug(*req.Slug)
	}
	if req.CustomerType != nil {
		if err := state.SetCustomerType(tenant.CustomerType(*req.CustomerType)); err != nil {
			return nil, err
		}
	}
	if req.ContactEmail != nil {
		state.SetContactEmail(*req.ContactEmail)
	}

	if state.Slug() != prevSlug {
		s.scheduleSlugCheck(sess, state.Slug())
	}
	return s.toResponse(sess), nil
}

// ToggleIndustryTag flips one industry tag on step 1.
func (s *Service) ToggleIndustryTag(sessionID, tag string) (*dto.SessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.wizard.State().ToggleIndustryTag(tenant.IndustryTag(tag)); err != nil {
		return nil, err
	}
	return s.toResponse(sess), nil
}

// ToggleModule flips a module on step 2, cascading required feature packs.
func (s *Service) ToggleModule(sessionID, moduleID string) (*dto.SessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.wizard.State().Selection().ToggleModule(catalog.ModuleID(moduleID))
	return s.toResponse(sess), nil
}

// ToggleMVP flips a feature pack on step 2, pulling in its dependencies.
func (s *Service) ToggleMVP(sessionID, mvpID string) (*dto.SessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.wizard.State().Selection().ToggleMVP(catalog.MVPID(mvpID))
	return s.toResponse(sess), nil
}

// UpdateSettings applies step 3 edits.
func (s *Service) UpdateSettings(sessionID string, req dto.UpdateSettingsRequest) (*dto.SessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	state := sess.wizard.State()
	if req.RetentionDays != nil {
		if err := state.SetRetentionDays(*req.RetentionDays); err != nil {
			return nil, err
		}
	}
	if req.Region != nil {
		if err := state.SetRegion(tenant.Region(*req.Region)); err != nil {
			return nil, err
		}
	}
	if req.SLATier != nil {
		if err := state.SetSLATier(tenant.SLATier(*req.SLATier)); err != nil {
			return nil, err
		}
	}
	return s.toResponse(sess), nil
}

// UpdateIdentity applies step 4 edits.
func (s *Service) UpdateIdentity(sessionID string, req dto.UpdateIdentityRequest) (*dto.SessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	state := sess.wizard.State()
	if req.IdentityScheme != nil {
		if err := state.SetIdentityScheme(tenant.IdentityScheme(*req.IdentityScheme)); err != nil {
			return nil, err
		}
	}
	if req.ComplianceReady != nil {
		state.SetComplianceReady(*req.ComplianceReady)
	}
	return s.toResponse(sess), nil
}

// AddInvite queues an invitation on step 5. Invitations only become users
// when the wizard is submitted.
func (s *Service) AddInvite(sessionID string, req dto.InviteRequest) (*dto.SessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if !user.Role(req.Role).IsValid() {
		return nil, user.ErrInvalidRole
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.wizard.State().AddInvite(req.Email, req.Role)
	return s.toResponse(sess), nil
}

// RemoveInvite drops a queued invitation by email.
func (s *Service) RemoveInvite(sessionID, email string) (*dto.SessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.wizard.State().RemoveInvite(email)
	return s.toResponse(sess), nil
}

// UpdateTrust applies step 6 edits. Changing the trust mode resets the
// dependent fields, so the order of fields within one request matters:
// trust mode first, then provisioning, then ingest toggles.
func (s *Service) UpdateTrust(sessionID string, req dto.UpdateTrustRequest) (*dto.SessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	state := sess.wizard.State()
	if req.TrustMode != nil {
		if err := state.SetTrustMode(tenant.TrustMode(*req.TrustMode)); err != nil {
			return nil, err
		}
	}
	if req.ProvisioningMode != nil {
		if err := state.SetProvisioningMode(tenant.ProvisioningMode(*req.ProvisioningMode)); err != nil {
			return nil, err
		}
	}
	if req.ToggleIngestMode != nil {
		if err := state.ToggleIngestMode(tenant.IngestMode(*req.ToggleIngestMode)); err != nil {
			return nil, err
		}
	}
	return s.toResponse(sess), nil
}

// Navigate moves the wizard forward, back, or to an arbitrary step.
func (s *Service) Navigate(sessionID string, req dto.NavigateRequest) (*dto.SessionResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch req.Direction {
	case "next":
		err = sess.wizard.Next()
	case "back":
		err = sess.wizard.Back()
	case "jump":
		err = sess.wizard.Jump(req.Step)
	default:
		err = domainonboarding.ErrInvalidStep
	}
	if err != nil {
		return nil, err
	}
	return s.toResponse(sess), nil
}

// Submit commits the session. On success the session is removed; on failure
// it stays open so the operator can fix the problem and retry. The recover
// flag allows committing into a fresh tenant when the draft row has gone
// missing.
func (s *Service) Submit(ctx context.Context, sessionID string, recoverDraft bool) (*dto.SubmitResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	t, err := s.submit.Execute(ctx, sess.tenantSID, sess.wizard, recoverDraft)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	if sess.timer != nil {
		sess.timer.Stop()
	}

	return &dto.SubmitResponse{
		TenantSID: t.SID(),
		Name:      t.Name(),
		Slug:      t.Slug(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
	}, nil
}

// DiscardSession drops the in-memory session. The draft tenant row stays
// behind and shows up in tenant listings as a draft.
func (s *Service) DiscardSession(sessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	if sess.timer != nil {
		sess.timer.Stop()
	}
	return nil
}

func (s *Service) session(sessionID string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// scheduleSlugCheck debounces the availability lookup. Each call restarts
// the timer and bumps the sequence number, so only the lookup for the last
// slug typed within the window ever lands. Caller holds sess.mu.
func (s *Service) scheduleSlugCheck(sess *session, slug string) {
	if sess.timer != nil {
		sess.timer.Stop()
	}
	seq := sess.slugCheck.Begin(slug)
	if slug == "" {
		return
	}
	sess.timer = time.AfterFunc(s.debounce, func() {
		sess.mu.Lock()
		defer sess.mu.Unlock()
		// The request context is long gone by the time the timer fires.
		if _, err := s.checkSlug.Execute(context.Background(), sess.slugCheck, seq, slug, sess.tenantSID); err != nil {
			s.logger.Warnw("slug check failed", "tenant_sid", sess.tenantSID, "slug", slug, "error", err)
		}
	})
}

// toResponse snapshots the wizard into the API shape. Caller holds sess.mu
// (or owns the session exclusively, as in StartSession).
func (s *Service) toResponse(sess *session) *dto.SessionResponse {
	state := sess.wizard.State()
	impact := domainonboarding.EstimateImpact(s.catalog, state)

	tags := make([]string, 0, len(state.IndustryTags()))
	for _, t := range state.IndustryTags() {
		tags = append(tags, t.String())
	}
	modules := make([]string, 0, len(state.Selection().Modules()))
	for _, m := range state.Selection().Modules() {
		modules = append(modules, string(m))
	}
	mvps := make([]string, 0, len(state.Selection().MVPs()))
	for _, m := range state.Selection().MVPs() {
		mvps = append(mvps, string(m))
	}
	invites := make([]dto.InviteItem, 0, len(state.Invites()))
	for _, inv := range state.Invites() {
		invites = append(invites, dto.InviteItem{Email: inv.Email, Role: inv.Role})
	}
	ingest := make([]string, 0, len(state.IngestModes()))
	for _, m := range state.IngestModes() {
		ingest = append(ingest, m.String())
	}

	return &dto.SessionResponse{
		SessionID: sess.tenantSID,
		Step:      sess.wizard.Step(),
		Submitted: sess.wizard.Submitted(),
		Profile: dto.ProfileSection{
			Name:         state.Name(),
			LegalName:    state.LegalName(),
			Slug:         state.Slug(),
			CustomerType: state.CustomerType().String(),
			IndustryTags: tags,
			ContactEmail: state.ContactEmail(),
		},
		Modules: dto.ModulesSection{
			Selected:    modules,
			MVPFeatures: mvps,
		},
		Settings: dto.SettingsSection{
			RetentionDays: state.RetentionDays(),
			Region:        state.Region().String(),
			SLATier:       state.SLATier().String(),
		},
		Identity: dto.IdentitySection{
			IdentityScheme:  state.IdentityScheme().String(),
			ComplianceReady: state.ComplianceReady(),
		},
		Invites: invites,
		Trust: dto.TrustSection{
			TrustMode:        state.TrustMode().String(),
			ProvisioningMode: state.ProvisioningMode().String(),
			IngestModes:      ingest,
		},
		Impact: dto.ImpactResponse{
			VolumeScore:      impact.VolumeScore,
			VolumeTier:       impact.VolumeTier.String(),
			MonthlyEstimate:  impact.MonthlyEstimate,
			Integrations:     impact.Integrations,
			RecommendedRoles: impact.RecommendedRoles,
			Warnings:         impact.Warnings,
		},
		SlugStatus: string(sess.slugCheck.Result()),
	}
}

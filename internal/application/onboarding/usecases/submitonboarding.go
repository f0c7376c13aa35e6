package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/onboarding"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/domain/user"
	"aayatana/internal/shared/constants"
	"aayatana/internal/shared/logger"
	"aayatana/internal/shared/utils"
)

// SubmitOnboardingUseCase commits a wizard session: the draft tenant is
// activated with the captured fields, queued invitations become pending
// users, and audit entries are written. The wizard stays submittable until
// the commit succeeds so a failed submit can be retried.
type SubmitOnboardingUseCase struct {
	tenantRepo tenant.Repository
	userRepo   user.Repository
	auditRepo  audit.Repository
	logger     logger.Interface
}

// NewSubmitOnboardingUseCase creates a new submit onboarding use case
func NewSubmitOnboardingUseCase(
	tenantRepo tenant.Repository,
	userRepo user.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *SubmitOnboardingUseCase {
	return &SubmitOnboardingUseCase{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		auditRepo:  auditRepo,
		logger:     logger,
	}
}

// Execute commits the wizard against its draft tenant and returns the
// activated tenant. A missing or already-committed draft fails the submit;
// with recover set, the commit lands in a fresh tenant instead.
func (uc *SubmitOnboardingUseCase) Execute(ctx context.Context, draftSID string, wizard *onboarding.Wizard, recoverDraft bool) (*tenant.Tenant, error) {
	fields, err := wizard.Submit()
	if err != nil {
		return nil, err
	}

	if !utils.IsValidSlug(fields.Slug) {
		return nil, tenant.ErrInvalidSlug
	}
	taken, err := uc.tenantRepo.SlugExists(ctx, fields.Slug, draftSID)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug availability: %w", err)
	}
	if taken {
		return nil, tenant.ErrSlugTaken
	}

	t, err := uc.tenantRepo.GetBySID(ctx, draftSID)
	switch {
	case err == nil:
		if err := t.CompleteOnboarding(fields); err != nil {
			return nil, err
		}
		if err := uc.tenantRepo.Update(ctx, t); err != nil {
			uc.logger.Errorw("failed to commit onboarding", "tenant_sid", draftSID, "error", err)
			return nil, err
		}
	case recoverDraft && errors.Is(err, tenant.ErrTenantNotFound):
		// Opt-in recovery: the draft row disappeared under the session, for
		// example after a manual cleanup. Commit into a fresh tenant rather
		// than losing the whole wizard.
		uc.logger.Warnw("draft tenant missing at commit, creating fresh tenant", "draft_sid", draftSID)
		t, err = uc.createFresh(ctx, fields)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	wizard.MarkSubmitted()

	uc.recordAudit(ctx, t.SID(), constants.AuditActionTenantCreated, constants.AuditEntityTenant, t.SID(),
		map[string]any{"source": "Onboarding Wizard", "name": t.Name()})

	for _, inv := range wizard.State().Invites() {
		uc.createInvitedUser(ctx, t.SID(), inv)
	}

	uc.logger.Infow("tenant onboarded", "tenant_sid", t.SID(), "slug", t.Slug())
	return t, nil
}

// createFresh builds and persists a new tenant directly from the wizard
// fields when the draft the session was bound to no longer exists.
func (uc *SubmitOnboardingUseCase) createFresh(ctx context.Context, fields tenant.CommitFields) (*tenant.Tenant, error) {
	t, err := tenant.NewStub()
	if err != nil {
		return nil, err
	}
	if err := t.CompleteOnboarding(fields); err != nil {
		return nil, err
	}
	if err := uc.tenantRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create recovery tenant", "error", err)
		return nil, err
	}
	return t, nil
}

// createInvitedUser materializes a queued wizard invitation. Failures are
// logged and skipped: the tenant commit already happened and a bad invite
// must not undo it.
func (uc *SubmitOnboardingUseCase) createInvitedUser(ctx context.Context, tenantSID string, inv onboarding.Invite) {
	u, err := user.NewUser(tenantSID, fullNameFromEmail(inv.Email), inv.Email, user.Role(inv.Role))
	if err != nil {
		uc.logger.Warnw("skipping invalid invitation", "tenant_sid", tenantSID, "email", inv.Email, "error", err)
		return
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Warnw("failed to create invited user", "tenant_sid", tenantSID, "email", inv.Email, "error", err)
		return
	}
	uc.recordAudit(ctx, tenantSID, constants.AuditActionUserInvited, constants.AuditEntityUser, u.SID(),
		map[string]any{"email": u.Email(), "role": u.Role().String()})
}

func (uc *SubmitOnboardingUseCase) recordAudit(ctx context.Context, tenantSID, action, entityType, entityID string, meta map[string]any) {
	entry, err := audit.NewEntry(tenantSID, action, entityType, entityID, constants.SystemActor, meta)
	if err != nil {
		uc.logger.Errorw("failed to build audit entry", "action", action, "error", err)
		return
	}
	if err := uc.auditRepo.Create(ctx, entry); err != nil {
		uc.logger.Errorw("failed to write audit entry", "action", action, "error", err)
	}
}

// fullNameFromEmail derives a placeholder display name from the address
// local part; the user can rename themselves after accepting.
func fullNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	return strings.TrimSpace(local)
}

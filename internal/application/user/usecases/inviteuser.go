package usecases

import (
	"context"

	"aayatana/internal/application/user/dto"
	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/domain/user"
	"aayatana/internal/shared/constants"
	"aayatana/internal/shared/logger"
)

// InviteUserUseCase invites a user into a tenant. The user starts Pending.
type InviteUserUseCase struct {
	userRepo   user.Repository
	tenantRepo tenant.Repository
	auditRepo  audit.Repository
	logger     logger.Interface
}

// NewInviteUserUseCase creates a new invite user use case
func NewInviteUserUseCase(
	userRepo user.Repository,
	tenantRepo tenant.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *InviteUserUseCase {
	return &InviteUserUseCase{
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		auditRepo:  auditRepo,
		logger:     logger,
	}
}

// Execute creates the pending user and records the invitation.
func (uc *InviteUserUseCase) Execute(ctx context.Context, tenantSID, actor string, req dto.InviteUserRequest) (*dto.UserResponse, error) {
	if _, err := uc.tenantRepo.GetBySID(ctx, tenantSID); err != nil {
		return nil, err
	}

	u, err := user.NewUser(tenantSID, req.FullName, req.Email, user.Role(req.Role))
	if err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.EmailExists(ctx, tenantSID, u.Email())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.ErrEmailTaken
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to invite user", "tenant_sid", tenantSID, "email", u.Email(), "error", err)
		return nil, err
	}

	entry, err := audit.NewEntry(tenantSID, constants.AuditActionUserInvited,
		constants.AuditEntityUser, u.SID(), actor, map[string]any{"email": u.Email(), "role": u.Role().String()})
	if err == nil {
		err = uc.auditRepo.Create(ctx, entry)
	}
	if err != nil {
		uc.logger.Errorw("failed to write invite audit entry", "tenant_sid", tenantSID, "error", err)
	}

	uc.logger.Infow("user invited", "tenant_sid", tenantSID, "user_sid", u.SID())
	resp := dto.FromDomain(u)
	return &resp, nil
}

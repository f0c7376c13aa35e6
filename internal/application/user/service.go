// Package user wires the console user use cases.
package user

import (
	"context"

	"aayatana/internal/application/user/dto"
	"aayatana/internal/application/user/usecases"
	"aayatana/internal/domain/audit"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/domain/user"
	"aayatana/internal/shared/logger"
)

// Service exposes tenant-scoped user management.
type Service struct {
	invite *usecases.InviteUserUseCase
	list   *usecases.ListUsersUseCase
	update *usecases.UpdateUserUseCase
	delete *usecases.DeleteUserUseCase
}

// NewService creates a new user service
func NewService(
	userRepo user.Repository,
	tenantRepo tenant.Repository,
	auditRepo audit.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		invite: usecases.NewInviteUserUseCase(userRepo, tenantRepo, auditRepo, logger),
		list:   usecases.NewListUsersUseCase(userRepo, logger),
		update: usecases.NewUpdateUserUseCase(userRepo, logger),
		delete: usecases.NewDeleteUserUseCase(userRepo, logger),
	}
}

// InviteUser creates a pending user inside the tenant.
func (s *Service) InviteUser(ctx context.Context, tenantSID, actor string, req dto.InviteUserRequest) (*dto.UserResponse, error) {
	return s.invite.Execute(ctx, tenantSID, actor, req)
}

// ListUsers returns a page of the tenant's users.
func (s *Service) ListUsers(ctx context.Context, tenantSID string, page, pageSize int) (*dto.ListUsersResponse, error) {
	return s.list.Execute(ctx, tenantSID, page, pageSize)
}

// UpdateUser edits a user's name, role, or status.
func (s *Service) UpdateUser(ctx context.Context, sid string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	return s.update.Execute(ctx, sid, req)
}

// DeleteUser removes a user.
func (s *Service) DeleteUser(ctx context.Context, sid string) error {
	return s.delete.Execute(ctx, sid)
}

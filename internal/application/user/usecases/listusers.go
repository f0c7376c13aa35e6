package usecases

import (
	"context"

	"aayatana/internal/application/user/dto"
	"aayatana/internal/domain/user"
	"aayatana/internal/shared/logger"
	"aayatana/internal/shared/utils"
)

// ListUsersUseCase lists a tenant's users with pagination.
type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

// NewListUsersUseCase creates a new list users use case
func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

// Execute returns a page of the tenant's users.
func (uc *ListUsersUseCase) Execute(ctx context.Context, tenantSID string, page, pageSize int) (*dto.ListUsersResponse, error) {
	p := utils.ValidatePagination(page, pageSize)

	users, total, err := uc.userRepo.ListByTenant(ctx, tenantSID, p.Offset(), p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list users", "tenant_sid", tenantSID, "error", err)
		return nil, err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.FromDomain(u))
	}
	return &dto.ListUsersResponse{
		Users:    items,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

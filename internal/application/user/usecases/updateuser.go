package usecases

import (
	"context"

	"aayatana/internal/application/user/dto"
	"aayatana/internal/domain/user"
	"aayatana/internal/shared/logger"
)

// UpdateUserUseCase edits a user's name, role, or status.
type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

// NewUpdateUserUseCase creates a new update user use case
func NewUpdateUserUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, logger: logger}
}

// Execute applies the requested edits and persists them.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, sid string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		u.Rename(*req.FullName)
	}
	if req.Role != nil {
		if err := u.ChangeRole(user.Role(*req.Role)); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		switch user.Status(*req.Status) {
		case user.StatusActive:
			err = u.Activate()
		case user.StatusDisabled:
			err = u.Disable()
		default:
			err = user.ErrInvalidStatus
		}
		if err != nil {
			return nil, err
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_sid", sid, "error", err)
		return nil, err
	}
	resp := dto.FromDomain(u)
	return &resp, nil
}

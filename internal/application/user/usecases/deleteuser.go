package usecases

import (
	"context"

	"aayatana/internal/domain/user"
	"aayatana/internal/shared/logger"
)

// DeleteUserUseCase removes a user from a tenant.
type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

// NewDeleteUserUseCase creates a new delete user use case
func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

// Execute deletes the user identified by sid.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, sid string) error {
	if _, err := uc.userRepo.GetBySID(ctx, sid); err != nil {
		return err
	}
	if err := uc.userRepo.Delete(ctx, sid); err != nil {
		uc.logger.Errorw("failed to delete user", "user_sid", sid, "error", err)
		return err
	}
	uc.logger.Infow("user deleted", "user_sid", sid)
	return nil
}

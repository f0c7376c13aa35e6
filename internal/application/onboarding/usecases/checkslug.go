package usecases

import (
	"context"
	"time"

	"aayatana/internal/domain/onboarding"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/shared/logger"
	"aayatana/internal/shared/utils"
)

// CheckSlugUseCase resolves slug availability for a wizard session. Checks
// are sequence numbered so a slow lookup for an old slug can never
// overwrite the result of a newer one.
type CheckSlugUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

// NewCheckSlugUseCase creates a new check slug use case
func NewCheckSlugUseCase(tenantRepo tenant.Repository, logger logger.Interface) *CheckSlugUseCase {
	return &CheckSlugUseCase{tenantRepo: tenantRepo, logger: logger}
}

// Execute runs one availability lookup against the registered sequence
// number and reports whether the result was applied or discarded as stale.
func (uc *CheckSlugUseCase) Execute(ctx context.Context, check *onboarding.SlugCheck, seq uint64, slug, excludeSID string) (bool, error) {
	if !utils.IsValidSlug(slug) {
		return check.Complete(seq, false), nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	taken, err := uc.tenantRepo.SlugExists(ctx, slug, excludeSID)
	if err != nil {
		uc.logger.Warnw("slug availability lookup failed", "slug", slug, "error", err)
		return false, err
	}
	return check.Complete(seq, !taken), nil
}

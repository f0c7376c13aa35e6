package handlers

import (
	stderrors "errors"

	appOnboarding "aayatana/internal/application/onboarding"
	"aayatana/internal/domain/device"
	"aayatana/internal/domain/entitlement"
	"aayatana/internal/domain/onboarding"
	"aayatana/internal/domain/setting"
	"aayatana/internal/domain/tenant"
	"aayatana/internal/domain/user"
	"aayatana/internal/shared/errors"
)

var notFoundErrors = []error{
	tenant.ErrTenantNotFound,
	user.ErrUserNotFound,
	device.ErrDeviceNotFound,
	appOnboarding.ErrSessionNotFound,
}

var conflictErrors = []error{
	tenant.ErrSlugTaken,
	tenant.ErrNotDraft,
	tenant.ErrNotActive,
	tenant.ErrNotSuspended,
	user.ErrEmailTaken,
	user.ErrAlreadyActive,
	user.ErrAlreadyDisabled,
	device.ErrSerialTaken,
	device.ErrRevoked,
	onboarding.ErrAlreadySubmitted,
}

var validationErrors = []error{
	tenant.ErrNameRequired,
	tenant.ErrInvalidSlug,
	tenant.ErrInvalidStatus,
	tenant.ErrInvalidCustomerType,
	tenant.ErrInvalidIndustryTag,
	tenant.ErrInvalidRegion,
	tenant.ErrInvalidSLATier,
	tenant.ErrInvalidIdentityScheme,
	tenant.ErrInvalidRetentionDays,
	tenant.ErrInvalidTrustMode,
	tenant.ErrInvalidProvisioningMode,
	tenant.ErrInvalidIngestMode,
	user.ErrEmailRequired,
	user.ErrInvalidRole,
	user.ErrInvalidStatus,
	device.ErrSerialRequired,
	device.ErrInvalidType,
	device.ErrInvalidStatus,
	entitlement.ErrUnknownModule,
	entitlement.ErrDuplicateModule,
	entitlement.ErrInvalidTier,
	onboarding.ErrNameRequired,
	onboarding.ErrInvalidStep,
	onboarding.ErrNotOnReviewStep,
	setting.ErrInvalidDataRegion,
	setting.ErrInvalidSamplingProfile,
	setting.ErrInvalidNotificationChannel,
	setting.ErrWebhookURLRequired,
}

// translateError maps domain sentinel errors onto HTTP error types so the
// response helper picks the right status code. Unrecognized errors pass
// through and render as internal errors.
func translateError(err error) error {
	if err == nil || errors.IsAppError(err) {
		return err
	}
	for _, sentinel := range notFoundErrors {
		if stderrors.Is(err, sentinel) {
			return errors.NewNotFoundError(sentinel.Error())
		}
	}
	for _, sentinel := range conflictErrors {
		if stderrors.Is(err, sentinel) {
			return errors.NewConflictError(sentinel.Error())
		}
	}
	for _, sentinel := range validationErrors {
		if stderrors.Is(err, sentinel) {
			return errors.NewValidationError(sentinel.Error())
		}
	}
	return err
}

package onboarding

import "errors"

var (
	// ErrNameRequired is returned when advancing or submitting without an
	// organization name.
	ErrNameRequired = errors.New("organization name is required")

	// ErrInvalidStep is returned when jumping to a step outside 1..7.
	ErrInvalidStep = errors.New("invalid wizard step")

	// ErrNotOnReviewStep is returned when submitting from any step other
	// than the review step.
	ErrNotOnReviewStep = errors.New("wizard must be on the review step to submit")

	// ErrAlreadySubmitted is returned when mutating or resubmitting a
	// wizard that already committed successfully.
	ErrAlreadySubmitted = errors.New("wizard has already been submitted")
)

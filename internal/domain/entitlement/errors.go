package entitlement

import "errors"

var (
	// ErrUnknownModule is returned when an entitlement references a module
	// that is not in the catalog
	ErrUnknownModule = errors.New("unknown module")

	// ErrDuplicateModule is returned when a set carries the same module twice
	ErrDuplicateModule = errors.New("duplicate module entitlement")

	// ErrInvalidTier is returned for an unknown commercial tier
	ErrInvalidTier = errors.New("invalid entitlement tier")
)

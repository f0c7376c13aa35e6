package onboarding

import (
	"aayatana/internal/domain/catalog"
	"aayatana/internal/domain/tenant"
)

// Wizard steps. Navigation is free-form: the stepper allows jumping to any
// step, and only advancing past step 1 requires an organization name.
const (
	StepProfile  = 1
	StepModules  = 2
	StepSettings = 3
	StepIdentity = 4
	StepInvites  = 5
	StepTrust    = 6
	StepReview   = 7

	TotalSteps = 7
)

// Wizard drives a single onboarding session through its seven steps and
// produces the commit payload at the end. It carries no persistence of its
// own; the session store owns the wizard's lifetime.
type Wizard struct {
	state     *State
	step      int
	submitted bool

	// trustDefaultApplied guards the one-shot smart default on the device
	// trust step so a later revisit never overrides an explicit choice.
	trustDefaultApplied bool
}

// NewWizard starts a fresh wizard on the profile step.
func NewWizard(cat *catalog.Catalog) *Wizard {
	return &Wizard{
		state: NewState(cat),
		step:  StepProfile,
	}
}

// State exposes the draft being collected.
func (w *Wizard) State() *State { return w.state }

// Step returns the current step, 1-based.
func (w *Wizard) Step() int { return w.step }

// Submitted reports whether the wizard has committed.
func (w *Wizard) Submitted() bool { return w.submitted }

// Next advances one step. The organization name gates forward progress.
func (w *Wizard) Next() error {
	if w.submitted {
		return ErrAlreadySubmitted
	}
	if w.state.Name() == "" {
		return ErrNameRequired
	}
	if w.step >= StepReview {
		return ErrInvalidStep
	}
	w.setStep(w.step + 1)
	return nil
}

// Back returns one step. On the first step it is a no-op.
func (w *Wizard) Back() error {
	if w.submitted {
		return ErrAlreadySubmitted
	}
	if w.step > StepProfile {
		w.setStep(w.step - 1)
	}
	return nil
}

// Jump moves directly to the given step.
func (w *Wizard) Jump(step int) error {
	if w.submitted {
		return ErrAlreadySubmitted
	}
	if step < StepProfile || step > StepReview {
		return ErrInvalidStep
	}
	w.setStep(step)
	return nil
}

func (w *Wizard) setStep(step int) {
	w.step = step
	if step == StepTrust {
		w.applyTrustDefault()
	}
}

// applyTrustDefault upgrades the initial EXTERNAL trust mode to HYBRID for
// manufacturers and OEMs the first time the trust step is shown, but only
// while the external branch is still untouched.
func (w *Wizard) applyTrustDefault() {
	if w.trustDefaultApplied {
		return
	}
	w.trustDefaultApplied = true

	ct := w.state.CustomerType()
	isManuOrOEM := ct == tenant.CustomerTypeBatteryManufacturer || ct == tenant.CustomerTypeOEM
	if isManuOrOEM && w.state.TrustMode() == tenant.TrustExternal && len(w.state.IngestModes()) == 0 {
		w.state.trustMode = tenant.TrustHybrid
	}
}

// Submit finalizes the wizard from the review step and returns the tenant
// commit payload. The wizard is marked submitted only here; a failed commit
// downstream leaves it resubmittable because the caller never calls
// MarkSubmitted.
func (w *Wizard) Submit() (tenant.CommitFields, error) {
	if w.submitted {
		return tenant.CommitFields{}, ErrAlreadySubmitted
	}
	if w.step != StepReview {
		return tenant.CommitFields{}, ErrNotOnReviewStep
	}
	if w.state.Name() == "" {
		return tenant.CommitFields{}, ErrNameRequired
	}
	return w.state.CommitFields(), nil
}

// MarkSubmitted locks the wizard after a successful commit.
func (w *Wizard) MarkSubmitted() { w.submitted = true }

package profile

import (
	"github.com/modaber/modaber/internal/common"
	"github.com/modaber/modaber/internal/model"
)

// Step is one of the five ordered onboarding steps.
type Step int

// Onboarding steps, in order.
const (
	StepBasicInfo Step = iota + 1
	StepFixedExpenses
	StepOptionalExpenses
	StepPreferences
	StepReview
)

// Onboarding is the guarded step machine for first-time profile creation.
// Forward transitions validate the current step; backward transitions never
// re-validate. A guard failure leaves the machine on the current step and
// mutates nothing.
type Onboarding struct {
	Draft Draft
	step  Step
}

// NewOnboarding starts the machine at the basic-info step with a fresh draft.
func NewOnboarding() *Onboarding {
	return &Onboarding{
		Draft: NewDraft(),
		step:  StepBasicInfo,
	}
}

// Step returns the current step.
func (o *Onboarding) Step() Step { return o.step }

// Next advances to the following step. It returns a blocking, non-fatal
// validation error when the current step's guard fails.
func (o *Onboarding) Next() error {
	if err := o.guard(); err != nil {
		return err
	}
	if o.step < StepReview {
		o.step++
	}
	return nil
}

// Back returns to the previous step. Always allowed, never re-validates.
func (o *Onboarding) Back() {
	if o.step > StepBasicInfo {
		o.step--
	}
}

// guard validates the fields required to leave the current step.
func (o *Onboarding) guard() error {
	switch o.step {
	case StepBasicInfo:
		return requireBasicInfo(&o.Draft.Profile)
	case StepFixedExpenses:
		return requireFixedExpenses(&o.Draft.Profile.FixedExpenses)
	default:
		// Steps 3-4 hold only optional fields; review has no forward guard.
		return nil
	}
}

// Complete confirms the review step, merging the draft with the now-known
// account into the committed, immutable profile.
func (o *Onboarding) Complete(account model.UserAccount) (model.UserProfile, error) {
	if o.step != StepReview {
		return model.UserProfile{}, common.NewValidationError("onboarding", "review step not reached")
	}
	if err := requireBasicInfo(&o.Draft.Profile); err != nil {
		return model.UserProfile{}, err
	}
	if err := requireFixedExpenses(&o.Draft.Profile.FixedExpenses); err != nil {
		return model.UserProfile{}, err
	}

	o.Draft.normalize()
	committed := o.Draft.Profile.Clone()
	committed.Account = account
	if err := committed.Validate(); err != nil {
		return model.UserProfile{}, err
	}
	return committed, nil
}

// requireBasicInfo checks the two required root fields.
func requireBasicInfo(p *model.UserProfile) error {
	if IsUnset(p.MonthlySalary) || p.MonthlySalary < 0 {
		return common.NewValidationError("monthlySalary", "required")
	}
	if p.FamilyMembers < 1 {
		return common.NewValidationError("familyMembers", "required")
	}
	return nil
}

// requireFixedExpenses checks the five required fixed-expense fields.
func requireFixedExpenses(f *model.FixedExpenses) error {
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"rent", f.Rent},
		{"electricity", f.Electricity},
		{"water", f.Water},
		{"gas", f.Gas},
		{"transportation", f.Transportation},
	} {
		if IsUnset(field.value) || field.value < 0 {
			return common.NewValidationError(field.name, "required")
		}
	}
	return nil
}

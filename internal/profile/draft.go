// Package profile implements the working copies behind onboarding and
// profile editing: an uncommitted draft, the five-step onboarding machine,
// and the copy-on-edit editor. The committed profile is only ever replaced
// atomically; drafts and edit buffers are discarded, never merged.
package profile

import (
	"math"

	"github.com/google/uuid"

	"github.com/modaber/modaber/internal/model"
)

// Unset marks a numeric field the user has cleared. Required-field guards
// treat it as missing; optional fields normalize it to 0 on completion.
func Unset() float64 { return math.NaN() }

// IsUnset reports whether a numeric field holds no value.
func IsUnset(v float64) bool { return math.IsNaN(v) }

// Draft is an in-progress profile, the same shape as the committed profile
// minus the account, which becomes known only at onboarding completion.
// Root fields are mutated directly; sub-entities go through the two-phase
// add operations below.
type Draft struct {
	Profile model.UserProfile
}

// NewDraft returns a draft pre-filled with the standard starting values.
func NewDraft() Draft {
	return Draft{
		Profile: model.UserProfile{
			MonthlySalary:   6000,
			FamilyMembers:   1,
			MaritalStatus:   model.MaritalNotSpecified,
			LivingCostLevel: model.LivingCostMedium,
			IncomeStability: model.IncomeFullTime,
			FixedExpenses: model.FixedExpenses{
				Rent:           1000,
				Electricity:    100,
				Water:          50,
				Gas:            50,
				Transportation: 150,
				Internet:       50,
				Mobile:         30,
			},
			Preferences: model.Preferences{
				SavingPriority:          model.PriorityNotSpecified,
				RiskTolerance:           model.PriorityNotSpecified,
				EmergencyFundPercentage: 10,
				MonthlyPriorities:       model.DefaultMonthlyPriorities(),
			},
		},
	}
}

// DebtInput is the transient add-form buffer for a new debt.
type DebtInput struct {
	Description   string
	Priority      model.Priority
	DueDate       string
	MonthlyAmount float64
}

// AnnualExpenseInput is the transient add-form buffer for a new annual
// expense.
type AnnualExpenseInput struct {
	Description   string
	Priority      model.Priority
	ExpectedMonth string
	TotalAmount   float64
}

// AddDebt commits a debt add-form. It validates that the description is
// non-empty and the amount positive; otherwise it is a silent no-op and the
// form stays open. Returns true when the debt was appended.
func (d *Draft) AddDebt(in DebtInput) bool {
	if in.Description == "" || in.MonthlyAmount <= 0 || IsUnset(in.MonthlyAmount) {
		return false
	}
	d.Profile.Debts = append(d.Profile.Debts, model.Debt{
		ID:            uuid.NewString(),
		Description:   in.Description,
		MonthlyAmount: in.MonthlyAmount,
		Priority:      in.Priority,
		DueDate:       in.DueDate,
	})
	return true
}

// RemoveDebt deletes the debt with the given id. Always succeeds.
func (d *Draft) RemoveDebt(id string) {
	kept := d.Profile.Debts[:0]
	for _, debt := range d.Profile.Debts {
		if debt.ID != id {
			kept = append(kept, debt)
		}
	}
	d.Profile.Debts = kept
}

// AddAnnualExpense commits an annual-expense add-form with the same
// validation contract as AddDebt.
func (d *Draft) AddAnnualExpense(in AnnualExpenseInput) bool {
	if in.Description == "" || in.TotalAmount <= 0 || IsUnset(in.TotalAmount) {
		return false
	}
	d.Profile.AnnualExpenses = append(d.Profile.AnnualExpenses, model.AnnualExpense{
		ID:            uuid.NewString(),
		Description:   in.Description,
		TotalAmount:   in.TotalAmount,
		Priority:      in.Priority,
		ExpectedMonth: in.ExpectedMonth,
	})
	return true
}

// RemoveAnnualExpense deletes the annual expense with the given id.
func (d *Draft) RemoveAnnualExpense(id string) {
	kept := d.Profile.AnnualExpenses[:0]
	for _, e := range d.Profile.AnnualExpenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	d.Profile.AnnualExpenses = kept
}

// MoveDirection is the direction of a priority reorder.
type MoveDirection int

// Reorder directions.
const (
	MoveUp MoveDirection = iota
	MoveDown
)

// MovePriority swaps the tag at index with its neighbor. Moves beyond either
// boundary are no-ops. Returns true when a swap happened.
func (d *Draft) MovePriority(index int, dir MoveDirection) bool {
	tags := d.Profile.Preferences.MonthlyPriorities
	target := index + 1
	if dir == MoveUp {
		target = index - 1
	}
	if index < 0 || index >= len(tags) || target < 0 || target >= len(tags) {
		return false
	}
	tags[index], tags[target] = tags[target], tags[index]
	return true
}

// normalize replaces cleared optional numeric fields with their 0 default.
func (d *Draft) normalize() {
	for _, f := range []*float64{
		&d.Profile.FixedExpenses.Internet,
		&d.Profile.FixedExpenses.Mobile,
		&d.Profile.OptionalExpenses.Streaming,
		&d.Profile.OptionalExpenses.Education,
		&d.Profile.OptionalExpenses.Medical,
	} {
		if IsUnset(*f) {
			*f = 0
		}
	}
}

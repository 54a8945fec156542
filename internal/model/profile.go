package model

import "fmt"

// MaritalStatus is the declared marital status of the profile owner.
type MaritalStatus string

// Marital statuses.
const (
	MaritalSingle       MaritalStatus = "single"
	MaritalMarried      MaritalStatus = "married"
	MaritalNotSpecified MaritalStatus = "not_specified"
)

// LivingCostLevel describes the cost of living in the user's area.
type LivingCostLevel string

// Living cost levels.
const (
	LivingCostHigh   LivingCostLevel = "High"
	LivingCostMedium LivingCostLevel = "Medium"
	LivingCostLow    LivingCostLevel = "Low"
)

// IncomeStability describes how regular the monthly income is.
type IncomeStability string

// Income stability kinds.
const (
	IncomeFullTime  IncomeStability = "Full-time"
	IncomeFreelance IncomeStability = "Freelance"
	IncomeSeasonal  IncomeStability = "Seasonal"
	IncomeMixed     IncomeStability = "Mixed"
)

// Priority is a coarse importance level used by debts, annual expenses and
// preference fields.
type Priority string

// Priority levels. PriorityNotSpecified is only valid for preference fields.
const (
	PriorityLow          Priority = "Low"
	PriorityMedium       Priority = "Medium"
	PriorityHigh         Priority = "High"
	PriorityNotSpecified Priority = "not_specified"
)

// PriorityTag identifies a spending category in the ranked monthly priority
// list.
type PriorityTag string

// The fixed set of rankable categories.
const (
	TagFood      PriorityTag = "cat_food"
	TagTransport PriorityTag = "cat_transport"
	TagEmergency PriorityTag = "cat_emergency"
	TagSavings   PriorityTag = "cat_savings"
	TagInvest    PriorityTag = "cat_invest"
	TagPersonal  PriorityTag = "cat_personal"
)

// DefaultMonthlyPriorities returns the canonical initial ranking. Reordering
// is the only permitted mutation; the committed list must always remain a
// permutation of this set.
func DefaultMonthlyPriorities() []PriorityTag {
	return []PriorityTag{TagFood, TagTransport, TagEmergency, TagSavings, TagInvest, TagPersonal}
}

// Debt is a recurring monthly repayment obligation.
type Debt struct {
	ID            string
	Description   string
	Priority      Priority
	DueDate       string
	MonthlyAmount float64
}

// AnnualExpense is a yearly cost provisioned monthly at 1/12 of its total.
type AnnualExpense struct {
	ID            string
	Description   string
	Priority      Priority
	ExpectedMonth string
	TotalAmount   float64
}

// FixedExpenses is the fixed-shape set of recurring monthly bills.
// Rent through transportation are required; internet and mobile default to 0.
type FixedExpenses struct {
	Rent           float64
	Electricity    float64
	Water          float64
	Gas            float64
	Transportation float64
	Internet       float64
	Mobile         float64
}

// Total sums all seven categories.
func (f FixedExpenses) Total() float64 {
	return f.Rent + f.Electricity + f.Water + f.Gas + f.Transportation + f.Internet + f.Mobile
}

// OptionalExpenses is the fixed-shape set of discretionary monthly services.
type OptionalExpenses struct {
	Streaming float64
	Education float64
	Medical   float64
}

// Total sums all optional categories.
func (o OptionalExpenses) Total() float64 {
	return o.Streaming + o.Education + o.Medical
}

// Preferences captures how the user wants the remaining income handled.
type Preferences struct {
	SavingPriority          Priority
	RiskTolerance           Priority
	MonthlyPriorities       []PriorityTag
	EmergencyFundPercentage int
}

// UserProfile is the committed financial-input aggregate driving all derived
// views. It is created once at onboarding completion and replaced atomically
// by the profile editor's save action.
type UserProfile struct {
	Account          UserAccount
	Debts            []Debt
	AnnualExpenses   []AnnualExpense
	Preferences      Preferences
	FixedExpenses    FixedExpenses
	OptionalExpenses OptionalExpenses
	MonthlySalary    float64
	FamilyMembers    int
	MaritalStatus    MaritalStatus
	LivingCostLevel  LivingCostLevel
	IncomeStability  IncomeStability
}

// DebtsTotal sums the monthly repayment amounts.
func (p *UserProfile) DebtsTotal() float64 {
	var total float64
	for _, d := range p.Debts {
		total += d.MonthlyAmount
	}
	return total
}

// AnnualProvision is the straight-line monthly accrual for annual expenses.
func (p *UserProfile) AnnualProvision() float64 {
	var total float64
	for _, e := range p.AnnualExpenses {
		total += e.TotalAmount / 12
	}
	return total
}

// RemainingIncome is the income left for the advisor to allocate after fixed
// costs, debt repayments, annual provision and optional services.
func (p *UserProfile) RemainingIncome() float64 {
	return p.MonthlySalary -
		p.FixedExpenses.Total() -
		p.DebtsTotal() -
		p.AnnualProvision() -
		p.OptionalExpenses.Total()
}

// ShoppingCeiling is the derived monthly grocery budget.
func (p *UserProfile) ShoppingCeiling() float64 {
	return float64(p.FamilyMembers) * 150
}

// Validate checks the profile invariants.
func (p *UserProfile) Validate() error {
	if p.MonthlySalary < 0 {
		return fmt.Errorf("monthly salary must be >= 0, got %.2f", p.MonthlySalary)
	}
	if p.FamilyMembers < 1 {
		return fmt.Errorf("family members must be >= 1, got %d", p.FamilyMembers)
	}
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"rent", p.FixedExpenses.Rent},
		{"electricity", p.FixedExpenses.Electricity},
		{"water", p.FixedExpenses.Water},
		{"gas", p.FixedExpenses.Gas},
		{"transportation", p.FixedExpenses.Transportation},
	} {
		if v.value < 0 {
			return fmt.Errorf("fixed expense %s must be >= 0, got %.2f", v.name, v.value)
		}
	}

	seen := make(map[string]bool, len(p.Debts)+len(p.AnnualExpenses))
	for _, d := range p.Debts {
		if d.ID == "" {
			return fmt.Errorf("debt %q has no id", d.Description)
		}
		if seen[d.ID] {
			return fmt.Errorf("duplicate entry id %s", d.ID)
		}
		seen[d.ID] = true
	}
	for _, e := range p.AnnualExpenses {
		if e.ID == "" {
			return fmt.Errorf("annual expense %q has no id", e.Description)
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate entry id %s", e.ID)
		}
		seen[e.ID] = true
	}

	if err := validatePriorityPermutation(p.Preferences.MonthlyPriorities); err != nil {
		return err
	}

	if pct := p.Preferences.EmergencyFundPercentage; pct < 0 || pct > 50 || pct%5 != 0 {
		return fmt.Errorf("emergency fund percentage must be 0..50 in steps of 5, got %d", pct)
	}

	return nil
}

// validatePriorityPermutation checks that tags are exactly the default set,
// in any order.
func validatePriorityPermutation(tags []PriorityTag) error {
	expected := DefaultMonthlyPriorities()
	if len(tags) != len(expected) {
		return fmt.Errorf("monthly priorities must contain %d tags, got %d", len(expected), len(tags))
	}
	counts := make(map[PriorityTag]int, len(expected))
	for _, tag := range expected {
		counts[tag]++
	}
	for _, tag := range tags {
		counts[tag]--
		if counts[tag] < 0 {
			return fmt.Errorf("unexpected or duplicated priority tag %s", tag)
		}
	}
	return nil
}

// Clone returns a deep copy suitable as an edit buffer. Mutating the copy
// never affects the committed profile.
func (p *UserProfile) Clone() UserProfile {
	clone := *p
	clone.Debts = append([]Debt(nil), p.Debts...)
	clone.AnnualExpenses = append([]AnnualExpense(nil), p.AnnualExpenses...)
	clone.Preferences.MonthlyPriorities = append([]PriorityTag(nil), p.Preferences.MonthlyPriorities...)
	return clone
}

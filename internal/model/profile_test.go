package model

import (
	"testing"
)

func validProfile() UserProfile {
	return UserProfile{
		Account:         UserAccount{Name: "Alice", Email: "a@x.com"},
		MonthlySalary:   6000,
		FamilyMembers:   1,
		MaritalStatus:   MaritalNotSpecified,
		LivingCostLevel: LivingCostMedium,
		IncomeStability: IncomeFullTime,
		FixedExpenses: FixedExpenses{
			Rent:           1000,
			Electricity:    100,
			Water:          50,
			Gas:            50,
			Transportation: 150,
			Internet:       50,
			Mobile:         30,
		},
		Preferences: Preferences{
			SavingPriority:          PriorityNotSpecified,
			RiskTolerance:           PriorityNotSpecified,
			EmergencyFundPercentage: 10,
			MonthlyPriorities:       DefaultMonthlyPriorities(),
		},
	}
}

func TestUserProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*UserProfile)
		wantErr bool
	}{
		{
			name:   "valid profile",
			mutate: func(_ *UserProfile) {},
		},
		{
			name:    "negative salary",
			mutate:  func(p *UserProfile) { p.MonthlySalary = -1 },
			wantErr: true,
		},
		{
			name:    "zero family members",
			mutate:  func(p *UserProfile) { p.FamilyMembers = 0 },
			wantErr: true,
		},
		{
			name:    "negative required fixed expense",
			mutate:  func(p *UserProfile) { p.FixedExpenses.Water = -5 },
			wantErr: true,
		},
		{
			name: "duplicate entry id across debts and annual expenses",
			mutate: func(p *UserProfile) {
				p.Debts = []Debt{{ID: "x", Description: "loan", MonthlyAmount: 100}}
				p.AnnualExpenses = []AnnualExpense{{ID: "x", Description: "school", TotalAmount: 1200}}
			},
			wantErr: true,
		},
		{
			name: "missing priority tag",
			mutate: func(p *UserProfile) {
				p.Preferences.MonthlyPriorities = p.Preferences.MonthlyPriorities[:5]
			},
			wantErr: true,
		},
		{
			name: "duplicated priority tag",
			mutate: func(p *UserProfile) {
				p.Preferences.MonthlyPriorities[0] = p.Preferences.MonthlyPriorities[1]
			},
			wantErr: true,
		},
		{
			name:    "emergency fund off the 5 step grid",
			mutate:  func(p *UserProfile) { p.Preferences.EmergencyFundPercentage = 12 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserProfile_RemainingIncome(t *testing.T) {
	p := validProfile()
	p.Debts = []Debt{{ID: "d1", Description: "car loan", MonthlyAmount: 200}}
	p.AnnualExpenses = []AnnualExpense{{ID: "a1", Description: "school fees", TotalAmount: 1200}}

	if got := p.FixedExpenses.Total(); got != 1430 {
		t.Fatalf("FixedExpenses.Total() = %.2f, want 1430", got)
	}
	if got := p.AnnualProvision(); got != 100 {
		t.Fatalf("AnnualProvision() = %.2f, want 100", got)
	}
	if got := p.RemainingIncome(); got != 4270 {
		t.Errorf("RemainingIncome() = %.2f, want 4270", got)
	}
}

func TestUserProfile_ShoppingCeiling(t *testing.T) {
	p := validProfile()
	p.FamilyMembers = 4
	if got := p.ShoppingCeiling(); got != 600 {
		t.Errorf("ShoppingCeiling() = %.2f, want 600", got)
	}
}

func TestUserProfile_CloneIsIndependent(t *testing.T) {
	p := validProfile()
	p.Debts = []Debt{{ID: "d1", Description: "loan", MonthlyAmount: 50}}

	clone := p.Clone()
	clone.Debts[0].MonthlyAmount = 999
	clone.Preferences.MonthlyPriorities[0] = TagPersonal

	if p.Debts[0].MonthlyAmount != 50 {
		t.Error("mutating clone debts changed the original")
	}
	if p.Preferences.MonthlyPriorities[0] != TagFood {
		t.Error("mutating clone priorities changed the original")
	}
}

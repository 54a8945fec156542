package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/model"
	"github.com/modaber/modaber/internal/profile"
	"github.com/modaber/modaber/internal/tui/themes"
)

func testProfile() model.UserProfile {
	p := profile.NewDraft().Profile
	p.Account = model.UserAccount{Name: "Test User", Email: "test@example.com"}
	return p
}

func TestFinancialScore(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *model.UserProfile)
		want   int
	}{
		{
			name:   "zero salary scores zero",
			mutate: func(p *model.UserProfile) { p.MonthlySalary = 0 },
			want:   0,
		},
		{
			name: "no expenses scores full",
			mutate: func(p *model.UserProfile) {
				p.MonthlySalary = 5000
				p.FixedExpenses = model.FixedExpenses{}
				p.OptionalExpenses = model.OptionalExpenses{}
				p.Debts = nil
				p.AnnualExpenses = nil
			},
			want: 100,
		},
		{
			name: "heavy debt load takes the penalty",
			mutate: func(p *model.UserProfile) {
				p.MonthlySalary = 5000
				p.FixedExpenses = model.FixedExpenses{}
				p.OptionalExpenses = model.OptionalExpenses{}
				p.AnnualExpenses = nil
				p.Debts = []model.Debt{{ID: "d1", Description: "loan", MonthlyAmount: 1500, Priority: model.PriorityHigh}}
			},
			want: 55, // 70% remaining minus the 15-point debt penalty
		},
		{
			name: "overspending floors at zero",
			mutate: func(p *model.UserProfile) {
				p.MonthlySalary = 1000
				p.FixedExpenses = model.FixedExpenses{Rent: 2000}
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile()
			tt.mutate(&p)
			assert.Equal(t, tt.want, FinancialScore(&p))
		})
	}
}

func TestDashboardViewShowsCards(t *testing.T) {
	p := testProfile()
	m := NewDashboardModel(p, themes.Dark, i18n.New(i18n.English))

	view := m.View()
	tr := i18n.New(i18n.English)
	assert.Contains(t, view, tr.T(i18n.KeyTotalIncome))
	assert.Contains(t, view, tr.T(i18n.KeyAvailableCash))
	assert.Contains(t, view, tr.T(i18n.KeyFinancialScore))
	assert.Contains(t, view, money(p.MonthlySalary))
}

package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/model"
	"github.com/modaber/modaber/internal/tui/themes"
)

func TestSavingsProjectionAccumulates(t *testing.T) {
	p := testProfile()
	p.MonthlySalary = 5000
	p.FixedExpenses = model.FixedExpenses{Rent: 2000}
	p.OptionalExpenses = model.OptionalExpenses{}
	p.Debts = nil
	p.AnnualExpenses = nil
	p.Preferences.EmergencyFundPercentage = 10

	series := SavingsProjection(&p)
	require.Len(t, series, 12)

	// 3000 remaining, 10% banked monthly.
	assert.InDelta(t, 300, series[0], 0.001)
	assert.InDelta(t, 600, series[1], 0.001)
	assert.InDelta(t, 3600, series[11], 0.001)
}

func TestSavingsProjectionNegativeRemainderIsFlat(t *testing.T) {
	p := testProfile()
	p.MonthlySalary = 1000
	p.FixedExpenses = model.FixedExpenses{Rent: 5000}
	p.Preferences.EmergencyFundPercentage = 20

	series := SavingsProjection(&p)
	require.Len(t, series, 12)
	for _, v := range series {
		assert.Zero(t, v)
	}
}

func TestAnalyticsViewFlatSeriesShowsNoData(t *testing.T) {
	p := testProfile()
	p.Preferences.EmergencyFundPercentage = 0

	m := NewAnalyticsModel(p, themes.Dark, i18n.New(i18n.English))
	assert.Contains(t, m.View(), i18n.New(i18n.English).T(i18n.KeyNoData))
}

func TestAnalyticsViewRendersTwelveMonths(t *testing.T) {
	p := testProfile()
	p.MonthlySalary = 5000
	p.FixedExpenses = model.FixedExpenses{Rent: 2000}
	p.OptionalExpenses = model.OptionalExpenses{}
	p.Debts = nil
	p.AnnualExpenses = nil
	p.Preferences.EmergencyFundPercentage = 10

	m := NewAnalyticsModel(p, themes.Dark, i18n.New(i18n.English))
	view := m.View()
	assert.Contains(t, view, "12")
	assert.Contains(t, view, money(3600))
}

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/model"
	"github.com/modaber/modaber/internal/tui/themes"
)

// DashboardModel renders the derived overview of the committed profile. It
// holds no advisory data and needs no async loads.
type DashboardModel struct {
	theme   themes.Theme
	tr      i18n.Translator
	profile model.UserProfile
	width   int
	height  int
}

// NewDashboardModel creates the dashboard over a profile copy.
func NewDashboardModel(p model.UserProfile, theme themes.Theme, tr i18n.Translator) DashboardModel {
	return DashboardModel{profile: p, theme: theme, tr: tr}
}

// SetChrome swaps the theme and translator.
func (m *DashboardModel) SetChrome(theme themes.Theme, tr i18n.Translator) {
	m.theme = theme
	m.tr = tr
}

// Resize updates the layout bounds.
func (m *DashboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// FinancialScore is a 0-100 health heuristic: the share of income left
// after all commitments, penalized when debt service exceeds a fifth of
// the salary.
func FinancialScore(p *model.UserProfile) int {
	if p.MonthlySalary <= 0 {
		return 0
	}
	score := int(p.RemainingIncome() / p.MonthlySalary * 100)
	if p.DebtsTotal() > p.MonthlySalary/5 {
		score -= 15
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	p := &m.profile
	var b strings.Builder

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard(i18n.KeyTotalIncome, money(p.MonthlySalary)),
		m.statCard(i18n.KeyFixedCosts, money(p.FixedExpenses.Total())),
		m.statCard(i18n.KeyAvailableCash, money(p.RemainingIncome())),
		m.statCard(i18n.KeyFinancialScore, fmt.Sprintf("%d/100", FinancialScore(p))),
	)
	b.WriteString(cards)
	b.WriteString("\n\n")

	b.WriteString(m.theme.Bold.Render(m.tr.T(i18n.KeyFixedCosts)))
	b.WriteString("\n")

	total := p.MonthlySalary
	if total <= 0 {
		total = 1
	}
	bars := []struct {
		label i18n.Key
		value float64
	}{
		{i18n.KeyRent, p.FixedExpenses.Rent},
		{i18n.KeyElectricity, p.FixedExpenses.Electricity},
		{i18n.KeyWater, p.FixedExpenses.Water},
		{i18n.KeyGas, p.FixedExpenses.Gas},
		{i18n.KeyTransportation, p.FixedExpenses.Transportation},
		{i18n.KeyInternet, p.FixedExpenses.Internet + p.FixedExpenses.Mobile},
		{i18n.KeyDebts, p.DebtsTotal()},
		{i18n.KeyAnnualExpenses, p.AnnualProvision()},
	}
	for _, bar := range bars {
		b.WriteString(fmt.Sprintf("%-16s %s %8s\n",
			m.tr.T(bar.label),
			progressBar(m.theme, bar.value/total, 24),
			money(bar.value)))
	}

	return m.theme.Box.Render(b.String())
}

func (m DashboardModel) statCard(label i18n.Key, value string) string {
	content := m.theme.Faint.Render(m.tr.T(label)) + "\n" + m.theme.Bold.Render(value)
	return m.theme.RoundedBox.Render(content)
}

package components

import (
	"fmt"
	"strings"

	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/model"
	"github.com/modaber/modaber/internal/tui/themes"
)

// AnalyticsModel renders a twelve-month savings projection derived from the
// committed profile. No advisory calls are involved.
type AnalyticsModel struct {
	theme   themes.Theme
	tr      i18n.Translator
	profile model.UserProfile
	width   int
	height  int
}

// NewAnalyticsModel creates the analytics view over a profile copy.
func NewAnalyticsModel(p model.UserProfile, theme themes.Theme, tr i18n.Translator) AnalyticsModel {
	return AnalyticsModel{profile: p, theme: theme, tr: tr}
}

// SetChrome swaps the theme and translator.
func (m *AnalyticsModel) SetChrome(theme themes.Theme, tr i18n.Translator) {
	m.theme = theme
	m.tr = tr
}

// Resize updates the layout bounds.
func (m *AnalyticsModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// SavingsProjection returns the cumulative amount saved after each of the
// next twelve months. Each month banks the emergency-fund share of the
// remaining income; a negative remainder projects flat.
func SavingsProjection(p *model.UserProfile) []float64 {
	monthly := p.RemainingIncome() * float64(p.Preferences.EmergencyFundPercentage) / 100
	if monthly < 0 {
		monthly = 0
	}
	series := make([]float64, 12)
	var total float64
	for i := range series {
		total += monthly
		series[i] = total
	}
	return series
}

// View renders the projection chart.
func (m AnalyticsModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.tr.T(i18n.KeySavingsTrend)))
	b.WriteString("\n")

	series := SavingsProjection(&m.profile)
	peak := series[len(series)-1]
	if peak <= 0 {
		b.WriteString(m.theme.Faint.Render(m.tr.T(i18n.KeyNoData)))
		return m.theme.Box.Render(b.String())
	}

	for i, v := range series {
		b.WriteString(fmt.Sprintf("%2d  %s %10s\n",
			i+1,
			progressBar(m.theme, v/peak, 30),
			money(v)))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s: %s  ·  %s: %d%%\n",
		m.tr.T(i18n.KeyAvailableCash),
		m.theme.Bold.Render(money(m.profile.RemainingIncome())),
		m.tr.T(i18n.KeyEmergencyFund),
		m.profile.Preferences.EmergencyFundPercentage))

	return m.theme.Box.Render(b.String())
}

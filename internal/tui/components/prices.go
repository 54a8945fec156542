package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/model"
	"github.com/modaber/modaber/internal/tui/themes"
)

// PricesModel shows next-month commodity forecasts, fetched on mount.
type PricesModel struct {
	theme       themes.Theme
	tr          i18n.Translator
	predictions []model.PricePrediction
	spinner     spinner.Model
	width       int
	height      int
	loading     bool
}

// NewPricesModel creates the forecast view in its loading state.
func NewPricesModel(theme themes.Theme, tr i18n.Translator) PricesModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return PricesModel{theme: theme, tr: tr, spinner: s, loading: true}
}

// SetChrome swaps the theme and translator.
func (m *PricesModel) SetChrome(theme themes.Theme, tr i18n.Translator) {
	m.theme = theme
	m.tr = tr
	m.spinner.Style = lipgloss.NewStyle().Foreground(theme.Primary)
}

// Resize updates the layout bounds.
func (m *PricesModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// SetResults installs fetched predictions.
func (m *PricesModel) SetResults(predictions []model.PricePrediction) {
	m.predictions = predictions
	m.loading = false
}

// Init returns initial commands.
func (m PricesModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m PricesModel) Update(msg tea.Msg) (PricesModel, tea.Cmd) {
	if msg, ok := msg.(spinner.TickMsg); ok && m.loading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the forecast table.
func (m PricesModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.tr.T(i18n.KeyNavPrices)))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " " + m.theme.StatusPending.Render(m.tr.T(i18n.KeyScanningMarkets)))
		return m.theme.Box.Render(b.String())
	}

	if len(m.predictions) == 0 {
		b.WriteString(m.theme.Faint.Render(m.tr.T(i18n.KeyNoData)))
		return m.theme.Box.Render(b.String())
	}

	for _, pred := range m.predictions {
		icon := themes.GetTrendIcon(string(pred.Trend))
		style := m.theme.Normal
		switch pred.Trend {
		case model.TrendUp:
			style = m.theme.StatusError
		case model.TrendDown:
			style = m.theme.StatusSuccess
		}
		b.WriteString(fmt.Sprintf("%-20s %8s → %8s  %s %3.0f%%\n",
			pred.Item,
			money(pred.CurrentPrice),
			money(pred.PredictedPrice),
			style.Render(icon),
			pred.Confidence*100))
		if pred.Advice != "" {
			b.WriteString("  " + m.theme.Faint.Render(pred.Advice) + "\n")
		}
	}

	return m.theme.Box.Render(b.String())
}

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

// BudgetModel shows the advisor's split of the remaining income. The plan is
// fetched on mount; recalculation is ignored while a fetch is in flight.
type BudgetModel struct {
	theme       themes.Theme
	tr          i18n.Translator
	allocations []model.BudgetAllocation
	spinner     spinner.Model
	width       int
	height      int
	loading     bool
}

// NewBudgetModel creates the budget view in its loading state.
func NewBudgetModel(theme themes.Theme, tr i18n.Translator) BudgetModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return BudgetModel{theme: theme, tr: tr, spinner: s, loading: true}
}

// SetChrome swaps the theme and translator.
func (m *BudgetModel) SetChrome(theme themes.Theme, tr i18n.Translator) {
	m.theme = theme
	m.tr = tr
	m.spinner.Style = lipgloss.NewStyle().Foreground(theme.Primary)
}

// Resize updates the layout bounds.
func (m *BudgetModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// SetResults installs a fetched plan. An empty plan is a degraded advisory
// response and renders the no-data notice.
func (m *BudgetModel) SetResults(allocations []model.BudgetAllocation) {
	m.allocations = allocations
	m.loading = false
}

// Loading reports whether a fetch is outstanding.
func (m BudgetModel) Loading() bool { return m.loading }

// Init returns initial commands.
func (m BudgetModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m BudgetModel) Update(msg tea.Msg) (BudgetModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "r" && !m.loading {
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, func() tea.Msg { return RecalculateMsg{} })
		}
	}
	return m, nil
}

// View renders the plan.
func (m BudgetModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.tr.T(i18n.KeySmartBudget)))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " " + m.theme.StatusPending.Render(m.tr.T(i18n.KeyBalancing)))
		return m.theme.Box.Render(b.String())
	}

	if len(m.allocations) == 0 {
		b.WriteString(m.theme.Faint.Render(m.tr.T(i18n.KeyNoData)))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Faint.Render("r: " + m.tr.T(i18n.KeyRecalculate)))
		return m.theme.Box.Render(b.String())
	}

	for _, a := range m.allocations {
		bar := progressBar(m.theme, a.Percentage/100, 20)
		b.WriteString(fmt.Sprintf("%-18s %s %6.1f%%  %s\n",
			a.Category, bar, a.Percentage, m.theme.Bold.Render(money(a.Amount))))
		if a.Advice != "" {
			b.WriteString("  " + m.theme.Faint.Render(a.Advice) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render("r: " + m.tr.T(i18n.KeyRecalculate)))

	return m.theme.Box.Render(b.String())
}

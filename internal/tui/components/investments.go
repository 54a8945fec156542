package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/model"
	"github.com/modaber/modaber/internal/tui/themes"
)

// curatedOptions is the static set of low-risk suggestions. It is editorial
// content, not advisor output.
var curatedOptions = []model.InvestmentOption{
	{
		Type:           "certificates",
		Title:          "Bank certificates of deposit",
		ExpectedReturn: "18-22% / year",
		RiskLevel:      "Low",
		Description:    "Fixed-term certificates at state banks with a guaranteed rate.",
		SafetyReason:   "Principal and rate are guaranteed by the issuing bank.",
	},
	{
		Type:           "gold",
		Title:          "Gold (bullion or certified coins)",
		ExpectedReturn: "Tracks inflation",
		RiskLevel:      "Low",
		Description:    "Physical gold as a long-horizon store of value.",
		SafetyReason:   "Historically retains purchasing power through currency swings.",
	},
	{
		Type:           "treasury",
		Title:          "Treasury bills",
		ExpectedReturn: "20-25% / year",
		RiskLevel:      "Low",
		Description:    "Short-term government paper bought through a bank.",
		SafetyReason:   "Backed by the state; shortest lock-in of the safe options.",
	},
	{
		Type:           "funds",
		Title:          "Money market funds",
		ExpectedReturn: "15-20% / year",
		RiskLevel:      "Medium",
		Description:    "Daily-liquidity funds holding deposits and short paper.",
		SafetyReason:   "Diversified and redeemable at any business day's price.",
	},
}

// InvestmentsModel lists the curated options with a per-option interest
// toggle. Purely local state, destroyed on view switch.
type InvestmentsModel struct {
	theme   themes.Theme
	tr      i18n.Translator
	enabled map[int]bool
	cursor  int
	width   int
	height  int
}

// NewInvestmentsModel creates the investments view.
func NewInvestmentsModel(theme themes.Theme, tr i18n.Translator) InvestmentsModel {
	return InvestmentsModel{theme: theme, tr: tr, enabled: make(map[int]bool)}
}

// SetChrome swaps the theme and translator.
func (m *InvestmentsModel) SetChrome(theme themes.Theme, tr i18n.Translator) {
	m.theme = theme
	m.tr = tr
}

// Resize updates the layout bounds.
func (m *InvestmentsModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m InvestmentsModel) Update(msg tea.Msg) (InvestmentsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(curatedOptions)-1 {
				m.cursor++
			}
		case " ", "enter":
			m.enabled[m.cursor] = !m.enabled[m.cursor]
		}
	}
	return m, nil
}

// View renders the option list with the focused one expanded.
func (m InvestmentsModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.tr.T(i18n.KeySafeOptions)))
	b.WriteString("\n")

	for i, opt := range curatedOptions {
		marker := "○"
		if m.enabled[i] {
			marker = m.theme.StatusSuccess.Render("●")
		}
		line := fmt.Sprintf("%s %-36s %-16s %s", marker, opt.Title, opt.ExpectedReturn, opt.RiskLevel)
		if i == m.cursor {
			line = m.theme.Highlighted.Render(line)
		}
		b.WriteString(line + "\n")

		if i == m.cursor {
			b.WriteString("  " + m.theme.Faint.Render(opt.Description) + "\n")
			b.WriteString("  " + m.theme.Faint.Render(opt.SafetyReason) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render("Space: toggle interest"))

	return m.theme.Box.Render(b.String())
}

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

// ShoppingModel shows the advisor's grocery list with a checkbox per item
// and a checkout action that clears the checked set.
type ShoppingModel struct {
	theme   themes.Theme
	tr      i18n.Translator
	checked map[int]bool
	items   []model.ShoppingItem
	spinner spinner.Model
	ceiling float64
	cursor  int
	width   int
	height  int
	loading bool
	notice  bool
}

// NewShoppingModel creates the shopping view in its loading state.
func NewShoppingModel(ceiling float64, theme themes.Theme, tr i18n.Translator) ShoppingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return ShoppingModel{
		theme:   theme,
		tr:      tr,
		spinner: s,
		ceiling: ceiling,
		checked: make(map[int]bool),
		loading: true,
	}
}

// SetChrome swaps the theme and translator.
func (m *ShoppingModel) SetChrome(theme themes.Theme, tr i18n.Translator) {
	m.theme = theme
	m.tr = tr
	m.spinner.Style = lipgloss.NewStyle().Foreground(theme.Primary)
}

// Resize updates the layout bounds.
func (m *ShoppingModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// SetResults installs the fetched list and resets the checked set.
func (m *ShoppingModel) SetResults(items []model.ShoppingItem) {
	m.items = items
	m.checked = make(map[int]bool)
	m.cursor = 0
	m.loading = false
}

// Init returns initial commands.
func (m ShoppingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m ShoppingModel) Update(msg tea.Msg) (ShoppingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.loading || len(m.items) == 0 {
			return m, nil
		}
		switch msg.String() {
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			m.notice = false
		case "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			m.notice = false
		case " ", "enter":
			m.checked[m.cursor] = !m.checked[m.cursor]
			m.notice = false
		case "c":
			if len(m.checked) > 0 {
				m.checked = make(map[int]bool)
				m.notice = true
			}
		}
	}
	return m, nil
}

// CheckedTotal sums the estimated cost of checked items.
func (m ShoppingModel) CheckedTotal() float64 {
	var total float64
	for i, on := range m.checked {
		if on && i < len(m.items) {
			total += m.items[i].EstimatedCost
		}
	}
	return total
}

// View renders the list.
func (m ShoppingModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.tr.T(i18n.KeyNavShopping)))
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " " + m.theme.StatusPending.Render(m.tr.T(i18n.KeyCuratingList)))
		return m.theme.Box.Render(b.String())
	}

	if len(m.items) == 0 {
		b.WriteString(m.theme.Faint.Render(m.tr.T(i18n.KeyNoData)))
		return m.theme.Box.Render(b.String())
	}

	var estimated float64
	for i, item := range m.items {
		estimated += item.EstimatedCost

		box := "[ ]"
		if m.checked[i] {
			box = m.theme.StatusSuccess.Render("[x]")
		}
		line := fmt.Sprintf("%s %-24s %-10s %8s", box, item.Name, item.Quantity, money(item.EstimatedCost))
		if item.IsPriority {
			line += "  " + m.theme.StatusWarning.Render(m.tr.T(i18n.KeyMustHave))
		}
		if i == m.cursor {
			line = m.theme.Highlighted.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s: %s / %s\n",
		m.tr.T(i18n.KeyEstimatedTotal),
		m.theme.Bold.Render(money(estimated)),
		money(m.ceiling)))

	if m.notice {
		b.WriteString(m.theme.StatusSuccess.Render(m.tr.T(i18n.KeyCheckoutDone)) + "\n")
	}

	b.WriteString(m.theme.Faint.Render("Space: toggle · c: " + m.tr.T(i18n.KeyCheckout)))

	return m.theme.Box.Render(b.String())
}

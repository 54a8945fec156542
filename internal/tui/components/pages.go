package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/tui/themes"
)

// PageModel renders one of the static information pages.
type PageModel struct {
	theme themes.Theme
	tr    i18n.Translator
	title i18n.Key
	body  i18n.Key
	width int
}

// NewHowItWorksModel creates the how-it-works page.
func NewHowItWorksModel(theme themes.Theme, tr i18n.Translator) PageModel {
	return PageModel{theme: theme, tr: tr, title: i18n.KeyNavHowItWorks, body: i18n.KeyHowItWorksBody}
}

// NewPrivacyModel creates the privacy page.
func NewPrivacyModel(theme themes.Theme, tr i18n.Translator) PageModel {
	return PageModel{theme: theme, tr: tr, title: i18n.KeyNavPrivacy, body: i18n.KeyPrivacyBody}
}

// SetChrome swaps the theme and translator.
func (m *PageModel) SetChrome(theme themes.Theme, tr i18n.Translator) {
	m.theme = theme
	m.tr = tr
}

// Resize updates the layout bounds.
func (m *PageModel) Resize(width, _ int) {
	m.width = width
}

// View renders the page.
func (m PageModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.tr.T(m.title)))
	b.WriteString("\n")

	width := m.width - 8
	if width < 20 || width > 80 {
		width = 72
	}
	body := lipgloss.NewStyle().Width(width).Render(m.tr.T(m.body))
	b.WriteString(m.theme.Normal.Render(body))

	return m.theme.Box.Render(b.String())
}

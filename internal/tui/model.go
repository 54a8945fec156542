package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/modaber/modaber/internal/common"
	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/session"
	"github.com/modaber/modaber/internal/storage"
	"github.com/modaber/modaber/internal/tui/components"
	"github.com/modaber/modaber/internal/tui/themes"
)

// Model is the root bubbletea model. It owns the session shell and delegates
// everything else to the component behind the current session state and view.
type Model struct {
	shell       *session.Shell
	theme       themes.Theme
	tr          i18n.Translator
	config      Config
	keymap      KeyMap
	themeName   string
	authView    components.AuthModel
	wizard      components.OnboardingModel
	dashboard   components.DashboardModel
	budget      components.BudgetModel
	prices      components.PricesModel
	shopping    components.ShoppingModel
	investments components.InvestmentsModel
	analytics   components.AnalyticsModel
	profileView components.ProfileModel
	howItWorks  components.PageModel
	privacy     components.PageModel
	advGen      int
	width       int
	height      int
	showHelp    bool
	quitting    bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	theme := themes.GetTheme(cfg.ThemeName)
	tr := i18n.New(cfg.Language)

	return Model{
		shell:     session.NewShell(),
		config:    cfg,
		keymap:    DefaultKeyMap(),
		theme:     theme,
		themeName: cfg.ThemeName,
		tr:        tr,
		authView:  components.NewAuthModel(cfg.Auth, theme, tr),
		width:     cfg.Width,
		height:    cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.authView.Init())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, model, cmd := m.handleGlobalKeys(msg); handled {
			return model, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeAll()

	case components.AuthCompletedMsg:
		if err := m.shell.SignIn(msg.Account); err != nil {
			return m, nil
		}
		m.wizard = components.NewOnboardingModel(msg.Account, m.theme, m.tr)
		return m, nil

	case components.OnboardingDoneMsg:
		if err := m.shell.CompleteOnboarding(msg.Profile); err != nil {
			return m, nil
		}
		m.advGen++
		return m.switchView(session.ViewDashboard)

	case components.ProfileSavedMsg:
		if err := m.shell.UpdateProfile(msg.Profile); err != nil {
			return m, nil
		}
		m.advGen++
		newProfile, cmd := m.profileView.Update(msg)
		m.profileView = newProfile
		return m, cmd

	case components.RecalculateMsg:
		return m, m.fetchBudget()

	case budgetLoadedMsg:
		if msg.gen == m.advGen {
			m.budget.SetResults(msg.allocations)
		}
		return m, nil

	case forecastLoadedMsg:
		if msg.gen == m.advGen {
			m.prices.SetResults(msg.predictions)
		}
		return m, nil

	case shoppingLoadedMsg:
		if msg.gen == m.advGen {
			m.shopping.SetResults(msg.items)
		}
		return m, nil

	case preferenceSavedMsg:
		if msg.err != nil {
			common.LogError(msg.err, "failed to persist preference", common.Fields{
				"key": msg.key,
			})
		}
		return m, nil
	}

	return m.delegate(msg)
}

// delegate routes a message to the component behind the current state.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.shell.State() {
	case session.StateUnauthenticated:
		m.authView, cmd = m.authView.Update(msg)
		return m, cmd

	case session.StateOnboarding:
		m.wizard, cmd = m.wizard.Update(msg)
		return m, cmd
	}

	switch m.shell.ActiveView() {
	case session.ViewBudget:
		m.budget, cmd = m.budget.Update(msg)
	case session.ViewPrices:
		m.prices, cmd = m.prices.Update(msg)
	case session.ViewShopping:
		m.shopping, cmd = m.shopping.Update(msg)
	case session.ViewInvestments:
		m.investments, cmd = m.investments.Update(msg)
	case session.ViewProfile:
		m.profileView, cmd = m.profileView.Update(msg)
	}
	return m, cmd
}

// handleGlobalKeys handles keys that work regardless of the focused
// component. Text-capturing components keep their keys.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if key := msg.String(); key == "ctrl+c" {
		m.quitting = true
		return true, m, tea.Quit
	}

	if m.typing() {
		// Preference toggles still work while typing; plain letters do not.
		switch msg.String() {
		case "ctrl+t":
			model, cmd := m.toggleTheme()
			return true, model, cmd
		case "ctrl+g":
			model, cmd := m.toggleLanguage()
			return true, model, cmd
		}
		return false, m, nil
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return true, m, tea.Quit

	case "?":
		m.showHelp = !m.showHelp
		return true, m, nil

	case "ctrl+t":
		model, cmd := m.toggleTheme()
		return true, model, cmd

	case "ctrl+g":
		model, cmd := m.toggleLanguage()
		return true, model, cmd

	case "ctrl+o":
		if m.shell.State() != session.StateUnauthenticated {
			m.shell.SignOut()
			m.advGen++
			m.authView = components.NewAuthModel(m.config.Auth, m.theme, m.tr)
			return true, m, m.authView.Init()
		}
		return true, m, nil

	case "]", "[":
		if m.shell.State() != session.StateActive {
			return false, m, nil
		}
		delta := 1
		if msg.String() == "[" {
			delta = -1
		}
		views := session.SidebarViews()
		current := 0
		for i, v := range views {
			if v == m.shell.ActiveView() {
				current = i
				break
			}
		}
		next := views[(current+delta+len(views))%len(views)]
		model, cmd := m.switchView(next)
		return true, model, cmd
	}

	return false, m, nil
}

// switchView mounts a fresh controller for the target view. The outgoing
// controller's transient state is discarded; advisory views fetch on mount.
func (m Model) switchView(view session.ViewTag) (tea.Model, tea.Cmd) {
	m.shell.SwitchView(view)
	p, _ := m.shell.Profile()
	account, _ := m.shell.Account()

	switch view {
	case session.ViewDashboard:
		m.dashboard = components.NewDashboardModel(p, m.theme, m.tr)
		return m, nil

	case session.ViewBudget:
		m.budget = components.NewBudgetModel(m.theme, m.tr)
		m.budget.Resize(m.width, m.height)
		return m, tea.Batch(m.budget.Init(), m.fetchBudget())

	case session.ViewPrices:
		m.prices = components.NewPricesModel(m.theme, m.tr)
		m.prices.Resize(m.width, m.height)
		return m, tea.Batch(m.prices.Init(), m.fetchForecast())

	case session.ViewShopping:
		m.shopping = components.NewShoppingModel(p.ShoppingCeiling(), m.theme, m.tr)
		m.shopping.Resize(m.width, m.height)
		return m, tea.Batch(m.shopping.Init(), m.fetchShopping())

	case session.ViewInvestments:
		m.investments = components.NewInvestmentsModel(m.theme, m.tr)
		return m, nil

	case session.ViewAnalytics:
		m.analytics = components.NewAnalyticsModel(p, m.theme, m.tr)
		return m, nil

	case session.ViewProfile:
		m.profileView = components.NewProfileModel(account, p, m.theme, m.tr)
		return m, nil

	case session.ViewHowItWorks:
		m.howItWorks = components.NewHowItWorksModel(m.theme, m.tr)
		return m, nil

	case session.ViewPrivacy:
		m.privacy = components.NewPrivacyModel(m.theme, m.tr)
		return m, nil
	}
	return m, nil
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.themeName == "light" {
		m.themeName = "dark"
	} else {
		m.themeName = "light"
	}
	m.theme = themes.GetTheme(m.themeName)
	m.applyChrome()
	return m, m.savePreference(storage.PrefTheme, m.themeName)
}

func (m Model) toggleLanguage() (tea.Model, tea.Cmd) {
	if m.tr.Lang() == i18n.English {
		m.tr = i18n.New(i18n.Arabic)
	} else {
		m.tr = i18n.New(i18n.English)
	}
	m.applyChrome()
	return m, m.savePreference(storage.PrefLanguage, string(m.tr.Lang()))
}

// applyChrome pushes the current theme and translator into every mounted
// component so toggles never lose transient state.
func (m *Model) applyChrome() {
	m.authView.SetChrome(m.theme, m.tr)
	m.wizard.SetChrome(m.theme, m.tr)
	m.dashboard.SetChrome(m.theme, m.tr)
	m.budget.SetChrome(m.theme, m.tr)
	m.prices.SetChrome(m.theme, m.tr)
	m.shopping.SetChrome(m.theme, m.tr)
	m.investments.SetChrome(m.theme, m.tr)
	m.analytics.SetChrome(m.theme, m.tr)
	m.profileView.SetChrome(m.theme, m.tr)
	m.howItWorks.SetChrome(m.theme, m.tr)
	m.privacy.SetChrome(m.theme, m.tr)
}

func (m *Model) resizeAll() {
	m.authView.Resize(m.width, m.height)
	m.wizard.Resize(m.width, m.height)
	m.dashboard.Resize(m.width, m.height)
	m.budget.Resize(m.width, m.height)
	m.prices.Resize(m.width, m.height)
	m.shopping.Resize(m.width, m.height)
	m.investments.Resize(m.width, m.height)
	m.analytics.Resize(m.width, m.height)
	m.profileView.Resize(m.width, m.height)
	m.howItWorks.Resize(m.width, m.height)
	m.privacy.Resize(m.width, m.height)
}

// typing reports whether the active component holds focus in a text input.
func (m Model) typing() bool {
	switch m.shell.State() {
	case session.StateUnauthenticated:
		return m.authView.Typing()
	case session.StateOnboarding:
		return m.wizard.Typing()
	}
	if m.shell.ActiveView() == session.ViewProfile {
		return m.profileView.Typing()
	}
	return false
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.renderHelp()
	}

	switch m.shell.State() {
	case session.StateUnauthenticated:
		return m.authView.View()
	case session.StateOnboarding:
		return m.wizard.View()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.shell.ActiveView() {
	case session.ViewBudget:
		b.WriteString(m.budget.View())
	case session.ViewPrices:
		b.WriteString(m.prices.View())
	case session.ViewShopping:
		b.WriteString(m.shopping.View())
	case session.ViewInvestments:
		b.WriteString(m.investments.View())
	case session.ViewAnalytics:
		b.WriteString(m.analytics.View())
	case session.ViewProfile:
		b.WriteString(m.profileView.View())
	case session.ViewHowItWorks:
		b.WriteString(m.howItWorks.View())
	case session.ViewPrivacy:
		b.WriteString(m.privacy.View())
	default:
		b.WriteString(m.dashboard.View())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render("[/]: views · Ctrl+T/G: theme/lang · Ctrl+O: " +
		m.tr.T(i18n.KeySignOut) + " · ?: help"))

	return b.String()
}

// viewLabel maps a view tag to its navigation label.
func viewLabel(v session.ViewTag) i18n.Key {
	switch v {
	case session.ViewBudget:
		return i18n.KeyNavBudget
	case session.ViewPrices:
		return i18n.KeyNavPrices
	case session.ViewShopping:
		return i18n.KeyNavShopping
	case session.ViewInvestments:
		return i18n.KeyNavInvestments
	case session.ViewAnalytics:
		return i18n.KeyNavAnalytics
	case session.ViewProfile:
		return i18n.KeyNavProfile
	case session.ViewHowItWorks:
		return i18n.KeyNavHowItWorks
	case session.ViewPrivacy:
		return i18n.KeyNavPrivacy
	default:
		return i18n.KeyNavDashboard
	}
}

func (m Model) renderHeader() string {
	account, _ := m.shell.Account()

	var tabs []string
	for _, v := range session.SidebarViews() {
		label := " " + m.tr.T(viewLabel(v)) + " "
		if v == m.shell.ActiveView() {
			tabs = append(tabs, m.theme.Selected.Render(label))
		} else {
			tabs = append(tabs, m.theme.Faint.Render(label))
		}
	}

	return m.theme.Bold.Render(m.tr.T(i18n.KeyAppName)) + "  " +
		m.theme.Faint.Render(account.Name) + "\n" +
		strings.Join(tabs, "")
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.tr.T(i18n.KeyAppName)))
	b.WriteString("\n")
	for _, group := range m.keymap.FullHelp() {
		for _, binding := range group {
			b.WriteString(m.theme.Bold.Render(binding.Help().Key))
			b.WriteString("  ")
			b.WriteString(m.theme.Faint.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Faint.Render("?: close"))
	return m.theme.Box.Render(b.String())
}

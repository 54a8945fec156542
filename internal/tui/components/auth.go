package components

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/modaber/modaber/internal/auth"
	"github.com/modaber/modaber/internal/common"
	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/model"
	"github.com/modaber/modaber/internal/tui/themes"
)

// authMode is the active tab of the auth screen.
type authMode int

const (
	modeLogin authMode = iota
	modeRegister
	modeForgot
)

// authTimeout bounds a single credential store round-trip.
const authTimeout = 10 * time.Second

// simulatedDelay makes the sign-in feel deliberate even against a local
// database.
const simulatedDelay = 600 * time.Millisecond

// Focusable controls, in tab order. Which ones exist depends on the mode.
const (
	focusName = iota
	focusEmail
	focusPassword
	focusGoogle
	focusFacebook
)

type authResultMsg struct {
	err     error
	account model.UserAccount
}

type registerResultMsg struct {
	err error
}

// AuthModel manages the sign-in, registration and reset screens.
type AuthModel struct {
	theme      themes.Theme
	tr         i18n.Translator
	auth       auth.Service
	notice     string
	errText    string
	nameInput  textinput.Model
	emailInput textinput.Model
	passInput  textinput.Model
	spinner    spinner.Model
	mode       authMode
	focus      int
	width      int
	height     int
	busy       bool
}

// NewAuthModel creates the auth screen focused on the email field.
func NewAuthModel(svc auth.Service, theme themes.Theme, tr i18n.Translator) AuthModel {
	name := textinput.New()
	name.CharLimit = 60

	email := textinput.New()
	email.CharLimit = 80

	pass := textinput.New()
	pass.CharLimit = 80
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	m := AuthModel{
		auth:       svc,
		theme:      theme,
		tr:         tr,
		nameInput:  name,
		emailInput: email,
		passInput:  pass,
		spinner:    s,
		mode:       modeLogin,
		focus:      focusEmail,
	}
	m.applyFocus()
	return m
}

// SetChrome swaps the theme and translator without losing form state.
func (m *AuthModel) SetChrome(theme themes.Theme, tr i18n.Translator) {
	m.theme = theme
	m.tr = tr
	m.spinner.Style = lipgloss.NewStyle().Foreground(theme.Primary)
}

// Resize updates the layout bounds.
func (m *AuthModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Typing reports whether a text input currently has focus.
func (m AuthModel) Typing() bool {
	return !m.busy && m.focus != focusGoogle && m.focus != focusFacebook
}

// Init returns initial commands.
func (m AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m AuthModel) Update(msg tea.Msg) (AuthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = m.authErrorText(msg.err)
			return m, nil
		}
		account := msg.account
		return m, func() tea.Msg { return AuthCompletedMsg{Account: account} }

	case registerResultMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = m.authErrorText(msg.err)
			return m, nil
		}
		m.setMode(modeLogin)
		m.notice = m.tr.T(i18n.KeySuccessRegister)
		return m, nil

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m AuthModel) handleKey(msg tea.KeyMsg) (AuthModel, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.cycleFocus(1)
		return m, nil

	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil

	case "ctrl+n":
		m.setMode((m.mode + 1) % 3)
		return m, nil

	case "esc":
		if m.mode != modeLogin {
			m.setMode(modeLogin)
		}
		return m, nil

	case "enter":
		return m.submit()
	}

	return m.updateInputs(msg)
}

func (m AuthModel) updateInputs(msg tea.Msg) (AuthModel, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.nameInput, cmd = m.nameInput.Update(msg)
	cmds = append(cmds, cmd)
	m.emailInput, cmd = m.emailInput.Update(msg)
	cmds = append(cmds, cmd)
	m.passInput, cmd = m.passInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit runs the action behind the focused control, or the mode's default
// form action when an input is focused.
func (m AuthModel) submit() (AuthModel, tea.Cmd) {
	switch m.focus {
	case focusGoogle:
		return m.startSocial(auth.ProviderGoogle)
	case focusFacebook:
		return m.startSocial(auth.ProviderFacebook)
	}

	email := strings.TrimSpace(m.emailInput.Value())
	password := m.passInput.Value()
	name := strings.TrimSpace(m.nameInput.Value())

	switch m.mode {
	case modeLogin:
		if email == "" || password == "" {
			return m, nil
		}
		m.beginRequest()
		svc := m.auth
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			time.Sleep(simulatedDelay)
			ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
			defer cancel()
			account, err := svc.Login(ctx, email, password)
			return authResultMsg{account: account, err: err}
		})

	case modeRegister:
		if email == "" || password == "" || name == "" {
			return m, nil
		}
		m.beginRequest()
		svc := m.auth
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			time.Sleep(simulatedDelay)
			ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
			defer cancel()
			_, err := svc.Register(ctx, email, name, password)
			return registerResultMsg{err: err}
		})

	case modeForgot:
		if email == "" {
			return m, nil
		}
		// There is no mail pipeline; the reset link is acknowledged only.
		// setMode clears notices, so set the acknowledgment after it.
		m.setMode(modeLogin)
		m.notice = m.tr.T(i18n.KeyResetSent)
		return m, nil
	}

	return m, nil
}

func (m AuthModel) startSocial(provider auth.Provider) (AuthModel, tea.Cmd) {
	email, name := socialIdentity(provider)
	m.beginRequest()
	svc := m.auth
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		time.Sleep(simulatedDelay)
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()
		account, err := svc.LoginOrRegisterSocial(ctx, provider, email, name)
		return authResultMsg{account: account, err: err}
	})
}

// socialIdentity returns the canned identity the provider hands back. There
// is no real OAuth flow behind the picker.
func socialIdentity(provider auth.Provider) (email, name string) {
	if provider == auth.ProviderFacebook {
		return "user@facebook.com", "Facebook User"
	}
	return "user@gmail.com", "Google User"
}

func (m *AuthModel) beginRequest() {
	m.busy = true
	m.errText = ""
	m.notice = ""
}

func (m *AuthModel) setMode(mode authMode) {
	m.mode = mode
	m.errText = ""
	m.notice = ""
	if mode == modeRegister {
		m.focus = focusName
	} else {
		m.focus = focusEmail
	}
	m.applyFocus()
}

// focusOrder lists the reachable controls for the current mode.
func (m *AuthModel) focusOrder() []int {
	switch m.mode {
	case modeRegister:
		return []int{focusName, focusEmail, focusPassword}
	case modeForgot:
		return []int{focusEmail}
	default:
		return []int{focusEmail, focusPassword, focusGoogle, focusFacebook}
	}
}

func (m *AuthModel) cycleFocus(delta int) {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	m.focus = order[idx]
	m.applyFocus()
}

func (m *AuthModel) applyFocus() {
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.passInput.Blur()
	switch m.focus {
	case focusName:
		m.nameInput.Focus()
	case focusEmail:
		m.emailInput.Focus()
	case focusPassword:
		m.passInput.Focus()
	}
}

// authErrorText maps store errors to translated messages.
func (m AuthModel) authErrorText(err error) string {
	switch {
	case errors.Is(err, common.ErrDuplicateAccount):
		return m.tr.T(i18n.KeyErrEmailExists)
	case errors.Is(err, common.ErrAccountNotFound):
		return m.tr.T(i18n.KeyErrUserNotFound)
	case errors.Is(err, common.ErrInvalidCredential):
		return m.tr.T(i18n.KeyErrWrongPassword)
	default:
		return err.Error()
	}
}

// View renders the auth screen.
func (m AuthModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.tr.T(i18n.KeyAppName)))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(m.tr.T(i18n.KeyTagline)))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.mode == modeRegister {
		b.WriteString(m.renderField(i18n.KeyFullName, m.nameInput.View()))
	}
	b.WriteString(m.renderField(i18n.KeyEmail, m.emailInput.View()))
	if m.mode != modeForgot {
		b.WriteString(m.renderField(i18n.KeyPassword, m.passInput.View()))
	}

	if m.mode == modeLogin {
		b.WriteString("\n")
		b.WriteString(m.renderButton(i18n.KeySignInGoogle, m.focus == focusGoogle))
		b.WriteString("\n")
		b.WriteString(m.renderButton(i18n.KeySignInFacebook, m.focus == focusFacebook))
		b.WriteString("\n")
	}

	switch {
	case m.busy:
		b.WriteString("\n" + m.spinner.View() + " " + m.theme.StatusPending.Render(m.tr.T(i18n.KeyLoading)))
	case m.errText != "":
		b.WriteString("\n" + m.theme.StatusError.Render(m.errText))
	case m.notice != "":
		b.WriteString("\n" + m.theme.StatusSuccess.Render(m.notice))
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Faint.Render("Tab: move · Enter: submit · Ctrl+N: switch tab"))

	return m.theme.RoundedBox.Render(b.String())
}

func (m AuthModel) renderTabs() string {
	labels := []struct {
		key  i18n.Key
		mode authMode
	}{
		{i18n.KeyLogin, modeLogin},
		{i18n.KeyRegister, modeRegister},
		{i18n.KeyForgotPassword, modeForgot},
	}

	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		text := " " + m.tr.T(l.key) + " "
		if l.mode == m.mode {
			parts = append(parts, m.theme.Selected.Render(text))
		} else {
			parts = append(parts, m.theme.Faint.Render(text))
		}
	}
	return strings.Join(parts, " ")
}

func (m AuthModel) renderField(label i18n.Key, input string) string {
	return m.theme.Faint.Render(m.tr.T(label)) + "\n" + input + "\n"
}

func (m AuthModel) renderButton(label i18n.Key, focused bool) string {
	text := " " + m.tr.T(label) + " "
	if focused {
		return m.theme.Selected.Render(text)
	}
	return m.theme.Highlighted.Render(text)
}

package components

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/modaber/modaber/internal/common"
	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/model"
	"github.com/modaber/modaber/internal/profile"
	"github.com/modaber/modaber/internal/tui/themes"
)

// profileMode is the state of the profile screen.
type profileMode int

const (
	profileRead profileMode = iota
	profileEdit
	profileAddDebt
	profileAddAnnual
)

// Internal control messages for the edit form.
type (
	saveProfileMsg   struct{}
	cancelProfileMsg struct{}
)

// ProfileModel is the read-only profile screen with a copy-on-edit editing
// mode over the editor's scratch buffer.
type ProfileModel struct {
	editor    *profile.Editor
	theme     themes.Theme
	tr        i18n.Translator
	account   model.UserAccount
	errText   string
	form      form
	sub       form
	debtIn    *profile.DebtInput
	annualIn  *profile.AnnualExpenseInput
	mode      profileMode
	prioBase  int
	prioCount int
	width     int
	height    int
	saved     bool
}

// NewProfileModel creates the profile screen in read mode.
func NewProfileModel(account model.UserAccount, committed model.UserProfile, theme themes.Theme, tr i18n.Translator) ProfileModel {
	return ProfileModel{
		editor:  profile.NewEditor(committed),
		theme:   theme,
		tr:      tr,
		account: account,
	}
}

// SetChrome swaps the theme and translator.
func (m *ProfileModel) SetChrome(theme themes.Theme, tr i18n.Translator) {
	m.theme = theme
	m.tr = tr
}

// Resize updates the layout bounds.
func (m *ProfileModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Typing reports whether a text input currently has focus.
func (m ProfileModel) Typing() bool {
	switch m.mode {
	case profileEdit:
		return m.form.typing()
	case profileAddDebt, profileAddAnnual:
		return m.sub.typing()
	default:
		return false
	}
}

// Update handles messages.
func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case saveProfileMsg:
		m.form.commit()
		saved, err := m.editor.Save()
		if err != nil {
			m.errText = m.saveErrorText(err)
			return m, nil
		}
		m.mode = profileRead
		m.errText = ""
		m.saved = true
		return m, func() tea.Msg { return ProfileSavedMsg{Profile: saved} }

	case cancelProfileMsg:
		m.editor.Cancel()
		m.mode = profileRead
		m.errText = ""
		return m, nil

	case openDebtMsg:
		m.form.commit()
		m.mode = profileAddDebt
		m.debtIn = &profile.DebtInput{Priority: model.PriorityMedium, MonthlyAmount: profile.Unset()}
		m.rebuildSubForm()
		return m, nil

	case openAnnualMsg:
		m.form.commit()
		m.mode = profileAddAnnual
		m.annualIn = &profile.AnnualExpenseInput{Priority: model.PriorityMedium, TotalAmount: profile.Unset()}
		m.rebuildSubForm()
		return m, nil

	case commitEntryMsg:
		m.sub.commit()
		added := false
		if m.mode == profileAddDebt {
			added = m.editor.Draft.AddDebt(*m.debtIn)
		} else {
			added = m.editor.Draft.AddAnnualExpense(*m.annualIn)
		}
		if added {
			m.mode = profileEdit
			m.rebuildForm()
		}
		return m, nil

	case removeDebtMsg:
		m.editor.Draft.RemoveDebt(msg.id)
		m.rebuildForm()
		return m, nil

	case removeAnnualMsg:
		m.editor.Draft.RemoveAnnualExpense(msg.id)
		m.rebuildForm()
		return m, nil

	case moveTagMsg:
		if m.editor.Draft.MovePriority(msg.index, msg.dir) {
			focus := m.form.focus
			m.rebuildForm()
			if msg.dir == profile.MoveUp {
				m.form.focus = focus - 1
			} else {
				m.form.focus = focus + 1
			}
			m.form.applyFocus()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m ProfileModel) handleKey(msg tea.KeyMsg) (ProfileModel, tea.Cmd) {
	switch m.mode {
	case profileRead:
		if msg.String() == "e" {
			m.mode = profileEdit
			m.saved = false
			m.rebuildForm()
		}
		return m, nil

	case profileAddDebt, profileAddAnnual:
		if msg.String() == "esc" {
			m.mode = profileEdit
			m.rebuildForm()
			return m, nil
		}
		cmd, _ := m.sub.handleKey(msg)
		return m, cmd
	}

	// Edit mode.
	if idx := m.form.focus - m.prioBase; idx >= 0 && idx < m.prioCount {
		switch msg.String() {
		case "u":
			return m.Update(moveTagMsg{index: idx, dir: profile.MoveUp})
		case "d":
			return m.Update(moveTagMsg{index: idx, dir: profile.MoveDown})
		}
	}

	if msg.String() == "esc" {
		return m.Update(cancelProfileMsg{})
	}

	cmd, _ := m.form.handleKey(msg)
	return m, cmd
}

// rebuildForm reconstructs the edit form from the scratch buffer.
func (m *ProfileModel) rebuildForm() {
	p := m.editor.Buffer()

	fields := []formField{
		numberField(i18n.KeyMonthlySalary, &p.MonthlySalary),
		intField(i18n.KeyFamilyMembers, &p.FamilyMembers),
		selectField(i18n.KeyMaritalStatus,
			[]string{string(model.MaritalSingle), string(model.MaritalMarried), string(model.MaritalNotSpecified)},
			string(p.MaritalStatus),
			func(v string) { p.MaritalStatus = model.MaritalStatus(v) }),
		selectField(i18n.KeyLivingCostLevel,
			[]string{string(model.LivingCostHigh), string(model.LivingCostMedium), string(model.LivingCostLow)},
			string(p.LivingCostLevel),
			func(v string) { p.LivingCostLevel = model.LivingCostLevel(v) }),
		selectField(i18n.KeyIncomeStability,
			[]string{string(model.IncomeFullTime), string(model.IncomeFreelance), string(model.IncomeSeasonal), string(model.IncomeMixed)},
			string(p.IncomeStability),
			func(v string) { p.IncomeStability = model.IncomeStability(v) }),
		numberField(i18n.KeyRent, &p.FixedExpenses.Rent),
		numberField(i18n.KeyElectricity, &p.FixedExpenses.Electricity),
		numberField(i18n.KeyWater, &p.FixedExpenses.Water),
		numberField(i18n.KeyGas, &p.FixedExpenses.Gas),
		numberField(i18n.KeyTransportation, &p.FixedExpenses.Transportation),
		numberField(i18n.KeyInternet, &p.FixedExpenses.Internet),
		numberField(i18n.KeyMobile, &p.FixedExpenses.Mobile),
		numberField(i18n.KeyStreaming, &p.OptionalExpenses.Streaming),
		numberField(i18n.KeyEducation, &p.OptionalExpenses.Education),
		numberField(i18n.KeyMedical, &p.OptionalExpenses.Medical),
		buttonField(i18n.KeyAddDebt, func() tea.Msg { return openDebtMsg{} }),
	}
	for _, d := range p.Debts {
		id := d.ID
		label := fmt.Sprintf("✕ %s  %s", d.Description, money(d.MonthlyAmount))
		fields = append(fields, rowButton(label, func() tea.Msg { return removeDebtMsg{id: id} }))
	}
	fields = append(fields, buttonField(i18n.KeyAddAnnual, func() tea.Msg { return openAnnualMsg{} }))
	for _, e := range p.AnnualExpenses {
		id := e.ID
		label := fmt.Sprintf("✕ %s  %s", e.Description, money(e.TotalAmount))
		fields = append(fields, rowButton(label, func() tea.Msg { return removeAnnualMsg{id: id} }))
	}

	levels := []string{string(model.PriorityLow), string(model.PriorityMedium), string(model.PriorityHigh), string(model.PriorityNotSpecified)}
	fields = append(fields,
		selectField(i18n.KeySavingPriority, levels, string(p.Preferences.SavingPriority),
			func(v string) { p.Preferences.SavingPriority = model.Priority(v) }),
		selectField(i18n.KeyRiskTolerance, levels, string(p.Preferences.RiskTolerance),
			func(v string) { p.Preferences.RiskTolerance = model.Priority(v) }),
		stepperField(i18n.KeyEmergencyFund, &p.Preferences.EmergencyFundPercentage, 0, 50, 5),
	)

	m.prioBase = len(fields)
	m.prioCount = len(p.Preferences.MonthlyPriorities)
	for i, tag := range p.Preferences.MonthlyPriorities {
		index := i
		label := fmt.Sprintf("%d. %s", i+1, m.tr.T(tagKey(tag)))
		fields = append(fields, rowButton(label, func() tea.Msg {
			return moveTagMsg{index: index, dir: profile.MoveUp}
		}))
	}

	fields = append(fields,
		buttonField(i18n.KeyCancel, func() tea.Msg { return cancelProfileMsg{} }),
		buttonField(i18n.KeySave, func() tea.Msg { return saveProfileMsg{} }),
	)

	m.form = newForm(fields...)
}

func (m *ProfileModel) rebuildSubForm() {
	levels := []string{string(model.PriorityLow), string(model.PriorityMedium), string(model.PriorityHigh)}
	if m.mode == profileAddDebt {
		in := m.debtIn
		m.sub = newForm(
			textField(i18n.KeyDescription, &in.Description),
			numberField(i18n.KeyMonthlyAmount, &in.MonthlyAmount),
			selectField(i18n.KeyPriorityLabel, levels, string(in.Priority),
				func(v string) { in.Priority = model.Priority(v) }),
			textField(i18n.KeyDueDate, &in.DueDate),
			buttonField(i18n.KeyConfirm, func() tea.Msg { return commitEntryMsg{} }),
		)
		return
	}
	in := m.annualIn
	m.sub = newForm(
		textField(i18n.KeyDescription, &in.Description),
		numberField(i18n.KeyTotalAmount, &in.TotalAmount),
		selectField(i18n.KeyPriorityLabel, levels, string(in.Priority),
			func(v string) { in.Priority = model.Priority(v) }),
		textField(i18n.KeyExpectedMonth, &in.ExpectedMonth),
		buttonField(i18n.KeyConfirm, func() tea.Msg { return commitEntryMsg{} }),
	)
}

// saveErrorText translates known editor failures.
func (m ProfileModel) saveErrorText(err error) string {
	var verr *common.ValidationError
	if errors.As(err, &verr) {
		switch verr.Field {
		case "monthlySalary", "familyMembers":
			return m.tr.T(i18n.KeyRequiredRoot)
		}
	}
	return err.Error()
}

// View renders the profile screen.
func (m ProfileModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.tr.T(i18n.KeyNavProfile)))
	b.WriteString("\n")
	b.WriteString(m.theme.Bold.Render(m.account.Name) + "  " + m.theme.Faint.Render(m.account.Email))
	b.WriteString("\n\n")

	switch m.mode {
	case profileAddDebt:
		b.WriteString(m.theme.Bold.Render(m.tr.T(i18n.KeyAddDebt)) + "\n\n")
		b.WriteString(m.sub.render(m.theme, m.tr))
	case profileAddAnnual:
		b.WriteString(m.theme.Bold.Render(m.tr.T(i18n.KeyAddAnnual)) + "\n\n")
		b.WriteString(m.sub.render(m.theme, m.tr))
	case profileEdit:
		b.WriteString(m.form.render(m.theme, m.tr))
	default:
		b.WriteString(m.renderSummary())
	}

	if m.errText != "" {
		b.WriteString("\n" + m.theme.StatusError.Render(m.errText))
	}
	if m.saved && m.mode == profileRead {
		b.WriteString("\n" + m.theme.StatusSuccess.Render(m.tr.T(i18n.KeySavedOK)))
	}

	return m.theme.Box.Render(b.String())
}

func (m ProfileModel) renderSummary() string {
	p := m.editor.Buffer()
	var b strings.Builder

	rows := []struct {
		label i18n.Key
		value string
	}{
		{i18n.KeyMonthlySalary, money(p.MonthlySalary)},
		{i18n.KeyFamilyMembers, fmt.Sprintf("%d", p.FamilyMembers)},
		{i18n.KeyMaritalStatus, string(p.MaritalStatus)},
		{i18n.KeyLivingCostLevel, string(p.LivingCostLevel)},
		{i18n.KeyIncomeStability, string(p.IncomeStability)},
		{i18n.KeyFixedCosts, money(p.FixedExpenses.Total())},
		{i18n.KeyDebts, money(p.DebtsTotal())},
		{i18n.KeyAnnualExpenses, money(p.AnnualProvision())},
		{i18n.KeyAvailableCash, money(p.RemainingIncome())},
		{i18n.KeyEmergencyFund, fmt.Sprintf("%d%%", p.Preferences.EmergencyFundPercentage)},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-24s %s\n",
			m.tr.T(r.label),
			m.theme.Normal.Render(r.value)))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render("e: " + m.tr.T(i18n.KeyEdit)))
	return b.String()
}

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

// wizardMode distinguishes the step form from the modal add-entity forms.
type wizardMode int

const (
	wizardForm wizardMode = iota
	wizardAddDebt
	wizardAddAnnual
)

const totalSteps = 5

// Internal control messages emitted by form buttons.
type (
	nextStepMsg     struct{}
	backStepMsg     struct{}
	confirmMsg      struct{}
	openDebtMsg     struct{}
	openAnnualMsg   struct{}
	commitEntryMsg  struct{}
	removeDebtMsg   struct{ id string }
	removeAnnualMsg struct{ id string }
	moveTagMsg      struct {
		index int
		dir   profile.MoveDirection
	}
)

// OnboardingModel drives the five-step first-profile wizard over the guarded
// step machine.
type OnboardingModel struct {
	flow      *profile.Onboarding
	theme     themes.Theme
	tr        i18n.Translator
	account   model.UserAccount
	errText   string
	form      form
	sub       form
	debtIn    *profile.DebtInput
	annualIn  *profile.AnnualExpenseInput
	mode      wizardMode
	prioBase  int
	prioCount int
	width     int
	height    int
}

// NewOnboardingModel starts the wizard at the basic-info step.
func NewOnboardingModel(account model.UserAccount, theme themes.Theme, tr i18n.Translator) OnboardingModel {
	m := OnboardingModel{
		flow:    profile.NewOnboarding(),
		theme:   theme,
		tr:      tr,
		account: account,
	}
	m.rebuildForm()
	return m
}

// SetChrome swaps the theme and translator without losing wizard state.
func (m *OnboardingModel) SetChrome(theme themes.Theme, tr i18n.Translator) {
	m.theme = theme
	m.tr = tr
}

// Resize updates the layout bounds.
func (m *OnboardingModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Typing reports whether a text input currently has focus.
func (m OnboardingModel) Typing() bool {
	if m.mode != wizardForm {
		return m.sub.typing()
	}
	return m.form.typing()
}

// Update handles messages.
func (m OnboardingModel) Update(msg tea.Msg) (OnboardingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case nextStepMsg:
		m.form.commit()
		if err := m.flow.Next(); err != nil {
			m.errText = m.guardText(err)
			return m, nil
		}
		m.errText = ""
		m.rebuildForm()
		return m, nil

	case backStepMsg:
		m.form.commit()
		m.flow.Back()
		m.errText = ""
		m.rebuildForm()
		return m, nil

	case confirmMsg:
		committed, err := m.flow.Complete(m.account)
		if err != nil {
			m.errText = m.guardText(err)
			return m, nil
		}
		return m, func() tea.Msg { return OnboardingDoneMsg{Profile: committed} }

	case openDebtMsg:
		m.form.commit()
		m.mode = wizardAddDebt
		m.debtIn = &profile.DebtInput{Priority: model.PriorityMedium, MonthlyAmount: profile.Unset()}
		m.rebuildSubForm()
		return m, nil

	case openAnnualMsg:
		m.form.commit()
		m.mode = wizardAddAnnual
		m.annualIn = &profile.AnnualExpenseInput{Priority: model.PriorityMedium, TotalAmount: profile.Unset()}
		m.rebuildSubForm()
		return m, nil

	case commitEntryMsg:
		m.sub.commit()
		added := false
		if m.mode == wizardAddDebt {
			added = m.flow.Draft.AddDebt(*m.debtIn)
		} else {
			added = m.flow.Draft.AddAnnualExpense(*m.annualIn)
		}
		if added {
			m.mode = wizardForm
			m.rebuildForm()
		}
		return m, nil

	case removeDebtMsg:
		m.flow.Draft.RemoveDebt(msg.id)
		m.rebuildForm()
		return m, nil

	case removeAnnualMsg:
		m.flow.Draft.RemoveAnnualExpense(msg.id)
		m.rebuildForm()
		return m, nil

	case moveTagMsg:
		if m.flow.Draft.MovePriority(msg.index, msg.dir) {
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

func (m OnboardingModel) handleKey(msg tea.KeyMsg) (OnboardingModel, tea.Cmd) {
	if m.mode != wizardForm {
		if msg.String() == "esc" {
			m.mode = wizardForm
			m.rebuildForm()
			return m, nil
		}
		cmd, _ := m.sub.handleKey(msg)
		return m, cmd
	}

	// Reorder keys while a priority row is focused.
	if idx := m.form.focus - m.prioBase; idx >= 0 && idx < m.prioCount {
		switch msg.String() {
		case "u":
			return m.Update(moveTagMsg{index: idx, dir: profile.MoveUp})
		case "d":
			return m.Update(moveTagMsg{index: idx, dir: profile.MoveDown})
		}
	}

	if msg.String() == "esc" {
		return m.Update(backStepMsg{})
	}

	cmd, _ := m.form.handleKey(msg)
	return m, cmd
}

// rebuildForm reconstructs the field list for the current step from the
// draft. Transient cursor state resets; draft values persist.
func (m *OnboardingModel) rebuildForm() {
	p := &m.flow.Draft.Profile
	m.prioBase, m.prioCount = -1, 0

	var fields []formField
	switch m.flow.Step() {
	case profile.StepBasicInfo:
		fields = []formField{
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
			buttonField(i18n.KeyNext, func() tea.Msg { return nextStepMsg{} }),
		}

	case profile.StepFixedExpenses:
		// Debts and annual expenses are obligations; they live on this step
		// next to the fixed-expense grid.
		fields = []formField{
			numberField(i18n.KeyRent, &p.FixedExpenses.Rent),
			numberField(i18n.KeyElectricity, &p.FixedExpenses.Electricity),
			numberField(i18n.KeyWater, &p.FixedExpenses.Water),
			numberField(i18n.KeyGas, &p.FixedExpenses.Gas),
			numberField(i18n.KeyTransportation, &p.FixedExpenses.Transportation),
			numberField(i18n.KeyInternet, &p.FixedExpenses.Internet),
			numberField(i18n.KeyMobile, &p.FixedExpenses.Mobile),
			buttonField(i18n.KeyAddDebt, func() tea.Msg { return openDebtMsg{} }),
		}
		for _, d := range p.Debts {
			id := d.ID
			label := fmt.Sprintf("✕ %s  %s/%s", d.Description, money(d.MonthlyAmount), m.tr.T(i18n.KeyMonthlyAmount))
			fields = append(fields, rowButton(label, func() tea.Msg { return removeDebtMsg{id: id} }))
		}
		fields = append(fields, buttonField(i18n.KeyAddAnnual, func() tea.Msg { return openAnnualMsg{} }))
		for _, e := range p.AnnualExpenses {
			id := e.ID
			label := fmt.Sprintf("✕ %s  %s", e.Description, money(e.TotalAmount))
			fields = append(fields, rowButton(label, func() tea.Msg { return removeAnnualMsg{id: id} }))
		}
		fields = append(fields,
			buttonField(i18n.KeyBack, func() tea.Msg { return backStepMsg{} }),
			buttonField(i18n.KeyNext, func() tea.Msg { return nextStepMsg{} }),
		)

	case profile.StepOptionalExpenses:
		fields = []formField{
			numberField(i18n.KeyStreaming, &p.OptionalExpenses.Streaming),
			numberField(i18n.KeyEducation, &p.OptionalExpenses.Education),
			numberField(i18n.KeyMedical, &p.OptionalExpenses.Medical),
			buttonField(i18n.KeyBack, func() tea.Msg { return backStepMsg{} }),
			buttonField(i18n.KeyNext, func() tea.Msg { return nextStepMsg{} }),
		}

	case profile.StepPreferences:
		levels := []string{string(model.PriorityLow), string(model.PriorityMedium), string(model.PriorityHigh), string(model.PriorityNotSpecified)}
		fields = []formField{
			selectField(i18n.KeySavingPriority, levels, string(p.Preferences.SavingPriority),
				func(v string) { p.Preferences.SavingPriority = model.Priority(v) }),
			selectField(i18n.KeyRiskTolerance, levels, string(p.Preferences.RiskTolerance),
				func(v string) { p.Preferences.RiskTolerance = model.Priority(v) }),
			stepperField(i18n.KeyEmergencyFund, &p.Preferences.EmergencyFundPercentage, 0, 50, 5),
		}
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
			buttonField(i18n.KeyBack, func() tea.Msg { return backStepMsg{} }),
			buttonField(i18n.KeyNext, func() tea.Msg { return nextStepMsg{} }),
		)

	case profile.StepReview:
		fields = []formField{
			buttonField(i18n.KeyBack, func() tea.Msg { return backStepMsg{} }),
			buttonField(i18n.KeyConfirm, func() tea.Msg { return confirmMsg{} }),
		}
	}

	m.form = newForm(fields...)
}

func (m *OnboardingModel) rebuildSubForm() {
	levels := []string{string(model.PriorityLow), string(model.PriorityMedium), string(model.PriorityHigh)}
	if m.mode == wizardAddDebt {
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

// guardText translates known guard failures; anything else renders raw.
func (m OnboardingModel) guardText(err error) string {
	var verr *common.ValidationError
	if errors.As(err, &verr) {
		switch verr.Field {
		case "monthlySalary", "familyMembers":
			return m.tr.T(i18n.KeyRequiredRoot)
		}
	}
	return err.Error()
}

// View renders the wizard.
func (m OnboardingModel) View() string {
	var b strings.Builder

	step := int(m.flow.Step())
	b.WriteString(m.theme.Title.Render(m.tr.T(i18n.KeyFinancialProfile)))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("%s %d %s %d", m.tr.T(i18n.KeyStep), step, m.tr.T(i18n.KeyOf), totalSteps)))
	b.WriteString("\n")
	b.WriteString(progressBar(m.theme, float64(step)/totalSteps, 30))
	b.WriteString("\n\n")

	switch m.mode {
	case wizardAddDebt:
		b.WriteString(m.theme.Bold.Render(m.tr.T(i18n.KeyAddDebt)))
		b.WriteString("\n\n")
		b.WriteString(m.sub.render(m.theme, m.tr))
	case wizardAddAnnual:
		b.WriteString(m.theme.Bold.Render(m.tr.T(i18n.KeyAddAnnual)))
		b.WriteString("\n\n")
		b.WriteString(m.sub.render(m.theme, m.tr))
	default:
		if m.flow.Step() == profile.StepReview {
			b.WriteString(m.renderReview())
		}
		b.WriteString(m.form.render(m.theme, m.tr))
	}

	if m.errText != "" {
		b.WriteString("\n" + m.theme.StatusError.Render(m.errText))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render("Tab/↑↓: move · ←→: adjust · Enter: select"))

	return m.theme.RoundedBox.Render(b.String())
}

func (m OnboardingModel) renderReview() string {
	p := &m.flow.Draft.Profile
	var b strings.Builder

	b.WriteString(m.theme.Bold.Render(m.tr.T(i18n.KeyReview)))
	b.WriteString("\n\n")

	rows := []struct {
		label i18n.Key
		value string
	}{
		{i18n.KeyMonthlySalary, money(p.MonthlySalary)},
		{i18n.KeyFamilyMembers, fmt.Sprintf("%d", p.FamilyMembers)},
		{i18n.KeyFixedCosts, money(p.FixedExpenses.Total())},
		{i18n.KeyDebts, money(p.DebtsTotal())},
		{i18n.KeyAnnualExpenses, money(p.AnnualProvision())},
		{i18n.KeyAvailableCash, money(p.RemainingIncome())},
		{i18n.KeyEmergencyFund, fmt.Sprintf("%d%%", p.Preferences.EmergencyFundPercentage)},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			m.theme.Faint.Render(m.tr.T(r.label)),
			m.theme.Normal.Render(r.value)))
	}
	b.WriteString("\n")
	return b.String()
}

// tagKey maps a ranked category to its label.
func tagKey(tag model.PriorityTag) i18n.Key {
	switch tag {
	case model.TagFood:
		return i18n.KeyCatFood
	case model.TagTransport:
		return i18n.KeyCatTransport
	case model.TagEmergency:
		return i18n.KeyCatEmergency
	case model.TagSavings:
		return i18n.KeyCatSavings
	case model.TagInvest:
		return i18n.KeyCatInvest
	default:
		return i18n.KeyCatPersonal
	}
}

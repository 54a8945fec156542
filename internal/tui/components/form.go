package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/modaber/modaber/internal/i18n"
	"github.com/modaber/modaber/internal/profile"
	"github.com/modaber/modaber/internal/tui/themes"
)

// fieldKind selects how a form field edits its target.
type fieldKind int

const (
	fieldNumber  fieldKind = iota // float64 via textinput, empty means unset
	fieldInt                      // int via textinput
	fieldText                     // free text via textinput
	fieldSelect                   // fixed options cycled with left/right
	fieldStepper                  // bounded int adjusted with left/right
	fieldButton                   // action on enter
)

// formField is one row of a form. Exactly one target pointer is set,
// matching the kind.
type formField struct {
	target     *float64
	intTarget  *int
	textTarget *string
	setOption  func(string)
	press      func() tea.Msg
	input      textinput.Model
	rawLabel   string
	options    []string
	label      i18n.Key
	kind       fieldKind
	optIdx     int
	stepVal    int
	stepMin    int
	stepMax    int
	stepSize   int
}

func numberField(label i18n.Key, target *float64) formField {
	in := textinput.New()
	in.CharLimit = 12
	if !profile.IsUnset(*target) {
		in.SetValue(strconv.FormatFloat(*target, 'f', -1, 64))
	}
	return formField{kind: fieldNumber, label: label, input: in, target: target}
}

func intField(label i18n.Key, target *int) formField {
	in := textinput.New()
	in.CharLimit = 6
	in.SetValue(strconv.Itoa(*target))
	return formField{kind: fieldInt, label: label, input: in, intTarget: target}
}

func textField(label i18n.Key, target *string) formField {
	in := textinput.New()
	in.CharLimit = 80
	in.SetValue(*target)
	return formField{kind: fieldText, label: label, input: in, textTarget: target}
}

func selectField(label i18n.Key, options []string, current string, set func(string)) formField {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	return formField{kind: fieldSelect, label: label, options: options, optIdx: idx, setOption: set}
}

func stepperField(label i18n.Key, target *int, minVal, maxVal, step int) formField {
	return formField{
		kind:      fieldStepper,
		label:     label,
		intTarget: target,
		stepVal:   *target,
		stepMin:   minVal,
		stepMax:   maxVal,
		stepSize:  step,
	}
}

func buttonField(label i18n.Key, press func() tea.Msg) formField {
	return formField{kind: fieldButton, label: label, press: press}
}

func rowButton(rawLabel string, press func() tea.Msg) formField {
	return formField{kind: fieldButton, rawLabel: rawLabel, press: press}
}

// form is a vertically focused list of fields. Tab moves focus, left/right
// adjust selects and steppers, enter presses buttons or advances focus.
type form struct {
	fields []formField
	focus  int
}

func newForm(fields ...formField) form {
	f := form{fields: fields}
	f.applyFocus()
	return f
}

func (f *form) applyFocus() {
	for i := range f.fields {
		f.fields[i].input.Blur()
	}
	if f.focus >= 0 && f.focus < len(f.fields) && f.fields[f.focus].hasInput() {
		f.fields[f.focus].input.Focus()
	}
}

func (f *form) move(delta int) {
	if len(f.fields) == 0 {
		return
	}
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.applyFocus()
}

// typing reports whether the focused field captures free text.
func (f *form) typing() bool {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return false
	}
	return f.fields[f.focus].hasInput()
}

// handleKey processes a key for the focused field. The returned cmd carries
// button presses; handled reports whether the form consumed the key.
func (f *form) handleKey(msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	if len(f.fields) == 0 {
		return nil, false
	}
	field := &f.fields[f.focus]

	switch msg.String() {
	case "tab", "down":
		f.move(1)
		return nil, true

	case "shift+tab", "up":
		f.move(-1)
		return nil, true

	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch field.kind {
		case fieldSelect:
			field.optIdx = (field.optIdx + delta + len(field.options)) % len(field.options)
			field.setOption(field.options[field.optIdx])
			return nil, true
		case fieldStepper:
			next := field.stepVal + delta*field.stepSize
			if next >= field.stepMin && next <= field.stepMax {
				field.stepVal = next
				*field.intTarget = next
			}
			return nil, true
		}

	case "enter":
		if field.kind == fieldButton {
			press := field.press
			return func() tea.Msg { return press() }, true
		}
		f.move(1)
		return nil, true
	}

	if field.hasInput() {
		var inputCmd tea.Cmd
		field.input, inputCmd = field.input.Update(msg)
		return inputCmd, true
	}
	return nil, false
}

func (field *formField) hasInput() bool {
	switch field.kind {
	case fieldNumber, fieldInt, fieldText:
		return true
	default:
		return false
	}
}

// commit parses every input and writes the targets. Blank or unparsable
// numeric inputs become unset so required-field guards can catch them.
func (f *form) commit() {
	for i := range f.fields {
		field := &f.fields[i]
		switch field.kind {
		case fieldNumber:
			raw := strings.TrimSpace(field.input.Value())
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				*field.target = v
			} else {
				*field.target = profile.Unset()
			}
		case fieldInt:
			raw := strings.TrimSpace(field.input.Value())
			if v, err := strconv.Atoi(raw); err == nil {
				*field.intTarget = v
			} else {
				*field.intTarget = 0
			}
		case fieldText:
			*field.textTarget = strings.TrimSpace(field.input.Value())
		}
	}
}

// render draws the form rows with the focused one highlighted.
func (f *form) render(theme themes.Theme, tr i18n.Translator) string {
	var b strings.Builder
	for i := range f.fields {
		field := &f.fields[i]
		focused := i == f.focus

		label := field.rawLabel
		if label == "" {
			label = tr.T(field.label)
		}

		switch field.kind {
		case fieldSelect:
			marker := "  "
			if focused {
				marker = theme.StatusSuccess.Render("› ")
			}
			b.WriteString(marker + theme.Faint.Render(label) + "  " +
				theme.Bold.Render("‹ "+field.options[field.optIdx]+" ›"))
		case fieldStepper:
			marker := "  "
			if focused {
				marker = theme.StatusSuccess.Render("› ")
			}
			b.WriteString(marker + theme.Faint.Render(label) + "  " +
				theme.Bold.Render(fmt.Sprintf("‹ %d%% ›", field.stepVal)))
		case fieldButton:
			text := " " + label + " "
			if focused {
				b.WriteString("  " + theme.Selected.Render(text))
			} else {
				b.WriteString("  " + theme.Highlighted.Render(text))
			}
		default:
			marker := "  "
			if focused {
				marker = theme.StatusSuccess.Render("› ")
			}
			b.WriteString(marker + theme.Faint.Render(label) + "\n    " + field.input.View())
		}
		b.WriteString("\n")
	}
	return b.String()
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chetanneosoft/User-Authentication-App/internal/i18n"
)

type formField struct {
	name        string
	label       string
	placeholder string
	charLimit   int
	masked      bool
}

// formInputs is an ordered set of text inputs with a single focused field.
type formInputs struct {
	fields []formField
	inputs []textinput.Model
	focus  int
}

func newFormInputs(fields ...formField) formInputs {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.CharLimit = f.charLimit
		in.Width = 40
		if f.masked {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs[i] = in
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	return formInputs{fields: fields, inputs: inputs}
}

func (f *formInputs) value(name string) string {
	for i, field := range f.fields {
		if field.name == name {
			return f.inputs[i].Value()
		}
	}
	return ""
}

func (f *formInputs) setValue(name, value string) {
	for i, field := range f.fields {
		if field.name == name {
			f.inputs[i].SetValue(value)
			return
		}
	}
}

func (f *formInputs) focused() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focus].name
}

func (f *formInputs) focusNext() {
	f.setFocus((f.focus + 1) % len(f.inputs))
}

func (f *formInputs) focusPrev() {
	f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *formInputs) setFocus(idx int) {
	f.inputs[f.focus].Blur()
	f.focus = idx
	f.inputs[f.focus].Focus()
}

func (f *formInputs) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *formInputs) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.setFocus(0)
}

func (f *formInputs) view(text *i18n.Localizer, fieldErrs map[string]string) string {
	rows := make([]string, 0, len(f.fields))
	for i, field := range f.fields {
		rows = append(rows, renderField(text.T(field.label), f.inputs[i].View(), fieldErrs[field.name]))
	}
	return strings.Join(rows, "\n")
}

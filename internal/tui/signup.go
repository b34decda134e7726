package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chetanneosoft/User-Authentication-App/internal/i18n"
	"github.com/chetanneosoft/User-Authentication-App/internal/service"
	"github.com/chetanneosoft/User-Authentication-App/internal/validators"
	"github.com/chetanneosoft/User-Authentication-App/models"
)

// SignupModel is the Bubble Tea model for the account creation screen.
type SignupModel struct {
	ctx       context.Context
	session   service.SessionController
	validator validators.Validator
	text      *i18n.Localizer

	form       formInputs
	submitting bool
	errMsg     string
	fieldErrs  map[string]string
}

func NewSignupModel(ctx context.Context, session service.SessionController, validator validators.Validator, text *i18n.Localizer) *SignupModel {
	return &SignupModel{
		ctx:       ctx,
		session:   session,
		validator: validator,
		text:      text,
		form: newFormInputs(
			formField{name: validators.FieldName, label: i18n.MsgFieldName, placeholder: "Jane Doe", charLimit: 128},
			formField{name: validators.FieldEmail, label: i18n.MsgFieldEmail, placeholder: "email@example.com", charLimit: 254},
			formField{name: validators.FieldPassword, label: i18n.MsgFieldPassword, placeholder: "••••••••", charLimit: 256, masked: true},
		),
	}
}

func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SignupResult:
		m.submitting = false
		switch {
		case msg.Err == nil:
			m.clear()
		case errors.Is(msg.Err, service.ErrDuplicateEmail):
			m.fieldErrs = map[string]string{validators.FieldEmail: humanizeError(m.text, msg.Err)}
		default:
			m.errMsg = humanizeError(m.text, msg.Err)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.toLogin):
			return m, navigate(RouteLogin)
		case key.Matches(msg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	return m, m.form.update(msg)
}

func (m *SignupModel) View() string {
	var b strings.Builder

	b.WriteString(m.form.view(m.text, m.fieldErrs))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.text.T(i18n.MsgSwitchToLogin)))

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage(m.text.T(i18n.MsgSignupTitle), b.String(), m.text.T(i18n.MsgSignupHint))
}

func (m *SignupModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	form := models.SignupForm{
		Name:     m.form.value(validators.FieldName),
		Email:    m.form.value(validators.FieldEmail),
		Password: m.form.value(validators.FieldPassword),
	}

	m.errMsg = ""
	m.fieldErrs = nil
	if err := m.validator.Validate(m.ctx, form); err != nil {
		m.fieldErrs = humanizeFieldErrors(m.text, err)
		return nil
	}

	m.submitting = true
	return m.cmdSignup(form)
}

func (m *SignupModel) cmdSignup(form models.SignupForm) tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		return SignupResult{Err: session.Signup(ctx, form.Name, form.Email, form.Password)}
	}
}

func (m *SignupModel) clear() {
	m.form.reset()
	m.errMsg = ""
	m.fieldErrs = nil
}

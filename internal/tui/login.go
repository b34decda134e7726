// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chetanneosoft/User-Authentication-App/internal/i18n"
	"github.com/chetanneosoft/User-Authentication-App/internal/service"
	"github.com/chetanneosoft/User-Authentication-App/internal/validators"
	"github.com/chetanneosoft/User-Authentication-App/models"
)

// LoginModel is the Bubble Tea model for the login screen. It renders an email
// and a masked password input and dispatches an async login command on submit.
// The outcome arrives as a [LoginResult]; a successful login also changes the
// session state, which makes [RootModel] switch to the home page.
type LoginModel struct {
	ctx       context.Context
	session   service.SessionController
	validator validators.Validator
	text      *i18n.Localizer

	form       formInputs
	submitting bool
	errMsg     string
	fieldErrs  map[string]string
}

// NewLoginModel creates a [LoginModel] with the email field focused.
func NewLoginModel(ctx context.Context, session service.SessionController, validator validators.Validator, text *i18n.Localizer) *LoginModel {
	return &LoginModel{
		ctx:       ctx,
		session:   session,
		validator: validator,
		text:      text,
		form: newFormInputs(
			formField{name: validators.FieldEmail, label: i18n.MsgFieldEmail, placeholder: "email@example.com", charLimit: 254},
			formField{name: validators.FieldPassword, label: i18n.MsgFieldPassword, placeholder: "••••••••", charLimit: 256, masked: true},
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult] clears the submitting flag; on error populates errMsg and
//     keeps the typed values, on success resets the form.
//   - ctrl+s navigates to the signup page.
//   - tab / shift+tab move focus between inputs.
//   - enter validates the form and submits it.
//
// All other messages are forwarded to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(m.text, msg.Err)
			return m, nil
		}
		m.clear()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.toSignup):
			return m, navigate(RouteSignup)
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

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	b.WriteString(m.form.view(m.text, m.fieldErrs))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.text.T(i18n.MsgSwitchToSignup)))

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage(m.text.T(i18n.MsgLoginTitle), b.String(), m.text.T(i18n.MsgLoginHint))
}

func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	form := models.LoginForm{
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
	return m.cmdLogin(form)
}

func (m *LoginModel) cmdLogin(form models.LoginForm) tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		return LoginResult{Err: session.Login(ctx, form.Email, form.Password)}
	}
}

func (m *LoginModel) clear() {
	m.form.reset()
	m.errMsg = ""
	m.fieldErrs = nil
}

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chetanneosoft/User-Authentication-App/internal/i18n"
	"github.com/chetanneosoft/User-Authentication-App/internal/service"
	"github.com/chetanneosoft/User-Authentication-App/models"
)

const statusTTL = 2 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// HomeModel shows the logged-in user and offers copy and logout actions.
type HomeModel struct {
	ctx     context.Context
	session service.SessionController
	text    *i18n.Localizer

	user       models.SessionUser
	loggingOut bool
	status     string
	statusErr  bool
}

func NewHomeModel(ctx context.Context, session service.SessionController, text *i18n.Localizer) *HomeModel {
	return &HomeModel{
		ctx:     ctx,
		session: session,
		text:    text,
	}
}

// SetUser replaces the displayed user and drops any stale status line.
func (m *HomeModel) SetUser(user models.SessionUser) {
	m.user = user
	m.status = ""
	m.statusErr = false
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LogoutResult:
		m.loggingOut = false
		return m, nil

	case copiedMsg:
		m.status = m.text.T(i18n.MsgCopied)
		m.statusErr = false
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.status = m.text.Tf(i18n.MsgCopyFailed, map[string]any{"Error": msg.err.Error()})
		m.statusErr = true
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(m.user.Email)
		case key.Matches(msg, keys.logout):
			if m.loggingOut {
				return m, nil
			}
			m.loggingOut = true
			return m, m.cmdLogout()
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.text.Tf(i18n.MsgHomeGreeting, map[string]any{"Name": valueOrNA(m.user.Name)})))
	b.WriteString("\n")
	b.WriteString(m.text.Tf(i18n.MsgHomeSignedInAs, map[string]any{"Email": valueOrNA(m.user.Email)}))

	if m.status != "" {
		b.WriteString("\n\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
	}

	return renderPage(m.text.T(i18n.MsgHomeTitle), b.String(), m.text.T(i18n.MsgHomeHint))
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		return LogoutResult{Err: session.Logout(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

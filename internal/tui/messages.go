package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/chetanneosoft/User-Authentication-App/internal/service"
)

// SessionStateMsg carries a controller state snapshot into the program.
type SessionStateMsg struct {
	State service.SessionState
}

// NavigateTo asks the root model to show another logged-out page.
type NavigateTo struct {
	Page Route
}

// LoginResult is produced when a login attempt finishes.
type LoginResult struct {
	Err error
}

// SignupResult is produced when a signup attempt finishes.
type SignupResult struct {
	Err error
}

// LogoutResult is produced when a logout finishes.
type LogoutResult struct {
	Err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}

func navigate(page Route) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

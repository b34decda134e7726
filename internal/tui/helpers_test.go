package tui

import (
	"context"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chetanneosoft/User-Authentication-App/internal/i18n"
	"github.com/chetanneosoft/User-Authentication-App/internal/service"
	"github.com/chetanneosoft/User-Authentication-App/internal/store"
	"github.com/chetanneosoft/User-Authentication-App/internal/validators"
	"github.com/chetanneosoft/User-Authentication-App/models"
	"github.com/stretchr/testify/require"
)

// fakeSession is a SessionController driven by the test.
type fakeSession struct {
	mu sync.Mutex

	state     service.SessionState
	initCalls int

	loginErr  error
	signupErr error
	logoutErr error

	logins  []models.LoginForm
	signups []models.SignupForm
	logouts int
}

func newFakeSession(state service.SessionState) *fakeSession {
	return &fakeSession{state: state}
}

func (f *fakeSession) Init(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.initCalls++
	f.state.IsLoading = false
	f.state.Ready = true
}

func (f *fakeSession) Login(_ context.Context, email, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins = append(f.logins, models.LoginForm{Email: email, Password: password})
	return f.loginErr
}

func (f *fakeSession) Signup(_ context.Context, name, email, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signups = append(f.signups, models.SignupForm{Name: name, Email: email, Password: password})
	return f.signupErr
}

func (f *fakeSession) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts++
	return f.logoutErr
}

func (f *fakeSession) State() service.SessionState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeSession) Subscribe(func(service.SessionState)) func() {
	return func() {}
}

func newTestLocalizer(t *testing.T) *i18n.Localizer {
	t.Helper()
	text, err := i18n.NewLocalizer("en")
	require.NoError(t, err)
	return text
}

func newTestRoot(t *testing.T, session *fakeSession) RootModel {
	t.Helper()
	return NewRootModel(context.Background(), session, validators.NewFormValidator(), newTestLocalizer(t), models.NewAppBuildInfo("1.0.0", "2026-10-18", "abc123"))
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

// resolved returns a root model that has processed Init and shows the page
// selected for the fake session's state.
func resolved(t *testing.T, session *fakeSession) RootModel {
	t.Helper()
	r := newTestRoot(t, session)
	session.Init(context.Background())
	r, _ = update(t, r, SessionStateMsg{State: session.State()})
	return r
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func storageErr() error {
	return fmt.Errorf("%w: disk full", store.ErrStorageIO)
}

package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/chetanneosoft/User-Authentication-App/internal/logger"
	"github.com/chetanneosoft/User-Authentication-App/internal/mock"
	"github.com/chetanneosoft/User-Authentication-App/internal/store"
	"github.com/chetanneosoft/User-Authentication-App/models"
)

type fixedIDs struct{}

func (fixedIDs) Generate() string { return "op-1" }

var errDisk = errors.New("storage i/o error: disk")

var john = models.User{Name: "John Doe", Email: "john@example.com", Password: "Password123!"}

// newTestSessionCtrl: helper that builds a sessionController on gomock mocks.
func newTestSessionCtrl(t *testing.T) (*sessionController, *mock.MockCredentialStore, *mock.MockSessionClearRetrier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	creds := mock.NewMockCredentialStore(ctrl)
	retrier := mock.NewMockSessionClearRetrier(ctrl)

	c := NewSessionController(creds, retrier, fixedIDs{}, logger.Nop()).(*sessionController)
	return c, creds, retrier
}

// newMemorySessionCtrl builds a controller over a real in-memory store.
func newMemorySessionCtrl(t *testing.T) (SessionController, store.CredentialStore) {
	t.Helper()
	creds := store.NewCredentialRepository(store.NewMemoryKeyValueStore(), logger.Nop())
	retrier := NewSessionClearRetrier(creds, nil, 0, logger.Nop())
	t.Cleanup(retrier.Stop)

	return NewSessionController(creds, retrier, fixedIDs{}, logger.Nop()), creds
}

// recorder collects every state a controller publishes.
type recorder struct {
	mu     sync.Mutex
	states []SessionState
}

func (r *recorder) record(s SessionState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder) all() []SessionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]SessionState(nil), r.states...)
}

// ── initial state / Init ─────────────────────────────────────────────────────

func TestSessionController_InitialState(t *testing.T) {
	c, _, _ := newTestSessionCtrl(t)

	s := c.State()
	assert.Nil(t, s.User)
	assert.True(t, s.IsLoading)
	assert.True(t, s.IsFirstTime)
	assert.Equal(t, PhaseInitializing, s.Phase())
}

func TestSessionController_Init(t *testing.T) {
	tests := []struct {
		name          string
		users         []models.User
		usersErr      error
		session       *models.SessionUser
		sessionErr    error
		skipSession   bool
		wantFirstTime bool
		wantUser      *models.SessionUser
	}{
		{
			name:          "no prior data",
			users:         []models.User{},
			wantFirstTime: true,
		},
		{
			name:          "registered user without session",
			users:         []models.User{john},
			wantFirstTime: false,
		},
		{
			name:          "registered user with session",
			users:         []models.User{john},
			session:       &models.SessionUser{Name: "John Doe", Email: "john@example.com"},
			wantFirstTime: false,
			wantUser:      &models.SessionUser{Name: "John Doe", Email: "john@example.com"},
		},
		{
			name:          "stale session without users is kept",
			users:         []models.User{},
			session:       &models.SessionUser{Name: "Ghost", Email: "ghost@x.io"},
			wantFirstTime: true,
			wantUser:      &models.SessionUser{Name: "Ghost", Email: "ghost@x.io"},
		},
		{
			name:          "users list unavailable",
			usersErr:      errDisk,
			skipSession:   true,
			wantFirstTime: true,
		},
		{
			name:          "session unavailable",
			users:         []models.User{john},
			sessionErr:    errDisk,
			wantFirstTime: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, creds, _ := newTestSessionCtrl(t)
			creds.EXPECT().LoadUsers(gomock.Any()).Return(tt.users, tt.usersErr)
			if !tt.skipSession {
				creds.EXPECT().LoadSession(gomock.Any()).Return(tt.session, tt.sessionErr)
			}

			c.Init(context.Background())

			s := c.State()
			assert.False(t, s.IsLoading)
			assert.True(t, s.Ready)
			assert.Equal(t, tt.wantFirstTime, s.IsFirstTime)
			assert.Equal(t, tt.wantUser, s.User)
		})
	}
}

func TestSessionController_Init_RunsOnce(t *testing.T) {
	c, creds, _ := newTestSessionCtrl(t)
	creds.EXPECT().LoadUsers(gomock.Any()).Return([]models.User{}, nil).Times(1)
	creds.EXPECT().LoadSession(gomock.Any()).Return(nil, nil).Times(1)

	c.Init(context.Background())
	c.Init(context.Background())
}

func TestSessionController_Init_PublishesSingleUpdate(t *testing.T) {
	c, creds, _ := newTestSessionCtrl(t)
	creds.EXPECT().LoadUsers(gomock.Any()).Return([]models.User{john}, nil)
	creds.EXPECT().LoadSession(gomock.Any()).Return(&models.SessionUser{Name: "John Doe", Email: "john@example.com"}, nil)

	rec := &recorder{}
	c.Subscribe(rec.record)
	c.Init(context.Background())

	states := rec.all()
	require.Len(t, states, 1)
	assert.Equal(t, PhaseLoggedIn, states[0].Phase())
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestSessionController_Login_Success(t *testing.T) {
	c, creds, retrier := newTestSessionCtrl(t)
	ctx := context.Background()

	gomock.InOrder(
		creds.EXPECT().LoadUsers(gomock.Any()).Return([]models.User{john}, nil),
		retrier.EXPECT().Cancel(),
		creds.EXPECT().SaveSession(gomock.Any(), models.SessionUser{Name: "John Doe", Email: "john@example.com"}).Return(nil),
	)

	err := c.Login(ctx, "JOHN@EXAMPLE.COM", "Password123!")

	require.NoError(t, err)
	s := c.State()
	assert.False(t, s.IsLoading)
	assert.Equal(t, &models.SessionUser{Name: "John Doe", Email: "john@example.com"}, s.User)
}

func TestSessionController_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "password case differs", email: "john@example.com", password: "password123!"},
		{name: "unknown email", email: "jane@example.com", password: "Password123!"},
		{name: "empty fields", email: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, creds, _ := newTestSessionCtrl(t)
			creds.EXPECT().LoadUsers(gomock.Any()).Return([]models.User{john}, nil)

			err := c.Login(context.Background(), tt.email, tt.password)

			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Equal(t, "Invalid email or password", err.Error())
			s := c.State()
			assert.False(t, s.IsLoading)
			assert.Nil(t, s.User)
		})
	}
}

func TestSessionController_Login_LoadError(t *testing.T) {
	c, creds, _ := newTestSessionCtrl(t)
	creds.EXPECT().LoadUsers(gomock.Any()).Return(nil, errDisk)

	err := c.Login(context.Background(), john.Email, john.Password)

	assert.ErrorIs(t, err, errDisk)
	assert.False(t, c.State().IsLoading)
}

func TestSessionController_Login_SaveSessionError(t *testing.T) {
	c, creds, retrier := newTestSessionCtrl(t)
	creds.EXPECT().LoadUsers(gomock.Any()).Return([]models.User{john}, nil)
	retrier.EXPECT().Cancel()
	creds.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errDisk)

	err := c.Login(context.Background(), john.Email, john.Password)

	assert.ErrorIs(t, err, errDisk)
	s := c.State()
	assert.False(t, s.IsLoading)
	assert.NotNil(t, s.User, "in-memory session is kept when persisting fails")
}

func TestSessionController_Login_PublishesLoading(t *testing.T) {
	c, creds, _ := newTestSessionCtrl(t)
	creds.EXPECT().LoadUsers(gomock.Any()).Return([]models.User{}, nil)

	rec := &recorder{}
	unsubscribe := c.Subscribe(rec.record)
	_ = c.Login(context.Background(), "a@x.io", "secret12")
	unsubscribe()
	_ = c.State()

	states := rec.all()
	require.Len(t, states, 2)
	assert.True(t, states[0].IsLoading)
	assert.False(t, states[1].IsLoading)
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestSessionController_Signup_Success(t *testing.T) {
	c, creds, retrier := newTestSessionCtrl(t)

	gomock.InOrder(
		creds.EXPECT().LoadUsers(gomock.Any()).Return([]models.User{john}, nil),
		creds.EXPECT().SaveUsers(gomock.Any(), []models.User{
			john,
			{Name: "Jane", Email: "jane@example.com", Password: "Secret!23"},
		}).Return(nil),
		retrier.EXPECT().Cancel(),
		creds.EXPECT().SaveSession(gomock.Any(), models.SessionUser{Name: "Jane", Email: "jane@example.com"}).Return(nil),
	)

	err := c.Signup(context.Background(), "Jane", "Jane@Example.com", "Secret!23")

	require.NoError(t, err)
	s := c.State()
	assert.False(t, s.IsLoading)
	assert.False(t, s.IsFirstTime)
	assert.Equal(t, &models.SessionUser{Name: "Jane", Email: "jane@example.com"}, s.User)
}

func TestSessionController_Signup_DuplicateEmail(t *testing.T) {
	c, creds, _ := newTestSessionCtrl(t)
	creds.EXPECT().LoadUsers(gomock.Any()).Return([]models.User{john}, nil)

	err := c.Signup(context.Background(), "B", "JOHN@example.COM", "pw2")

	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, "User with this email already exists", err.Error())
	assert.False(t, c.State().IsLoading)
	assert.Nil(t, c.State().User)
}

func TestSessionController_Signup_SaveUsersError(t *testing.T) {
	c, creds, _ := newTestSessionCtrl(t)
	creds.EXPECT().LoadUsers(gomock.Any()).Return([]models.User{}, nil)
	creds.EXPECT().SaveUsers(gomock.Any(), gomock.Any()).Return(errDisk)

	err := c.Signup(context.Background(), "A", "a@x.io", "secret12")

	assert.ErrorIs(t, err, errDisk)
	s := c.State()
	assert.False(t, s.IsLoading)
	assert.True(t, s.IsFirstTime)
	assert.Nil(t, s.User)
}

func TestSessionController_Signup_NoValidation(t *testing.T) {
	c, creds, retrier := newTestSessionCtrl(t)
	creds.EXPECT().LoadUsers(gomock.Any()).Return([]models.User{}, nil)
	creds.EXPECT().SaveUsers(gomock.Any(), []models.User{{Name: "", Email: "", Password: "x"}}).Return(nil)
	retrier.EXPECT().Cancel()
	creds.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, c.Signup(context.Background(), "", "", "x"))
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestSessionController_Logout_Success(t *testing.T) {
	c, creds, _ := newTestSessionCtrl(t)
	c.state = SessionState{User: &models.SessionUser{Name: "A"}, Ready: true}
	creds.EXPECT().ClearSession(gomock.Any()).Return(nil)

	rec := &recorder{}
	c.Subscribe(rec.record)

	require.NoError(t, c.Logout(context.Background()))

	s := c.State()
	assert.Nil(t, s.User)
	assert.False(t, s.IsLoading)
	assert.False(t, s.IsFirstTime, "logout never resets first time")

	states := rec.all()
	require.Len(t, states, 2)
	assert.True(t, states[0].IsLoading)
	assert.Nil(t, states[0].User, "user is cleared before the storage call")
}

func TestSessionController_Logout_ClearErrorSchedulesRetry(t *testing.T) {
	c, creds, retrier := newTestSessionCtrl(t)
	c.state = SessionState{User: &models.SessionUser{Name: "A"}, Ready: true}

	creds.EXPECT().ClearSession(gomock.Any()).Return(errDisk)
	retrier.EXPECT().Schedule(gomock.Any())

	err := c.Logout(context.Background())

	assert.ErrorIs(t, err, errDisk)
	s := c.State()
	assert.Nil(t, s.User)
	assert.False(t, s.IsLoading)
}

// ── Subscribe ────────────────────────────────────────────────────────────────

func TestSessionController_SnapshotsAreCopies(t *testing.T) {
	c, _, _ := newTestSessionCtrl(t)
	c.state = SessionState{User: &models.SessionUser{Name: "A"}, Ready: true}

	s := c.State()
	s.User.Name = "mutated"

	assert.Equal(t, "A", c.State().User.Name)
}

// ── scenarios over a real store ──────────────────────────────────────────────

func TestSessionController_SignupLogoutLoginRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, creds := newMemorySessionCtrl(t)
	c.Init(ctx)
	require.True(t, c.State().IsFirstTime)

	require.NoError(t, c.Signup(ctx, "N", "MiXeD@Case.io", "Pa55word"))
	assert.False(t, c.State().IsFirstTime)

	require.NoError(t, c.Logout(ctx))
	assert.Nil(t, c.State().User)
	session, err := creds.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	require.NoError(t, c.Login(ctx, "mixed@case.io", "Pa55word"))
	assert.Equal(t, &models.SessionUser{Name: "N", Email: "mixed@case.io"}, c.State().User)
	assert.Equal(t, PhaseLoggedIn, c.State().Phase())

	session, err = creds.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.SessionUser{Name: "N", Email: "mixed@case.io"}, session)
}

func TestSessionController_DuplicateSignupKeepsSingleRecord(t *testing.T) {
	ctx := context.Background()
	c, creds := newMemorySessionCtrl(t)
	c.Init(ctx)

	require.NoError(t, c.Signup(ctx, "A", "dup@x.com", "pw"))
	require.NoError(t, c.Logout(ctx))
	err := c.Signup(ctx, "B", "DUP@X.com", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	users, err := creds.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	require.NoError(t, c.Signup(ctx, "C", "other@x.com", "pw3"))
	assert.False(t, c.State().IsFirstTime)
}

func TestSessionController_RestoresSessionAfterRestart(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKeyValueStore()
	creds := store.NewCredentialRepository(kv, logger.Nop())
	retrier := NewSessionClearRetrier(creds, nil, 0, logger.Nop())
	defer retrier.Stop()

	first := NewSessionController(creds, retrier, fixedIDs{}, logger.Nop())
	first.Init(ctx)
	require.NoError(t, first.Signup(ctx, "A", "a@x.io", "secret12"))

	second := NewSessionController(creds, retrier, fixedIDs{}, logger.Nop())
	second.Init(ctx)

	s := second.State()
	assert.Equal(t, &models.SessionUser{Name: "A", Email: "a@x.io"}, s.User)
	assert.False(t, s.IsFirstTime)
	assert.Equal(t, PhaseLoggedIn, s.Phase())
}

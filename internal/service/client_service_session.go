package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/chetanneosoft/User-Authentication-App/internal/logger"
	"github.com/chetanneosoft/User-Authentication-App/internal/store"
	"github.com/chetanneosoft/User-Authentication-App/internal/utils"
	"github.com/chetanneosoft/User-Authentication-App/models"
)

// sessionController is the [SessionController] implementation backed by a
// [store.CredentialStore].
type sessionController struct {
	credentials store.CredentialStore
	retrier     SessionClearRetrier
	ids         utils.IDGenerator
	logger      *logger.Logger

	initOnce sync.Once

	mu        sync.Mutex
	state     SessionState
	listeners map[int]func(SessionState)
	nextID    int
}

// NewSessionController constructs a [SessionController] in the initial
// {no user, loading, first time} state. Init must be called to load the
// persisted data.
func NewSessionController(credentials store.CredentialStore, retrier SessionClearRetrier, ids utils.IDGenerator, logger *logger.Logger) SessionController {
	return &sessionController{
		credentials: credentials,
		retrier:     retrier,
		ids:         ids,
		logger:      logger,
		state:       initialState(),
		listeners:   make(map[int]func(SessionState)),
	}
}

func (c *sessionController) Init(ctx context.Context) {
	c.initOnce.Do(func() {
		ctx, log := c.operation(ctx, "init")

		next := c.State()
		next.IsLoading = false
		next.Ready = true

		users, err := c.credentials.LoadUsers(ctx)
		if err != nil {
			log.Err(err).Str("func", "*sessionController.Init").Msg("users list unavailable, starting as first time")
			c.setState(func(s *SessionState) { *s = next })
			return
		}
		next.IsFirstTime = len(users) == 0

		session, err := c.credentials.LoadSession(ctx)
		if err != nil {
			log.Err(err).Str("func", "*sessionController.Init").Msg("session unavailable, starting logged out")
		} else if session != nil {
			next.User = session
		}

		// one update so observers land on the final screen directly
		c.setState(func(s *SessionState) { *s = next })
		log.Info().
			Bool("first_time", next.IsFirstTime).
			Bool("logged_in", next.User != nil).
			Msg("session initialised")
	})
}

func (c *sessionController) Login(ctx context.Context, email, password string) error {
	ctx, log := c.operation(ctx, "login")

	c.setState(func(s *SessionState) { s.IsLoading = true })
	defer c.setState(func(s *SessionState) { s.IsLoading = false })

	users, err := c.credentials.LoadUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*sessionController.Login").Msg("error loading users")
		return fmt.Errorf("login: %w", err)
	}

	wanted := strings.ToLower(email)
	var match *models.User
	for i := range users {
		if strings.ToLower(users[i].Email) == wanted && users[i].Password == password {
			match = &users[i]
			break
		}
	}

	if match == nil {
		log.Info().Msg("invalid credentials")
		return ErrInvalidCredentials
	}

	session := match.Session()
	if err = c.openSession(ctx, session); err != nil {
		log.Err(err).Str("func", "*sessionController.Login").Msg("error saving session")
		return fmt.Errorf("login: %w", err)
	}

	log.Info().Msg("logged in")
	return nil
}

func (c *sessionController) Signup(ctx context.Context, name, email, password string) error {
	ctx, log := c.operation(ctx, "signup")

	c.setState(func(s *SessionState) { s.IsLoading = true })
	defer c.setState(func(s *SessionState) { s.IsLoading = false })

	// read-modify-write of the users list is not atomic; the UI serialises
	// operations on a single device
	users, err := c.credentials.LoadUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*sessionController.Signup").Msg("error loading users")
		return fmt.Errorf("signup: %w", err)
	}

	lowered := strings.ToLower(email)
	for _, u := range users {
		if strings.ToLower(u.Email) == lowered {
			log.Info().Msg("email already registered")
			return ErrDuplicateEmail
		}
	}

	record := models.User{Name: name, Email: lowered, Password: password}
	if err = c.credentials.SaveUsers(ctx, append(users, record)); err != nil {
		log.Err(err).Str("func", "*sessionController.Signup").Msg("error saving users")
		return fmt.Errorf("signup: %w", err)
	}

	c.setState(func(s *SessionState) { s.IsFirstTime = false })

	if err = c.openSession(ctx, record.Session()); err != nil {
		log.Err(err).Str("func", "*sessionController.Signup").Msg("error saving session")
		return fmt.Errorf("signup: %w", err)
	}

	log.Info().Msg("signed up")
	return nil
}

func (c *sessionController) Logout(ctx context.Context) error {
	ctx, log := c.operation(ctx, "logout")

	c.setState(func(s *SessionState) {
		s.IsLoading = true
		s.User = nil
	})
	defer c.setState(func(s *SessionState) { s.IsLoading = false })

	if err := c.credentials.ClearSession(ctx); err != nil {
		log.Err(err).Str("func", "*sessionController.Logout").Msg("error removing session, scheduling retry")
		c.retrier.Schedule(ctx)
		return fmt.Errorf("logout: %w", err)
	}

	log.Info().Msg("logged out")
	return nil
}

func (c *sessionController) State() SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.clone()
}

func (c *sessionController) Subscribe(fn func(SessionState)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// openSession sets user in memory and persists it. A pending session clear
// is cancelled first so it cannot remove the new session. The in-memory user
// is kept even if persisting fails.
func (c *sessionController) openSession(ctx context.Context, user models.SessionUser) error {
	c.retrier.Cancel()

	c.setState(func(s *SessionState) {
		u := user
		s.User = &u
	})

	return c.credentials.SaveSession(ctx, user)
}

// setState applies mutate under the lock and notifies listeners outside it.
func (c *sessionController) setState(mutate func(s *SessionState)) {
	c.mu.Lock()
	mutate(&c.state)
	snapshot := c.state
	listeners := make([]func(SessionState), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot.clone())
	}
}

// operation returns a child logger tagged with the operation name and a
// fresh id, and a context carrying it for the storage layer.
func (c *sessionController) operation(ctx context.Context, name string) (context.Context, *logger.Logger) {
	id := c.ids.Generate()
	log := &logger.Logger{Logger: c.logger.With().
		Str("operation", name).
		Str("operation_id", id).
		Logger()}

	return log.WithContext(utils.WithOperationID(ctx, id)), log
}

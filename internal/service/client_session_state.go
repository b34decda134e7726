package service

import "github.com/chetanneosoft/User-Authentication-App/models"

// Phase is a coarse view of [SessionState] for observers that do not care
// about the individual flags.
type Phase int

const (
	// PhaseInitializing means Init has not finished yet.
	PhaseInitializing Phase = iota
	// PhaseLoggedOutFirstTime means nobody is logged in and no account exists.
	PhaseLoggedOutFirstTime
	// PhaseLoggedOutReturning means nobody is logged in but accounts exist.
	PhaseLoggedOutReturning
	// PhaseLoggedIn means a user is logged in.
	PhaseLoggedIn
	// PhaseBusy means an operation is in flight after initialisation.
	PhaseBusy
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseLoggedOutFirstTime:
		return "logged_out_first_time"
	case PhaseLoggedOutReturning:
		return "logged_out_returning"
	case PhaseLoggedIn:
		return "logged_in"
	case PhaseBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// SessionState is a snapshot of the controller state.
type SessionState struct {
	// User is the logged in user or nil.
	User *models.SessionUser
	// IsLoading is true while Init or an operation is running.
	IsLoading bool
	// IsFirstTime is true until the first account is known to exist.
	IsFirstTime bool
	// Ready is set once Init has completed.
	Ready bool
}

// initialState is the state before Init.
func initialState() SessionState {
	return SessionState{IsLoading: true, IsFirstTime: true}
}

// Phase derives the coarse phase of the state.
func (s SessionState) Phase() Phase {
	switch {
	case !s.Ready:
		return PhaseInitializing
	case s.IsLoading:
		return PhaseBusy
	case s.User != nil:
		return PhaseLoggedIn
	case s.IsFirstTime:
		return PhaseLoggedOutFirstTime
	default:
		return PhaseLoggedOutReturning
	}
}

// clone copies the state so that observers cannot mutate the user behind the
// controller's back.
func (s SessionState) clone() SessionState {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

package service

import (
	"context"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock . SessionClearRetrier

// SessionController owns the authentication state of the client: who is
// logged in, whether an operation is in flight and whether any account has
// been registered on this device yet.
//
// Operations are expected to be called serially by the UI.
type SessionController interface {
	// Init reads the users list and the persisted session. It runs its work
	// once; later calls return immediately. Storage failures are logged and
	// swallowed so that a broken store presents as "first time, logged out".
	Init(ctx context.Context)

	// Login opens a session for the account whose email matches
	// case-insensitively and whose password matches exactly.
	// Returns ErrInvalidCredentials when no such account exists.
	Login(ctx context.Context, email, password string) error

	// Signup registers a new account and logs it in.
	// Returns ErrDuplicateEmail when the email is already registered.
	Signup(ctx context.Context, name, email, password string) error

	// Logout clears the in-memory user and removes the persisted session.
	// The user stays logged out even if the removal fails.
	Logout(ctx context.Context) error

	// State returns a snapshot of the current state.
	State() SessionState

	// Subscribe registers fn to receive a snapshot after every state change
	// and returns a function that unregisters it.
	Subscribe(fn func(SessionState)) (unsubscribe func())
}

// SessionClearRetrier retries removal of the persisted session in the
// background after a failed logout.
type SessionClearRetrier interface {
	// Schedule starts retrying. A pending retry is replaced.
	Schedule(ctx context.Context)

	// Cancel drops a pending retry and waits for it to exit. It must be
	// called before a new session is written.
	Cancel()

	// Pending reports whether a retry is still scheduled.
	Pending() bool

	// Stop cancels any pending retry and disables further scheduling.
	Stop()
}

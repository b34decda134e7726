package store

import (
	"context"

	"github.com/chetanneosoft/User-Authentication-App/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Keys of the persisted records.
const (
	// SessionKey holds the logged in user as {"name","email"}.
	SessionKey = "@user_data"
	// UsersListKey holds every registered account as a JSON array.
	UsersListKey = "@users_list"
)

// CredentialStore reads and writes the registered users list and the current
// session on top of a [KeyValueStore].
//
// Absent or malformed records are reported as empty values rather than
// errors; only I/O failures of the underlying store are returned.
type CredentialStore interface {
	LoadUsers(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, users []models.User) error
	LoadSession(ctx context.Context) (*models.SessionUser, error)
	SaveSession(ctx context.Context, user models.SessionUser) error
	ClearSession(ctx context.Context) error
}

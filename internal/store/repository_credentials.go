package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chetanneosoft/User-Authentication-App/internal/logger"
	"github.com/chetanneosoft/User-Authentication-App/models"
)

// credentialRepository is the [CredentialStore] implementation. It owns the
// JSON layout of the @users_list and @user_data records.
type credentialRepository struct {
	kv     KeyValueStore
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialStore] on top of kv.
func NewCredentialRepository(kv KeyValueStore, logger *logger.Logger) CredentialStore {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		kv:     kv,
		logger: logger,
	}
}

// LoadUsers returns every registered account. An absent or unparsable list
// yields an empty, non-nil slice.
func (r *credentialRepository) LoadUsers(ctx context.Context) ([]models.User, error) {
	raw, found, err := r.kv.Get(ctx, UsersListKey)
	if err != nil {
		return nil, fmt.Errorf("error loading users list: %w", err)
	}

	users := make([]models.User, 0)
	if !found {
		return users, nil
	}

	if err = json.Unmarshal([]byte(raw), &users); err != nil || users == nil {
		// "null" decodes into a nil slice without error
		r.logger.Warn().Err(err).Str("func", "*credentialRepository.LoadUsers").Msg("users list is malformed, treating as empty")
		return make([]models.User, 0), nil
	}

	return users, nil
}

// SaveUsers replaces the persisted users list.
func (r *credentialRepository) SaveUsers(ctx context.Context, users []models.User) error {
	if users == nil {
		users = make([]models.User, 0)
	}

	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("error encoding users list: %w", err)
	}

	if err = r.kv.Set(ctx, UsersListKey, string(data)); err != nil {
		return fmt.Errorf("error saving users list: %w", err)
	}

	return nil
}

// LoadSession returns the persisted session or nil when there is none or it
// cannot be parsed. An empty JSON object still counts as a session.
func (r *credentialRepository) LoadSession(ctx context.Context) (*models.SessionUser, error) {
	raw, found, err := r.kv.Get(ctx, SessionKey)
	if err != nil {
		return nil, fmt.Errorf("error loading session: %w", err)
	}

	if !found {
		return nil, nil
	}

	var session *models.SessionUser
	if err = json.Unmarshal([]byte(raw), &session); err != nil || session == nil {
		r.logger.Warn().Err(err).Str("func", "*credentialRepository.LoadSession").Msg("session is malformed, treating as absent")
		return nil, nil
	}

	return session, nil
}

// SaveSession persists user as the current session.
func (r *credentialRepository) SaveSession(ctx context.Context, user models.SessionUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err = r.kv.Set(ctx, SessionKey, string(data)); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

// ClearSession removes the persisted session.
func (r *credentialRepository) ClearSession(ctx context.Context) error {
	if err := r.kv.Remove(ctx, SessionKey); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}

	return nil
}

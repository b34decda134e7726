package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chetanneosoft/User-Authentication-App/internal/logger"
)

// sqlKeyValueStore keeps every key as one row of the kv_items table.
type sqlKeyValueStore struct {
	db *DB
}

// NewSQLKeyValueStore constructs a [KeyValueStore] on top of a migrated
// database.
func NewSQLKeyValueStore(db *DB) KeyValueStore {
	db.logger.Debug().Msg("creating sql key-value store")
	return &sqlKeyValueStore{db: db}
}

func (s *sqlKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectKVQuery(s.db.builder(), key)
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Get").Msg("error building query")
		return "", false, ioError(fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		log.Err(err).Str("func", "*sqlKeyValueStore.Get").Str("key", key).Msg("error reading key")
		return "", false, ioError(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return value, true, nil
}

func (s *sqlKeyValueStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := upsertKVQuery(s.db.builder(), key, value)
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Set").Msg("error building query")
		return ioError(fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Set").Str("key", key).Msg("error writing key")
		return ioError(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return nil
}

func (s *sqlKeyValueStore) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteKVQuery(s.db.builder(), key)
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Remove").Msg("error building query")
		return ioError(fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	// zero affected rows means the key was absent, which is fine
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Remove").Str("key", key).Msg("error removing key")
		return ioError(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	return nil
}

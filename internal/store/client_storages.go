package store

import (
	"context"
	"fmt"

	"github.com/chetanneosoft/User-Authentication-App/internal/config"
	"github.com/chetanneosoft/User-Authentication-App/internal/logger"
)

// ClientStorages groups the client-side storage layer into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// KeyValue is the raw key-value store selected by configuration.
	KeyValue KeyValueStore

	// Credentials reads and writes the users list and the session.
	Credentials CredentialStore

	// Classifier tells transient storage failures from permanent ones.
	Classifier ErrorClassificator

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger:
//   - "sqlite" opens (and creates) the database file at cfg.DB.DSN;
//   - "postgres" connects with cfg.DB.DSN;
//   - "file" keeps the store in the JSON file at cfg.Files.Path;
//   - "memory" keeps nothing across restarts.
//
// SQL backends are migrated before use.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	var (
		kv         KeyValueStore
		db         *DB
		classifier ErrorClassificator = NonRetryableClassifier{}
		err        error
	)

	switch cfg.Backend {
	case config.StorageBackendSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
	case config.StorageBackendPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
	case config.StorageBackendFile:
		kv = NewFileKeyValueStore(cfg.Files.Path)
	case config.StorageBackendMemory:
		kv = NewMemoryKeyValueStore()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}

	if db != nil {
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		kv = NewSQLKeyValueStore(db)
		classifier = db.Classifier()
	}

	return &ClientStorages{
		KeyValue:    kv,
		Credentials: NewCredentialRepository(kv, logger),
		Classifier:  classifier,
		db:          db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

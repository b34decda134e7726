package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStorageIO is wrapped around every read, write or delete failure of
	// the underlying key-value store. Missing keys and malformed values are
	// never reported with it.
	ErrStorageIO = errors.New("storage i/o error")

	// ErrUnsupportedBackend is returned by [NewClientStorages] for a backend
	// name it does not know.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
)

// Low-level database operation errors. They are wrapped together with
// [ErrStorageIO] by the SQL key-value store.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)

// ioError marks err as a storage I/O failure while keeping it matchable.
func ioError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStorageIO) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorageIO, err)
}

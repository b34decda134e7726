package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chetanneosoft/User-Authentication-App/internal/logger"
)

// fileKeyValueStore persists the whole store as a single JSON object. The
// file is re-read on every call so edits made by another process are seen.
type fileKeyValueStore struct {
	path string
	mu   sync.Mutex
}

// NewFileKeyValueStore constructs a [KeyValueStore] backed by the JSON file
// at path. The file is created lazily on the first write.
func NewFileKeyValueStore(path string) KeyValueStore {
	return &fileKeyValueStore{path: path}
}

func (s *fileKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		return "", false, err
	}

	value, ok := items[key]
	return value, ok, nil
}

func (s *fileKeyValueStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		return err
	}

	items[key] = value
	return s.save(ctx, items)
}

func (s *fileKeyValueStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		return err
	}

	if _, ok := items[key]; !ok {
		return nil
	}

	delete(items, key)
	return s.save(ctx, items)
}

func (s *fileKeyValueStore) load(ctx context.Context) (map[string]string, error) {
	items := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return items, nil
		}
		logger.FromContext(ctx).Err(err).Str("func", "*fileKeyValueStore.load").Msg("error reading store file")
		return nil, ioError(fmt.Errorf("read local storage file: %w", err))
	}

	if len(data) == 0 {
		return items, nil
	}

	// a corrupted file is reset rather than locking the user out
	if err = json.Unmarshal(data, &items); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*fileKeyValueStore.load").Msg("store file is corrupted, starting empty")
		return make(map[string]string), nil
	}

	return items, nil
}

func (s *fileKeyValueStore) save(ctx context.Context, items map[string]string) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return ioError(fmt.Errorf("encode local storage file: %w", err))
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*fileKeyValueStore.save").Msg("error creating store dir")
			return ioError(fmt.Errorf("create local storage dir: %w", err))
		}
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileKeyValueStore.save").Msg("error writing store file")
		return ioError(fmt.Errorf("write local storage file: %w", err))
	}

	if err = os.Rename(tmp, s.path); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileKeyValueStore.save").Msg("error replacing store file")
		return ioError(fmt.Errorf("replace local storage file: %w", err))
	}

	return nil
}

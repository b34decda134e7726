package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Language is the UI language tag.
	Language string
}

// ClientDB contains SQL database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path or PostgreSQL connection string.
	DSN string
}

// ClientFiles contains settings of the JSON file backend.
type ClientFiles struct {
	// Path is the store file.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Backend selects the key-value store implementation.
	Backend string
	// DB holds SQL database settings.
	DB ClientDB
	// Files holds JSON file settings.
	Files ClientFiles
}

// ClientLog contains log output settings.
type ClientLog struct {
	// Path is the log file.
	Path string
	// Level is the minimal level that is written.
	Level string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// SessionClearRetryInterval defines how often a failed session removal
	// is retried.
	SessionClearRetryInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Log     ClientLog
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Language: cfg.App.Language,
		},
		Storage: ClientStorage{
			Backend: cfg.Storage.Backend,
			DB:      ClientDB{DSN: cfg.Storage.DB.DSN},
			Files:   ClientFiles{Path: cfg.Storage.Files.Path},
		},
		Log: ClientLog{
			Path:  cfg.Log.Path,
			Level: cfg.Log.Level,
		},
		Workers: ClientWorkers{
			SessionClearRetryInterval: cfg.Workers.SessionClearRetryInterval,
		},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig]. Per-field rules live in
// [ClientConfig.validate]; only the backend name is checked here so that an
// unknown backend fails before the client view is built.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case "", StorageBackendSQLite, StorageBackendPostgres, StorageBackendFile, StorageBackendMemory:
		return nil
	default:
		return ErrInvalidStorageConfigs
	}
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Backend {
	case StorageBackendSQLite:
		if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
			return ErrInvalidStorageConfigs
		}
	case StorageBackendPostgres:
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case StorageBackendFile:
		if cfg.Storage.Files.Path == "" {
			return ErrInvalidStorageConfigs
		}
	case StorageBackendMemory:
	default:
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.App.Language) == "" {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil || cfg.Log.Level == "" {
		return ErrInvalidLogConfigs
	}

	if cfg.Workers.SessionClearRetryInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

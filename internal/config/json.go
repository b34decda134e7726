package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// StructuredFileConfig is the on-disk shape of a config file. The same
// struct is decoded from JSON and TOML.
type StructuredFileConfig struct {
	App struct {
		Language string `json:"language" toml:"language"`
	} `json:"app,omitempty" toml:"app"`

	Storage struct {
		Backend string `json:"backend" toml:"backend"`

		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db,omitempty" toml:"db"`

		Files struct {
			Path string `json:"path" toml:"path"`
		} `json:"files,omitempty" toml:"files"`
	} `json:"storage,omitempty" toml:"storage"`

	Log struct {
		Path  string `json:"path" toml:"path"`
		Level string `json:"level" toml:"level"`
	} `json:"log,omitempty" toml:"log"`

	Workers struct {
		SessionClearRetryInterval Duration `json:"session_clear_retry_interval" toml:"session_clear_retry_interval"`
	} `json:"workers,omitempty" toml:"workers"`
}

// parseFile decodes the config file at path, choosing the format by
// extension.
func parseFile(path string) (*StructuredConfig, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSON(path)
	case ".toml":
		return parseTOML(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredFileConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return jsonCfg.toStructured(), nil
}

func (c StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{Language: c.App.Language},
		Storage: Storage{
			Backend: c.Storage.Backend,
			DB:      DB{DSN: c.Storage.DB.DSN},
			Files:   Files{Path: c.Storage.Files.Path},
		},
		Log: Log{
			Path:  c.Log.Path,
			Level: c.Log.Level,
		},
		Workers: Workers{
			SessionClearRetryInterval: time.Duration(c.Workers.SessionClearRetryInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h", "30s" in both JSON and TOML. Plain JSON numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

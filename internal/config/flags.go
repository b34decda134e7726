package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client flags from args.
//
// Flags:
//
//	-storage storage backend (sqlite, postgres, file, memory)
//	-d database DSN
//	-f JSON store file path
//	-lang UI language
//	-log log file path
//	-log-level log level
//	-retry-interval session clear retry interval (e.g., "30s")
//	-c/-config JSON or TOML file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		backend       string
		databaseDSN   string
		filePath      string
		language      string
		logPath       string
		logLevel      string
		retryInterval time.Duration
		configPath    string
	)

	fs.StringVar(&backend, "storage", "", "Storage backend: sqlite, postgres, file, memory")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&filePath, "f", "", "JSON store file path")
	fs.StringVar(&language, "lang", "", "UI language")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&retryInterval, "retry-interval", 0, "Session clear retry interval (e.g., 30s)")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{Language: language},
		Storage: Storage{
			Backend: backend,
			DB:      DB{DSN: databaseDSN},
			Files:   Files{Path: filePath},
		},
		Log: Log{
			Path:  logPath,
			Level: logLevel,
		},
		Workers:        Workers{SessionClearRetryInterval: retryInterval},
		ConfigFilePath: configPath,
	}, nil
}

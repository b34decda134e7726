package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/chetanneosoft/User-Authentication-App/internal/logger"
)

// Goose dialect names of the supported SQL backends.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all embedded migrations to db using the given goose dialect.
// Goose output goes to log; with a nil log it is discarded. The terminal is
// owned by the UI, so goose must never print to stdout.
func Migrate(db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetLogger(newGooseLogger(log))
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose messages into the zerolog logger.
type gooseLogger struct {
	log *logger.Logger
}

func newGooseLogger(log *logger.Logger) goose.Logger {
	if log == nil {
		return goose.NopLogger()
	}
	return &gooseLogger{log: log}
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level instead of exiting; goose reports the failure
// through the returned error as well.
func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

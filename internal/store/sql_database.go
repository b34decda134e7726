package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/chetanneosoft/User-Authentication-App/internal/logger"
	"github.com/chetanneosoft/User-Authentication-App/migrations"
)

// DB wraps a database handle together with the dialect-specific pieces the
// SQL key-value store needs.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	db.logger.Debug().Str("func", "*DB.Migrate").Str("dialect", db.dialect).Msg("applying migrations")
	return migrations.Migrate(db.DB, db.dialect, db.logger)
}

// Classifier returns the error classifier of the database driver.
func (db *DB) Classifier() ErrorClassificator {
	if db.errorClassificator == nil {
		return NonRetryableClassifier{}
	}
	return db.errorClassificator
}

func (db *DB) builder() sq.StatementBuilderType {
	placeholder := db.placeholder
	if placeholder == nil {
		placeholder = sq.Question
	}
	return sq.StatementBuilder.PlaceholderFormat(placeholder)
}

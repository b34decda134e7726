package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_items"
	kvKeyColumn   = "storage_key"
	kvValueColumn = "storage_value"
	kvUpdatedAt   = "updated_at"
)

const upsertKVSuffix = "ON CONFLICT (" + kvKeyColumn + ") DO UPDATE SET " +
	kvValueColumn + " = excluded." + kvValueColumn + ", " +
	kvUpdatedAt + " = excluded." + kvUpdatedAt

func selectKVQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

func upsertKVQuery(b sq.StatementBuilderType, key, value string) (string, []any, error) {
	return b.Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAt).
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix(upsertKVSuffix).
		ToSql()
}

func deleteKVQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

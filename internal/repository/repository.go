package repository

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sqlx.DB the repositories use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	PingContext(ctx context.Context) error
}

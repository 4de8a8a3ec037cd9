// Package database скрывает разницу между pgxpool (PostgreSQL) и database/sql (SQL Server)
// за одним небольшим интерфейсом. Репозитории работают только с ним.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	mssql "github.com/microsoft/go-mssqldb"

	"inspections-console/pkg/config"
)

type Dialect string

const (
	Postgres  Dialect = config.DialectPostgres
	SQLServer Dialect = config.DialectSQLServer
)

// Placeholder возвращает формат плейсхолдеров squirrel для диалекта.
func (d Dialect) Placeholder() sq.PlaceholderFormat {
	if d == SQLServer {
		return sq.AtP
	}
	return sq.Dollar
}

// Row совместим с pgx.Row и *sql.Row.
type Row interface {
	Scan(dest ...any) error
}

// Rows совместим с pgx.Rows; для *sql.Rows есть обёртка.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

type Querier interface {
	QueryRow(ctx context.Context, query string, args ...any) Row
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	// Exec возвращает число затронутых строк.
	Exec(ctx context.Context, query string, args ...any) (int64, error)
}

type Tx interface {
	Querier
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type DB interface {
	Querier
	Begin(ctx context.Context) (Tx, error)
	Dialect() Dialect
	Close()
}

// Connect открывает единственное соединение с базой, выбранной в конфигурации.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (DB, error) {
	switch Dialect(cfg.Dialect) {
	case Postgres:
		return ConnectPostgres(ctx, cfg.DSN)
	case SQLServer:
		return ConnectSQLServer(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("неподдерживаемая СУБД: %s", cfg.Dialect)
	}
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// IsForeignKeyViolation распознаёт нарушение внешнего ключа в обеих СУБД.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	var msErr mssql.Error
	if errors.As(err, &msErr) {
		return msErr.Number == 547
	}
	return false
}

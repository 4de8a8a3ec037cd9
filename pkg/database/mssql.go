package database

import (
	"context"
	"database/sql"
	"fmt"
)

// rowsCore — то, что адаптер использует от *sql.Rows.
type rowsCore interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// sqlCore — общее подмножество *sql.DB и *sql.Tx.
type sqlCore interface {
	QueryRowContext(ctx context.Context, query string, args ...any) Row
	QueryContext(ctx context.Context, query string, args ...any) (rowsCore, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type sqlTxCore interface {
	sqlCore
	Commit() error
	Rollback() error
}

type sqlDBCore interface {
	sqlCore
	BeginTx(ctx context.Context) (sqlTxCore, error)
	PingContext(ctx context.Context) error
	Close() error
}

// stdDB и stdTx приводят *sql.DB и *sql.Tx к швам адаптера.
type stdDB struct{ db *sql.DB }

func (s stdDB) QueryRowContext(ctx context.Context, query string, args ...any) Row {
	return s.db.QueryRowContext(ctx, query, args...)
}

func (s stdDB) QueryContext(ctx context.Context, query string, args ...any) (rowsCore, error) {
	return s.db.QueryContext(ctx, query, args...)
}

func (s stdDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, query, args...)
}

func (s stdDB) BeginTx(ctx context.Context) (sqlTxCore, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return stdTx{tx: tx}, nil
}

func (s stdDB) PingContext(ctx context.Context) error { return s.db.PingContext(ctx) }
func (s stdDB) Close() error                          { return s.db.Close() }

type stdTx struct{ tx *sql.Tx }

func (s stdTx) QueryRowContext(ctx context.Context, query string, args ...any) Row {
	return s.tx.QueryRowContext(ctx, query, args...)
}

func (s stdTx) QueryContext(ctx context.Context, query string, args ...any) (rowsCore, error) {
	return s.tx.QueryContext(ctx, query, args...)
}

func (s stdTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.tx.ExecContext(ctx, query, args...)
}

func (s stdTx) Commit() error   { return s.tx.Commit() }
func (s stdTx) Rollback() error { return s.tx.Rollback() }

type sqlDB struct {
	core    sqlDBCore
	dialect Dialect
}

// ConnectSQLServer открывает соединение с SQL Server через database/sql.
// Драйвер "sqlserver" регистрируется импортом go-mssqldb в database.go.
func ConnectSQLServer(ctx context.Context, dsn string) (DB, error) {
	db, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, fmt.Errorf("неверная строка подключения к SQL Server: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return openSQL(ctx, stdDB{db: db}, SQLServer)
}

// openSQL проверяет соединение и оборачивает его; при ошибке соединение закрывается.
func openSQL(ctx context.Context, core sqlDBCore, dialect Dialect) (DB, error) {
	if err := core.PingContext(ctx); err != nil {
		_ = core.Close()
		return nil, fmt.Errorf("не удалось пинговать БД: %w", err)
	}
	return &sqlDB{core: core, dialect: dialect}, nil
}

func (s *sqlDB) QueryRow(ctx context.Context, query string, args ...any) Row {
	return s.core.QueryRowContext(ctx, query, args...)
}

func (s *sqlDB) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return sqlQuery(ctx, s.core, query, args...)
}

func (s *sqlDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return sqlExec(ctx, s.core, query, args...)
}

func (s *sqlDB) Begin(ctx context.Context) (Tx, error) {
	tx, err := s.core.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	return &sqlTx{core: tx}, nil
}

func (s *sqlDB) Dialect() Dialect { return s.dialect }

func (s *sqlDB) Close() { _ = s.core.Close() }

type sqlTx struct{ core sqlTxCore }

func (t *sqlTx) QueryRow(ctx context.Context, query string, args ...any) Row {
	return t.core.QueryRowContext(ctx, query, args...)
}

func (t *sqlTx) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return sqlQuery(ctx, t.core, query, args...)
}

func (t *sqlTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return sqlExec(ctx, t.core, query, args...)
}

func (t *sqlTx) Commit(context.Context) error   { return t.core.Commit() }
func (t *sqlTx) Rollback(context.Context) error { return t.core.Rollback() }

func sqlQuery(ctx context.Context, core sqlCore, q string, args ...any) (Rows, error) {
	rows, err := core.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return &sqlRows{rows: rows}, nil
}

func sqlExec(ctx context.Context, core sqlCore, q string, args ...any) (int64, error) {
	res, err := core.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// sqlRows приводит *sql.Rows к интерфейсу Rows (Close без ошибки, как в pgx).
type sqlRows struct{ rows rowsCore }

func (r *sqlRows) Next() bool             { return r.rows.Next() }
func (r *sqlRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r *sqlRows) Err() error             { return r.rows.Err() }
func (r *sqlRows) Close()                 { _ = r.rows.Close() }
